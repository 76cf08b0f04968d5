package markerpdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Merger names.
const (
	MergerPdfunite = "pdfunite"
	MergerPdfcpu   = "pdfcpu"
)

// Merger concatenates single-page PDFs into one document, in input order.
type Merger interface {
	Name() string
	// Requirement returns the external command the merger needs, if any.
	Requirement() (Requirement, bool)
	Merge(ctx context.Context, inputs []string, output string) error
}

// Compile-time interface checks.
var (
	_ Merger = (*Pdfunite)(nil)
	_ Merger = (*PdfcpuMerger)(nil)
)

// NewMerger returns the merger with the given name.
func NewMerger(name string, runner CommandRunner) (Merger, error) {
	if runner == nil {
		runner = &ExecRunner{}
	}
	switch name {
	case "", MergerPdfunite:
		return &Pdfunite{Runner: runner}, nil
	case MergerPdfcpu:
		return &PdfcpuMerger{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownMerger, name, strings.Join(MergerNames(), ", "))
	}
}

// MergerNames lists the supported mergers.
func MergerNames() []string {
	return []string{MergerPdfunite, MergerPdfcpu}
}

// Pdfunite merges with poppler's `pdfunite in1 ... inN out`.
type Pdfunite struct {
	Runner CommandRunner
}

// Name returns "pdfunite".
func (m *Pdfunite) Name() string { return MergerPdfunite }

// Requirement returns the pdfunite command.
func (m *Pdfunite) Requirement() (Requirement, bool) { return RequirePdfunite, true }

// Merge runs pdfunite over inputs.
func (m *Pdfunite) Merge(ctx context.Context, inputs []string, output string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no input files", ErrMergeFailed)
	}
	args := append(append([]string{}, inputs...), output)
	_, stderr, err := m.Runner.Run(ctx, nil, "pdfunite", args...)
	if err != nil {
		return commandError(ErrMergeFailed, m.Name(), stderr, err)
	}
	return nil
}

// PdfcpuMerger merges in-process with pdfcpu.
type PdfcpuMerger struct{}

// Name returns "pdfcpu".
func (m *PdfcpuMerger) Name() string { return MergerPdfcpu }

// Requirement reports no PATH requirement.
func (m *PdfcpuMerger) Requirement() (Requirement, bool) { return Requirement{}, false }

// Merge creates output from inputs. pdfcpu does not take a context, so
// cancellation is only observed before the merge starts.
func (m *PdfcpuMerger) Merge(ctx context.Context, inputs []string, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no input files", ErrMergeFailed)
	}
	if err := api.MergeCreateFile(inputs, output, false, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("%w: pdfcpu: %v", ErrMergeFailed, err)
	}
	return nil
}

// VerifyPDF checks that path is a readable PDF with the expected page count.
func VerifyPDF(path string, wantPages int) error {
	got, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputInvalid, path, err)
	}
	if wantPages > 0 && got != wantPages {
		return fmt.Errorf("%w: %s has %d pages, want %d", ErrOutputInvalid, path, got, wantPages)
	}
	return nil
}
