package markerpdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alnah/go-markerpdf/internal/fileutil"
	"github.com/alnah/go-markerpdf/internal/process"
)

// Renderer names.
const (
	RendererCairoSVG = "cairosvg"
	RendererRSVG     = "rsvg-convert"
	RendererChrome   = "chrome"
)

// RenderRequest describes one SVG to PDF conversion.
type RenderRequest struct {
	OutputPath string    // PDF destination
	WorkDir    string    // directory for intermediate files, next to the bitmaps
	Paper      PaperSize // page size in mm, already oriented
}

// Renderer converts an SVG document to a one-page PDF.
type Renderer interface {
	Name() string
	// Requirement returns the external command the renderer needs, if any.
	Requirement() (Requirement, bool)
	Render(ctx context.Context, svg []byte, req RenderRequest) error
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. Each child runs in its
// own process group, killed when ctx is canceled.
type ExecRunner struct{}

// Run starts name with args, feeds stdin, and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- fixed tool names, args built internally
	process.Configure(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Compile-time interface checks.
var (
	_ CommandRunner = (*ExecRunner)(nil)
	_ Renderer      = (*CairoSVG)(nil)
	_ Renderer      = (*RSVG)(nil)
	_ Renderer      = (*Chrome)(nil)
)

// NewRenderer returns the renderer with the given name.
func NewRenderer(name string, runner CommandRunner) (Renderer, error) {
	if runner == nil {
		runner = &ExecRunner{}
	}
	switch name {
	case "", RendererCairoSVG:
		return &CairoSVG{Runner: runner}, nil
	case RendererRSVG:
		return &RSVG{Runner: runner}, nil
	case RendererChrome:
		return NewChrome(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRenderer, name, strings.Join(RendererNames(), ", "))
	}
}

// RendererNames lists the supported renderers.
func RendererNames() []string {
	return []string{RendererCairoSVG, RendererRSVG, RendererChrome}
}

// CairoSVG pipes the document into `cairosvg -f pdf -o <out> /dev/stdin`.
type CairoSVG struct {
	Runner CommandRunner
}

// Name returns "cairosvg".
func (c *CairoSVG) Name() string { return RendererCairoSVG }

// Requirement returns the cairosvg command.
func (c *CairoSVG) Requirement() (Requirement, bool) { return RequireCairoSVG, true }

// Render writes the whole document to cairosvg's stdin and waits for it.
func (c *CairoSVG) Render(ctx context.Context, svg []byte, req RenderRequest) error {
	_, stderr, err := c.Runner.Run(ctx, bytes.NewReader(svg),
		"cairosvg", "-f", "pdf", "-o", req.OutputPath, "/dev/stdin")
	if err != nil {
		return commandError(ErrRenderFailed, c.Name(), stderr, err)
	}
	return nil
}

// RSVG renders with rsvg-convert. The document is written next to the bitmaps
// because rsvg only loads images relative to the document location.
type RSVG struct {
	Runner CommandRunner
}

// Name returns "rsvg-convert".
func (c *RSVG) Name() string { return RendererRSVG }

// Requirement returns the rsvg-convert command.
func (c *RSVG) Requirement() (Requirement, bool) { return RequireRSVG, true }

// Render converts the document file to PDF.
func (c *RSVG) Render(ctx context.Context, svg []byte, req RenderRequest) error {
	svgPath, cleanup, err := writeSVGFile(req.WorkDir, req.OutputPath, svg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, stderr, err := c.Runner.Run(ctx, nil,
		"rsvg-convert", "--format=pdf", "--output="+req.OutputPath, svgPath)
	if err != nil {
		return commandError(ErrRenderFailed, c.Name(), stderr, err)
	}
	return nil
}

// writeSVGFile stores svg in dir under a name derived from the PDF output.
func writeSVGFile(dir, outputPath string, svg []byte) (string, func(), error) {
	if dir == "" {
		dir = filepath.Dir(outputPath)
	}
	base := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	svgPath := filepath.Join(dir, base+".svg")

	if err := fileutil.WriteBytes(svgPath, svg, 0o600); err != nil {
		return "", nil, fmt.Errorf("%w: writing %s: %v", ErrRenderFailed, svgPath, err)
	}
	return svgPath, func() { _ = os.Remove(svgPath) }, nil
}

// commandError wraps a failed external command with its stderr.
func commandError(sentinel error, tool, stderr string, err error) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return fmt.Errorf("%w: %s: %v", sentinel, tool, err)
	}
	return fmt.Errorf("%w: %s: %v: %s", sentinel, tool, err, stderr)
}
