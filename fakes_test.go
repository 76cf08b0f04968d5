package markerpdf

import (
	"context"
	"errors"
	"image"
	"io"
	"os"
	"strings"
	"sync"
)

// Mock implementations for testing.

type mockEncoder struct {
	mu    sync.Mutex
	ids   []int
	err   error
	errID int // fail only for this ID when err is set and errID >= 0
}

func (m *mockEncoder) Encode(dictionary, id, side int) (image.Image, error) {
	m.mu.Lock()
	m.ids = append(m.ids, id)
	m.mu.Unlock()

	if m.err != nil && (m.errID < 0 || m.errID == id) {
		return nil, m.err
	}
	return image.NewGray(image.Rect(0, 0, side, side)), nil
}

func (m *mockEncoder) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}

type mockRun struct {
	name  string
	args  []string
	stdin string
}

// mockRunner records commands and writes a placeholder file at the output
// argument unless err is set.
type mockRunner struct {
	mu     sync.Mutex
	runs   []mockRun
	err    error
	stderr string
}

func (m *mockRunner) Run(_ context.Context, stdin io.Reader, name string, args ...string) (string, string, error) {
	var in []byte
	if stdin != nil {
		in, _ = io.ReadAll(stdin)
	}
	m.mu.Lock()
	m.runs = append(m.runs, mockRun{name: name, args: args, stdin: string(in)})
	m.mu.Unlock()

	if m.err != nil {
		return "", m.stderr, m.err
	}

	var out string
	switch name {
	case "cairosvg":
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				out = args[i+1]
			}
		}
	case "rsvg-convert":
		for _, a := range args {
			if v, ok := strings.CutPrefix(a, "--output="); ok {
				out = v
			}
		}
	case "pdfunite":
		out = args[len(args)-1]
	}
	if out == "" {
		return "", "", errors.New("mock runner: no output")
	}
	return "", "", os.WriteFile(out, []byte("%PDF-1.4 mock\n"), 0o600)
}

// mockRenderer records the SVG of each page and writes a placeholder PDF.
type mockRenderer struct {
	mu     sync.Mutex
	svgs   []string
	reqs   []RenderRequest
	err    error
	closed bool
}

func (m *mockRenderer) Name() string                     { return "mock" }
func (m *mockRenderer) Requirement() (Requirement, bool) { return Requirement{}, false }

func (m *mockRenderer) Render(_ context.Context, svg []byte, req RenderRequest) error {
	m.mu.Lock()
	m.svgs = append(m.svgs, string(svg))
	m.reqs = append(m.reqs, req)
	m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	return os.WriteFile(req.OutputPath, []byte("%PDF-1.4 mock\n"), 0o600)
}

func (m *mockRenderer) Close() error {
	m.closed = true
	return nil
}

// mockMerger records its inputs and concatenates them into output.
type mockMerger struct {
	called bool
	inputs []string
	output string
	err    error
}

func (m *mockMerger) Name() string                     { return "mock" }
func (m *mockMerger) Requirement() (Requirement, bool) { return Requirement{}, false }

func (m *mockMerger) Merge(_ context.Context, inputs []string, output string) error {
	m.called = true
	m.inputs = append([]string{}, inputs...)
	m.output = output
	if m.err != nil {
		return m.err
	}
	return os.WriteFile(output, []byte("%PDF-1.4 merged\n"), 0o600)
}
