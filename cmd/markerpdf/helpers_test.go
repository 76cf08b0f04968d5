package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fakes for encoder, runner, and PATH lookup
// ---------------------------------------------------------------------------

// fakeEncoder draws a checkerboard and counts calls.
type fakeEncoder struct {
	mu    sync.Mutex
	ids   []int
	dicts []int
}

func (f *fakeEncoder) Encode(dictionary, id, side int) (image.Image, error) {
	f.mu.Lock()
	f.ids = append(f.ids, id)
	f.dicts = append(f.dicts, dictionary)
	f.mu.Unlock()

	img := image.NewGray(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img, nil
}

func (f *fakeEncoder) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ids)
}

// runCall records one subprocess invocation.
type runCall struct {
	name  string
	args  []string
	stdin string
}

// fakeRunner writes a placeholder PDF to the output argument of each tool,
// or fails for the tools listed in fail.
type fakeRunner struct {
	mu     sync.Mutex
	runs   []runCall
	fail   map[string]error
	stderr string
}

func (f *fakeRunner) Run(_ context.Context, stdin io.Reader, name string, args ...string) (string, string, error) {
	var in []byte
	if stdin != nil {
		in, _ = io.ReadAll(stdin)
	}

	f.mu.Lock()
	f.runs = append(f.runs, runCall{name: name, args: args, stdin: string(in)})
	f.mu.Unlock()

	if err := f.fail[name]; err != nil {
		return "", f.stderr, err
	}

	out := outputArg(name, args)
	if out == "" {
		return "", "", errors.New("fake runner: no output argument")
	}
	if err := os.WriteFile(out, []byte("%PDF-1.4 fake\n"), 0o600); err != nil {
		return "", err.Error(), err
	}
	return "", "", nil
}

func (f *fakeRunner) calls(name string) []runCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []runCall
	for _, c := range f.runs {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// outputArg finds the destination file in a tool's argument list.
func outputArg(name string, args []string) string {
	switch name {
	case "cairosvg":
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				return args[i+1]
			}
		}
	case "rsvg-convert":
		for _, a := range args {
			if out, ok := strings.CutPrefix(a, "--output="); ok {
				return out
			}
		}
	case "pdfunite":
		if len(args) > 0 {
			return args[len(args)-1]
		}
	}
	return ""
}

// lookPathExcept resolves every command except the missing ones.
func lookPathExcept(missing ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, m := range missing {
			if m == file {
				return "", errors.New("executable file not found in $PATH")
			}
		}
		return "/usr/bin/" + file, nil
	}
}

// testEnv bundles an Environment with its fakes and output buffers.
type testEnv struct {
	env     *Environment
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	encoder *fakeEncoder
	runner  *fakeRunner
}

func newTestEnv(t *testing.T, missing ...string) *testEnv {
	t.Helper()
	te := &testEnv{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		encoder: &fakeEncoder{},
		runner:  &fakeRunner{},
	}
	te.env = &Environment{
		Now:      func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout:   te.stdout,
		Stderr:   te.stderr,
		LookPath: lookPathExcept(missing...),
		Runner:   te.runner,
		Encoder:  te.encoder,
	}
	return te
}
