package markerpdf

import (
	"errors"
	"os/exec"
)

// Requirement names an external command and the package that provides it.
type Requirement struct {
	Command string
	Package string
}

// Known external tools.
var (
	RequirePdfunite = Requirement{Command: "pdfunite", Package: "poppler-utils"}
	RequireCairoSVG = Requirement{Command: "cairosvg", Package: "python3-cairosvg"}
	RequireRSVG     = Requirement{Command: "rsvg-convert", Package: "librsvg2-bin"}
)

// LookPathFunc resolves a command on PATH. exec.LookPath satisfies it.
type LookPathFunc func(file string) (string, error)

// Preflight checks every requirement and returns one MissingToolError per
// missing command, joined. A nil lookPath uses exec.LookPath.
func Preflight(lookPath LookPathFunc, reqs ...Requirement) error {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	var errs []error
	for _, req := range reqs {
		if req.Command == "" {
			continue
		}
		if _, err := lookPath(req.Command); err != nil {
			errs = append(errs, &MissingToolError{Command: req.Command, Package: req.Package})
		}
	}
	return errors.Join(errs...)
}

// MissingTools extracts every MissingToolError from err.
func MissingTools(err error) []*MissingToolError {
	var out []*MissingToolError
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if mt, ok := e.(*MissingToolError); ok {
			out = append(out, mt)
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		walk(errors.Unwrap(e))
	}
	walk(err)
	return out
}

// Requirements returns the external tools needed by the given backends,
// merger first.
func Requirements(renderer Renderer, merger Merger) []Requirement {
	var reqs []Requirement
	if merger != nil {
		if req, ok := merger.Requirement(); ok {
			reqs = append(reqs, req)
		}
	}
	if renderer != nil {
		if req, ok := renderer.Requirement(); ok {
			reqs = append(reqs, req)
		}
	}
	return reqs
}
