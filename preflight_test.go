package markerpdf

import (
	"errors"
	"fmt"
	"testing"
)

func fakeLookPath(missing ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, m := range missing {
			if m == file {
				return "", errors.New("not found")
			}
		}
		return "/usr/bin/" + file, nil
	}
}

func TestPreflight(t *testing.T) {
	t.Parallel()

	reqs := []Requirement{RequirePdfunite, RequireCairoSVG}

	tests := []struct {
		name        string
		missing     []string
		wantMissing []string
	}{
		{name: "all present"},
		{name: "one missing", missing: []string{"pdfunite"}, wantMissing: []string{"pdfunite"}},
		{name: "both missing", missing: []string{"cairosvg", "pdfunite"}, wantMissing: []string{"pdfunite", "cairosvg"}},
		{name: "unrelated missing", missing: []string{"rsvg-convert"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Preflight(fakeLookPath(tt.missing...), reqs...)
			if len(tt.wantMissing) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingTool) {
				t.Fatalf("error = %v, want ErrMissingTool", err)
			}
			tools := MissingTools(err)
			if len(tools) != len(tt.wantMissing) {
				t.Fatalf("MissingTools = %d, want %d", len(tools), len(tt.wantMissing))
			}
			for i, want := range tt.wantMissing {
				if tools[i].Command != want {
					t.Errorf("missing[%d] = %q, want %q", i, tools[i].Command, want)
				}
			}
		})
	}
}

func TestPreflight_SkipsEmptyRequirement(t *testing.T) {
	t.Parallel()
	if err := Preflight(fakeLookPath(""), Requirement{}); err != nil {
		t.Errorf("error = %v", err)
	}
}

func TestMissingTools_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("checking host: %w", Preflight(fakeLookPath("pdfunite"), RequirePdfunite))
	tools := MissingTools(err)
	if len(tools) != 1 || tools[0].Package != "poppler-utils" {
		t.Errorf("MissingTools = %+v", tools)
	}
	if MissingTools(errors.New("other")) != nil {
		t.Error("unrelated error reported missing tools")
	}
	if MissingTools(nil) != nil {
		t.Error("nil error reported missing tools")
	}
}

func TestMissingToolError_Message(t *testing.T) {
	t.Parallel()
	err := &MissingToolError{Command: "cairosvg", Package: "python3-cairosvg"}
	if got, want := err.Error(), "cairosvg not found in PATH (provided by python3-cairosvg)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		renderer Renderer
		merger   Merger
		want     []string
	}{
		{"defaults", &CairoSVG{}, &Pdfunite{}, []string{"pdfunite", "cairosvg"}},
		{"rsvg with pdfcpu", &RSVG{}, &PdfcpuMerger{}, []string{"rsvg-convert"}},
		{"chrome with pdfcpu", NewChrome(), &PdfcpuMerger{}, nil},
		{"nil backends", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got []string
			for _, r := range Requirements(tt.renderer, tt.merger) {
				got = append(got, r.Command)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Requirements() = %v, want %v", got, tt.want)
			}
		})
	}
}
