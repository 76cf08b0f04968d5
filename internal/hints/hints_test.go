package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel() because they use t.Setenv()
//   and replace the package-level IsInContainer variable.

import (
	"strings"
	"testing"
)

func stubContainer(t *testing.T, in bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return in }
}

func TestForBrowserConnect_InCI(t *testing.T) {
	stubContainer(t, false)
	t.Setenv("CI", "true")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserConnect()

	for _, want := range []string{"hint:", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN", "--renderer cairosvg"} {
		if !strings.Contains(hint, want) {
			t.Errorf("hint %q missing %q", hint, want)
		}
	}
}

func TestForBrowserConnect_InDocker(t *testing.T) {
	stubContainer(t, true)
	t.Setenv("CI", "")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	if hint := ForBrowserConnect(); !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Error("expected ROD_NO_SANDBOX suggestion in Docker")
	}
}

func TestForBrowserConnect_AllConfigured(t *testing.T) {
	stubContainer(t, true)
	t.Setenv("CI", "true")
	t.Setenv("ROD_NO_SANDBOX", "1")
	t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chrome")

	hint := ForBrowserConnect()

	if strings.Contains(hint, "ROD_") {
		t.Errorf("no env suggestion expected when configured, got %q", hint)
	}
	if !strings.Contains(hint, "--renderer") {
		t.Errorf("renderer fallback suggestion missing: %q", hint)
	}
}

func TestForMissingTool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		command  string
		pkg      string
		contains []string
	}{
		{"with package", "pdfunite", "poppler-utils", []string{"sudo apt install poppler-utils", "pdfunite"}},
		{"cairosvg", "cairosvg", "python3-cairosvg", []string{"python3-cairosvg"}},
		{"no package", "mytool", "", []string{"install mytool", "PATH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hint := ForMissingTool(tt.command, tt.pkg)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q missing %q", hint, want)
				}
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{"empty paths", nil, "--config"},
		{"with user path", []string{"./work.yaml", "/home/u/.config/go-markerpdf/work.yaml"}, "create /home/u/.config/go-markerpdf/work.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if hint := ForConfigNotFound(tt.paths); !strings.Contains(hint, tt.contains) {
				t.Errorf("hint %q missing %q", hint, tt.contains)
			}
		})
	}
}

func TestForPaperSize(t *testing.T) {
	t.Parallel()

	if hint := ForPaperSize(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}
	if hint := ForPaperSize([]string{"a3", "a4", "letter"}); !strings.Contains(hint, "a3, a4, letter") {
		t.Errorf("hint %q should list sizes", hint)
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForTemplateNotFound([]string{"classic"}); !strings.Contains(hint, "builtin, classic") {
		t.Errorf("hint %q should list template sets", hint)
	}
	if hint := ForTemplateNotFound(nil); !strings.Contains(hint, "single.svg.tmpl") {
		t.Errorf("hint %q should describe a template directory", hint)
	}
}

func TestForDictionary(t *testing.T) {
	t.Parallel()

	if hint := ForDictionary("DICT_6X6_50", 50); !strings.Contains(hint, "IDs 0..49") {
		t.Errorf("hint = %q, want IDs 0..49", hint)
	}
	if hint := ForDictionary("", 0); !strings.Contains(hint, "0 and 20") {
		t.Errorf("hint = %q, want index range", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForTimeout(),
		ForOutputDirectory(),
		ForRenderFailure(),
		ForMissingTool("pdfunite", "poppler-utils"),
		ForDictionary("DICT_4X4_50", 50),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
