// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-markerpdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForMissingTool returns the install instruction for a command missing from PATH.
func ForMissingTool(command, pkg string) string {
	if pkg == "" {
		return format("install " + command + " and make sure it is on PATH")
	}
	return format(fmt.Sprintf("sudo apt install %s  (provides %s)", pkg, command))
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "or use --renderer cairosvg")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow runs.
func ForTimeout() string {
	return format("for large ranges, use the --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-markerpdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPaperSize lists the accepted paper size names.
func ForPaperSize(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("paper sizes: " + strings.Join(available, ", "))
}

// ForTemplateNotFound lists the template sets that can be used.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("use --template builtin or a directory with single.svg.tmpl and double.svg.tmpl")
	}
	return format("available: builtin, " + strings.Join(available, ", "))
}

// ForDictionary reports the valid ID range for a dictionary.
func ForDictionary(name string, size int) string {
	if size <= 0 {
		return format("dictionary index must be between 0 and 20")
	}
	return format(fmt.Sprintf("%s holds IDs 0..%d", name, size-1))
}

// ForRenderFailure suggests trying another backend.
func ForRenderFailure() string {
	return format("run with --verbose or try another --renderer (cairosvg, rsvg-convert, chrome)")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
