package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/go-rod/rod/lib/launcher"

	markerpdf "github.com/alnah/go-markerpdf"
	"github.com/alnah/go-markerpdf/internal/aruco"
	"github.com/alnah/go-markerpdf/internal/fileutil"
	"github.com/alnah/go-markerpdf/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Tools    []toolInfo `json:"tools"`
	Chrome   chromeInfo `json:"chrome"`
	OpenCV   string     `json:"opencv,omitempty"`
	Dicts    []dictInfo `json:"dictionaries"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds the lookup result for one external command.
type toolInfo struct {
	Command  string `json:"command"`
	Package  string `json:"package"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Required bool   `json:"required"` // needed by the default backends
}

// chromeInfo holds Chrome/Chromium detection results for the chrome renderer.
type chromeInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	CPUs          int    `json:"cpus"`
	Workers       int    `json:"workers"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
}

// dictInfo describes one dictionary accepted as the dictionary argument.
type dictInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	IDs   int    `json:"ids"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempDir      string `json:"temp_dir"`
	TempWritable bool   `json:"temp_writable"`
}

// doctorTools lists every tool a backend can need. The first two are the
// defaults' requirements.
var doctorTools = []struct {
	req      markerpdf.Requirement
	required bool
}{
	{markerpdf.RequirePdfunite, true},
	{markerpdf.RequireCairoSVG, true},
	{markerpdf.RequireRSVG, false},
}

// openCVVersion reports the linked OpenCV version.
var openCVVersion = aruco.OpenCVVersion

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		default:
			fmt.Fprintf(env.Stderr, "error: unknown doctor argument %q\n", arg)
			return ExitUsage
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			CPUs:    runtime.NumCPU(),
			Workers: markerpdf.ResolveWorkers(0),
		},
		OpenCV: openCVVersion(),
	}

	checkTools(result, env.LookPath)
	checkChrome(result)
	checkEnvironment(result)
	checkSystem(result)
	if result.OpenCV == "" {
		result.Errors = append(result.Errors, "OpenCV not linked: "+aruco.ErrNoOpenCV.Error())
	}
	for _, d := range aruco.Dictionaries() {
		result.Dicts = append(result.Dicts, dictInfo{Index: d.Index, Name: d.Name, IDs: d.Size})
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkTools looks up every external command.
func checkTools(result *doctorResult, lookPath markerpdf.LookPathFunc) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, t := range doctorTools {
		info := toolInfo{Command: t.req.Command, Package: t.req.Package, Required: t.required}

		err := markerpdf.Preflight(lookPath, t.req)
		if err == nil {
			info.Found = true
			info.Path, _ = lookPath(t.req.Command)
		} else {
			msg := fmt.Sprintf("%v%s", err, hints.ForMissingTool(t.req.Command, t.req.Package))
			if t.required {
				result.Errors = append(result.Errors, msg)
			} else {
				result.Warnings = append(result.Warnings, msg)
			}
		}
		result.Tools = append(result.Tools, info)
	}
}

// checkChrome detects a browser for the chrome renderer. Absence is a
// warning: rod can download Chromium on first use.
func checkChrome(result *doctorResult) {
	path := os.Getenv("ROD_BROWSER_BIN")
	if path == "" {
		var found bool
		path, found = launcher.LookPath()
		if !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found; --renderer chrome will download Chromium on first use")
			return
		}
	}
	if !fileutil.FileExists(path) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Chrome not found at %s", path))
		return
	}
	result.Chrome = chromeInfo{Found: true, Path: path}
}

// checkEnvironment detects container environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()
	if result.Env.CPUs > 0 && result.Env.Workers == 1 {
		result.Warnings = append(result.Warnings,
			"single CPU available; markers will be generated sequentially")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("MARKERPDF_CONTAINER") == "1" {
		return true, "MARKERPDF_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used for bitmaps is writable.
func checkSystem(result *doctorResult) {
	result.System.TempDir = os.TempDir()
	if err := fileutil.DirWritable(result.System.TempDir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", result.System.TempDir))
		return
	}
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "markerpdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tools")
	for _, t := range r.Tools {
		switch {
		case t.Found:
			fmt.Fprintf(w, "  [OK] %s: %s\n", t.Command, t.Path)
		case t.Required:
			fmt.Fprintf(w, "  [ERROR] %s: not found (%s)\n", t.Command, t.Package)
		default:
			fmt.Fprintf(w, "  [WARN] %s: not found (%s, optional)\n", t.Command, t.Package)
		}
	}
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] chrome: %s\n", r.Chrome.Path)
	} else {
		fmt.Fprintln(w, "  [WARN] chrome: not found (optional)")
	}
	if r.OpenCV != "" {
		fmt.Fprintf(w, "  [OK] OpenCV %s\n", r.OpenCV)
	}
	if n := len(r.Dicts); n > 0 {
		fmt.Fprintf(w, "  [OK] Dictionaries: %d (indexes 0..%d)\n", n, n-1)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] Workers: %d (CPUs: %d)\n", r.Env.Workers, r.Env.CPUs)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintf(w, "  [OK] Temp directory: %s (writable)\n", r.System.TempDir)
	} else {
		fmt.Fprintf(w, "  [ERROR] Temp directory: %s (not writable)\n", r.System.TempDir)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
