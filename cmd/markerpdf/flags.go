package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds paper and layout flags.
type pageFlags struct {
	size   string
	layout string
}

// markerFlags holds bitmap and printed size flags. Zero means "not set".
type markerFlags struct {
	pixels       int
	markerLength float64
	borderLength float64
	gap          float64
}

// backendFlags selects the templater, renderer, and merger.
type backendFlags struct {
	renderer  string
	merger    string
	template  string
	assetPath string
}

// runFlags holds execution flags.
type runFlags struct {
	workers  int
	timeout  string
	workDir  string
	keepTemp bool
	noVerify bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	page    pageFlags
	marker  markerFlags
	backend backendFlags
	run     runFlags
	version bool
	help    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addPageFlags adds paper and layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "paper-size", "p", "", "paper size: letter, a4, a3 (default a3)")
	fs.StringVar(&f.layout, "layout", "", "markers per page: single, double (default double)")
}

// addMarkerFlags adds marker geometry flags to a FlagSet.
func addMarkerFlags(fs *flag.FlagSet, f *markerFlags) {
	fs.IntVar(&f.pixels, "pixels", 0, "bitmap side in pixels (default 2000)")
	fs.Float64Var(&f.markerLength, "marker-length", 0, "printed marker side in mm (default 120)")
	fs.Float64Var(&f.borderLength, "border-length", 0, "guide square side in mm (default 160)")
	fs.Float64Var(&f.gap, "gap", 0, "gap between paired squares in mm (default 50)")
}

// addBackendFlags adds backend selection flags to a FlagSet.
func addBackendFlags(fs *flag.FlagSet, f *backendFlags) {
	fs.StringVar(&f.renderer, "renderer", "", "SVG to PDF backend: cairosvg, rsvg-convert, chrome")
	fs.StringVar(&f.merger, "merger", "", "PDF merge backend: pdfunite, pdfcpu")
	fs.StringVar(&f.template, "template", "", "template: builtin, set name, or directory")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template set directory")
}

// addRunFlags adds execution flags to a FlagSet.
func addRunFlags(fs *flag.FlagSet, f *runFlags) {
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel bitmap workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "overall timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.workDir, "work-dir", "", "directory for intermediate files (kept)")
	fs.BoolVar(&f.keepTemp, "keep-temp", false, "keep the temporary directory")
	fs.BoolVar(&f.noVerify, "no-verify", false, "skip output page-count check")
}

// newGenerateFlagSet builds the generate FlagSet bound to f. Usage is printed
// by runMain, so the FlagSet stays silent.
func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("markerpdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addMarkerFlags(fs, &f.marker)
	addBackendFlags(fs, &f.backend)
	addRunFlags(fs, &f.run)
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	fs.Usage = func() {}
	return fs
}

// parseGenerateFlags parses generate flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newGenerateFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}
