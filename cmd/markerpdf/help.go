package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markerpdf <startId> <endId> <pdfFile> [dictionary] [flags]")
	fmt.Fprintln(w, "       markerpdf doctor [--json]")
	fmt.Fprintln(w, "       markerpdf completion <bash|zsh|fish>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate printable ArUco markers for IDs startId..endId as one PDF.")
	fmt.Fprintln(w, "The dictionary is an OpenCV predefined dictionary index (default 8, DICT_6X6_50).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Check external tools and environment")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this help")
	fmt.Fprintln(w)
	printGenerateFlags(w)
}

func printGenerateFlags(w io.Writer) {
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --paper-size <s>      Paper size: letter, a4, a3 (default a3)")
	fmt.Fprintln(w, "      --layout <s>          Markers per page: single, double (default double)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Marker:")
	fmt.Fprintln(w, "      --pixels <n>          Bitmap side in pixels (default 2000)")
	fmt.Fprintln(w, "      --marker-length <mm>  Printed marker side (default 120)")
	fmt.Fprintln(w, "      --border-length <mm>  Guide square side (default 160)")
	fmt.Fprintln(w, "      --gap <mm>            Gap between paired squares (default 50)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Backends:")
	fmt.Fprintln(w, "      --renderer <s>        cairosvg, rsvg-convert, chrome (default cairosvg)")
	fmt.Fprintln(w, "      --merger <s>          pdfunite, pdfcpu (default pdfunite)")
	fmt.Fprintln(w, "      --template <s>        builtin, template set name, or directory")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom template set directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Execution:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel bitmap workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Overall timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --work-dir <dir>      Keep intermediate files in dir")
	fmt.Fprintln(w, "      --keep-temp           Keep the temporary directory")
	fmt.Fprintln(w, "      --no-verify           Skip the output page-count check")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --version             Show version")
}
