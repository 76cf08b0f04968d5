package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	markerpdf "github.com/alnah/go-markerpdf"
	"github.com/alnah/go-markerpdf/internal/aruco"
	"github.com/alnah/go-markerpdf/internal/assets"
	"github.com/alnah/go-markerpdf/internal/config"
	"github.com/alnah/go-markerpdf/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "completion":
		if err := runCompletion(args[1:], env); err != nil {
			printError(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "help":
		printUsage(env.Stdout)
		return ExitSuccess
	case "version":
		fmt.Fprintf(env.Stdout, "markerpdf %s\n", Version)
		return ExitSuccess
	}

	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		printError(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "markerpdf %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.common.verbose, flags.common.quiet)
	warnUnknownEnvVars(logger)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, flags, positional, logger, env); err != nil {
		printError(env.Stderr, err)
		if errors.Is(err, ErrUsage) {
			printUsage(env.Stderr)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printError writes err followed by the matching remediation hints.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
}

// hintFor returns actionable hints for known failures.
func hintFor(err error) string {
	if tools := markerpdf.MissingTools(err); len(tools) > 0 {
		var out string
		for _, t := range tools {
			out += hints.ForMissingTool(t.Command, t.Package)
		}
		return out
	}

	switch {
	case errors.Is(err, markerpdf.ErrInvalidPaperSize):
		return hints.ForPaperSize(markerpdf.PaperSizeNames())
	case errors.Is(err, markerpdf.ErrTemplateNotFound):
		var te *markerpdf.TemplateNotFoundError
		if errors.As(err, &te) {
			return hints.ForTemplateNotFound(te.Available)
		}
		return hints.ForTemplateNotFound(assets.TemplateSetNames())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, aruco.ErrIDOutOfRange), errors.Is(err, aruco.ErrUnknownDictionary):
		var re *aruco.RangeError
		if errors.As(err, &re) {
			return hints.ForDictionary(re.Dictionary.Name, re.Dictionary.Size)
		}
		return hints.ForDictionary("", 0)
	case errors.Is(err, markerpdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, markerpdf.ErrRenderFailed):
		return hints.ForRenderFailure()
	case errors.Is(err, markerpdf.ErrMarkerWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}
