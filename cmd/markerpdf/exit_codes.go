package main

import (
	"errors"
	"os"

	markerpdf "github.com/alnah/go-markerpdf"
	"github.com/alnah/go-markerpdf/internal/config"
)

// Exit codes for the markerpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Output written
	ExitGeneral = 1 // Missing tool, marker encoding, unexpected error
	ExitUsage   = 2 // Invalid arguments, config, or template
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitRender  = 4 // Renderer, merger, or output verification errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Missing tools are checked first: a joined preflight error may carry
	// several of them and nothing else.
	if errors.Is(err, markerpdf.ErrMissingTool) {
		return ExitGeneral
	}

	// Render errors (exit 4)
	if errors.Is(err, markerpdf.ErrRenderFailed) ||
		errors.Is(err, markerpdf.ErrMergeFailed) ||
		errors.Is(err, markerpdf.ErrOutputInvalid) ||
		errors.Is(err, markerpdf.ErrBrowserConnect) {
		return ExitRender
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRange) ||
		errors.Is(err, markerpdf.ErrInvalidRange) ||
		errors.Is(err, markerpdf.ErrInvalidPaperSize) ||
		errors.Is(err, markerpdf.ErrInvalidLayout) ||
		errors.Is(err, markerpdf.ErrInvalidGeometry) ||
		errors.Is(err, markerpdf.ErrEmptyOutput) ||
		errors.Is(err, markerpdf.ErrTemplateNotFound) ||
		errors.Is(err, markerpdf.ErrTemplateRender) ||
		errors.Is(err, markerpdf.ErrUnknownRenderer) ||
		errors.Is(err, markerpdf.ErrUnknownMerger) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, markerpdf.ErrMarkerWrite) {
		return ExitIO
	}

	return ExitGeneral
}
