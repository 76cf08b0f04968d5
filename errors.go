package markerpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// Job validation errors.
	ErrInvalidRange     = errors.New("invalid marker range")
	ErrInvalidPaperSize = errors.New("invalid paper size")
	ErrInvalidLayout    = errors.New("invalid layout")
	ErrInvalidGeometry  = errors.New("invalid marker geometry")
	ErrEmptyOutput      = errors.New("output path cannot be empty")

	// Bitmap generation errors.
	ErrMarkerEncode = errors.New("marker encoding failed")
	ErrMarkerWrite  = errors.New("failed to write marker bitmap")

	// Templating errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateRender   = errors.New("template rendering failed")
	ErrSVGBuild         = errors.New("SVG document build failed")

	// Backend errors.
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrUnknownMerger   = errors.New("unknown merger")
	ErrRenderFailed    = errors.New("PDF rendering failed")
	ErrMergeFailed     = errors.New("PDF merge failed")
	ErrOutputInvalid   = errors.New("output PDF is invalid")
	ErrBrowserConnect  = errors.New("failed to connect to browser")

	// ErrMissingTool matches every MissingToolError.
	ErrMissingTool = errors.New("required tool not found")
)

// MissingToolError reports an external command that is not on PATH.
type MissingToolError struct {
	Command string
	Package string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s not found in PATH (provided by %s)", e.Command, e.Package)
}

// Is lets errors.Is(err, ErrMissingTool) match any missing tool.
func (e *MissingToolError) Is(target error) bool {
	return target == ErrMissingTool
}

// TemplateNotFoundError reports a template that could not be resolved,
// with the set names that can be.
type TemplateNotFoundError struct {
	Available []string
	Err       error
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("%v: %v", ErrTemplateNotFound, e.Err)
}

// Is lets errors.Is(err, ErrTemplateNotFound) match.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}
