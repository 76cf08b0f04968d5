package markerpdf

import (
	"fmt"
	"slices"
)

// PaperSize is a page size in millimeters.
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

// DefaultPaperSize is used when no paper size is requested.
const DefaultPaperSize = "a3"

// paperSizes holds the supported presets. Names are matched exactly.
var paperSizes = map[string]PaperSize{
	"letter": {Name: "letter", Width: 215.9, Height: 279.4},
	"a4":     {Name: "a4", Width: 210, Height: 297},
	"a3":     {Name: "a3", Width: 297.7, Height: 420},
}

// LookupPaperSize returns the preset with the given name.
// The second result is false for any name outside the preset table.
func LookupPaperSize(name string) (PaperSize, bool) {
	p, ok := paperSizes[name]
	return p, ok
}

// ParsePaperSize is LookupPaperSize with an error for unknown names.
func ParsePaperSize(name string) (PaperSize, error) {
	p, ok := LookupPaperSize(name)
	if !ok {
		return PaperSize{}, fmt.Errorf("%w: %q", ErrInvalidPaperSize, name)
	}
	return p, nil
}

// PaperSizeNames returns the preset names in sorted order.
func PaperSizeNames() []string {
	names := make([]string, 0, len(paperSizes))
	for name := range paperSizes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Landscape returns the same paper rotated by 90 degrees.
func (p PaperSize) Landscape() PaperSize {
	return PaperSize{Name: p.Name, Width: p.Height, Height: p.Width}
}

// Validate checks that both dimensions are positive.
func (p PaperSize) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %gx%g mm", ErrInvalidPaperSize, p.Width, p.Height)
	}
	return nil
}
