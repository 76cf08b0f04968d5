package markerpdf

import (
	"fmt"
	"strings"
)

// Layout selects how markers are arranged on a page.
type Layout string

// Supported layouts.
const (
	LayoutSingle Layout = "single"
	LayoutDouble Layout = "double"
)

// DefaultLayout is the layout used by the CLI.
const DefaultLayout = LayoutDouble

// ParseLayout converts a layout name, ignoring case.
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate checks the layout is known.
func (l Layout) Validate() error {
	switch l {
	case LayoutSingle, LayoutDouble:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be single or double)", ErrInvalidLayout, string(l))
	}
}

// Geometry holds the printed dimensions in millimeters.
type Geometry struct {
	MarkerLength float64 // printed marker edge
	BorderLength float64 // cut square around a marker
	Gap          float64 // space between the two cells of a double page
	OriginX      float64 // top-left of the double frame
	OriginY      float64
	LabelY       float64 // baseline of the single-page label
	BorderY      float64 // top of the single-page border
}

// DefaultGeometry returns the standard marker sheet dimensions.
func DefaultGeometry() Geometry {
	return Geometry{
		MarkerLength: 120,
		BorderLength: 160,
		Gap:          50,
		OriginX:      10,
		OriginY:      10,
		LabelY:       10,
		BorderY:      40,
	}
}

// Validate checks that the marker fits inside its border.
func (g Geometry) Validate() error {
	if g.MarkerLength <= 0 || g.BorderLength <= 0 {
		return fmt.Errorf("%w: lengths must be positive", ErrInvalidGeometry)
	}
	if g.MarkerLength > g.BorderLength {
		return fmt.Errorf("%w: marker %gmm exceeds border %gmm", ErrInvalidGeometry, g.MarkerLength, g.BorderLength)
	}
	if g.Gap < 0 {
		return fmt.Errorf("%w: gap %gmm is negative", ErrInvalidGeometry, g.Gap)
	}
	return nil
}

// inset is the offset that centers the marker inside its border.
func (g Geometry) inset() float64 {
	return (g.BorderLength - g.MarkerLength) / 2
}

// Page is one sheet: one ID for the single layout, two for the double layout.
type Page struct {
	Layout     Layout
	IDs        []int
	Dictionary int
	Paper      PaperSize
	Geometry   Geometry
	Hrefs      []string // bitmap reference per ID
}

// PlanPages groups IDs into pages. The double layout pairs consecutive IDs and
// puts an odd trailing ID on a single page.
func PlanPages(ids []int, layout Layout) [][]int {
	var pages [][]int
	if layout == LayoutSingle {
		for _, id := range ids {
			pages = append(pages, []int{id})
		}
		return pages
	}
	for i := 0; i < len(ids); i += 2 {
		if i+1 < len(ids) {
			pages = append(pages, []int{ids[i], ids[i+1]})
			continue
		}
		pages = append(pages, []int{ids[i]})
	}
	return pages
}

// Rect is an axis-aligned box in millimeters.
type Rect struct {
	X, Y, W, H float64
}

// Line is a segment in millimeters.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Image is a bitmap placed on the page.
type Image struct {
	Rect
	Href string
}

// Text is a centered label.
type Text struct {
	X, Y    float64
	Content string
}

// Scene is the fully positioned content of one page.
type Scene struct {
	Width, Height float64
	Rects         []Rect
	Lines         []Line
	Images        []Image
	Texts         []Text
}

// validate checks the page holds the right number of markers for its layout.
func (p Page) validate() error {
	if err := p.Geometry.Validate(); err != nil {
		return err
	}
	if len(p.Hrefs) != len(p.IDs) {
		return fmt.Errorf("%w: %d ids but %d bitmaps", ErrSVGBuild, len(p.IDs), len(p.Hrefs))
	}
	switch {
	case p.Layout == LayoutSingle && len(p.IDs) == 1:
		return nil
	case p.Layout == LayoutDouble && len(p.IDs) == 2:
		return nil
	default:
		return fmt.Errorf("%w: %s layout cannot hold %d markers", ErrInvalidLayout, p.Layout, len(p.IDs))
	}
}

// Scene positions the page content according to its layout.
func (p Page) Scene() (Scene, error) {
	if err := p.validate(); err != nil {
		return Scene{}, err
	}
	if p.Layout == LayoutSingle {
		return singleScene(p), nil
	}
	return doubleScene(p), nil
}

// singleScene centers one bordered marker under a label on a portrait page.
func singleScene(p Page) Scene {
	g := p.Geometry
	w, h := p.Paper.Width, p.Paper.Height
	borderX := (w - g.BorderLength) / 2

	return Scene{
		Width:  w,
		Height: h,
		Texts: []Text{{
			X:       w / 2,
			Y:       g.LabelY,
			Content: fmt.Sprintf("id:%d dict:%d", p.IDs[0], p.Dictionary),
		}},
		Rects: []Rect{{X: borderX, Y: g.BorderY, W: g.BorderLength, H: g.BorderLength}},
		Images: []Image{{
			Rect: Rect{X: borderX + g.inset(), Y: g.BorderY + g.inset(), W: g.MarkerLength, H: g.MarkerLength},
			Href: p.Hrefs[0],
		}},
	}
}

// doubleScene places two markers side by side on a landscape page.
func doubleScene(p Page) Scene {
	g := p.Geometry
	land := p.Paper.Landscape()
	x0, y0 := g.OriginX, g.OriginY
	b := g.BorderLength

	return Scene{
		Width:  land.Width,
		Height: land.Height,
		Rects:  []Rect{{X: x0, Y: y0, W: 2*b + g.Gap, H: b}},
		Lines: []Line{
			{X1: x0 + b, Y1: y0, X2: x0 + b, Y2: y0 + b},
			{X1: x0 + b + g.Gap, Y1: y0, X2: x0 + b + g.Gap, Y2: y0 + b},
		},
		Images: []Image{
			{
				Rect: Rect{X: x0 + g.inset(), Y: y0 + g.inset(), W: g.MarkerLength, H: g.MarkerLength},
				Href: p.Hrefs[0],
			},
			{
				Rect: Rect{X: x0 + b + g.Gap + g.inset(), Y: y0 + g.inset(), W: g.MarkerLength, H: g.MarkerLength},
				Href: p.Hrefs[1],
			},
		},
	}
}
