package markerpdf

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"
)

// SVG namespaces.
const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// guideStyle draws the white-filled black cut guides.
const guideStyle = "fill:rgb(255,255,255);stroke-width:1;stroke:rgb(0,0,0)"

// labelStyle is the style of the single-page label.
const labelStyle = "font-family:sans-serif; font-size:10;"

// BuildSVG serializes a scene as an SVG document. All coordinates are in mm.
// Guides are emitted before images so their fill never covers a marker.
func BuildSVG(s Scene) ([]byte, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: page is %gx%g mm", ErrSVGBuild, s.Width, s.Height)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("svg")
	root.CreateAttr("width", mm(s.Width))
	root.CreateAttr("height", mm(s.Height))
	root.CreateAttr("version", "1.1")
	root.CreateAttr("xmlns:xlink", xlinkNamespace)
	root.CreateAttr("xmlns", svgNamespace)

	for _, t := range s.Texts {
		el := root.CreateElement("text")
		el.CreateAttr("x", mm(t.X))
		el.CreateAttr("y", mm(t.Y))
		el.CreateAttr("text-anchor", "middle")
		el.CreateAttr("style", labelStyle)
		el.SetText(t.Content)
	}

	for _, r := range s.Rects {
		el := root.CreateElement("rect")
		el.CreateAttr("x", mm(r.X))
		el.CreateAttr("y", mm(r.Y))
		el.CreateAttr("width", mm(r.W))
		el.CreateAttr("height", mm(r.H))
		el.CreateAttr("style", guideStyle)
	}

	for _, l := range s.Lines {
		el := root.CreateElement("line")
		el.CreateAttr("x1", mm(l.X1))
		el.CreateAttr("y1", mm(l.Y1))
		el.CreateAttr("x2", mm(l.X2))
		el.CreateAttr("y2", mm(l.Y2))
		el.CreateAttr("style", guideStyle)
	}

	for _, img := range s.Images {
		el := root.CreateElement("image")
		el.CreateAttr("x", mm(img.X))
		el.CreateAttr("y", mm(img.Y))
		el.CreateAttr("width", mm(img.W))
		el.CreateAttr("height", mm(img.H))
		el.CreateAttr("xlink:href", img.Href)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSVGBuild, err)
	}
	return out, nil
}

// mm formats a length rounded to a micrometer.
func mm(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e3)/1e3, 'f', -1, 64) + "mm"
}
