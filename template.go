package markerpdf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-markerpdf/internal/assets"
	"github.com/alnah/go-markerpdf/internal/fileutil"
)

// BuiltinTemplate names the element-tree templater.
const BuiltinTemplate = "builtin"

// Templater turns a page into an SVG document.
type Templater interface {
	Name() string
	Render(p Page) ([]byte, error)
}

// Compile-time interface checks.
var (
	_ Templater = TreeTemplater{}
	_ Templater = (*TextTemplater)(nil)
)

// NewTemplater resolves the templating capability once, before any work runs.
// "builtin" (or empty) selects the element-tree builder; a name containing a
// path separator is a directory holding single.svg.tmpl and double.svg.tmpl;
// any other name is a template set under assetPath or the embedded sets.
// Every resolution failure wraps ErrTemplateNotFound.
func NewTemplater(name, assetPath string) (Templater, error) {
	if name == "" || name == BuiltinTemplate {
		return TreeTemplater{}, nil
	}

	var (
		ts        *assets.TemplateSet
		err       error
		available = assets.TemplateSetNames()
	)
	if fileutil.IsFilePath(name) {
		ts, err = assets.LoadDirectory(name)
	} else {
		var resolver *assets.Resolver
		resolver, err = assets.NewResolver(assetPath)
		if err == nil {
			available = resolver.Available()
			ts, err = resolver.LoadTemplateSet(name)
		}
	}
	if err != nil {
		return nil, &TemplateNotFoundError{Available: available, Err: err}
	}

	return NewTextTemplater(ts)
}

// TreeTemplater builds pages as an element tree and serializes them.
type TreeTemplater struct{}

// Name returns "builtin".
func (TreeTemplater) Name() string { return BuiltinTemplate }

// Render positions the page and serializes it.
func (TreeTemplater) Render(p Page) ([]byte, error) {
	s, err := p.Scene()
	if err != nil {
		return nil, err
	}
	return BuildSVG(s)
}

// TextTemplater expands text templates with the page parameters.
type TextTemplater struct {
	name   string
	single *template.Template
	double *template.Template
}

// NewTextTemplater parses both layouts of a template set.
func NewTextTemplater(ts *assets.TemplateSet) (*TextTemplater, error) {
	single, err := parseTemplate("single", ts.Single)
	if err != nil {
		return nil, err
	}
	double, err := parseTemplate("double", ts.Double)
	if err != nil {
		return nil, err
	}
	return &TextTemplater{name: ts.Name, single: single, double: double}, nil
}

// Name returns the template set name.
func (t *TextTemplater) Name() string { return t.name }

// Render expands the layout template matching the page.
func (t *TextTemplater) Render(p Page) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	tmpl := t.double
	if p.Layout == LayoutSingle {
		tmpl = t.single
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p.Params()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRender, tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// Expand substitutes params into tmpl. Identical inputs always produce
// identical output.
func Expand(tmpl string, params map[string]any) (string, error) {
	t, err := parseTemplate("expand", tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// Params returns the named template parameters of the page. Lengths are
// float64 millimeters; IDs and the dictionary are ints.
func (p Page) Params() map[string]any {
	g := p.Geometry
	params := map[string]any{
		"dicno":         p.Dictionary,
		"paper_width":   p.Paper.Width,
		"paper_height":  p.Paper.Height,
		"marker_len":    g.MarkerLength,
		"border_length": g.BorderLength,
		"dist":          g.Gap,
		"x0":            g.OriginX,
		"y0":            g.OriginY,
		"label_y":       g.LabelY,
		"border_y":      g.BorderY,
	}
	if len(p.IDs) > 0 {
		params["id"] = p.IDs[0]
		params["lid"] = p.IDs[0]
	}
	if len(p.Hrefs) > 0 {
		params["href"] = p.Hrefs[0]
		params["lhref"] = p.Hrefs[0]
	}
	if len(p.IDs) > 1 {
		params["rid"] = p.IDs[1]
	}
	if len(p.Hrefs) > 1 {
		params["rhref"] = p.Hrefs[1]
	}
	return params
}

// parseTemplate parses text with the arithmetic and escaping helpers.
// Missing keys are errors rather than "<no value>".
func parseTemplate(name, text string) (*template.Template, error) {
	t, err := template.New(name).
		Option("missingkey=error").
		Funcs(templateFuncs).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, name, err)
	}
	return t, nil
}

var templateFuncs = template.FuncMap{
	"add": func(a float64, rest ...float64) float64 {
		for _, v := range rest {
			a += v
		}
		return a
	},
	"sub":  func(a, b float64) float64 { return a - b },
	"mul":  func(a, b float64) float64 { return a * b },
	"half": func(a float64) float64 { return a / 2 },
	"div": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	},
	"mm":  mm,
	"xml": escapeXML,
}

// escapeXML escapes text for use in attributes and text nodes.
func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
