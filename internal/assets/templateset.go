package assets

// TemplateSet holds the SVG templates for both page layouts.
type TemplateSet struct {
	Name   string // identifier (name or directory path)
	Single string // single-marker page template
	Double string // double-marker page template
}

// DefaultTemplateSetName is the embedded set reproducing the stock layout.
const DefaultTemplateSetName = "classic"

// Template file names inside a set directory.
const (
	singleTemplateFile = "single.svg.tmpl"
	doubleTemplateFile = "double.svg.tmpl"
)
