package assets

import (
	"embed"
	"io/fs"
	"path"
	"slices"
)

//go:embed templates
var templates embed.FS

// EmbeddedLoader loads template sets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplateSet loads templates/{name}/ from the embedded filesystem.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	dir := path.Join("templates", name)
	return readTemplateSet(name, func(file string) ([]byte, error) {
		return templates.ReadFile(path.Join(dir, file))
	})
}

// Names returns the embedded set names in sorted order.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
