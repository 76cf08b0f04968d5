package assets

import (
	"errors"
	"slices"
)

// Resolver combines a custom directory with the embedded sets.
// Custom sets take precedence; embedded sets are the fallback when a name is
// not found on disk.
type Resolver struct {
	custom   *FilesystemLoader // nil if no custom path configured
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded sets are used.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadTemplateSet loads a set, trying the custom loader first if available.
func (r *Resolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplateSet(name)
	}

	ts, err := r.custom.LoadTemplateSet(name)
	if err == nil {
		return ts, nil
	}

	// Only fall back for "not found", not validation or I/O errors.
	if !errors.Is(err, ErrTemplateSetNotFound) {
		return nil, err
	}

	return r.embedded.LoadTemplateSet(name)
}

// Available lists the custom and embedded set names, sorted and deduplicated.
func (r *Resolver) Available() []string {
	names := r.embedded.Names()
	if r.custom != nil {
		names = append(names, r.custom.Names()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
