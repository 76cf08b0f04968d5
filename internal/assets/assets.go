package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplateSet loads a template set by name using the embedded loader.
// Returns ErrTemplateSetNotFound if the set does not exist.
func LoadTemplateSet(name string) (*TemplateSet, error) {
	return defaultLoader.LoadTemplateSet(name)
}

// TemplateSetNames lists the embedded template sets.
func TemplateSetNames() []string {
	return defaultLoader.Names()
}
