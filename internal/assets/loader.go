package assets

// Loader defines the contract for loading SVG template sets.
type Loader interface {
	// LoadTemplateSet loads both layouts of a named set.
	// Returns ErrTemplateSetNotFound if the set doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
