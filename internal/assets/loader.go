package assets

// AssetLoader defines the contract for loading page templates.
// Implementations may load from embedded assets, the filesystem, etc.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// ListTemplates returns the names of the templates this loader can see.
	ListTemplates() []string
}
