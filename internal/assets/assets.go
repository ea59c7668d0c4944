package assets

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "index"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// ListTemplates returns the names of the built-in page templates.
func ListTemplates() []string {
	return defaultLoader.ListTemplates()
}
