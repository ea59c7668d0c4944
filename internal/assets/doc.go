// Package assets provides the HTML page templates used by the SVG inliner.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in page)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the inliner. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the template is
// not found. This enables overriding the page while keeping the default.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.html      # Page template (e.g., index.html)
//
// Templates are html/template documents. The inliner renders them with
// pipeline.PageData: .Lang, .Title, .Stylesheet, .Script, .Video,
// .VideoType, .LoadingText and .SVG (the inlined logo).
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
