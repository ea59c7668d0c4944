package logokit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default project-relative file locations.
const (
	DefaultSVGPath      = "assets/lysachain-logo-scomposto.svg"
	DefaultHTMLPath     = "index.html"
	DefaultAssetsDir    = "assets"
	DefaultCleanSVGPath = "assets/logo-clean.svg"
)

// Paths locates the files both tools work on. Relative fields resolve
// against Root; absolute fields are used as given.
type Paths struct {
	Root     string // project directory; "" means the working directory
	SVG      string // extractor SVG target
	HTML     string // extractor HTML target and inliner output
	Assets   string // directory extracted images are written to
	CleanSVG string // inliner input
}

// DefaultPaths returns the layout of the Lysa Chain site.
func DefaultPaths() Paths {
	return Paths{
		Root:     ".",
		SVG:      DefaultSVGPath,
		HTML:     DefaultHTMLPath,
		Assets:   DefaultAssetsDir,
		CleanSVG: DefaultCleanSVGPath,
	}
}

// Validate checks that every file location is set.
func (p Paths) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"svg", p.SVG},
		{"html", p.HTML},
		{"assets", p.Assets},
		{"clean svg", p.CleanSVG},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s path is empty", ErrInvalidPaths, f.name)
		}
		if strings.ContainsRune(f.value, 0) {
			return fmt.Errorf("%w: %s path contains NUL byte", ErrInvalidPaths, f.name)
		}
	}
	return nil
}

// Resolve returns a copy with every field joined onto Root.
func (p Paths) Resolve() Paths {
	root := p.Root
	if root == "" {
		root = "."
	}
	return Paths{
		Root:     root,
		SVG:      resolvePath(root, p.SVG),
		HTML:     resolvePath(root, p.HTML),
		Assets:   resolvePath(root, p.Assets),
		CleanSVG: resolvePath(root, p.CleanSVG),
	}
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, filepath.FromSlash(p))
}
