package pipeline

import (
	"path"
	"path/filepath"
	"strings"
)

// RefDir returns the slash-separated path from docDir to targetDir, or ""
// when they are the same directory. Both paths are made absolute first.
//
//	RefDir("site", "site/assets")        -> "assets"
//	RefDir("site/assets", "site/assets") -> ""
//	RefDir("site/pages", "site/assets")  -> "../assets"
func RefDir(docDir, targetDir string) (string, error) {
	absDoc, err := filepath.Abs(docDir)
	if err != nil {
		return "", err
	}
	absTarget, err := filepath.Abs(targetDir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absDoc, absTarget)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

// JoinRef joins a RefDir result and a file name into an href value.
func JoinRef(refDir, filename string) string {
	if refDir == "" {
		return filename
	}
	return path.Join(refDir, filename)
}

// isRelativePath returns true if the reference points at a local file
// relative to the document.
func isRelativePath(ref string) bool {
	if ref == "" {
		return false
	}

	// Skip URLs (http, https, file, data, mailto, protocol-relative)
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "file://") ||
		strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(ref, "//") {
		return false
	}

	// Skip anchors
	if strings.HasPrefix(ref, "#") {
		return false
	}

	// Skip absolute paths
	if strings.HasPrefix(ref, "/") || filepath.IsAbs(ref) {
		return false
	}

	return true
}

// stripQueryAndFragment removes "?v=2" and "#frag" suffixes from a reference.
func stripQueryAndFragment(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i != -1 {
		return ref[:i]
	}
	return ref
}
