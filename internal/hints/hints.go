// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/lysachain/logokit/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/logokit/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/logokit) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/logokit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInvalidConfig returns a hint for config parse and validation errors.
func ForInvalidConfig() string {
	return format("run 'logokit config' to print a valid configuration")
}

// ForCleanSVGMissing returns hints when the inliner input does not exist.
func ForCleanSVGMissing(path string) string {
	if path == "" {
		return format("export the cleaned logo or set --clean-svg")
	}
	return format("export the cleaned logo to " + path + " or set --clean-svg")
}

// ForTemplateNotFound lists the page templates that can be selected.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForAssetsDir returns hints when extracted images cannot be written.
func ForAssetsDir(dir string) string {
	hints := []string{"create " + dir + " or set --assets"}
	if IsInContainer() {
		hints = append(hints, "check the project volume is mounted read-write")
	}
	return formatHints(hints)
}

// ForWritePermission returns hints for document write errors.
func ForWritePermission() string {
	hints := []string{"check the directory exists and is writable"}
	if IsInContainer() {
		hints = append(hints, "check the project volume is mounted read-write")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
