// Package fileutil provides file and path utility functions.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Sentinel errors for file utility operations.
var (
	ErrNameEmpty         = errors.New("file name component cannot be empty")
	ErrNamePathTraversal = errors.New("file name component contains path separator, traversal or null byte")
)

// FilePermissions is the mode given to files created by WriteFileAtomic.
// Files that already exist keep their mode.
const FilePermissions = 0o644 // rw-r--r--

// ValidateNameComponent checks that s is safe to embed in a single file name.
func ValidateNameComponent(s string) error {
	if s == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(s, "/\\\x00") || strings.Contains(s, "..") {
		return fmt.Errorf("%w: %q", ErrNamePathTraversal, s)
	}
	return nil
}

// WriteFileAtomic replaces path with data via a temp file in the same
// directory, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	existed := FileExists(path)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}

	if !existed {
		if err := os.Chmod(path, FilePermissions); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "index" -> false (name)
//   - "./templates" -> true (relative path)
//   - "/abs/site/templates" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
