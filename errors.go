package logokit

import (
	"errors"
	"os"
)

// Sentinel errors for library operations.
var (
	ErrInvalidPaths  = errors.New("invalid paths")
	ErrReadDocument  = errors.New("reading document failed")
	ErrWriteDocument = errors.New("writing document failed")

	// Inliner errors.
	ErrCleanSVGNotFound = errors.New("clean SVG not found")
	ErrReadCleanSVG     = errors.New("reading clean SVG failed")
	ErrWriteIndex       = errors.New("writing index failed")
	ErrTemplateRender   = errors.New("page template rendering failed")

	// Option validation errors.
	ErrInvalidClassName = errors.New("invalid class name")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("page template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// MissingFileError reports a required input file that does not exist.
// It matches both its sentinel and os.ErrNotExist with errors.Is.
type MissingFileError struct {
	Err  error // sentinel, e.g. ErrCleanSVGNotFound
	Path string
}

func (e *MissingFileError) Error() string {
	return e.Err.Error() + ": " + e.Path
}

func (e *MissingFileError) Unwrap() []error {
	return []error{e.Err, os.ErrNotExist}
}
