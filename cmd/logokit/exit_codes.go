package main

import (
	"errors"
	"os"

	"github.com/lysachain/logokit"
	"github.com/lysachain/logokit/internal/config"
)

// Exit codes for the logokit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing input, read or write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logokit.ErrInvalidPaths) ||
		errors.Is(err, logokit.ErrInvalidClassName) ||
		errors.Is(err, logokit.ErrTemplateNotFound) ||
		errors.Is(err, logokit.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, logokit.ErrCleanSVGNotFound) ||
		errors.Is(err, logokit.ErrReadCleanSVG) ||
		errors.Is(err, logokit.ErrReadDocument) ||
		errors.Is(err, logokit.ErrWriteDocument) ||
		errors.Is(err, logokit.ErrWriteIndex) {
		return ExitIO
	}

	return ExitGeneral
}
