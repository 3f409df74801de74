package main

import (
	"errors"
	"os"

	warraq "github.com/alkhatib/warraq"
	"github.com/alkhatib/warraq/internal/config"
	"github.com/alkhatib/warraq/internal/fileutil"
)

// Exit codes for the warraq CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
	ExitIO      = 3
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNoChapterFiles) ||
		errors.Is(err, fileutil.ErrNotAFile) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrMissingMetadata) ||
		errors.Is(err, ErrChapterSources) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, warraq.ErrEmptyTitle) ||
		errors.Is(err, warraq.ErrEmptyAuthor) ||
		errors.Is(err, warraq.ErrChapterCount) ||
		errors.Is(err, warraq.ErrEmptySection) ||
		errors.Is(err, warraq.ErrInvalidAlignment) ||
		errors.Is(err, warraq.ErrInvalidDirection) ||
		errors.Is(err, warraq.ErrInvalidIndent) ||
		errors.Is(err, warraq.ErrInvalidLineSpacing) ||
		errors.Is(err, warraq.ErrInvalidLineWidth) ||
		errors.Is(err, warraq.ErrInvalidPageLines) ||
		errors.Is(err, warraq.ErrInvalidHeaderSpacing) ||
		errors.Is(err, warraq.ErrInvalidPageGeometry) ||
		errors.Is(err, warraq.ErrInvalidFontSize) {
		return ExitUsage
	}

	return ExitGeneral
}
