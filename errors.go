package warraq

import (
	"errors"

	"github.com/alkhatib/warraq/layout"
)

// Sentinel errors for document construction and layout configuration.
// All are fatal: the formatter returns either a complete, consistent
// rendering or nothing.
var (
	ErrEmptyTitle   = errors.New("document title cannot be empty")
	ErrEmptyAuthor  = errors.New("document author cannot be empty")
	ErrChapterCount = errors.New("document must have exactly 25 chapters")
	ErrEmptySection = errors.New("required section is empty")

	// Layout configuration validation errors.
	ErrInvalidAlignment     = errors.New("invalid alignment")
	ErrInvalidDirection     = errors.New("invalid direction")
	ErrInvalidIndent        = errors.New("invalid paragraph indent")
	ErrInvalidLineSpacing   = errors.New("invalid line spacing")
	ErrInvalidLineWidth     = errors.New("invalid line width")
	ErrInvalidPageLines     = errors.New("invalid page line count")
	ErrInvalidHeaderSpacing = errors.New("invalid header spacing")
	ErrInvalidPageGeometry  = errors.New("invalid page geometry")
	ErrInvalidFontSize      = errors.New("invalid font size")
)

// ErrLayoutInvariant is re-exported from the layout engine: an
// internal defect or an unsatisfiable geometry that aborted the run.
var ErrLayoutInvariant = layout.ErrLayoutInvariant
