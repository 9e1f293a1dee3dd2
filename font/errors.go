package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNoDocument is returned when a document index is out of range.
	ErrNoDocument = errors.New("font: no such document")
)
