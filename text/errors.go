package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a non-positive font size is requested.
	ErrInvalidSize = errors.New("text: font size must be positive")
)

// RangeError is returned when a character range does not fit in a run.
type RangeError struct {
	Range Range
	Len   int
}

func (e *RangeError) Error() string {
	return "text: range out of bounds"
}
