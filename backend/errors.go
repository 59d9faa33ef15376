package backend

import "errors"

// Sentinel errors for the backend package.
var (
	// ErrClipStackEmpty is returned when popping a clip id with nothing pushed.
	ErrClipStackEmpty = errors.New("backend: pop from empty clip stack")

	// ErrStackingContextUnderflow is returned when popping a stacking context
	// that was never pushed.
	ErrStackingContextUnderflow = errors.New("backend: pop stacking context without push")

	// ErrUnbalancedStackingContext is returned by Finish when stacking
	// contexts are left open.
	ErrUnbalancedStackingContext = errors.New("backend: unbalanced stacking contexts")

	// ErrFinished is returned when a Builder is used after Finish.
	ErrFinished = errors.New("backend: builder already finished")

	// ErrUnknownFormat is returned by WriteFormat for unregistered formats.
	ErrUnknownFormat = errors.New("backend: unknown output format")

	// ErrMalformedEncoding is returned when decoding a truncated or corrupt
	// binary display list.
	ErrMalformedEncoding = errors.New("backend: malformed encoding")
)
