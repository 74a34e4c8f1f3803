package transfer

import "errors"

var (
	// ErrParse is returned when a payload is not a collection.
	ErrParse = errors.New("not a valid flashcard collection")

	// ErrInvalidEntry is returned when an entry breaks the Entry invariants.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrUnsupportedFormat is returned for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
