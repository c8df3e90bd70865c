package timeline

import "errors"

var (
	// ErrInvalidSegment reports malformed timing in a load candidate
	// (start >= end, or negative start).
	ErrInvalidSegment = errors.New("invalid segment timing")

	// ErrNotFound reports an edit referencing an unknown segment id.
	ErrNotFound = errors.New("segment not found")
)
