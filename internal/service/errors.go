package service

import "errors"

var (
	// ErrInvalidSort is returned for a sort value outside rating, reviews and name.
	ErrInvalidSort = errors.New("invalid sort order")
	// ErrMalformedSegment is returned for a path segment that cannot name anything.
	ErrMalformedSegment = errors.New("malformed path segment")
	// ErrAmbiguousMatch is returned in strict mode when a segment names both
	// a location and a specialization.
	ErrAmbiguousMatch = errors.New("path segment matches both a location and a specialization")
	// ErrInvalidContact is returned when a contact submission fails validation.
	ErrInvalidContact = errors.New("invalid contact submission")
)
