package mnist

import "errors"

// Common errors.
var (
	ErrInvalidMagic    = errors.New("invalid magic number")
	ErrCountMismatch   = errors.New("image and label counts differ")
	ErrLabelRange      = errors.New("label out of range")
	ErrMalformedRecord = errors.New("malformed record")
)
