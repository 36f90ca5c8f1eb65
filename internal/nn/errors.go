package nn

import "errors"

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrIndexOutOfRange   = errors.New("layer index out of range")
	ErrInvalidTopology   = errors.New("invalid topology")
)
