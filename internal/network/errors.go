package network

import "errors"

// Common errors.
var (
	ErrBadLayout     = errors.New("invalid layer layout")
	ErrShapeMismatch = errors.New("vector shape does not match network layout")
)
