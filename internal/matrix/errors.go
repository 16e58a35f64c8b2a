package matrix

import "errors"

// Common errors.
var (
	ErrShape      = errors.New("matrix shape mismatch")
	ErrDimensions = errors.New("matrix dimensions must be positive")
)
