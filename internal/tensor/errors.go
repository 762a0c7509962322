package tensor

import "errors"

// Common errors.
var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrOutOfBounds   = errors.New("view extends beyond backing buffer")
	ErrInvalidAxes   = errors.New("invalid axes")
	ErrNotContiguous = errors.New("array is not contiguous")
)
