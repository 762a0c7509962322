package reduce

import "errors"

// Common errors.
var (
	ErrNilArray       = errors.New("reduce: nil array")
	ErrEmptyReduction = errors.New("reduce: zero-size cell has no identity for this reduction")
)
