package rebin

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch  = errors.New("rebin: bins length does not match array dimensions")
	ErrInvalidBinSize = errors.New("rebin: invalid bin size")
	ErrNilArray       = errors.New("rebin: nil array")
	ErrNilReducer     = errors.New("rebin: nil reducer")
	ErrReducerShape   = errors.New("rebin: reducer returned unexpected shape")
)

// ShapeMismatchError reports a per-axis bin specification whose length
// differs from the array's number of dimensions.
type ShapeMismatchError struct {
	Expected int // Number of dimensions of the array
	Actual   int // Number of bin sizes given
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("rebin: length of bins must be %d (was %d)", e.Expected, e.Actual)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// InvalidBinSizeError reports a bin size that is not a positive integer.
type InvalidBinSizeError struct {
	Axis   int    // Offending axis, or -1 for a uniform bin size
	Value  string // The value as given by the caller
	Reason string // "not an integer", "must be positive" or "too large"
}

// Error implements the error interface.
func (e *InvalidBinSizeError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("rebin: bins must be a positive int or a sequence of positive ints (was %s): %s",
			e.Value, e.Reason)
	}
	return fmt.Sprintf("rebin: bins must be a positive int or a sequence of positive ints (axis %d was %s): %s",
		e.Axis, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidBinSize.
func (e *InvalidBinSizeError) Is(target error) bool {
	return target == ErrInvalidBinSize
}
