package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// A zero-dimensional shape describes a single element; any zero extent
// describes an empty array. The result is only meaningful for shapes that
// pass Validate.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative and that the element
// count fits in an int.
//
// Zero extents are legal: rebinning an axis shorter than its bin size
// yields an empty output along that axis.
func (s Shape) Validate() error {
	empty := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		empty = empty || dim == 0
	}
	if empty {
		return nil
	}

	n := 1
	for _, dim := range s {
		var ok bool
		if n, ok = mulInt(n, dim); !ok {
			return fmt.Errorf("%w: %v has more than %d elements", ErrInvalidShape, s, math.MaxInt)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape, in elements.
// stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// NormalizeAxis maps a possibly negative axis (-1 = last) onto [0, ndim).
func NormalizeAxis(axis, ndim int) (int, error) {
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, fmt.Errorf("%w: axis %d out of range for %dD array", ErrInvalidAxes, axis, ndim)
	}
	return axis, nil
}

// mulInt returns a*b for a >= 0 and reports whether it fits in an int.
func mulInt(a, b int) (int, bool) {
	switch {
	case a == 0 || b == 0:
		return 0, true
	case b > 0 && b > math.MaxInt/a:
		return 0, false
	case b < 0 && b < math.MinInt/a:
		return 0, false
	}
	return a * b, true
}

// addInt returns a+b and reports whether it fits in an int.
func addInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}
