package tensor

import "fmt"

// AsStrided reinterprets the array's buffer under a new shape and stride
// layout, starting at the same offset. No data is copied.
//
// Returns ErrOutOfBounds if any element addressable through the new layout
// would fall outside the backing buffer.
//
// Example:
//
//	a, _ := tensor.Arange[int64](tensor.Shape{4, 6}, 0)
//	// 2x2 grid of 2x3 tiles
//	tiles, _ := a.AsStrided(tensor.Shape{2, 2, 2, 3}, []int{12, 3, 6, 1})
func (a *Array[T]) AsStrided(shape Shape, strides []int) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: %d strides for %dD shape", ErrInvalidShape, len(strides), len(shape))
	}
	if err := checkBounds(len(a.data), a.offset, shape, strides); err != nil {
		return nil, err
	}
	return &Array[T]{
		data:    a.data,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		offset:  a.offset,
	}, nil
}

// Slice returns the half-open sub-block [start[k], stop[k]) along every axis
// as a view sharing the buffer.
func (a *Array[T]) Slice(start, stop []int) (*Array[T], error) {
	ndim := len(a.shape)
	if len(start) != ndim || len(stop) != ndim {
		return nil, fmt.Errorf("%w: slice bounds have %d/%d entries for %dD array",
			ErrInvalidShape, len(start), len(stop), ndim)
	}

	shape := make(Shape, ndim)
	offset := a.offset
	for i := range ndim {
		if start[i] < 0 || start[i] > stop[i] || stop[i] > a.shape[i] {
			return nil, fmt.Errorf("%w: slice [%d:%d] invalid for dimension %d (size %d)",
				ErrOutOfBounds, start[i], stop[i], i, a.shape[i])
		}
		shape[i] = stop[i] - start[i]
		offset += start[i] * a.strides[i]
	}

	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: append([]int(nil), a.strides...),
		offset:  offset,
	}, nil
}

// Transpose permutes the axes of the array without copying.
// With no arguments the axis order is reversed.
func (a *Array[T]) Transpose(axes ...int) (*Array[T], error) {
	ndim := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, fmt.Errorf("%w: permutation %v for %dD array", ErrInvalidAxes, axes, ndim)
	}

	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	strides := make([]int, ndim)
	for i, ax := range axes {
		norm, err := NormalizeAxis(ax, ndim)
		if err != nil {
			return nil, err
		}
		if seen[norm] {
			return nil, fmt.Errorf("%w: axis %d repeated in permutation %v", ErrInvalidAxes, ax, axes)
		}
		seen[norm] = true
		shape[i] = a.shape[norm]
		strides[i] = a.strides[norm]
	}

	return &Array[T]{
		data:    a.data,
		shape:   shape,
		strides: strides,
		offset:  a.offset,
	}, nil
}

// Reshape returns a view of a contiguous array under a new shape with the
// same number of elements.
func (a *Array[T]) Reshape(shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != a.NumElements() {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrInvalidShape, a.shape, shape)
	}
	if !a.IsContiguous() {
		return nil, fmt.Errorf("reshape %v: %w", a.shape, ErrNotContiguous)
	}
	return &Array[T]{
		data:    a.data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		offset:  a.offset,
	}, nil
}

// checkBounds verifies that every position reachable through shape/strides
// from offset lies in [0, size).
func checkBounds(size, offset int, shape Shape, strides []int) error {
	if shape.NumElements() == 0 {
		if offset < 0 || offset > size {
			return fmt.Errorf("%w: offset %d for buffer of %d elements", ErrOutOfBounds, offset, size)
		}
		return nil
	}

	lo, hi := offset, offset
	for i, dim := range shape {
		span, ok := mulInt(dim-1, strides[i])
		if ok {
			if span < 0 {
				lo, ok = addInt(lo, span)
			} else {
				hi, ok = addInt(hi, span)
			}
		}
		if !ok {
			return fmt.Errorf("%w: axis %d spans %d x stride %d past the int range", ErrOutOfBounds, i, dim, strides[i])
		}
	}
	if lo < 0 || hi >= size {
		return fmt.Errorf("%w: positions [%d, %d] for buffer of %d elements", ErrOutOfBounds, lo, hi, size)
	}
	return nil
}
