package tensor

import "fmt"

// Array is a strided N-dimensional view onto a flat buffer.
//
// Element (i0, ..., i_{d-1}) lives at data[offset + i0*strides[0] + ... + i_{d-1}*strides[d-1]].
// Several arrays may share one buffer; views created by AsStrided, Slice,
// Transpose and Reshape never copy.
type Array[T DType] struct {
	data    []T   // Backing buffer, possibly shared with other views
	shape   Shape // Logical dimensions
	strides []int // Per-axis distance in elements
	offset  int   // Position of element (0, ..., 0)
}

// New creates a zero-filled contiguous array with the given shape.
func New[T DType](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a contiguous array from a Go slice in row-major order.
// The slice is copied into the array's memory.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the array's per-axis strides, in elements.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// Offset returns the buffer position of the first element.
func (a *Array[T]) Offset() int {
	return a.offset
}

// Ndim returns the number of dimensions.
func (a *Array[T]) Ndim() int {
	return len(a.shape)
}

// NumElements returns the number of logical elements.
func (a *Array[T]) NumElements() int {
	return a.shape.NumElements()
}

// Data returns the backing buffer.
// WARNING: the buffer may be shared with other views and may hold elements
// outside this array's logical extent. Use ToSlice for a row-major copy.
func (a *Array[T]) Data() []T {
	return a.data
}

// Index returns the buffer position of the element at idx.
// Panics if idx does not address an element of the array.
func (a *Array[T]) Index(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(idx)))
	}
	pos := a.offset
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", v, i, a.shape[i]))
		}
		pos += v * a.strides[i]
	}
	return pos
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	a, _ := tensor.New[float64](tensor.Shape{3, 4})
//	value := a.At(1, 2) // Row 1, column 2
func (a *Array[T]) At(indices ...int) T {
	return a.data[a.Index(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array[T]) Set(value T, indices ...int) {
	a.data[a.Index(indices)] = value
}

// IsContiguous reports whether the array is laid out row-major without gaps.
// Axes of extent 1 are ignored since their stride is never used.
func (a *Array[T]) IsContiguous() bool {
	want := a.shape.ComputeStrides()
	for i, s := range a.strides {
		if a.shape[i] > 1 && s != want[i] {
			return false
		}
	}
	return true
}

// ToSlice returns the elements in row-major order as a fresh slice.
func (a *Array[T]) ToSlice() []T {
	n := a.NumElements()
	out := make([]T, 0, n)
	if n == 0 {
		return out
	}
	if a.IsContiguous() {
		return append(out, a.data[a.offset:a.offset+n]...)
	}

	idx := make([]int, len(a.shape))
	pos := a.offset
	for range n {
		out = append(out, a.data[pos])
		// Odometer increment, last axis fastest.
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			pos += a.strides[d]
			if idx[d] < a.shape[d] {
				break
			}
			pos -= idx[d] * a.strides[d]
			idx[d] = 0
		}
	}
	return out
}

// Clone returns a contiguous deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		data:    a.ToSlice(),
		shape:   a.shape.Clone(),
		strides: a.shape.ComputeStrides(),
	}
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.shape)
}
