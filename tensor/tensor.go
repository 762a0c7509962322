// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/rebin/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: every signed and unsigned integer kind, float32, float64.
type DType = tensor.DType

// Float is the subset of DType with floating-point semantics.
type Float = tensor.Float

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Array is a strided N-dimensional view onto a flat buffer.
//
// Array provides:
//   - Shape and layout information via Shape(), Strides(), Offset()
//   - Element access via At() and Set()
//   - Zero-copy views via AsStrided(), Slice(), Transpose(), Reshape()
//   - Row-major export via ToSlice()
//
// Example:
//
//	a, _ := tensor.Arange(tensor.Shape{4, 6}, 0.0)
//	v, _ := a.Slice([]int{0, 0}, []int{2, 3}) // top-left 2x3 block, no copy
//	fmt.Println(v.ToSlice())                 // [0 1 2 6 7 8]
type Array[T DType] = tensor.Array[T]

// Common errors.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrOutOfBounds   = tensor.ErrOutOfBounds
	ErrInvalidAxes   = tensor.ErrInvalidAxes
	ErrNotContiguous = tensor.ErrNotContiguous
)

// New creates a zero-filled contiguous array with the given shape.
func New[T DType](shape Shape) (*Array[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a contiguous array from a Go slice in row-major order.
// The slice is copied into the array's memory.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	return tensor.FromSlice(data, shape)
}

// Full creates an array filled with value.
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	return tensor.Full(shape, value)
}

// Arange creates an array filled with start, start+1, ... in row-major order.
func Arange[T DType](shape Shape, start T) (*Array[T], error) {
	return tensor.Arange(shape, start)
}
