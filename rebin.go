// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package rebin

import (
	internalrebin "github.com/born-ml/rebin/internal/rebin"
	"github.com/born-ml/rebin/reduce"
	"github.com/born-ml/rebin/tensor"
)

// Bins specifies the tile size along every axis.
// Build one with Uniform or PerAxis.
type Bins = internalrebin.Bins

// ShapeMismatchError reports a per-axis bin specification whose length
// differs from the array's number of dimensions.
type ShapeMismatchError = internalrebin.ShapeMismatchError

// InvalidBinSizeError reports a bin size that is not a positive integer.
type InvalidBinSizeError = internalrebin.InvalidBinSizeError

// Common errors, usable with errors.Is.
var (
	ErrShapeMismatch  = internalrebin.ErrShapeMismatch
	ErrInvalidBinSize = internalrebin.ErrInvalidBinSize
	ErrNilArray       = internalrebin.ErrNilArray
	ErrNilReducer     = internalrebin.ErrNilReducer
	ErrReducerShape   = internalrebin.ErrReducerShape
)

// Uniform returns a bin specification applying size n to every axis.
// Integral floats such as 2.0 are accepted.
func Uniform[N tensor.DType](n N) Bins {
	return internalrebin.Uniform(n)
}

// PerAxis returns a bin specification with one size per axis, in order.
func PerAxis[N tensor.DType](sizes ...N) Bins {
	return internalrebin.PerAxis(sizes...)
}

// Rebin aggregates a into bins and returns the arithmetic mean of every bin.
//
// Example:
//
//	a, _ := tensor.Arange(tensor.Shape{4, 6}, 1.0)
//	out, err := rebin.Rebin(a, rebin.Uniform(2))
//	// out: [[4.5 6.5 8.5] [16.5 18.5 20.5]]
func Rebin[T tensor.DType](a *tensor.Array[T], bins Bins) (*tensor.Array[float64], error) {
	return internalrebin.Rebin(a, bins)
}

// RebinWith aggregates a into bins and reduces every bin with r.
//
// Example:
//
//	a, _ := tensor.Arange(tensor.Shape{7, 8}, int64(0))
//	out, err := rebin.RebinWith(a, rebin.PerAxis(2, 3), reduce.Sum[int64]())
//	// out: [[30 48] [126 144] [222 240]]; row 6 and columns 6-7 are discarded
func RebinWith[T, R tensor.DType](a *tensor.Array[T], bins Bins, r reduce.Reducer[T, R]) (*tensor.Array[R], error) {
	return internalrebin.RebinWith(a, bins, r)
}

// View returns the zero-copy bin view of a: shape (n0/b0, ..., b0, ...),
// the first d axes index the bin and the last d index the element within it.
// Useful for applying several reducers to the same tiling.
func View[T tensor.DType](a *tensor.Array[T], bins Bins) (*tensor.Array[T], error) {
	return internalrebin.View(a, bins)
}
