// Package rebin aggregates an N-dimensional array into rectangular bins.
//
// The output cell (i0, ..., i_{d-1}) is the reduction of the sub-block of
// the input spanning [b_k*i_k, b_k*(i_k+1)) along every axis k. Trailing
// elements of an axis whose extent is not a multiple of its bin size are
// discarded.
//
// The input is never tiled into copies. It is re-viewed, without copying,
// as a 2d-dimensional array of shape
//
//	(n0/b0, ..., n_{d-1}/b_{d-1}, b0, ..., b_{d-1})
//
// with strides
//
//	(s0*b0, ..., s_{d-1}*b_{d-1}, s0, ..., s_{d-1})
//
// and the reducer collapses the last d (within-bin) axes in a single pass.
package rebin

import (
	"fmt"

	"github.com/born-ml/rebin/internal/reduce"
	"github.com/born-ml/rebin/internal/tensor"
)

// Rebin aggregates a into bins and returns the arithmetic mean of every bin.
//
// Example:
//
//	a, _ := tensor.Arange(tensor.Shape{4, 6}, 1.0)
//	out, _ := rebin.Rebin(a, rebin.Uniform(2))
//	// out: [[4.5 6.5 8.5] [16.5 18.5 20.5]]
func Rebin[T tensor.DType](a *tensor.Array[T], bins Bins) (*tensor.Array[float64], error) {
	return RebinWith(a, bins, reduce.Mean[T]())
}

// RebinWith aggregates a into bins and reduces every bin with r.
//
// The bins are validated before anything is computed; on error no output is
// produced. The input is only read.
//
// Example:
//
//	a, _ := tensor.Arange(tensor.Shape{4, 6}, int64(0))
//	out, _ := rebin.RebinWith(a, rebin.PerAxis(2, 3), reduce.Sum[int64]())
//	// out: [[24 42] [96 114]]
func RebinWith[T, R tensor.DType](a *tensor.Array[T], bins Bins, r reduce.Reducer[T, R]) (*tensor.Array[R], error) {
	if r == nil {
		return nil, ErrNilReducer
	}
	v, err := View(a, bins)
	if err != nil {
		return nil, err
	}

	d := a.Ndim()
	axes := make([]int, d)
	for i := range axes {
		axes[i] = i - d
	}

	out, err := r.Reduce(v, axes)
	if err != nil {
		return nil, fmt.Errorf("rebin: reduce %v by %v: %w", a.Shape(), bins, err)
	}
	if want := v.Shape()[:d]; out == nil || !want.Equal(out.Shape()) {
		var got any = "<nil>"
		if out != nil {
			got = out.Shape()
		}
		return nil, fmt.Errorf("%w: want %v, got %v", ErrReducerShape, want, got)
	}
	return out, nil
}

// View returns the 2d-dimensional bin view of a: the first d axes index the
// bin, the last d axes index the element within the bin. The view shares
// a's buffer.
func View[T tensor.DType](a *tensor.Array[T], bins Bins) (*tensor.Array[T], error) {
	if a == nil {
		return nil, ErrNilArray
	}
	sizes, err := bins.Resolve(a.Ndim())
	if err != nil {
		return nil, err
	}

	shape, strides := a.Shape(), a.Strides()
	d := len(shape)
	viewShape := make(tensor.Shape, 2*d)
	viewStrides := make([]int, 2*d)
	for k, b := range sizes {
		viewShape[k] = shape[k] / b
		viewShape[d+k] = b
		viewStrides[k] = strides[k] * b
		viewStrides[d+k] = strides[k]
	}

	// Truncation keeps every addressed element inside the source array.
	v, err := a.AsStrided(viewShape, viewStrides)
	if err != nil {
		return nil, fmt.Errorf("rebin: view %v by %v: %w", shape, sizes, err)
	}
	return v, nil
}
