// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reduce provides reductions that collapse a set of axes of a
// tensor.Array, for use with rebin.RebinWith.
//
// Built-in reducers:
//   - Sum, Prod, Min, Max (same element type as the input)
//   - Mean, Median (float64)
//
// Custom reducers can be written per cell with FromCell, or over the whole
// array with Func:
//
//	rms := reduce.FromCell(func(c reduce.Cell[float32]) (float64, error) {
//	    var s float64
//	    c.Each(func(v float32) { s += float64(v) * float64(v) })
//	    return math.Sqrt(s / float64(c.Len())), nil
//	})
//	out, err := rebin.RebinWith(img, rebin.Uniform(4), rms)
//
// Reducers are sequential unless built with WithParallel.
package reduce

import (
	"github.com/born-ml/rebin/internal/parallel"
	"github.com/born-ml/rebin/internal/reduce"
	"github.com/born-ml/rebin/tensor"
)

// Reducer collapses the given axes of an array, producing an array with
// those axes removed. Negative axes count from the end (-1 = last).
type Reducer[T, R tensor.DType] = reduce.Reducer[T, R]

// Func adapts an ordinary function to the Reducer interface.
type Func[T, R tensor.DType] = reduce.Func[T, R]

// Cell is a read-only window onto the elements of one output cell.
type Cell[T any] = reduce.Cell[T]

// CellFunc aggregates the elements of one output cell.
type CellFunc[T, R tensor.DType] = reduce.CellFunc[T, R]

// Option configures a built-in or FromCell reducer.
type Option = reduce.Option

// ParallelConfig controls how output cells are spread over workers.
type ParallelConfig = parallel.Config

// Common errors.
var (
	ErrNilArray       = reduce.ErrNilArray
	ErrEmptyReduction = reduce.ErrEmptyReduction
)

// DefaultParallelConfig returns a configuration sized to the host's logical cores.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// WithParallel spreads output cells over workers according to cfg.
// Results are identical to sequential execution.
func WithParallel(cfg ParallelConfig) Option {
	return reduce.WithParallel(cfg)
}

// FromCell builds a Reducer that applies fn to every output cell.
func FromCell[T, R tensor.DType](fn CellFunc[T, R], opts ...Option) Reducer[T, R] {
	return reduce.FromCell(fn, opts...)
}

// Sum returns a Reducer computing the sum of every cell.
func Sum[T tensor.DType](opts ...Option) Reducer[T, T] {
	return reduce.Sum[T](opts...)
}

// Prod returns a Reducer computing the product of every cell.
func Prod[T tensor.DType](opts ...Option) Reducer[T, T] {
	return reduce.Prod[T](opts...)
}

// Mean returns a Reducer computing the arithmetic mean of every cell.
func Mean[T tensor.DType](opts ...Option) Reducer[T, float64] {
	return reduce.Mean[T](opts...)
}

// Min returns a Reducer computing the minimum of every cell.
func Min[T tensor.DType](opts ...Option) Reducer[T, T] {
	return reduce.Min[T](opts...)
}

// Max returns a Reducer computing the maximum of every cell.
func Max[T tensor.DType](opts ...Option) Reducer[T, T] {
	return reduce.Max[T](opts...)
}

// Median returns a Reducer computing the median of every cell.
func Median[T tensor.DType](opts ...Option) Reducer[T, float64] {
	return reduce.Median[T](opts...)
}
