// Package reduce implements reductions that collapse a set of axes of a
// strided array.
//
// Every built-in reducer is a cell kernel: for each combination of the kept
// axes it reads the elements of the reduced axes straight from the input's
// buffer through its strides, so reducing a re-strided view never copies
// the data it covers.
package reduce

import (
	"fmt"

	"github.com/born-ml/rebin/internal/parallel"
	"github.com/born-ml/rebin/internal/tensor"
)

// Reducer collapses the given axes of an array, producing an array with
// those axes removed. Negative axes count from the end (-1 = last).
type Reducer[T, R tensor.DType] interface {
	Reduce(a *tensor.Array[T], axes []int) (*tensor.Array[R], error)
}

// Func adapts an ordinary function to the Reducer interface.
type Func[T, R tensor.DType] func(a *tensor.Array[T], axes []int) (*tensor.Array[R], error)

// Reduce calls f(a, axes).
func (f Func[T, R]) Reduce(a *tensor.Array[T], axes []int) (*tensor.Array[R], error) {
	return f(a, axes)
}

// CellFunc aggregates the elements of one output cell.
type CellFunc[T, R tensor.DType] func(c Cell[T]) (R, error)

// Option configures a cell reducer.
type Option func(*options)

type options struct {
	parallel parallel.Config
}

// WithParallel spreads output cells over workers according to cfg.
// Every cell is still aggregated by a single goroutine in the same element
// order, so results match sequential execution exactly.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

// FromCell builds a Reducer that applies fn to every output cell.
//
// Example:
//
//	// Range (max - min) of every cell.
//	spread := reduce.FromCell(func(c reduce.Cell[float64]) (float64, error) {
//	    lo, hi := math.Inf(1), math.Inf(-1)
//	    c.Each(func(v float64) { lo, hi = min(lo, v), max(hi, v) })
//	    return hi - lo, nil
//	})
func FromCell[T, R tensor.DType](fn CellFunc[T, R], opts ...Option) Reducer[T, R] {
	o := options{parallel: parallel.Sequential()}
	for _, opt := range opts {
		opt(&o)
	}
	return &cellReducer[T, R]{fn: fn, opts: o}
}

type cellReducer[T, R tensor.DType] struct {
	fn   CellFunc[T, R]
	opts options
}

func (r *cellReducer[T, R]) Reduce(a *tensor.Array[T], axes []int) (*tensor.Array[R], error) {
	if a == nil {
		return nil, ErrNilArray
	}
	shape, strides := a.Shape(), a.Strides()

	reduced, err := reducedMask(len(shape), axes)
	if err != nil {
		return nil, err
	}

	var (
		outShape    tensor.Shape
		keptStrides []int
		cellShape   tensor.Shape
		cellStrides []int
	)
	for i, dim := range shape {
		if reduced[i] {
			cellShape = append(cellShape, dim)
			cellStrides = append(cellStrides, strides[i])
		} else {
			outShape = append(outShape, dim)
			keptStrides = append(keptStrides, strides[i])
		}
	}

	out, err := tensor.New[R](outShape)
	if err != nil {
		return nil, err
	}
	dst := out.Data()
	src := a.Data()

	err = parallel.For(len(dst), func(o int) error {
		// Decompose the row-major output position into kept coordinates.
		base := a.Offset()
		rem := o
		for k := len(outShape) - 1; k >= 0; k-- {
			base += (rem % outShape[k]) * keptStrides[k]
			rem /= outShape[k]
		}

		v, err := r.fn(Cell[T]{data: src, base: base, shape: cellShape, strides: cellStrides})
		if err != nil {
			return fmt.Errorf("reduce: output cell %d: %w", o, err)
		}
		dst[o] = v
		return nil
	}, r.opts.parallel)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// reducedMask validates axes against ndim and marks the axes to collapse.
func reducedMask(ndim int, axes []int) ([]bool, error) {
	mask := make([]bool, ndim)
	for _, ax := range axes {
		norm, err := tensor.NormalizeAxis(ax, ndim)
		if err != nil {
			return nil, err
		}
		if mask[norm] {
			return nil, fmt.Errorf("%w: axis %d repeated in %v", tensor.ErrInvalidAxes, ax, axes)
		}
		mask[norm] = true
	}
	return mask, nil
}
