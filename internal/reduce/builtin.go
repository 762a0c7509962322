package reduce

import (
	"math"
	"slices"

	"github.com/born-ml/rebin/internal/tensor"
)

// Sum returns a Reducer computing the sum of every cell.
// Zero-size cells sum to 0.
func Sum[T tensor.DType](opts ...Option) Reducer[T, T] {
	return FromCell(func(c Cell[T]) (T, error) {
		var s T
		c.Each(func(v T) {
			s += v
		})
		return s, nil
	}, opts...)
}

// Prod returns a Reducer computing the product of every cell.
// Zero-size cells yield 1.
func Prod[T tensor.DType](opts ...Option) Reducer[T, T] {
	return FromCell(func(c Cell[T]) (T, error) {
		p := T(1)
		c.Each(func(v T) {
			p *= v
		})
		return p, nil
	}, opts...)
}

// Mean returns a Reducer computing the arithmetic mean of every cell,
// accumulated in float64. Zero-size cells yield NaN.
func Mean[T tensor.DType](opts ...Option) Reducer[T, float64] {
	return FromCell(func(c Cell[T]) (float64, error) {
		n := c.Len()
		if n == 0 {
			return math.NaN(), nil
		}
		var s float64
		c.Each(func(v T) {
			s += float64(v)
		})
		return s / float64(n), nil
	}, opts...)
}

// Min returns a Reducer computing the minimum of every cell.
// NaN propagates. Zero-size cells fail with ErrEmptyReduction.
func Min[T tensor.DType](opts ...Option) Reducer[T, T] {
	return FromCell(func(c Cell[T]) (T, error) {
		return extremum(c, func(v, cur T) bool { return v < cur })
	}, opts...)
}

// Max returns a Reducer computing the maximum of every cell.
// NaN propagates. Zero-size cells fail with ErrEmptyReduction.
func Max[T tensor.DType](opts ...Option) Reducer[T, T] {
	return FromCell(func(c Cell[T]) (T, error) {
		return extremum(c, func(v, cur T) bool { return v > cur })
	}, opts...)
}

// Median returns a Reducer computing the median of every cell; even-sized
// cells average the two middle elements. NaN propagates and zero-size cells
// yield NaN.
func Median[T tensor.DType](opts ...Option) Reducer[T, float64] {
	return FromCell(func(c Cell[T]) (float64, error) {
		vals := c.AppendTo(make([]T, 0, c.Len()))
		if len(vals) == 0 {
			return math.NaN(), nil
		}
		for _, v := range vals {
			if v != v { //nolint:staticcheck // NaN check, valid for every DType.
				return math.NaN(), nil
			}
		}

		slices.Sort(vals)
		mid := len(vals) / 2
		if len(vals)%2 == 1 {
			return float64(vals[mid]), nil
		}
		return (float64(vals[mid-1]) + float64(vals[mid])) / 2, nil
	}, opts...)
}

func extremum[T tensor.DType](c Cell[T], better func(v, cur T) bool) (T, error) {
	var (
		cur   T
		first = true
		isNaN bool
	)
	c.Each(func(v T) {
		switch {
		case isNaN:
		case v != v: //nolint:staticcheck // NaN check, valid for every DType.
			cur, isNaN = v, true
		case first || better(v, cur):
			cur = v
		}
		first = false
	})
	if first {
		return cur, ErrEmptyReduction
	}
	return cur, nil
}
