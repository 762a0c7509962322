package rebin

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/rebin/internal/tensor"
)

const (
	reasonNotInteger  = "not an integer"
	reasonNotPositive = "must be positive"
	reasonTooLarge    = "too large"
)

// Float bounds of int: values in [minIntFloat, maxIntFloat) convert exactly.
const (
	minIntFloat = float64(math.MinInt)
	maxIntFloat = -float64(math.MinInt)
)

// Bins specifies the tile size along every axis: either one size shared by
// all axes (Uniform) or one size per axis (PerAxis).
//
// Sizes may be given as any integer or float type. Floats that are
// numerically integral (2.0) are accepted and converted; anything else
// (1.5, NaN, Inf, or a value outside the int range) is rejected by Resolve
// with InvalidBinSizeError.
type Bins struct {
	sizes   []binSize
	uniform bool
}

type binSize struct {
	size   int
	reason string // empty when size holds v exactly
	repr   string
}

func newBinSize[N tensor.DType](v N) binSize {
	s := binSize{repr: fmt.Sprint(v)}
	isFloat := N(1)/N(2) != 0
	if isFloat {
		f := float64(v)
		switch {
		case math.IsNaN(f):
			s.reason = reasonNotInteger
			return s
		case f >= maxIntFloat:
			s.reason = reasonTooLarge
			return s
		case f < minIntFloat:
			s.reason = reasonNotPositive
			return s
		}
	}

	i := int(v)
	switch {
	case N(i) != v && isFloat:
		s.reason = reasonNotInteger
	case N(i) != v || (i < 0) != (v < 0):
		if v < 0 {
			s.reason = reasonNotPositive
		} else {
			s.reason = reasonTooLarge
		}
	}
	s.size = i
	return s
}

// Uniform returns a bin specification applying size n to every axis.
func Uniform[N tensor.DType](n N) Bins {
	return Bins{sizes: []binSize{newBinSize(n)}, uniform: true}
}

// PerAxis returns a bin specification with one size per axis, in order.
func PerAxis[N tensor.DType](sizes ...N) Bins {
	b := Bins{sizes: make([]binSize, len(sizes))}
	for i, s := range sizes {
		b.sizes[i] = newBinSize(s)
	}
	return b
}

// IsUniform reports whether b was built by Uniform.
func (b Bins) IsUniform() bool {
	return b.uniform
}

// Resolve validates b against an array of ndim dimensions and returns one
// positive bin size per axis. A uniform size is broadcast to every axis.
func (b Bins) Resolve(ndim int) ([]int, error) {
	if b.uniform {
		if err := b.sizes[0].check(-1); err != nil {
			return nil, err
		}
		out := make([]int, ndim)
		for i := range out {
			out[i] = b.sizes[0].size
		}
		return out, nil
	}

	if len(b.sizes) != ndim {
		return nil, &ShapeMismatchError{Expected: ndim, Actual: len(b.sizes)}
	}
	out := make([]int, ndim)
	for i, s := range b.sizes {
		if err := s.check(i); err != nil {
			return nil, err
		}
		out[i] = s.size
	}
	return out, nil
}

// String returns the sizes as given, e.g. "2" or "(2, 3)".
func (b Bins) String() string {
	if b.uniform {
		return b.sizes[0].repr
	}
	parts := make([]string, len(b.sizes))
	for i, s := range b.sizes {
		parts[i] = s.repr
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (s binSize) check(axis int) error {
	switch {
	case s.reason != "":
		return &InvalidBinSizeError{Axis: axis, Value: s.repr, Reason: s.reason}
	case s.size <= 0:
		return &InvalidBinSizeError{Axis: axis, Value: s.repr, Reason: reasonNotPositive}
	}
	return nil
}
