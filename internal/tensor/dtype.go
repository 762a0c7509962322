// Package tensor provides the strided N-dimensional array used by rebin.
package tensor

// DType is a constraint for supported element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the subset of DType with floating-point semantics.
type Float interface {
	~float32 | ~float64
}
