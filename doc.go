// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rebin aggregates N-dimensional arrays into rectangular bins, in
// the manner of IDL's REBIN when shrinking.
//
// # Overview
//
// The returned array out satisfies
//
//	out[i0, i1, ...] = reduce(a[b0*i0 : b0*(i0+1), b1*i1 : b1*(i1+1), ...])
//
// Its shape is (n0/b0, n1/b1, ...) with integer division: when an extent is
// not a multiple of its bin size the trailing elements of that axis are
// discarded.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/rebin"
//	    "github.com/born-ml/rebin/reduce"
//	    "github.com/born-ml/rebin/tensor"
//	)
//
//	func main() {
//	    a, _ := tensor.Arange(tensor.Shape{4, 6}, int64(0))
//
//	    // Mean over 2x2 tiles (default reduction).
//	    mean, _ := rebin.Rebin(a, rebin.Uniform(2))
//
//	    // Sum over 2x3 tiles.
//	    sum, _ := rebin.RebinWith(a, rebin.PerAxis(2, 3), reduce.Sum[int64]())
//	}
//
// # Bin Sizes
//
// Uniform applies one size to every axis; PerAxis takes one size per axis
// and must match the array's dimensionality (ErrShapeMismatch otherwise).
// Sizes must be positive integers. Floats equal to an integer (2.0) are
// accepted, other values (1.5) fail with ErrInvalidBinSize.
//
// # Memory
//
// Tiles are never copied. The input is re-viewed through its strides as a
// 2d-dimensional array (bin index axes, then within-bin axes) and the
// reducer collapses the within-bin axes in one pass. The input is only read
// and the output is freshly allocated.
//
// # Parallelism
//
// Reducers run sequentially by default. Pass reduce.WithParallel to split
// output cells across goroutines; every cell is still reduced in the same
// order, so results are bit-identical.
package rebin
