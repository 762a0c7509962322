// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the strided N-dimensional array consumed and
// produced by rebin.
//
// # Overview
//
// An Array is a flat buffer plus a shape, per-axis strides and an offset.
// Element (i0, ..., i_{d-1}) lives at
//
//	offset + i0*strides[0] + ... + i_{d-1}*strides[d-1]
//
// so slicing, transposing and re-striding only rewrite that metadata.
//
// # Basic Usage
//
//	import "github.com/born-ml/rebin/tensor"
//
//	func main() {
//	    a, _ := tensor.Arange(tensor.Shape{4, 6}, 0.0)
//
//	    // Views share a's buffer.
//	    t, _ := a.Transpose()
//	    tiles, _ := a.AsStrided(tensor.Shape{2, 2, 2, 3}, []int{12, 3, 6, 1})
//
//	    // Copies.
//	    flat := t.ToSlice()
//	    c := tiles.Clone()
//	}
//
// # Supported Data Types
//
// The DType constraint covers every signed and unsigned integer kind plus
// float32 and float64.
//
// # Safety
//
// AsStrided refuses layouts that could address memory outside the backing
// buffer. At and Set panic on out-of-range indices; everything else reports
// problems through returned errors.
package tensor
