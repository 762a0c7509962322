// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/rebin/tensor"
)

// TestArrayAPI verifies the Array alias exposes the expected API.
func TestArrayAPI(t *testing.T) {
	a, err := tensor.Arange(tensor.Shape{2, 3}, int32(0))
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}

	if !a.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", a.Shape())
	}
	if got := a.At(1, 2); got != 5 {
		t.Errorf("At(1, 2) = %v, want 5", got)
	}

	v, err := a.Slice([]int{0, 1}, []int{2, 3})
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	want := []int32{1, 2, 4, 5}
	got := v.ToSlice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice().ToSlice() = %v, want %v", got, want)
		}
	}
}

// TestConstructors verifies the public constructors and error values.
func TestConstructors(t *testing.T) {
	z, err := tensor.New[float64](tensor.Shape{3})
	if err != nil || z.NumElements() != 3 {
		t.Fatalf("New() = %v, %v", z, err)
	}

	f, err := tensor.Full(tensor.Shape{2}, uint8(7))
	if err != nil || f.At(1) != 7 {
		t.Fatalf("Full() = %v, %v", f, err)
	}

	if _, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}); !errors.Is(err, tensor.ErrInvalidShape) {
		t.Errorf("FromSlice with wrong length: got %v, want ErrInvalidShape", err)
	}

	a, _ := tensor.Arange(tensor.Shape{2, 2}, 0.0)
	if _, err := a.AsStrided(tensor.Shape{3, 3}, []int{2, 1}); !errors.Is(err, tensor.ErrOutOfBounds) {
		t.Errorf("AsStrided past buffer: got %v, want ErrOutOfBounds", err)
	}
}
