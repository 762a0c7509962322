package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{4, 6}, 24},
		{Shape{2, 3, 4}, 24},
		{Shape{3, 0, 2}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.NoError(t, Shape{0, 3}.Validate(), "zero extents are legal")
	require.NoError(t, Shape{}.Validate())

	err := Shape{2, -1}.Validate()
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.Contains(t, err.Error(), "dimension 1")

	tests := []struct {
		name  string
		shape Shape
	}{
		{"product wraps to zero", Shape{math.MaxInt/2 + 1, 2}},
		{"product wraps to positive", Shape{math.MaxInt/3 + 1, 3, 3}},
		{"single axis times two", Shape{1, math.MaxInt, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			require.ErrorIs(t, err, ErrInvalidShape)
			assert.Contains(t, err.Error(), "more than")
		})
	}

	require.NoError(t, Shape{math.MaxInt, 1}.Validate())
	require.NoError(t, Shape{math.MaxInt, 2, 0}.Validate(), "an empty shape never overflows")
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{7}, []int{1}},
		{Shape{4, 6}, []int{6, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.ComputeStrides(), "shape %v", tt.shape)
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assertEqualShape(t, Shape{2, 3}, s, "original")
	assert.False(t, s.Equal(c))
}

func TestNormalizeAxis(t *testing.T) {
	ax, err := NormalizeAxis(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ax)

	ax, err = NormalizeAxis(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, ax)

	_, err = NormalizeAxis(3, 3)
	require.ErrorIs(t, err, ErrInvalidAxes)

	_, err = NormalizeAxis(-4, 3)
	require.ErrorIs(t, err, ErrInvalidAxes)
}
