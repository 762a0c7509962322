package tensor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsStrided(t *testing.T) {
	a := mustArange(t, Shape{4, 6}, 0)

	t.Run("tiles share the buffer", func(t *testing.T) {
		// (4, 6) as a 2x2 grid of 2x3 tiles.
		v, err := a.AsStrided(Shape{2, 2, 2, 3}, []int{12, 3, 6, 1})
		require.NoError(t, err)

		assert.Equal(t, 0, v.At(0, 0, 0, 0))
		assert.Equal(t, 8, v.At(0, 0, 1, 2))
		assert.Equal(t, 15, v.At(1, 1, 0, 0))
		assert.Equal(t, 23, v.At(1, 1, 1, 2))

		a.Set(-7, 3, 5)
		assert.Equal(t, -7, v.At(1, 1, 1, 2), "view must alias the source")
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := a.AsStrided(Shape{5, 6}, []int{6, 1})
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("span overflow", func(t *testing.T) {
		big := math.MaxInt/4 + 1
		tests := []struct {
			name    string
			shape   Shape
			strides []int
		}{
			{"positive stride", Shape{5}, []int{big}},
			{"negative stride", Shape{5}, []int{-big - 1}},
			{"minimum stride", Shape{2}, []int{math.MinInt}},
			{"positive spans sum", Shape{2, 2}, []int{math.MaxInt / 2, math.MaxInt/2 + 2}},
			{"negative spans sum", Shape{2, 2}, []int{math.MinInt / 2, math.MinInt/2 - 1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := a.AsStrided(tt.shape, tt.strides)
				require.ErrorIs(t, err, ErrOutOfBounds)
			})
		}
	})

	t.Run("stride count mismatch", func(t *testing.T) {
		_, err := a.AsStrided(Shape{2, 2}, []int{1})
		require.ErrorIs(t, err, ErrInvalidShape)
	})

	t.Run("empty view", func(t *testing.T) {
		v, err := a.AsStrided(Shape{0, 3}, []int{100, 1})
		require.NoError(t, err)
		assert.Equal(t, 0, v.NumElements())
		assert.Empty(t, v.ToSlice())
	})
}

func TestSlice(t *testing.T) {
	a := mustArange(t, Shape{4, 6}, 0)

	s, err := a.Slice([]int{2, 3}, []int{4, 6})
	require.NoError(t, err)

	assertEqualShape(t, Shape{2, 3}, s.Shape(), "Slice")
	assert.Equal(t, 15, s.Offset())
	if diff := cmp.Diff([]int{15, 16, 17, 21, 22, 23}, s.ToSlice()); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}

	_, err = a.Slice([]int{0, 0}, []int{5, 6})
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = a.Slice([]int{0}, []int{1})
	require.ErrorIs(t, err, ErrInvalidShape)

	empty, err := a.Slice([]int{4, 0}, []int{4, 6})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumElements())
}

func TestTranspose(t *testing.T) {
	a := mustArange(t, Shape{2, 3, 4}, 0)

	tr, err := a.Transpose(2, 0, 1)
	require.NoError(t, err)
	assertEqualShape(t, Shape{4, 2, 3}, tr.Shape(), "Transpose")
	assert.Equal(t, []int{1, 12, 4}, tr.Strides())
	assert.Equal(t, a.At(1, 2, 3), tr.At(3, 1, 2))

	_, err = a.Transpose(0, 0, 1)
	require.ErrorIs(t, err, ErrInvalidAxes)

	_, err = a.Transpose(0, 1)
	require.ErrorIs(t, err, ErrInvalidAxes)
}

func TestReshape(t *testing.T) {
	a := mustArange(t, Shape{4, 6}, 0)

	r, err := a.Reshape(Shape{2, 12})
	require.NoError(t, err)
	assert.Equal(t, 13, r.At(1, 1))

	_, err = a.Reshape(Shape{5, 5})
	require.ErrorIs(t, err, ErrInvalidShape)

	tr, err := a.Transpose()
	require.NoError(t, err)
	_, err = tr.Reshape(Shape{24})
	require.ErrorIs(t, err, ErrNotContiguous)
}
