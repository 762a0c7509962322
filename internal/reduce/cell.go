package reduce

// Cell is a read-only window onto the elements that collapse into one
// output value. It addresses the input buffer directly.
type Cell[T any] struct {
	data    []T
	base    int
	shape   []int
	strides []int
}

// Len returns the number of elements in the cell.
func (c Cell[T]) Len() int {
	n := 1
	for _, dim := range c.shape {
		n *= dim
	}
	return n
}

// Each calls fn for every element of the cell in row-major order.
func (c Cell[T]) Each(fn func(v T)) {
	if c.Len() == 0 {
		return
	}
	c.walk(0, c.base, fn)
}

// AppendTo appends the cell's elements to dst in row-major order.
func (c Cell[T]) AppendTo(dst []T) []T {
	c.Each(func(v T) {
		dst = append(dst, v)
	})
	return dst
}

func (c Cell[T]) walk(axis, pos int, fn func(v T)) {
	if axis == len(c.shape) {
		fn(c.data[pos])
		return
	}
	stride := c.strides[axis]
	if axis == len(c.shape)-1 {
		for i := 0; i < c.shape[axis]; i++ {
			fn(c.data[pos+i*stride])
		}
		return
	}
	for i := 0; i < c.shape[axis]; i++ {
		c.walk(axis+1, pos+i*stride, fn)
	}
}
