package tensor

// Full creates an array filled with value.
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// Arange creates an array whose elements, in row-major order, are
// start, start+1, start+2, ...
//
// Example:
//
//	a, _ := tensor.Arange[int64](tensor.Shape{4, 6}, 0) // 0..23
func Arange[T DType](shape Shape, start T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = start + T(i)
	}
	return a, nil
}
