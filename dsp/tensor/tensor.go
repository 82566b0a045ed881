package tensor

import (
	"errors"
	"fmt"
)

// Errors returned by tensor constructors and conversions.
var (
	ErrShape    = errors.New("tensor: invalid shape")
	ErrChannels = errors.New("tensor: trailing channel axis mismatch")
	ErrLength   = errors.New("tensor: buffer length mismatch")
)

// Scalar is the element constraint for [Dense].
type Scalar interface {
	float64 | complex128
}

// Dense is an N-dimensional row-major array.
//
// The zero value is not usable; create instances with [New], [FromSlice]
// or [Zeros].
type Dense[T Scalar] struct {
	shape []int
	data  []T
}

// New allocates a zero-filled array with the given shape.
func New[T Scalar](shape ...int) (*Dense[T], error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}

	return &Dense[T]{
		shape: append([]int(nil), shape...),
		data:  make([]T, n),
	}, nil
}

// Zeros is like [New] but panics on an invalid shape. It is intended for
// shapes derived from already validated arrays.
func Zeros[T Scalar](shape ...int) *Dense[T] {
	d, err := New[T](shape...)
	if err != nil {
		panic(err)
	}
	return d
}

// FromSlice copies data into a new array with the given shape.
func FromSlice[T Scalar](data []T, shape ...int) (*Dense[T], error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrLength, shape, n, len(data))
	}

	d := &Dense[T]{
		shape: append([]int(nil), shape...),
		data:  make([]T, n),
	}
	copy(d.data, data)
	return d, nil
}

// ZerosLike returns a zero-filled array with the shape of d.
func ZerosLike[T, U Scalar](d *Dense[U]) *Dense[T] {
	return &Dense[T]{
		shape: append([]int(nil), d.shape...),
		data:  make([]T, len(d.data)),
	}
}

// Shape returns a copy of the array shape.
func (d *Dense[T]) Shape() []int {
	return append([]int(nil), d.shape...)
}

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int {
	return len(d.shape)
}

// Dim returns the extent of axis i. Negative i counts from the last axis.
func (d *Dense[T]) Dim(i int) int {
	if i < 0 {
		i += len(d.shape)
	}
	return d.shape[i]
}

// Len returns the total number of elements.
func (d *Dense[T]) Len() int {
	return len(d.data)
}

// Data returns the underlying row-major buffer. Writes through the returned
// slice modify the array.
func (d *Dense[T]) Data() []T {
	return d.data
}

// Clone returns a deep copy of d.
func (d *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{
		shape: append([]int(nil), d.shape...),
		data:  append([]T(nil), d.data...),
	}
}

// Reshape returns a view of d with a new shape of equal volume. The view
// shares the underlying buffer.
func (d *Dense[T]) Reshape(shape ...int) (*Dense[T], error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if n != len(d.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v to %v", ErrShape, d.shape, shape)
	}

	return &Dense[T]{shape: append([]int(nil), shape...), data: d.data}, nil
}

// At returns the element at the given index. It panics if the index is out
// of range.
func (d *Dense[T]) At(idx ...int) T {
	return d.data[d.offset(idx)]
}

// Set stores v at the given index. It panics if the index is out of range.
func (d *Dense[T]) Set(v T, idx ...int) {
	d.data[d.offset(idx)] = v
}

// SameShape reports whether a and b have identical shapes.
func SameShape[T, U Scalar](a *Dense[T], b *Dense[U]) bool {
	return equalShape(a.shape, b.shape)
}

func (d *Dense[T]) offset(idx []int) int {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("tensor: index rank %d, array rank %d", len(idx), len(d.shape)))
	}

	off := 0
	for i, v := range idx {
		if v < 0 || v >= d.shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, d.shape))
		}
		off = off*d.shape[i] + v
	}
	return off
}

func volume(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: empty shape", ErrShape)
	}

	n := 1
	for _, s := range shape {
		if s <= 0 {
			return 0, fmt.Errorf("%w: non-positive extent in %v", ErrShape, shape)
		}
		n *= s
	}
	return n, nil
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
