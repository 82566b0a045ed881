package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// Inner returns the inner product <a, b> = sum(conj(a[i]) * b[i]).
func Inner(a, b *Dense[complex128]) (complex128, error) {
	if !SameShape(a, b) {
		return 0, fmt.Errorf("%w: inner product of %v and %v", ErrShape, a.shape, b.shape)
	}
	return cmplxs.Dot(a.data, b.data), nil
}

// InnerReal returns the inner product of two real arrays.
func InnerReal(a, b *Dense[float64]) (float64, error) {
	if !SameShape(a, b) {
		return 0, fmt.Errorf("%w: inner product of %v and %v", ErrShape, a.shape, b.shape)
	}
	return floats.Dot(a.data, b.data), nil
}

// Norm returns the Euclidean norm of x.
func Norm(x *Dense[complex128]) float64 {
	return cmplxs.Norm(x.data, 2)
}

// Distance returns the Euclidean norm of a - b.
func Distance(a, b *Dense[complex128]) (float64, error) {
	if !SameShape(a, b) {
		return 0, fmt.Errorf("%w: distance between %v and %v", ErrShape, a.shape, b.shape)
	}
	return cmplxs.Distance(a.data, b.data, 2), nil
}

// Real returns the real part of x as a new array.
func Real(x *Dense[complex128]) *Dense[float64] {
	out := ZerosLike[float64](x)
	for i, v := range x.data {
		out.data[i] = real(v)
	}
	return out
}

// Complex lifts a real array into a complex array with zero imaginary part.
func Complex(x *Dense[float64]) *Dense[complex128] {
	out := ZerosLike[complex128](x)
	for i, v := range x.data {
		out.data[i] = complex(v, 0)
	}
	return out
}
