package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-sensing/dsp/sensing"
	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// MatrixOperator returns x -> M x for a real square matrix. The real and
// imaginary parts of x are multiplied separately.
func MatrixOperator(m mat.Matrix) Operator {
	r, c := m.Dims()
	return func(x []complex128) ([]complex128, error) {
		if r != c || len(x) != c {
			return nil, fmt.Errorf("%w: %dx%d matrix, vector %d", ErrDimension, r, c, len(x))
		}
		re := mat.NewVecDense(c, nil)
		im := mat.NewVecDense(c, nil)
		for i, v := range x {
			re.SetVec(i, real(v))
			im.SetVec(i, imag(v))
		}

		var mre, mim mat.VecDense
		mre.MulVec(m, re)
		mim.MulVec(m, im)

		out := make([]complex128, r)
		for i := range out {
			out[i] = complex(mre.AtVec(i), mim.AtVec(i))
		}
		return out, nil
	}
}

// FromPair returns the normal operator x -> A*(A x) of a sensing pair over
// flat vectors of length prod(p.Shape()).
func FromPair(p sensing.Pair) Operator {
	shape := p.Shape()
	return func(x []complex128) ([]complex128, error) {
		in, err := tensor.FromSlice(x, shape...)
		if err != nil {
			return nil, fmt.Errorf("eigen: %w", err)
		}
		y, err := p.Forward(in)
		if err != nil {
			return nil, err
		}
		z, err := p.Adjoint(y)
		if err != nil {
			return nil, err
		}
		return z.Data(), nil
	}
}

// EstimatePair estimates the dominant eigenvalue of A*A for a sensing pair.
// The Rayleigh quotient of the normal operator is always computed.
func EstimatePair(p sensing.Pair, opts ...Option) (Result, error) {
	n := 1
	for _, s := range p.Shape() {
		n *= s
	}
	normal := FromPair(p)
	opts = append(opts[:len(opts):len(opts)], WithRayleigh(normal))
	return Estimate(normal, n, opts...)
}

// Rayleigh returns the function x -> xᴴ M x / xᴴ x for a real square matrix.
func Rayleigh(m mat.Matrix) func(x []complex128) (complex128, error) {
	op := MatrixOperator(m)
	return func(x []complex128) (complex128, error) {
		return Quotient(op, x)
	}
}
