package fourier

import (
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// planes holds pooled real/imaginary planes for the vector kernels.
type planes struct {
	data []float64
}

var planePool = sync.Pool{
	New: func() any { return &planes{} },
}

// split returns pooled re/im planes filled from in. The caller must hand
// p back to planePool.
func split(in []complex128) (re, im []float64, p *planes) {
	p = planePool.Get().(*planes)
	n := len(in)
	if cap(p.data) < 2*n {
		p.data = make([]float64, 2*n)
	}
	re, im = p.data[:n], p.data[n:2*n]
	tensor.Split(re, im, in)
	return re, im, p
}

// Magnitude returns |X[k]| for every coefficient of a spectrum of any
// dimensionality.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im, p := split(in)
	vecmath.Magnitude(out, re, im)
	planePool.Put(p)
	return out
}

// Power returns |X[k]|² for every coefficient.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im, p := split(in)
	vecmath.Power(out, re, im)
	planePool.Put(p)
	return out
}

// Energy returns Σ|X[k]|². For a unitary transform it equals the energy of
// the signal.
func Energy(in []complex128) float64 {
	return floats.Sum(Power(in))
}
