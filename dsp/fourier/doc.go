// Package fourier provides 1D and 2D discrete Fourier transforms for the
// sensing operators, built on algo-fft plans.
//
// Forward transforms are unscaled. Inverse transforms are normalised by 1/N,
// so Inverse(Forward(x)) == x. Callers that need a unitary transform scale
// the forward result by 1/sqrt(N) and the inverse result by sqrt(N).
//
//	p, err := fourier.NewPlan2D(256, 256)
//	err = p.Forward(spec, img)
//	err = p.Inverse(img, spec)
//
// Plans keep internal scratch and are not safe for concurrent use; create
// one plan per goroutine or draw them from a pool.
//
// The package also offers spectrum-domain helpers: [Magnitude] and [Power]
// over complex bins, and [Shift2D] / [InverseShift2D] to move the zero
// frequency between the array origin and its centre.
package fourier
