// Package wavelet implements orthogonal discrete wavelet transforms with
// periodic boundary extension.
//
// # Wavelets
//
// A [Wavelet] is an immutable orthonormal filter pair. The built-in
// Daubechies family is available by name through [Lookup]:
//
//	w, err := wavelet.Lookup("db2")
//
// Custom orthonormal scaling filters can be registered with [New]; the
// high-pass filter is derived by the quadrature mirror relation.
//
// # Single Level
//
// [DecomposeOnce] filters the rows of a plane and then its columns,
// producing four half-size sub-bands in a quad layout:
//
//	+----+----+
//	| cA | cH |
//	+----+----+
//	| cV | cD |
//	+----+----+
//
// [ReconstructOnce] inverts it exactly. Both treat the signal as periodic.
//
// # Multiple Levels
//
// [Decompose] applies the single-level step to the full array and then
// recursively to the approximation quadrant, so level 1 details occupy the
// three outer quadrants, level 2 details the three quadrants nested inside
// the level 1 approximation, and so on. [Reconstruct] walks the same nest
// from the innermost block outward:
//
//	coeffs, err := wavelet.Decompose(img, w, 3)
//	back, err := wavelet.Reconstruct(coeffs, w, 3)
//
// Each spatial dimension must be divisible by 2^levels. Because the filters
// are orthonormal, [Reconstruct] is both the inverse and the adjoint of
// [Decompose].
//
// [Decompose1D] and [Reconstruct1D] provide the same recursion for 1D
// signals with layout [a_L | d_L | ... | d_1].
package wavelet
