// Package sensing implements the Fourier-wavelet measurement operator used
// in compressive-sensing reconstruction, together with its exact adjoint.
//
// The forward operator maps wavelet coefficients x to undersampled Fourier
// measurements:
//
//	A x = P F W* x
//
// where W* is multi-level wavelet synthesis, F the unitary 2D DFT (scaled by
// 1/s with s = sqrt(N)) and P the projection that zeroes every coefficient
// outside the sampling [Mask]. The adjoint applies the adjoint of each stage
// in reverse order:
//
//	A* y = W F* P y
//
// Each stage has a closed-form adjoint (orthogonal wavelet, unitary DFT,
// self-adjoint projection), so A* is exact and <Ax, y> = <x, A*y> holds to
// floating-point precision. With a full mask A is unitary and A* its
// inverse.
//
// # Operators
//
//   - [FourierWavelet]: 2D complex arrays of shape [h, w]
//   - [FourierWavelet1D]: 1D complex arrays of shape [n]
//   - [ChannelOperator]: real two-channel tensors [h, w, 2] or [b, h, w, 2]
//     for back-ends without complex support
//
// Operators hold only immutable configuration and draw per-call workspaces
// from a pool, so one operator may be shared by concurrent goroutines.
//
// # Usage
//
//	mask, err := sensing.NewMask(bits, 256, 256)
//	op, err := sensing.NewFourierWavelet(wavelet.DB4, 4, mask)
//	y, err := op.Forward(coeffs)
//	x, err := op.Adjoint(y)
package sensing
