// Package tensor provides the dense N-dimensional arrays shared by the
// wavelet, Fourier and sensing packages.
//
// A [Dense] value holds a shape and a row-major buffer of float64 or
// complex128 elements. Typical shapes are:
//
//   - [h, w] for a single 2D image or coefficient array
//   - [h, w, c] for a multi-channel image (c = 2 for real/imaginary channels)
//   - [b, h, w, c] for a batch of multi-channel images
//
// A [Plane] is a strided 2D view into a float64 buffer. The wavelet engine
// addresses its nested sub-band quadrants through planes, so every level
// of a decomposition lives in one contiguous buffer.
//
// # Channel Bridge
//
// Compute back-ends without native complex arithmetic carry complex data as
// two real channels. [ToChannels] and [ToComplex] convert between the two
// representations exactly:
//
//	ch := tensor.ToChannels(x)       // [h, w] complex -> [h, w, 2] real
//	z, err := tensor.ToComplex(ch)   // [h, w, 2] real -> [h, w] complex
//
// [ToChannelAxis] and [ToComplexAxis] implement the batch-tensor convention
// where the complex form keeps a trailing channel axis of size 1.
package tensor
