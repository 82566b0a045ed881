package tensor

import "fmt"

// ToChannels converts a complex array into a real array with one more
// trailing axis of size 2 holding [real, imaginary].
func ToChannels(x *Dense[complex128]) *Dense[float64] {
	shape := append(x.Shape(), 2)
	out := &Dense[float64]{shape: shape, data: make([]float64, 2*len(x.data))}
	interleave(out.data, x.data)
	return out
}

// ToComplex converts a real array whose trailing axis has size 2 into a
// complex array without that axis. Channel 0 becomes the real part and
// channel 1 the imaginary part.
func ToComplex(x *Dense[float64]) (*Dense[complex128], error) {
	if x.Rank() < 2 || x.Dim(-1) != 2 {
		return nil, fmt.Errorf("%w: want trailing axis 2, got shape %v", ErrChannels, x.shape)
	}

	out := &Dense[complex128]{
		shape: append([]int(nil), x.shape[:len(x.shape)-1]...),
		data:  make([]complex128, len(x.data)/2),
	}
	deinterleave(out.data, x.data)
	return out, nil
}

// ToChannelAxis converts a complex array with a trailing channel axis of
// size 1 (for example [batch, h, w, 1]) into a real array whose trailing
// axis has size 2.
func ToChannelAxis(x *Dense[complex128]) (*Dense[float64], error) {
	if x.Rank() < 2 || x.Dim(-1) != 1 {
		return nil, fmt.Errorf("%w: want trailing axis 1, got shape %v", ErrChannels, x.shape)
	}

	shape := x.Shape()
	shape[len(shape)-1] = 2
	out := &Dense[float64]{shape: shape, data: make([]float64, 2*len(x.data))}
	interleave(out.data, x.data)
	return out, nil
}

// ToComplexAxis converts a real array whose trailing axis has size 2 into a
// complex array that keeps a trailing channel axis of size 1.
func ToComplexAxis(x *Dense[float64]) (*Dense[complex128], error) {
	if x.Rank() < 2 || x.Dim(-1) != 2 {
		return nil, fmt.Errorf("%w: want trailing axis 2, got shape %v", ErrChannels, x.shape)
	}

	shape := x.Shape()
	shape[len(shape)-1] = 1
	out := &Dense[complex128]{shape: shape, data: make([]complex128, len(x.data)/2)}
	deinterleave(out.data, x.data)
	return out, nil
}

// Split writes the real and imaginary parts of src into re and im.
func Split(re, im []float64, src []complex128) {
	if len(re) < len(src) || len(im) < len(src) {
		panic("tensor: split destination too short")
	}
	for i, v := range src {
		re[i] = real(v)
		im[i] = imag(v)
	}
}

// Join combines re and im into dst.
func Join(dst []complex128, re, im []float64) {
	if len(re) < len(dst) || len(im) < len(dst) {
		panic("tensor: join source too short")
	}
	for i := range dst {
		dst[i] = complex(re[i], im[i])
	}
}

func interleave(dst []float64, src []complex128) {
	for i, v := range src {
		dst[2*i] = real(v)
		dst[2*i+1] = imag(v)
	}
}

func deinterleave(dst []complex128, src []float64) {
	for i := range dst {
		dst[i] = complex(src[2*i], src[2*i+1])
	}
}
