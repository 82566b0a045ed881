package sensing

import (
	"fmt"

	"github.com/cwbudde/algo-sensing/dsp/fourier"
	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// Mask is an immutable boolean sampling pattern over a rows x cols grid in
// unshifted DFT order (zero frequency at index 0). True entries are kept.
type Mask struct {
	rows, cols int
	bits       []bool
	weights    []float64
	count      int
}

// NewMask copies a row-major boolean grid into a mask.
func NewMask(bits []bool, rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMask, rows, cols)
	}
	if len(bits) != rows*cols {
		return nil, fmt.Errorf("%w: %d entries for %dx%d grid", ErrMask, len(bits), rows, cols)
	}

	m := &Mask{
		rows:    rows,
		cols:    cols,
		bits:    append([]bool(nil), bits...),
		weights: make([]float64, len(bits)),
	}
	for i, b := range bits {
		if b {
			m.weights[i] = 1
			m.count++
		}
	}
	return m, nil
}

// NewCenteredMask builds a mask from a pattern whose zero frequency sits at
// the grid centre, as produced by the pattern generators, and reorders it
// into unshifted DFT order.
func NewCenteredMask(bits []bool, rows, cols int) (*Mask, error) {
	if len(bits) != rows*cols || rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d entries for %dx%d grid", ErrMask, len(bits), rows, cols)
	}
	shifted := make([]bool, len(bits))
	fourier.InverseShift2D(shifted, bits, rows, cols)
	return NewMask(shifted, rows, cols)
}

// NewMask1D builds a mask for 1D operators.
func NewMask1D(bits []bool) (*Mask, error) {
	return NewMask(bits, 1, len(bits))
}

// FullMask returns a mask that keeps every coefficient.
func FullMask(rows, cols int) *Mask {
	bits := make([]bool, rows*cols)
	for i := range bits {
		bits[i] = true
	}
	m, err := NewMask(bits, rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the grid height (1 for 1D masks).
func (m *Mask) Rows() int { return m.rows }

// Cols returns the grid width.
func (m *Mask) Cols() int { return m.cols }

// Len returns rows*cols.
func (m *Mask) Len() int { return len(m.bits) }

// Count returns the number of kept coefficients.
func (m *Mask) Count() int { return m.count }

// Rate returns the sampling rate Count/Len.
func (m *Mask) Rate() float64 { return float64(m.count) / float64(len(m.bits)) }

// At reports whether coefficient (r, c) is kept.
func (m *Mask) At(r, c int) bool { return m.bits[r*m.cols+c] }

// Bits returns a copy of the row-major pattern.
func (m *Mask) Bits() []bool { return append([]bool(nil), m.bits...) }

// Weights returns the pattern as 0/1 weights.
func (m *Mask) Weights() []float64 { return append([]float64(nil), m.weights...) }

// Project returns a copy of x with every coefficient outside the mask set
// to zero. Projection is idempotent and self-adjoint. x must have shape
// [rows, cols], or [cols] for a 1D mask.
func (m *Mask) Project(x *tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	if err := checkShape(x, m.shape()); err != nil {
		return nil, err
	}
	out := x.Clone()
	m.project(out.Data())
	return out, nil
}

func (m *Mask) project(data []complex128) {
	for i, keep := range m.bits {
		if !keep {
			data[i] = 0
		}
	}
}

func (m *Mask) shape() []int {
	if m.rows == 1 {
		return []int{m.cols}
	}
	return []int{m.rows, m.cols}
}

// channelWeights returns the weights repeated once per real/imaginary
// channel, matching the [h, w, 2] layout.
func (m *Mask) channelWeights() []float64 {
	out := make([]float64, 2*len(m.weights))
	for i, w := range m.weights {
		out[2*i] = w
		out[2*i+1] = w
	}
	return out
}
