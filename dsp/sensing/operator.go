package sensing

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/cwbudde/algo-sensing/dsp/fourier"
	"github.com/cwbudde/algo-sensing/dsp/tensor"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
)

// FourierWavelet is the 2D measurement operator A = P F W* over complex
// arrays of shape [rows, cols]. It is safe for concurrent use.
type FourierWavelet struct {
	wavelet wavelet.Wavelet
	levels  int
	mask    *Mask
	scale   float64
	rows    int
	cols    int
	pool    sync.Pool
}

type workspace struct {
	plan   *fourier.Plan2D
	re, im []float64
	buf    []complex128
}

// NewFourierWavelet creates the operator for the given wavelet, number of
// decomposition levels and sampling mask. The mask defines the operator
// shape; both sides must be powers of two divisible by 2^levels.
func NewFourierWavelet(w wavelet.Wavelet, levels int, mask *Mask, opts ...Option) (*FourierWavelet, error) {
	if mask == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrMask)
	}
	if mask.Rows() < 2 {
		return nil, fmt.Errorf("%w: 2D operator needs a 2D mask, got %dx%d", ErrMask, mask.Rows(), mask.Cols())
	}
	if err := wavelet.CheckLevels(mask.Rows(), mask.Cols(), levels); err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	cfg, err := buildConfig(mask.Len(), opts)
	if err != nil {
		return nil, err
	}

	plan, err := fourier.NewPlan2D(mask.Rows(), mask.Cols())
	if err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}

	op := &FourierWavelet{
		wavelet: w,
		levels:  levels,
		mask:    mask,
		scale:   cfg.scale,
		rows:    mask.Rows(),
		cols:    mask.Cols(),
	}
	op.pool.New = func() any {
		p, err := fourier.NewPlan2D(op.rows, op.cols)
		if err != nil {
			panic(err)
		}
		return op.newWorkspace(p)
	}
	op.pool.Put(op.newWorkspace(plan))
	return op, nil
}

func (op *FourierWavelet) newWorkspace(p *fourier.Plan2D) *workspace {
	n := op.rows * op.cols
	return &workspace{
		plan: p,
		re:   make([]float64, n),
		im:   make([]float64, n),
		buf:  make([]complex128, n),
	}
}

// Shape returns [rows, cols].
func (op *FourierWavelet) Shape() []int { return []int{op.rows, op.cols} }

// Wavelet returns the wavelet family.
func (op *FourierWavelet) Wavelet() wavelet.Wavelet { return op.wavelet }

// Levels returns the number of decomposition levels.
func (op *FourierWavelet) Levels() int { return op.levels }

// Mask returns the sampling mask.
func (op *FourierWavelet) Mask() *Mask { return op.mask }

// Scale returns the Fourier normalisation constant.
func (op *FourierWavelet) Scale() float64 { return op.scale }

// Forward computes P F W* x for wavelet coefficients x.
func (op *FourierWavelet) Forward(x *tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	if err := checkShape(x, op.Shape()); err != nil {
		return nil, err
	}

	ws := op.pool.Get().(*workspace)
	defer op.pool.Put(ws)

	out := tensor.ZerosLike[complex128](x)
	y := out.Data()

	tensor.Split(ws.re, ws.im, x.Data())
	if err := op.synthesize(ws.re, ws.im); err != nil {
		return nil, err
	}
	tensor.Join(y, ws.re, ws.im)

	if err := ws.plan.Forward(y, y); err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	cmplxs.Scale(complex(1/op.scale, 0), y)
	op.mask.project(y)
	return out, nil
}

// Adjoint computes W F* P y for Fourier measurements y.
func (op *FourierWavelet) Adjoint(y *tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	if err := checkShape(y, op.Shape()); err != nil {
		return nil, err
	}

	ws := op.pool.Get().(*workspace)
	defer op.pool.Put(ws)

	copy(ws.buf, y.Data())
	op.mask.project(ws.buf)
	if err := ws.plan.Inverse(ws.buf, ws.buf); err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	cmplxs.Scale(complex(op.scale, 0), ws.buf)

	tensor.Split(ws.re, ws.im, ws.buf)
	if err := op.analyze(ws.re, ws.im); err != nil {
		return nil, err
	}

	out := tensor.ZerosLike[complex128](y)
	tensor.Join(out.Data(), ws.re, ws.im)
	return out, nil
}

// Normal computes A* A x.
func (op *FourierWavelet) Normal(x *tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	y, err := op.Forward(x)
	if err != nil {
		return nil, err
	}
	return op.Adjoint(y)
}

// synthesize applies W* to the real and imaginary planes in place.
func (op *FourierWavelet) synthesize(re, im []float64) error {
	for _, part := range [][]float64{re, im} {
		p := tensor.PlaneFrom(part, op.rows, op.cols)
		if err := wavelet.ReconstructInPlace(p, op.wavelet, op.levels); err != nil {
			return fmt.Errorf("sensing: %w", err)
		}
	}
	return nil
}

// analyze applies W to the real and imaginary planes in place.
func (op *FourierWavelet) analyze(re, im []float64) error {
	for _, part := range [][]float64{re, im} {
		p := tensor.PlaneFrom(part, op.rows, op.cols)
		if err := wavelet.DecomposeInPlace(p, op.wavelet, op.levels); err != nil {
			return fmt.Errorf("sensing: %w", err)
		}
	}
	return nil
}
