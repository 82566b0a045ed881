package sensing

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/cwbudde/algo-sensing/dsp/fourier"
	"github.com/cwbudde/algo-sensing/dsp/tensor"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
)

// FourierWavelet1D is the 1D measurement operator over complex vectors of
// length n. It is safe for concurrent use.
type FourierWavelet1D struct {
	wavelet wavelet.Wavelet
	levels  int
	mask    *Mask
	scale   float64
	n       int
	plans   sync.Pool
}

// NewFourierWavelet1D creates the 1D operator. The mask must be 1D (see
// [NewMask1D]) with a power-of-two length divisible by 2^levels.
func NewFourierWavelet1D(w wavelet.Wavelet, levels int, mask *Mask, opts ...Option) (*FourierWavelet1D, error) {
	if mask == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrMask)
	}
	if mask.Rows() != 1 {
		return nil, fmt.Errorf("%w: 1D operator needs a 1D mask, got %dx%d", ErrMask, mask.Rows(), mask.Cols())
	}
	n := mask.Cols()
	if err := wavelet.CheckLevels1D(n, levels); err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	cfg, err := buildConfig(n, opts)
	if err != nil {
		return nil, err
	}
	plan, err := fourier.NewPlan(n)
	if err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}

	op := &FourierWavelet1D{wavelet: w, levels: levels, mask: mask, scale: cfg.scale, n: n}
	op.plans.New = func() any {
		p, err := fourier.NewPlan(op.n)
		if err != nil {
			panic(err)
		}
		return p
	}
	op.plans.Put(plan)
	return op, nil
}

// Shape returns [n].
func (op *FourierWavelet1D) Shape() []int { return []int{op.n} }

// Levels returns the number of decomposition levels.
func (op *FourierWavelet1D) Levels() int { return op.levels }

// Mask returns the sampling mask.
func (op *FourierWavelet1D) Mask() *Mask { return op.mask }

// Forward computes P F W* x.
func (op *FourierWavelet1D) Forward(x *tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	if err := checkShape(x, op.Shape()); err != nil {
		return nil, err
	}

	re := make([]float64, op.n)
	im := make([]float64, op.n)
	tensor.Split(re, im, x.Data())
	re, im, err := op.apply1D(re, im, wavelet.Reconstruct1D)
	if err != nil {
		return nil, err
	}

	out := tensor.ZerosLike[complex128](x)
	y := out.Data()
	tensor.Join(y, re, im)

	plan := op.plans.Get().(*fourier.Plan)
	defer op.plans.Put(plan)
	if err := plan.Forward(y, y); err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	cmplxs.Scale(complex(1/op.scale, 0), y)
	op.mask.project(y)
	return out, nil
}

// Adjoint computes W F* P y.
func (op *FourierWavelet1D) Adjoint(y *tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	if err := checkShape(y, op.Shape()); err != nil {
		return nil, err
	}

	buf := append([]complex128(nil), y.Data()...)
	op.mask.project(buf)

	plan := op.plans.Get().(*fourier.Plan)
	err := plan.Inverse(buf, buf)
	op.plans.Put(plan)
	if err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	cmplxs.Scale(complex(op.scale, 0), buf)

	re := make([]float64, op.n)
	im := make([]float64, op.n)
	tensor.Split(re, im, buf)
	re, im, err = op.apply1D(re, im, wavelet.Decompose1D)
	if err != nil {
		return nil, err
	}

	out := tensor.ZerosLike[complex128](y)
	tensor.Join(out.Data(), re, im)
	return out, nil
}

func (op *FourierWavelet1D) apply1D(re, im []float64,
	fn func([]float64, wavelet.Wavelet, int) ([]float64, error),
) ([]float64, []float64, error) {
	re, err := fn(re, op.wavelet, op.levels)
	if err != nil {
		return nil, nil, fmt.Errorf("sensing: %w", err)
	}
	im, err = fn(im, op.wavelet, op.levels)
	if err != nil {
		return nil, nil, fmt.Errorf("sensing: %w", err)
	}
	return re, im, nil
}
