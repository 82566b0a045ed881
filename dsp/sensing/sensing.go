package sensing

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// Errors returned by operator constructors and applications.
var (
	ErrShape = errors.New("sensing: shape mismatch")
	ErrMask  = errors.New("sensing: invalid mask")
	ErrScale = errors.New("sensing: normalisation must be positive and finite")
)

// Pair is a linear operator together with its adjoint.
type Pair interface {
	// Shape is the shape of both the coefficient and measurement domains.
	Shape() []int
	Forward(x *tensor.Dense[complex128]) (*tensor.Dense[complex128], error)
	Adjoint(y *tensor.Dense[complex128]) (*tensor.Dense[complex128], error)
}

// Option configures operator construction.
type Option func(*config)

type config struct {
	scale float64
}

// WithScale overrides the Fourier normalisation constant s. The forward
// transform is scaled by 1/s and the inverse by s; the default sqrt(N)
// makes the transform unitary.
func WithScale(s float64) Option {
	return func(c *config) {
		c.scale = s
	}
}

func buildConfig(n int, opts []Option) (config, error) {
	cfg := config{scale: math.Sqrt(float64(n))}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scale <= 0 || math.IsNaN(cfg.scale) || math.IsInf(cfg.scale, 0) {
		return config{}, fmt.Errorf("%w: %v", ErrScale, cfg.scale)
	}
	return cfg, nil
}

func checkShape(x interface{ Shape() []int }, want []int) error {
	got := x.Shape()
	if len(got) != len(want) {
		return fmt.Errorf("%w: got %v, want %v", ErrShape, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("%w: got %v, want %v", ErrShape, got, want)
		}
	}
	return nil
}
