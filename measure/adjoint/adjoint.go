// Package adjoint checks that a linear operator pair is consistent: the
// dot test verifies <A x, y> = <x, A* y>, and the inverse residual measures
// how far A* A is from the identity.
package adjoint

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-sensing/dsp/sensing"
	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// ErrTrials is returned when a randomised check is asked for no trials.
var ErrTrials = errors.New("adjoint: trial count must be positive")

// tiny guards the relative residual against a vanishing reference.
const tiny = 1e-300

// Report is the outcome of one dot test.
type Report struct {
	// Forward is <A x, y>.
	Forward complex128
	// Adjoint is <x, A* y>.
	Adjoint complex128
	// Residual is |Forward-Adjoint| / max(|Forward|, tiny).
	Residual float64
}

// DotTest evaluates <A x, y> and <x, A* y> for the given pair.
func DotTest(p sensing.Pair, x, y *tensor.Dense[complex128]) (Report, error) {
	ax, err := p.Forward(x)
	if err != nil {
		return Report{}, fmt.Errorf("adjoint: forward: %w", err)
	}
	aty, err := p.Adjoint(y)
	if err != nil {
		return Report{}, fmt.Errorf("adjoint: adjoint: %w", err)
	}

	lhs, err := tensor.Inner(ax, y)
	if err != nil {
		return Report{}, fmt.Errorf("adjoint: %w", err)
	}
	rhs, err := tensor.Inner(x, aty)
	if err != nil {
		return Report{}, fmt.Errorf("adjoint: %w", err)
	}
	return Report{Forward: lhs, Adjoint: rhs, Residual: residual(lhs, rhs)}, nil
}

// RandomDotTest runs trials dot tests on deterministic pseudo-random inputs
// and returns the report with the largest residual.
func RandomDotTest(p sensing.Pair, trials int, seed int64) (Report, error) {
	if trials <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrTrials, trials)
	}

	shape := p.Shape()
	var worst Report
	for i := 0; i < trials; i++ {
		x, err := randomTensor(seed+int64(2*i), shape)
		if err != nil {
			return Report{}, err
		}
		y, err := randomTensor(seed+int64(2*i+1), shape)
		if err != nil {
			return Report{}, err
		}
		r, err := DotTest(p, x, y)
		if err != nil {
			return Report{}, err
		}
		if i == 0 || r.Residual > worst.Residual {
			worst = r
		}
	}
	return worst, nil
}

// InverseResidual returns ||A* A x - x|| / ||x||. It is zero up to rounding
// when A is unitary, for example a sensing operator with a full mask.
func InverseResidual(p sensing.Pair, x *tensor.Dense[complex128]) (float64, error) {
	y, err := p.Forward(x)
	if err != nil {
		return 0, fmt.Errorf("adjoint: forward: %w", err)
	}
	back, err := p.Adjoint(y)
	if err != nil {
		return 0, fmt.Errorf("adjoint: adjoint: %w", err)
	}
	dist, err := tensor.Distance(back, x)
	if err != nil {
		return 0, fmt.Errorf("adjoint: %w", err)
	}
	return dist / math.Max(tensor.Norm(x), tiny), nil
}

func residual(lhs, rhs complex128) float64 {
	return cmplx.Abs(lhs-rhs) / math.Max(cmplx.Abs(lhs), tiny)
}

func randomTensor(seed int64, shape []int) (*tensor.Dense[complex128], error) {
	n := 1
	for _, s := range shape {
		n *= s
	}
	rng := rand.New(rand.NewSource(seed))
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}
	x, err := tensor.FromSlice(data, shape...)
	if err != nil {
		return nil, fmt.Errorf("adjoint: %w", err)
	}
	return x, nil
}
