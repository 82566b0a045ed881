package eigen

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/cmplxs"
)

// DefaultIterations is the iteration count used when none is configured.
const DefaultIterations = 1000

// Errors returned by [Estimate].
var (
	ErrDimension  = errors.New("eigen: invalid dimension")
	ErrIterations = errors.New("eigen: iteration count must be non-negative")
	ErrZeroVector = errors.New("eigen: operator produced a zero vector")
)

// Operator is a linear map on complex vectors. Implementations must return
// a vector of the same length as x and may reuse x's storage.
type Operator func(x []complex128) ([]complex128, error)

// Result is an estimated eigenpair. Value is only meaningful when HasValue
// is set, that is when a Rayleigh operator was configured.
type Result struct {
	Vector   []complex128
	Value    complex128
	HasValue bool
}

// Option configures [Estimate].
type Option func(*config)

type config struct {
	iterations int
	seed       int64
	rng        *rand.Rand
	rayleigh   Operator
}

// WithIterations sets the number of power iterations.
func WithIterations(n int) Option {
	return func(c *config) {
		c.iterations = n
	}
}

// WithSeed seeds the generator for the initial vector.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithRand draws the initial vector from rng instead of a seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithRayleigh computes the eigenvalue as the Rayleigh quotient of r at the
// final vector.
func WithRayleigh(r Operator) Option {
	return func(c *config) {
		c.rayleigh = r
	}
}

// Estimate runs power iteration on op over vectors of length dim.
func Estimate(op Operator, dim int, opts ...Option) (Result, error) {
	cfg := config{iterations: DefaultIterations, seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if dim <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrDimension, dim)
	}
	if cfg.iterations < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrIterations, cfg.iterations)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.seed))
	}

	x := make([]complex128, dim)
	for i := range x {
		x[i] = complex(rng.Float64(), 0)
	}
	if !normalize(x) {
		return Result{}, ErrZeroVector
	}

	for i := 0; i < cfg.iterations; i++ {
		y, err := op(x)
		if err != nil {
			return Result{}, fmt.Errorf("eigen: iteration %d: %w", i, err)
		}
		if len(y) != dim {
			return Result{}, fmt.Errorf("%w: operator returned %d values, want %d", ErrDimension, len(y), dim)
		}
		if !normalize(y) {
			return Result{}, fmt.Errorf("%w: iteration %d", ErrZeroVector, i)
		}
		x = y
	}

	res := Result{Vector: x}
	if cfg.rayleigh != nil {
		v, err := Quotient(cfg.rayleigh, x)
		if err != nil {
			return Result{}, err
		}
		res.Value = v
		res.HasValue = true
	}
	return res, nil
}

// Quotient returns the Rayleigh quotient xᴴ r(x) / xᴴ x.
func Quotient(r Operator, x []complex128) (complex128, error) {
	den := cmplxs.Dot(x, x)
	if den == 0 {
		return 0, ErrZeroVector
	}
	// r may reuse its argument, so it is applied to a copy and x is left intact.
	rx, err := r(append([]complex128(nil), x...))
	if err != nil {
		return 0, fmt.Errorf("eigen: rayleigh operator: %w", err)
	}
	if len(rx) != len(x) {
		return 0, fmt.Errorf("%w: rayleigh operator returned %d values, want %d", ErrDimension, len(rx), len(x))
	}
	return cmplxs.Dot(x, rx) / den, nil
}

func normalize(x []complex128) bool {
	n := cmplxs.Norm(x, 2)
	if n == 0 {
		return false
	}
	cmplxs.Scale(complex(1/n, 0), x)
	return true
}
