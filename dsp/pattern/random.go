package pattern

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform samples every point independently with probability rate.
func Uniform(lenX, lenY int, rate float64, rng *rand.Rand) (Grid, error) {
	if rate < 0 || rate > 1 || math.IsNaN(rate) {
		return Grid{}, fmt.Errorf("%w: %v", ErrRate, rate)
	}
	g, err := newGrid(lenX, lenY)
	if err != nil {
		return Grid{}, err
	}
	for i := range g.Bits {
		g.Bits[i] = rng.Float64() < rate
	}
	return g, nil
}

// Gaussian picks exactly samples distinct points. Each coordinate is drawn
// from a normal distribution centred on the grid centre with standard
// deviation floor(len/spread), truncated to [0, len). Larger spread values
// concentrate the samples near zero frequency. ErrSamples is returned when
// the distribution is too narrow to reach samples distinct points.
func Gaussian(lenX, lenY, samples int, spread float64, rng *rand.Rand) (Grid, error) {
	g, err := newGrid(lenX, lenY)
	if err != nil {
		return Grid{}, err
	}
	if samples < 0 || samples > lenX*lenY {
		return Grid{}, fmt.Errorf("%w: %d on %dx%d grid", ErrSamples, samples, lenY, lenX)
	}
	if !(spread > 0) {
		return Grid{}, fmt.Errorf("%w: spread %v", ErrParam, spread)
	}

	xs, err := newTruncated(lenX, spread)
	if err != nil {
		return Grid{}, err
	}
	ys, err := newTruncated(lenY, spread)
	if err != nil {
		return Grid{}, err
	}

	budget := gaussianDraws * lenX * lenY
	for i := 0; i < samples; i++ {
		for {
			if budget == 0 {
				return Grid{}, fmt.Errorf("%w: placed %d of %d before the distribution ran out of reachable points", ErrSamples, i, samples)
			}
			budget--
			x, y := xs.draw(rng), ys.draw(rng)
			if !g.At(y, x) {
				g.Set(y, x, true)
				break
			}
		}
	}
	return g, nil
}

// gaussianDraws bounds the total number of draws per grid cell. Tail cells
// of a narrow distribution may never be drawn, so filling them would not
// terminate.
const gaussianDraws = 256

// truncated draws integer coordinates from a normal distribution truncated
// to [0, n) by inverse-CDF sampling.
type truncated struct {
	dist   distuv.Normal
	lo, hi float64
	n      int
}

func newTruncated(n int, spread float64) (truncated, error) {
	sigma := math.Floor(float64(n) / spread)
	if sigma <= 0 {
		return truncated{}, fmt.Errorf("%w: spread %v too large for length %d", ErrParam, spread, n)
	}
	dist := distuv.Normal{Mu: float64(n / 2), Sigma: sigma}
	return truncated{
		dist: dist,
		lo:   dist.CDF(0),
		hi:   dist.CDF(float64(n)),
		n:    n,
	}, nil
}

func (t truncated) draw(rng *rand.Rand) int {
	p := t.lo + rng.Float64()*(t.hi-t.lo)
	v := t.dist.Quantile(p)
	switch {
	case !(v >= 0):
		return 0
	case v >= float64(t.n):
		return t.n - 1
	}
	return int(v)
}

// Level builds nested centred levels. Level k (k = 0 is outermost) covers a
// centred rectangle of size len/(k+1) and is sampled, row by row, at
// rates[len(rates)-1-k]: each row keeps int(width*rate) randomly chosen
// columns. Inner levels overwrite outer ones, so rates[0] applies to the
// innermost rectangle.
func Level(lenX, lenY int, rates []float64, rng *rand.Rand) (Grid, error) {
	if len(rates) == 0 {
		return Grid{}, fmt.Errorf("%w: no levels", ErrRate)
	}
	for _, r := range rates {
		if r < 0 || r > 1 || math.IsNaN(r) {
			return Grid{}, fmt.Errorf("%w: %v", ErrRate, r)
		}
	}
	g, err := newGrid(lenX, lenY)
	if err != nil {
		return Grid{}, err
	}

	levels := len(rates)
	for level := 0; level < levels; level++ {
		localX := lenX / (level + 1)
		localY := lenY / (level + 1)
		r0 := (lenY - localY) / 2
		c0 := (lenX - localX) / 2
		keep := int(float64(localX) * rates[levels-level-1])

		for r := r0; r < r0+localY; r++ {
			for c := c0; c < c0+localX; c++ {
				g.Set(r, c, false)
			}
			for _, c := range rng.Perm(localX)[:keep] {
				g.Set(r, c0+c, true)
			}
		}
	}
	return g, nil
}
