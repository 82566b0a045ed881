// Package subband computes per-sub-band statistics of a multi-level 2D
// wavelet decomposition: energy distribution, amplitude levels and the
// sparsity that compressive-sensing reconstruction relies on.
package subband

import (
	"fmt"
	"math"
	"sort"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
)

// Stats holds the statistics of one sub-band. For complex coefficients the
// amplitude fields describe coefficient magnitudes.
//
//nolint:revive
type Stats struct {
	Region         wavelet.Region
	Length         int
	Energy         float64 // sum of squared magnitudes
	Energy_dB      float64
	EnergyFraction float64 // share of the decomposition's total energy
	RMS            float64
	RMS_dB         float64
	Peak           float64 // largest magnitude
	Peak_dB        float64
	Mean           float64
	Variance       float64
	Kurtosis       float64 // excess kurtosis, 0 for constant bands
	NonZero        int
}

// ampTodB converts an amplitude to decibels. Returns -Inf for zero.
func ampTodB(v float64) float64 {
	if v == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(math.Abs(v))
}

// powTodB converts an energy to decibels. Returns -Inf for zero.
func powTodB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(v)
}

// Calculate returns statistics for every region of a levels-deep real
// decomposition, ordered as [wavelet.Layout].
func Calculate(coeffs *tensor.Dense[float64], levels int) ([]Stats, error) {
	p, err := tensor.PlaneOf(coeffs)
	if err != nil {
		return nil, fmt.Errorf("subband: %w", err)
	}
	regions, err := wavelet.Layout(p.Rows, p.Cols, levels)
	if err != nil {
		return nil, fmt.Errorf("subband: %w", err)
	}

	out := make([]Stats, len(regions))
	total := 0.0
	for i, r := range regions {
		vals := gather(p, r)
		out[i] = Band(vals)
		out[i].Region = r
		total += out[i].Energy
	}
	setFractions(out, total)
	return out, nil
}

// CalculateComplex is [Calculate] for complex coefficients. Energy uses
// |c|², amplitude and moment fields use |c|.
func CalculateComplex(coeffs *tensor.Dense[complex128], levels int) ([]Stats, error) {
	if coeffs.Rank() != 2 {
		return nil, fmt.Errorf("subband: %w: want rank 2, got %v", tensor.ErrShape, coeffs.Shape())
	}
	rows, cols := coeffs.Dim(0), coeffs.Dim(1)
	regions, err := wavelet.Layout(rows, cols, levels)
	if err != nil {
		return nil, fmt.Errorf("subband: %w", err)
	}

	n := rows * cols
	re := make([]float64, n)
	im := make([]float64, n)
	tensor.Split(re, im, coeffs.Data())
	mag := make([]float64, n)
	pow := make([]float64, n)
	vecmath.Magnitude(mag, re, im)
	vecmath.Power(pow, re, im)

	magPlane := tensor.PlaneFrom(mag, rows, cols)
	powPlane := tensor.PlaneFrom(pow, rows, cols)

	out := make([]Stats, len(regions))
	total := 0.0
	for i, r := range regions {
		s := Band(gather(magPlane, r))
		s.Energy = floats.Sum(gather(powPlane, r))
		s.Energy_dB = powTodB(s.Energy)
		s.Region = r
		out[i] = s
		total += s.Energy
	}
	setFractions(out, total)
	return out, nil
}

// Band computes statistics of a flat set of coefficients. Region and
// EnergyFraction are left zero.
func Band(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{
			Energy_dB: math.Inf(-1),
			RMS_dB:    math.Inf(-1),
			Peak_dB:   math.Inf(-1),
		}
	}

	energy := floats.Dot(values, values)
	peak := math.Max(math.Abs(floats.Max(values)), math.Abs(floats.Min(values)))
	rms := math.Sqrt(energy / float64(n))
	mean, variance := stat.PopMeanVariance(values, nil)

	var kurtosis float64
	if variance > 0 && n > 3 {
		kurtosis = stat.ExKurtosis(values, nil)
	}

	nonZero := 0
	for _, v := range values {
		if v != 0 {
			nonZero++
		}
	}

	return Stats{
		Length:    n,
		Energy:    energy,
		Energy_dB: powTodB(energy),
		RMS:       rms,
		RMS_dB:    ampTodB(rms),
		Peak:      peak,
		Peak_dB:   ampTodB(peak),
		Mean:      mean,
		Variance:  variance,
		Kurtosis:  kurtosis,
		NonZero:   nonZero,
	}
}

// Sparsity returns the fraction of coefficients whose magnitude is at most
// threshold. A sparse representation has a value close to 1.
func Sparsity(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	small := 0
	for _, v := range values {
		if math.Abs(v) <= threshold {
			small++
		}
	}
	return float64(small) / float64(len(values))
}

// EnergyCompaction returns the smallest fraction of coefficients that holds
// at least ratio of the total energy. Lower values mean better compaction.
func EnergyCompaction(values []float64, ratio float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sq := make([]float64, n)
	vecmath.MulBlock(sq, values, values)
	total := floats.Sum(sq)
	if total == 0 {
		return 0
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(sq)))
	acc := 0.0
	for i, v := range sq {
		acc += v
		if acc >= ratio*total {
			return float64(i+1) / float64(n)
		}
	}
	return 1
}

func gather(p tensor.Plane, r wavelet.Region) []float64 {
	sub := p.Sub(r.Row, r.Col, r.Rows, r.Cols)
	out := make([]float64, 0, r.Len())
	for row := 0; row < sub.Rows; row++ {
		out = append(out, sub.Row(row)...)
	}
	return out
}

func setFractions(s []Stats, total float64) {
	if total == 0 {
		return
	}
	for i := range s {
		s[i].EnergyFraction = s[i].Energy / total
	}
}
