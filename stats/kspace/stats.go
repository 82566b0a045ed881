// Package kspace describes sampling masks in the Fourier domain: how much of
// the grid a mask keeps, where the kept frequencies lie and how much of a
// spectrum's energy it captures.
//
// Frequencies are normalised to cycles per sample in each direction, so the
// radial frequency of DFT index (r, c) on a rows x cols grid is
//
//	ρ = sqrt((k_r/rows)² + (k_c/cols)²)
//
// with k the signed index (k - n for k >= n/2). ρ ranges from 0 at DC to
// sqrt(2)/2 at the Nyquist corner.
package kspace

import (
	"fmt"
	"math"
	"sort"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sensing/dsp/fourier"
	"github.com/cwbudde/algo-sensing/dsp/sensing"
	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// DefaultRolloff is the energy fraction used by [Calculate] for Rolloff.
const DefaultRolloff = 0.85

// Stats holds sampling statistics of a mask, optionally against a spectrum.
//
//nolint:revive
type Stats struct {
	Samples int
	Total   int
	Rate    float64
	// Centroid is the mean radial frequency of the sampled points.
	Centroid float64
	// Spread is the standard deviation of the sampled radial frequencies.
	Spread float64
	// DCSampled reports whether the zero frequency is kept.
	DCSampled bool

	// The fields below are zero when no spectrum is given.
	TotalEnergy    float64
	CapturedEnergy float64
	EnergyFraction float64
	EnergyLoss_dB  float64 // 10 log10 of the captured fraction, <= 0
	EnergyCentroid float64 // energy-weighted mean radial frequency of the kept points
	Rolloff        float64 // radial frequency below which DefaultRolloff of the captured energy lies
}

// Radius returns the normalised radial frequency of DFT index (r, c).
func Radius(r, c, rows, cols int) float64 {
	return math.Hypot(signed(r, rows)/float64(rows), signed(c, cols)/float64(cols))
}

func signed(k, n int) float64 {
	if k >= (n+1)/2 {
		return float64(k - n)
	}
	return float64(k)
}

// Calculate computes mask statistics. spectrum may be nil; otherwise it must
// be a rows x cols array in DFT order matching the mask.
func Calculate(mask *sensing.Mask, spectrum *tensor.Dense[complex128]) (Stats, error) {
	rows, cols := mask.Rows(), mask.Cols()
	radii := radialGrid(rows, cols)

	s := Stats{
		Samples:   mask.Count(),
		Total:     mask.Len(),
		Rate:      mask.Rate(),
		DCSampled: mask.At(0, 0),
	}

	weights := mask.Weights()
	if s.Samples > 0 {
		n := float64(s.Samples)
		s.Centroid = floats.Dot(weights, radii) / n
		sq := make([]float64, len(radii))
		for i, rho := range radii {
			d := rho - s.Centroid
			sq[i] = d * d
		}
		s.Spread = math.Sqrt(floats.Dot(weights, sq) / n)
	}

	if spectrum == nil {
		return s, nil
	}
	if sh := spectrum.Shape(); len(sh) != 2 || sh[0] != rows || sh[1] != cols {
		return Stats{}, fmt.Errorf("kspace: %w: spectrum %v, mask %dx%d", sensing.ErrShape, sh, rows, cols)
	}

	power := fourier.Power(spectrum.Data())
	captured := make([]float64, len(power))
	vecmath.MulBlock(captured, power, weights)

	s.TotalEnergy = floats.Sum(power)
	s.CapturedEnergy = floats.Sum(captured)
	if s.TotalEnergy > 0 {
		s.EnergyFraction = s.CapturedEnergy / s.TotalEnergy
		s.EnergyLoss_dB = math.Inf(-1)
		if s.EnergyFraction > 0 {
			s.EnergyLoss_dB = 10 * math.Log10(s.EnergyFraction)
		}
	}
	if s.CapturedEnergy > 0 {
		s.EnergyCentroid = floats.Dot(captured, radii) / s.CapturedEnergy
		s.Rolloff = rolloff(radii, captured, DefaultRolloff, s.CapturedEnergy)
	}
	return s, nil
}

// RadialProfile splits [0, sqrt(2)/2] into the given number of equal rings and returns the
// sampled fraction of each ring. Empty rings report 0.
func RadialProfile(mask *sensing.Mask, bins int) []float64 {
	if bins <= 0 {
		return nil
	}
	radii := radialGrid(mask.Rows(), mask.Cols())
	weights := mask.Weights()
	width := math.Sqrt2 / 2 / float64(bins)

	kept := make([]float64, bins)
	total := make([]float64, bins)
	for i, rho := range radii {
		b := min(int(rho/width), bins-1)
		total[b]++
		if weights[i] != 0 {
			kept[b]++
		}
	}
	for b := range kept {
		if total[b] > 0 {
			kept[b] /= total[b]
		}
	}
	return kept
}

func radialGrid(rows, cols int) []float64 {
	out := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[r*cols+c] = Radius(r, c, rows, cols)
		}
	}
	return out
}

// rolloff returns the radius below which percent of the total energy lies.
func rolloff(radii, energy []float64, percent, total float64) float64 {
	idx := make([]int, len(radii))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return radii[idx[a]] < radii[idx[b]] })

	threshold := percent * total
	acc := 0.0
	for _, i := range idx {
		acc += energy[i]
		if acc >= threshold {
			return radii[i]
		}
	}
	return radii[idx[len(idx)-1]]
}
