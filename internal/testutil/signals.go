package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplexNoise generates complex noise whose real and imaginary
// parts are independent uniform draws in [-amplitude, amplitude).
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// DeterministicMask returns a row-major boolean grid where each entry is
// true with probability rate.
func DeterministicMask(seed int64, rate float64, length int) []bool {
	out := make([]bool, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() < rate
	}
	return out
}

// FullMask returns an all-true mask.
func FullMask(length int) []bool {
	out := make([]bool, length)
	for i := range out {
		out[i] = true
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Impulse2D generates a rows x cols row-major grid holding a unit impulse
// at (r, c).
func Impulse2D(rows, cols, r, c int) []float64 {
	out := make([]float64, rows*cols)
	if r >= 0 && r < rows && c >= 0 && c < cols {
		out[r*cols+c] = 1
	}
	return out
}

// SmoothImage generates a rows x cols grid of low-frequency cosines, which
// is compressible in any smooth wavelet basis.
func SmoothImage(rows, cols int) []float64 {
	out := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			y := float64(r) / float64(rows)
			x := float64(c) / float64(cols)
			out[r*cols+c] = math.Cos(2*math.Pi*x) + 0.5*math.Cos(2*math.Pi*(x+2*y))
		}
	}
	return out
}
