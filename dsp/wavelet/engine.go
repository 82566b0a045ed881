package wavelet

import (
	"fmt"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// maxLevels bounds the level count so 1<<levels cannot overflow.
const maxLevels = 30

// CheckLevels reports whether a rows x cols array supports a decomposition
// with the given number of levels.
func CheckLevels(rows, cols, levels int) error {
	if levels < 0 || levels > maxLevels {
		return fmt.Errorf("%w: %d", ErrLevels, levels)
	}
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	step := 1 << levels
	if rows%step != 0 || cols%step != 0 {
		return fmt.Errorf("%w: %dx%d not divisible by 2^%d", ErrLevels, rows, cols, levels)
	}
	return nil
}

// MaxLevels returns the deepest decomposition a rows x cols array supports.
func MaxLevels(rows, cols int) int {
	levels := 0
	for rows%2 == 0 && cols%2 == 0 && rows > 1 && cols > 1 && levels < maxLevels {
		rows /= 2
		cols /= 2
		levels++
	}
	return levels
}

// Decompose returns the levels-deep 2D wavelet decomposition of z. The input
// is not modified. A level count of 0 returns a copy of z.
func Decompose(z *tensor.Dense[float64], w Wavelet, levels int) (*tensor.Dense[float64], error) {
	out := z.Clone()
	p, err := tensor.PlaneOf(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	if err := DecomposeInPlace(p, w, levels); err != nil {
		return nil, err
	}
	return out, nil
}

// Reconstruct inverts [Decompose]. The input is not modified.
func Reconstruct(z *tensor.Dense[float64], w Wavelet, levels int) (*tensor.Dense[float64], error) {
	out := z.Clone()
	p, err := tensor.PlaneOf(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	if err := ReconstructInPlace(p, w, levels); err != nil {
		return nil, err
	}
	return out, nil
}

// DecomposeInPlace overwrites p with its levels-deep decomposition.
func DecomposeInPlace(p tensor.Plane, w Wavelet, levels int) error {
	if err := CheckLevels(p.Rows, p.Cols, levels); err != nil {
		return err
	}
	if levels == 0 {
		return nil
	}
	decompose(p, w, levels, newScratch(p.Rows, p.Cols))
	return nil
}

// ReconstructInPlace overwrites p with the signal synthesized from its
// levels-deep decomposition.
func ReconstructInPlace(p tensor.Plane, w Wavelet, levels int) error {
	if err := CheckLevels(p.Rows, p.Cols, levels); err != nil {
		return err
	}
	if levels == 0 {
		return nil
	}
	reconstruct(p, w, levels, newScratch(p.Rows, p.Cols))
	return nil
}

// decompose splits the outermost scale first and recurses into the
// approximation quadrant.
func decompose(p tensor.Plane, w Wavelet, levels int, s *scratch) {
	if levels == 0 {
		return
	}
	s.analyze2D(p, p, w)
	decompose(p.Sub(0, 0, p.Rows/2, p.Cols/2), w, levels-1, s)
}

// reconstruct synthesizes the innermost m x m block first (m = 2 * size /
// 2^levels) and recurses outward. Regions outside the block are already at
// their final resolution and stay untouched.
func reconstruct(p tensor.Plane, w Wavelet, levels int, s *scratch) {
	if levels == 0 {
		return
	}
	m := p.Sub(0, 0, p.Rows>>(levels-1), p.Cols>>(levels-1))
	s.synthesize2D(m, m, w)
	reconstruct(p, w, levels-1, s)
}

// Decompose1D returns the levels-deep decomposition of x with layout
// [a_L | d_L | d_L-1 | ... | d_1].
func Decompose1D(x []float64, w Wavelet, levels int) ([]float64, error) {
	if err := CheckLevels1D(len(x), levels); err != nil {
		return nil, err
	}

	out := append([]float64(nil), x...)
	tmp := make([]float64, len(x))
	for n := len(x); levels > 0; levels-- {
		analyze1D(tmp[:n], out[:n], w)
		copy(out[:n], tmp[:n])
		n /= 2
	}
	return out, nil
}

// Reconstruct1D inverts [Decompose1D].
func Reconstruct1D(x []float64, w Wavelet, levels int) ([]float64, error) {
	if err := CheckLevels1D(len(x), levels); err != nil {
		return nil, err
	}

	out := append([]float64(nil), x...)
	tmp := make([]float64, len(x))
	for ; levels > 0; levels-- {
		m := len(x) >> (levels - 1)
		synthesize1D(tmp[:m], out[:m], w)
		copy(out[:m], tmp[:m])
	}
	return out, nil
}

// CheckLevels1D is the 1D counterpart of [CheckLevels].
func CheckLevels1D(n, levels int) error {
	if levels < 0 || levels > maxLevels {
		return fmt.Errorf("%w: %d", ErrLevels, levels)
	}
	if n <= 0 {
		return fmt.Errorf("%w: empty signal", ErrShape)
	}
	if n%(1<<levels) != 0 {
		return fmt.Errorf("%w: length %d not divisible by 2^%d", ErrLevels, n, levels)
	}
	return nil
}
