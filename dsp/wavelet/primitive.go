package wavelet

import (
	"fmt"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// analyze1D writes the periodic single-level analysis of src into dst as
// [approximation | detail]. len(src) must be even; dst must not alias src.
//
//	a[k] = sum_j lo[j] * src[(2k+j) mod n]
//	d[k] = sum_j hi[j] * src[(2k+j) mod n]
func analyze1D(dst, src []float64, w Wavelet) {
	n := len(src)
	half := n / 2
	for k := 0; k < half; k++ {
		var a, d float64
		base := 2 * k
		for j, h := range w.lo {
			v := src[(base+j)%n]
			a += h * v
			d += w.hi[j] * v
		}
		dst[k] = a
		dst[half+k] = d
	}
}

// synthesize1D is the transpose of analyze1D. dst must not alias src.
func synthesize1D(dst, src []float64, w Wavelet) {
	n := len(src)
	half := n / 2
	clear(dst[:n])
	for k := 0; k < half; k++ {
		a := src[k]
		d := src[half+k]
		base := 2 * k
		for j, h := range w.lo {
			dst[(base+j)%n] += h*a + w.hi[j]*d
		}
	}
}

// scratch holds the temporary buffers of a transform call.
type scratch struct {
	tmp tensor.Plane
	in  []float64
	out []float64
}

func newScratch(rows, cols int) *scratch {
	longest := max(rows, cols)
	return &scratch{
		tmp: tensor.NewPlane(rows, cols),
		in:  make([]float64, longest),
		out: make([]float64, longest),
	}
}

// analyze2D runs one level of the 2D analysis from src into dst. The planes
// may be the same region.
func (s *scratch) analyze2D(dst, src tensor.Plane, w Wavelet) {
	rows, cols := src.Rows, src.Cols
	tmp := s.tmp.Sub(0, 0, rows, cols)

	for r := 0; r < rows; r++ {
		analyze1D(tmp.Row(r), src.Row(r), w)
	}

	in, out := s.in[:rows], s.out[:rows]
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			in[r] = tmp.At(r, c)
		}
		analyze1D(out, in, w)
		for r := 0; r < rows; r++ {
			dst.Set(r, c, out[r])
		}
	}
}

// synthesize2D inverts analyze2D: columns first, then rows.
func (s *scratch) synthesize2D(dst, src tensor.Plane, w Wavelet) {
	rows, cols := src.Rows, src.Cols
	tmp := s.tmp.Sub(0, 0, rows, cols)

	in, out := s.in[:rows], s.out[:rows]
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			in[r] = src.At(r, c)
		}
		synthesize1D(out, in, w)
		for r := 0; r < rows; r++ {
			tmp.Set(r, c, out[r])
		}
	}

	for r := 0; r < rows; r++ {
		row := s.out[:cols]
		synthesize1D(row, tmp.Row(r), w)
		copy(dst.Row(r), row)
	}
}

// DecomposeOnce applies one level of the periodic 2D analysis to src and
// stores the quad-band result in dst (cA top-left, cH top-right, cV
// bottom-left, cD bottom-right). dst and src may be the same region.
func DecomposeOnce(dst, src tensor.Plane, w Wavelet) error {
	if err := checkOnce(dst, src); err != nil {
		return err
	}
	newScratch(src.Rows, src.Cols).analyze2D(dst, src, w)
	return nil
}

// ReconstructOnce inverts [DecomposeOnce]. dst and src may be the same region.
func ReconstructOnce(dst, src tensor.Plane, w Wavelet) error {
	if err := checkOnce(dst, src); err != nil {
		return err
	}
	newScratch(src.Rows, src.Cols).synthesize2D(dst, src, w)
	return nil
}

// SplitOnce decomposes a 2D array by one level and returns the four
// sub-bands as separate arrays of half the size.
func SplitOnce(x *tensor.Dense[float64], w Wavelet) (cA, cH, cV, cD *tensor.Dense[float64], err error) {
	src, err := tensor.PlaneOf(x)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	dst := tensor.NewPlane(src.Rows, src.Cols)
	if err := DecomposeOnce(dst, src, w); err != nil {
		return nil, nil, nil, nil, err
	}

	h, c := src.Rows/2, src.Cols/2
	return dst.Sub(0, 0, h, c).Dense(),
		dst.Sub(0, c, h, c).Dense(),
		dst.Sub(h, 0, h, c).Dense(),
		dst.Sub(h, c, h, c).Dense(),
		nil
}

// MergeOnce recombines four equally sized sub-bands into one array twice
// their size. It is the inverse of [SplitOnce].
func MergeOnce(cA, cH, cV, cD *tensor.Dense[float64], w Wavelet) (*tensor.Dense[float64], error) {
	bands := []*tensor.Dense[float64]{cA, cH, cV, cD}
	for _, b := range bands {
		if b.Rank() != 2 || !tensor.SameShape(b, cA) {
			return nil, fmt.Errorf("%w: sub-bands must share one 2D shape, got %v and %v", ErrShape, cA.Shape(), b.Shape())
		}
	}

	h, c := cA.Dim(0), cA.Dim(1)
	out := tensor.NewPlane(2*h, 2*c)
	origins := [][2]int{{0, 0}, {0, c}, {h, 0}, {h, c}}
	for i, b := range bands {
		src, _ := tensor.PlaneOf(b)
		out.Sub(origins[i][0], origins[i][1], h, c).CopyFrom(src)
	}

	if err := ReconstructOnce(out, out, w); err != nil {
		return nil, err
	}
	return out.Dense(), nil
}

func checkOnce(dst, src tensor.Plane) error {
	if dst.Rows != src.Rows || dst.Cols != src.Cols {
		return fmt.Errorf("%w: destination %dx%d, source %dx%d", ErrShape, dst.Rows, dst.Cols, src.Rows, src.Cols)
	}
	if src.Rows < 2 || src.Cols < 2 || src.Rows%2 != 0 || src.Cols%2 != 0 {
		return fmt.Errorf("%w: %dx%d is not evenly divisible by 2", ErrShape, src.Rows, src.Cols)
	}
	return nil
}
