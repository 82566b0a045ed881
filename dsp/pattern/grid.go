package pattern

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sensing/dsp/sensing"
)

// Errors returned by the generators.
var (
	ErrSize    = errors.New("pattern: invalid grid size")
	ErrRate    = errors.New("pattern: sampling rate must be in [0, 1]")
	ErrSamples = errors.New("pattern: invalid sample count")
	ErrParam   = errors.New("pattern: invalid parameter")
)

// Grid is a row-major boolean sampling pattern with lenY rows and lenX
// columns, centred on zero frequency.
type Grid struct {
	Rows, Cols int
	Bits       []bool
}

func newGrid(lenX, lenY int) (Grid, error) {
	if lenX <= 0 || lenY <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrSize, lenY, lenX)
	}
	return Grid{Rows: lenY, Cols: lenX, Bits: make([]bool, lenX*lenY)}, nil
}

// At reports whether (r, c) is sampled.
func (g Grid) At(r, c int) bool { return g.Bits[r*g.Cols+c] }

// Set marks (r, c) as sampled or not.
func (g Grid) Set(r, c int, v bool) { g.Bits[r*g.Cols+c] = v }

// Count returns the number of sampled points.
func (g Grid) Count() int {
	n := 0
	for _, b := range g.Bits {
		if b {
			n++
		}
	}
	return n
}

// Rate returns the sampled fraction of the grid.
func (g Grid) Rate() float64 {
	if len(g.Bits) == 0 {
		return 0
	}
	return float64(g.Count()) / float64(len(g.Bits))
}

// Mask converts the centred grid into a sensing mask in DFT order.
func (g Grid) Mask() (*sensing.Mask, error) {
	return sensing.NewCenteredMask(g.Bits, g.Rows, g.Cols)
}

// String renders the grid with '#' for sampled and '.' for skipped points.
func (g Grid) String() string {
	buf := make([]byte, 0, (g.Cols+1)*g.Rows)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
