package pattern

import (
	"fmt"
	"math"
)

// Line draws the given number of radial lines from the grid centre to its border at
// evenly spaced angles in [0, 2π). With closing set, a binary closing fills
// small gaps between the lines; each dilation then widens them by one
// pixel. Both use a 3x3 cross structuring element and treat pixels outside
// the grid as unsampled.
func Line(lenX, lenY, lines, dilations int, closing bool) (Grid, error) {
	g, err := newGrid(lenX, lenY)
	if err != nil {
		return Grid{}, err
	}
	if lines < 0 || dilations < 0 {
		return Grid{}, fmt.Errorf("%w: lines %d, dilations %d", ErrParam, lines, dilations)
	}

	cy, cx := lenY/2, lenX/2
	points := int(math.Floor(math.Hypot(float64(lenX), float64(lenY))))

	for l := 0; l < lines; l++ {
		theta := float64(l) / float64(lines) * 2 * math.Pi
		sin, cos := math.Sincos(theta)

		var radius float64
		if (math.Pi/4 < theta && theta < 3*math.Pi/4) || (5*math.Pi/4 < theta && theta < 7*math.Pi/4) {
			radius = math.Abs(float64(lenY/2) / sin)
		} else {
			radius = math.Abs(float64(lenX/2) / cos)
		}

		for i := 0; i < points; i++ {
			t := 0.0
			if points > 1 {
				t = float64(i) / float64(points-1)
			}
			r := radius * t
			x := min(max(int(cos*r)+cx, 0), lenX-1)
			y := min(max(int(sin*r)+cy, 0), lenY-1)
			g.Set(y, x, true)
		}
	}

	if closing {
		g = erode(dilate(g))
	}
	for i := 0; i < dilations; i++ {
		g = dilate(g)
	}
	return g, nil
}

// cross lists the offsets of the 3x3 cross structuring element.
var cross = [5][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func dilate(g Grid) Grid {
	out := Grid{Rows: g.Rows, Cols: g.Cols, Bits: make([]bool, len(g.Bits))}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			for _, d := range cross {
				if g.inside(r+d[0], c+d[1]) && g.At(r+d[0], c+d[1]) {
					out.Set(r, c, true)
					break
				}
			}
		}
	}
	return out
}

func erode(g Grid) Grid {
	out := Grid{Rows: g.Rows, Cols: g.Cols, Bits: make([]bool, len(g.Bits))}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			keep := true
			for _, d := range cross {
				if !g.inside(r+d[0], c+d[1]) || !g.At(r+d[0], c+d[1]) {
					keep = false
					break
				}
			}
			out.Set(r, c, keep)
		}
	}
	return out
}

func (g Grid) inside(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}
