package wavelet

import "fmt"

// Band identifies a sub-band of a 2D decomposition.
type Band int

const (
	BandApprox Band = iota
	BandHorizontal
	BandVertical
	BandDiagonal
)

func (b Band) String() string {
	switch b {
	case BandApprox:
		return "cA"
	case BandHorizontal:
		return "cH"
	case BandVertical:
		return "cV"
	case BandDiagonal:
		return "cD"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Region locates one sub-band inside a decomposed array.
type Region struct {
	Band  Band
	Level int
	Row   int
	Col   int
	Rows  int
	Cols  int
}

// Len returns the number of coefficients in the region.
func (r Region) Len() int { return r.Rows * r.Cols }

// Layout lists the sub-band regions of a levels-deep decomposition of a
// rows x cols array: the approximation first, then the details from the
// coarsest level to level 1. The regions tile the array exactly.
func Layout(rows, cols, levels int) ([]Region, error) {
	if err := CheckLevels(rows, cols, levels); err != nil {
		return nil, err
	}

	ar, ac := rows>>levels, cols>>levels
	regions := make([]Region, 0, 1+3*levels)
	regions = append(regions, Region{Band: BandApprox, Level: levels, Rows: ar, Cols: ac})

	for level := levels; level >= 1; level-- {
		h, c := rows>>level, cols>>level
		regions = append(regions,
			Region{Band: BandHorizontal, Level: level, Row: 0, Col: c, Rows: h, Cols: c},
			Region{Band: BandVertical, Level: level, Row: h, Col: 0, Rows: h, Cols: c},
			Region{Band: BandDiagonal, Level: level, Row: h, Col: c, Rows: h, Cols: c},
		)
	}
	return regions, nil
}
