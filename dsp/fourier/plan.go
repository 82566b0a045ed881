package fourier

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by plan constructors and transforms.
var (
	ErrLength = errors.New("fourier: invalid transform length")
	ErrBuffer = errors.New("fourier: buffer length mismatch")
)

// Plan computes 1D transforms of a fixed length. A Plan is not safe for
// concurrent use.
type Plan struct {
	n    int
	plan *algofft.Plan[complex128]
}

// NewPlan creates a 1D plan. n must be a power of two.
func NewPlan(n int) (*Plan, error) {
	if !IsPowerOf2(n) {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}
	return &Plan{n: n, plan: plan}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Forward computes the unscaled forward DFT of src into dst. dst and src may
// be the same slice.
func (p *Plan) Forward(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}
	if err := p.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("fourier: forward FFT failed: %w", err)
	}
	return nil
}

// Inverse computes the 1/N-normalised inverse DFT of src into dst.
func (p *Plan) Inverse(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}
	if err := p.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("fourier: inverse FFT failed: %w", err)
	}
	return nil
}

func (p *Plan) check(dst, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: want %d, got dst=%d src=%d", ErrBuffer, p.n, len(dst), len(src))
	}
	return nil
}

// Plan2D computes 2D transforms over a rows x cols row-major grid by
// transforming every row and then every column. The column pass shares one
// scratch buffer, so a Plan2D must not be used by concurrent goroutines;
// give each goroutine its own plan or draw plans from a sync.Pool.
type Plan2D struct {
	rows, cols int
	rowPlan    *algofft.Plan[complex128] // length cols
	colPlan    *algofft.Plan[complex128] // length rows
	column     []complex128
}

// NewPlan2D creates a 2D plan. rows and cols must be powers of two.
func NewPlan2D(rows, cols int) (*Plan2D, error) {
	if !IsPowerOf2(rows) || !IsPowerOf2(cols) {
		return nil, fmt.Errorf("%w: %dx%d is not a power-of-two grid", ErrLength, rows, cols)
	}

	rowPlan, err := algofft.NewPlan64(cols)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create row FFT plan: %w", err)
	}
	colPlan := rowPlan
	if rows != cols {
		colPlan, err = algofft.NewPlan64(rows)
		if err != nil {
			return nil, fmt.Errorf("fourier: failed to create column FFT plan: %w", err)
		}
	}

	return &Plan2D{
		rows:    rows,
		cols:    cols,
		rowPlan: rowPlan,
		colPlan: colPlan,
		column:  make([]complex128, rows),
	}, nil
}

// Rows returns the grid height.
func (p *Plan2D) Rows() int { return p.rows }

// Cols returns the grid width.
func (p *Plan2D) Cols() int { return p.cols }

// Len returns rows*cols.
func (p *Plan2D) Len() int { return p.rows * p.cols }

// Forward computes the unscaled 2D DFT of src into dst. dst and src may be
// the same slice.
func (p *Plan2D) Forward(dst, src []complex128) error {
	return p.transform(dst, src, false)
}

// Inverse computes the 1/(rows*cols)-normalised inverse 2D DFT.
func (p *Plan2D) Inverse(dst, src []complex128) error {
	return p.transform(dst, src, true)
}

func (p *Plan2D) transform(dst, src []complex128, inverse bool) error {
	n := p.rows * p.cols
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: want %d, got dst=%d src=%d", ErrBuffer, n, len(dst), len(src))
	}

	run := p.rowPlan.Forward
	if inverse {
		run = p.rowPlan.Inverse
	}
	for r := 0; r < p.rows; r++ {
		row := r * p.cols
		if err := run(dst[row:row+p.cols], src[row:row+p.cols]); err != nil {
			return fmt.Errorf("fourier: row FFT failed: %w", err)
		}
	}

	run = p.colPlan.Forward
	if inverse {
		run = p.colPlan.Inverse
	}
	col := p.column
	for c := 0; c < p.cols; c++ {
		for r := 0; r < p.rows; r++ {
			col[r] = dst[r*p.cols+c]
		}
		if err := run(col, col); err != nil {
			return fmt.Errorf("fourier: column FFT failed: %w", err)
		}
		for r := 0; r < p.rows; r++ {
			dst[r*p.cols+c] = col[r]
		}
	}
	return nil
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
