package tensor

import "fmt"

// Plane is a strided 2D view into a float64 buffer. Element (r, c) lives at
// Data[Offset+r*Stride+c].
type Plane struct {
	Data   []float64
	Offset int
	Rows   int
	Cols   int
	Stride int
}

// NewPlane allocates a contiguous zero-filled plane.
func NewPlane(rows, cols int) Plane {
	return Plane{
		Data:   make([]float64, rows*cols),
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
	}
}

// PlaneOf returns a plane viewing a 2D array. The plane aliases d.
func PlaneOf(d *Dense[float64]) (Plane, error) {
	if d.Rank() != 2 {
		return Plane{}, fmt.Errorf("%w: plane view needs rank 2, got shape %v", ErrShape, d.shape)
	}
	return Plane{Data: d.data, Rows: d.shape[0], Cols: d.shape[1], Stride: d.shape[1]}, nil
}

// PlaneFrom wraps a contiguous row-major buffer of rows*cols elements.
func PlaneFrom(data []float64, rows, cols int) Plane {
	if len(data) < rows*cols {
		panic(fmt.Sprintf("tensor: buffer of %d elements too short for %dx%d plane", len(data), rows, cols))
	}
	return Plane{Data: data, Rows: rows, Cols: cols, Stride: cols}
}

// At returns element (r, c).
func (p Plane) At(r, c int) float64 {
	return p.Data[p.Offset+r*p.Stride+c]
}

// Set stores v at (r, c).
func (p Plane) Set(r, c int, v float64) {
	p.Data[p.Offset+r*p.Stride+c] = v
}

// Row returns row r as a slice aliasing the plane.
func (p Plane) Row(r int) []float64 {
	start := p.Offset + r*p.Stride
	return p.Data[start : start+p.Cols : start+p.Cols]
}

// Sub returns the rows x cols region starting at (r0, c0).
func (p Plane) Sub(r0, c0, rows, cols int) Plane {
	if r0 < 0 || c0 < 0 || r0+rows > p.Rows || c0+cols > p.Cols {
		panic(fmt.Sprintf("tensor: region (%d,%d)+%dx%d outside %dx%d plane", r0, c0, rows, cols, p.Rows, p.Cols))
	}
	return Plane{
		Data:   p.Data,
		Offset: p.Offset + r0*p.Stride + c0,
		Rows:   rows,
		Cols:   cols,
		Stride: p.Stride,
	}
}

// CopyFrom copies src into p. Both planes must have the same extent.
func (p Plane) CopyFrom(src Plane) {
	if p.Rows != src.Rows || p.Cols != src.Cols {
		panic(fmt.Sprintf("tensor: copy %dx%d into %dx%d", src.Rows, src.Cols, p.Rows, p.Cols))
	}
	for r := 0; r < p.Rows; r++ {
		copy(p.Row(r), src.Row(r))
	}
}

// Clone returns a contiguous copy of p.
func (p Plane) Clone() Plane {
	out := NewPlane(p.Rows, p.Cols)
	out.CopyFrom(p)
	return out
}

// Dense returns the plane contents as a new 2D array.
func (p Plane) Dense() *Dense[float64] {
	return &Dense[float64]{shape: []int{p.Rows, p.Cols}, data: p.Clone().Data}
}
