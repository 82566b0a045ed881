package fourier

import "fmt"

// Shift2D moves the zero-frequency element of a rows x cols grid from the
// origin to the centre (index rows/2, cols/2), like numpy's fftshift.
// Sampling patterns drawn around the centre of k-space must be passed
// through InverseShift2D before use with the unshifted transforms here.
func Shift2D[T any](dst, src []T, rows, cols int) {
	roll2D(dst, src, rows, cols, rows/2, cols/2)
}

// InverseShift2D undoes [Shift2D], including for odd sizes.
func InverseShift2D[T any](dst, src []T, rows, cols int) {
	roll2D(dst, src, rows, cols, rows-rows/2, cols-cols/2)
}

// Shift moves the zero-frequency element of a 1D spectrum to index n/2.
func Shift[T any](dst, src []T) {
	roll2D(dst, src, 1, len(src), 0, len(src)/2)
}

// InverseShift undoes [Shift].
func InverseShift[T any](dst, src []T) {
	n := len(src)
	roll2D(dst, src, 1, n, 0, n-n/2)
}

// roll2D circularly shifts src by (dr, dc) into dst. dst must not alias src.
func roll2D[T any](dst, src []T, rows, cols, dr, dc int) {
	if len(src) != rows*cols || len(dst) != rows*cols {
		panic(fmt.Sprintf("fourier: shift buffers %d/%d for %dx%d grid", len(dst), len(src), rows, cols))
	}
	for r := 0; r < rows; r++ {
		rr := (r + dr) % rows
		for c := 0; c < cols; c++ {
			cc := (c + dc) % cols
			dst[rr*cols+cc] = src[r*cols+c]
		}
	}
}
