package wavelet

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Errors returned by wavelet constructors and transforms.
var (
	ErrUnknownWavelet = errors.New("wavelet: unknown wavelet")
	ErrFilter         = errors.New("wavelet: filter is not orthonormal")
	ErrLevels         = errors.New("wavelet: invalid level count")
	ErrShape          = errors.New("wavelet: invalid array shape")
)

const orthoTol = 1e-8

// Wavelet is an orthonormal two-channel filter bank. The zero value is not
// usable.
type Wavelet struct {
	name string
	lo   []float64
	hi   []float64
}

// Name returns the wavelet name.
func (w Wavelet) Name() string { return w.name }

// Len returns the filter length.
func (w Wavelet) Len() int { return len(w.lo) }

// LowPass returns a copy of the scaling (low-pass) filter.
func (w Wavelet) LowPass() []float64 { return append([]float64(nil), w.lo...) }

// HighPass returns a copy of the wavelet (high-pass) filter.
func (w Wavelet) HighPass() []float64 { return append([]float64(nil), w.hi...) }

// String implements fmt.Stringer.
func (w Wavelet) String() string { return w.name }

// New builds a wavelet from an orthonormal scaling filter. The filter must
// have even length, sum to sqrt(2) and be orthogonal to its own even shifts.
func New(name string, lowPass []float64) (Wavelet, error) {
	if err := validateFilter(lowPass); err != nil {
		return Wavelet{}, fmt.Errorf("%w: %s: %v", ErrFilter, name, err)
	}

	lo := append([]float64(nil), lowPass...)
	return Wavelet{name: name, lo: lo, hi: quadratureMirror(lo)}, nil
}

func mustNew(name string, lowPass []float64) Wavelet {
	w, err := New(name, lowPass)
	if err != nil {
		panic(err)
	}
	return w
}

var (
	sqrt3 = math.Sqrt(3)
	norm2 = 4 * math.Sqrt2

	// Haar is the two-tap averaging/differencing wavelet (db1).
	Haar = mustNew("haar", []float64{1 / math.Sqrt2, 1 / math.Sqrt2})

	// DB2 is the four-tap Daubechies wavelet.
	DB2 = mustNew("db2", []float64{
		(1 + sqrt3) / norm2,
		(3 + sqrt3) / norm2,
		(3 - sqrt3) / norm2,
		(1 - sqrt3) / norm2,
	})

	// DB3 is the six-tap Daubechies wavelet.
	DB3 = mustNew("db3", []float64{
		0.3326705529500826,
		0.8068915093110925,
		0.4598775021184915,
		-0.1350110200102546,
		-0.0854412738820267,
		0.0352262918857095,
	})

	// DB4 is the eight-tap Daubechies wavelet.
	DB4 = mustNew("db4", []float64{
		0.2303778133088964,
		0.7148465705529154,
		0.6308807679298587,
		-0.0279837694168599,
		-0.1870348117190931,
		0.0308413818355607,
		0.0328830116668852,
		-0.0105974017850690,
	})
)

var builtin = map[string]Wavelet{
	"haar": Haar,
	"db1":  Haar,
	"db2":  DB2,
	"db3":  DB3,
	"db4":  DB4,
}

// Lookup returns a built-in wavelet by name (case-insensitive).
func Lookup(name string) (Wavelet, error) {
	w, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Wavelet{}, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
	}
	return w, nil
}

// Names returns the sorted names accepted by [Lookup].
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// quadratureMirror derives g[j] = (-1)^j h[L-1-j].
func quadratureMirror(h []float64) []float64 {
	n := len(h)
	g := make([]float64, n)
	for j := range g {
		g[j] = h[n-1-j]
		if j%2 == 1 {
			g[j] = -g[j]
		}
	}
	return g
}

func validateFilter(h []float64) error {
	if len(h) < 2 || len(h)%2 != 0 {
		return fmt.Errorf("length %d must be even and >= 2", len(h))
	}

	sum := 0.0
	for _, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite tap %v", v)
		}
		sum += v
	}
	if math.Abs(sum-math.Sqrt2) > orthoTol {
		return fmt.Errorf("taps sum to %g, want sqrt(2)", sum)
	}

	for shift := 0; shift < len(h); shift += 2 {
		acc := 0.0
		for j := 0; j+shift < len(h); j++ {
			acc += h[j] * h[j+shift]
		}
		want := 0.0
		if shift == 0 {
			want = 1
		}
		if math.Abs(acc-want) > orthoTol {
			return fmt.Errorf("shift %d correlation %g, want %g", shift, acc, want)
		}
	}
	return nil
}
