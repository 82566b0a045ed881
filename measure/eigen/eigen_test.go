package eigen

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-sensing/dsp/sensing"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
	"github.com/cwbudde/algo-sensing/internal/testutil"
)

func TestEstimateKnownMatrix(t *testing.T) {
	tests := []struct {
		name   string
		matrix *mat.Dense
		want   float64
	}{
		{"symmetric 2x2", mat.NewDense(2, 2, []float64{2, 1, 1, 2}), 3},
		{"diagonal", mat.NewDense(3, 3, []float64{0.5, 0, 0, 0, 4, 0, 0, 0, 1}), 4},
		{"identity", mat.NewDense(2, 2, []float64{1, 0, 0, 1}), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op := MatrixOperator(tc.matrix)
			r, _ := tc.matrix.Dims()
			res, err := Estimate(op, r, WithIterations(200), WithRayleigh(op))
			if err != nil {
				t.Fatal(err)
			}
			if !res.HasValue {
				t.Fatal("HasValue not set")
			}
			if math.Abs(real(res.Value)-tc.want) > 1e-9 || math.Abs(imag(res.Value)) > 1e-12 {
				t.Fatalf("eigenvalue %v, want %v", res.Value, tc.want)
			}
		})
	}
}

func TestEstimateVector(t *testing.T) {
	op := MatrixOperator(mat.NewDense(2, 2, []float64{2, 1, 1, 2}))
	res, err := Estimate(op, 2, WithIterations(100))
	if err != nil {
		t.Fatal(err)
	}
	if res.HasValue {
		t.Fatal("HasValue set without a Rayleigh operator")
	}
	want := 1 / math.Sqrt2
	for i, v := range res.Vector {
		if math.Abs(cmplx.Abs(v)-want) > 1e-9 {
			t.Fatalf("component %d = %v, want magnitude %v", i, v, want)
		}
	}
}

func TestEstimateDeterministic(t *testing.T) {
	op := func(x []complex128) ([]complex128, error) { return x, nil }

	a, err := Estimate(op, 8, WithIterations(0), WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Estimate(op, 8, WithIterations(0), WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, a.Vector, b.Vector, 0)

	for _, v := range a.Vector {
		if imag(v) != 0 || real(v) < 0 {
			t.Fatalf("initial vector not real non-negative: %v", v)
		}
	}
}

func TestEstimateErrors(t *testing.T) {
	identity := func(x []complex128) ([]complex128, error) { return x, nil }
	zero := func(x []complex128) ([]complex128, error) { return make([]complex128, len(x)), nil }
	short := func(x []complex128) ([]complex128, error) { return x[:1], nil }
	failing := func([]complex128) ([]complex128, error) { return nil, errors.New("boom") }

	tests := []struct {
		name string
		op   Operator
		dim  int
		opts []Option
		want error
	}{
		{"zero dim", identity, 0, nil, ErrDimension},
		{"negative iterations", identity, 4, []Option{WithIterations(-1)}, ErrIterations},
		{"zero vector", zero, 4, nil, ErrZeroVector},
		{"wrong length", short, 4, nil, ErrDimension},
		{"rayleigh wrong length", identity, 4, []Option{WithIterations(1), WithRayleigh(short)}, ErrDimension},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Estimate(tc.op, tc.dim, tc.opts...); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := Estimate(failing, 4); err == nil {
		t.Fatal("expected operator error")
	}
}

func TestQuotientConjugatesDenominator(t *testing.T) {
	x := []complex128{1i, 1}
	identity := func(v []complex128) ([]complex128, error) { return v, nil }
	q, err := Quotient(identity, x)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(q-1) > 1e-15 {
		t.Fatalf("quotient %v, want 1", q)
	}
}

func TestNormalOperatorSpectralNorm(t *testing.T) {
	tests := []struct {
		name string
		mask *sensing.Mask
	}{
		{"full", sensing.FullMask(16, 16)},
		{"random", mustMask(t, testutil.DeterministicMask(3, 0.3, 256), 16, 16)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, err := sensing.NewFourierWavelet(wavelet.DB2, 2, tc.mask)
			if err != nil {
				t.Fatal(err)
			}
			res, err := EstimatePair(op, WithIterations(20))
			if err != nil {
				t.Fatal(err)
			}
			v := real(res.Value)
			if math.Abs(v-1) > 1e-9 || v > 1+1e-9 {
				t.Fatalf("dominant eigenvalue %v, want 1", res.Value)
			}
		})
	}
}

func mustMask(t *testing.T, bits []bool, rows, cols int) *sensing.Mask {
	t.Helper()
	m, err := sensing.NewMask(bits, rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRayleighMatrix(t *testing.T) {
	r := Rayleigh(mat.NewDense(2, 2, []float64{2, 1, 1, 2}))
	q, err := r([]complex128{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(q-3) > 1e-12 {
		t.Fatalf("quotient %v, want 3", q)
	}
	if _, err := r([]complex128{1, 1, 1}); !errors.Is(err, ErrDimension) {
		t.Fatalf("got %v, want ErrDimension", err)
	}
	if _, err := r([]complex128{0, 0}); !errors.Is(err, ErrZeroVector) {
		t.Fatalf("got %v, want ErrZeroVector", err)
	}
}

func TestEstimateInPlaceOperator(t *testing.T) {
	scale := func(x []complex128) ([]complex128, error) {
		x[0] *= 3
		return x, nil
	}
	res, err := Estimate(scale, 2, WithIterations(60), WithRayleigh(scale))
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(res.Value-3) > 1e-9 {
		t.Fatalf("value %v, want 3", res.Value)
	}
	var norm float64
	for _, v := range res.Vector {
		norm += real(v)*real(v) + imag(v)*imag(v)
	}
	if math.Abs(norm-1) > 1e-12 {
		t.Fatalf("vector %v has squared norm %v, want 1", res.Vector, norm)
	}
	if math.Abs(cmplx.Abs(res.Vector[0])-1) > 1e-9 {
		t.Fatalf("vector %v, want dominant axis", res.Vector)
	}

	x := []complex128{1, 2}
	if _, err := Quotient(scale, x); err != nil {
		t.Fatal(err)
	}
	if x[0] != 1 || x[1] != 2 {
		t.Fatalf("Quotient modified its argument: %v", x)
	}
}
