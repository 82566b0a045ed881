package fourier

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/cwbudde/algo-sensing/internal/testutil"
)

func naiveDFT2D(src []complex128, rows, cols int) []complex128 {
	out := make([]complex128, rows*cols)
	for u := 0; u < rows; u++ {
		for v := 0; v < cols; v++ {
			var sum complex128
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					phase := -2 * math.Pi * (float64(u*r)/float64(rows) + float64(v*c)/float64(cols))
					sum += src[r*cols+c] * cmplx.Exp(complex(0, phase))
				}
			}
			out[u*cols+v] = sum
		}
	}
	return out
}

func TestPlan2DMatchesNaiveDFT(t *testing.T) {
	shapes := [][2]int{{4, 4}, {4, 8}, {8, 2}}
	for _, s := range shapes {
		rows, cols := s[0], s[1]
		src := testutil.DeterministicComplexNoise(int64(rows*cols), 1, rows*cols)

		p, err := NewPlan2D(rows, cols)
		if err != nil {
			t.Fatal(err)
		}
		got := make([]complex128, rows*cols)
		if err := p.Forward(got, src); err != nil {
			t.Fatal(err)
		}
		testutil.RequireComplexNearlyEqual(t, got, naiveDFT2D(src, rows, cols), 1e-9)
	}
}

func TestPlan2DInverseRoundTripInPlace(t *testing.T) {
	const rows, cols = 16, 32
	src := testutil.DeterministicComplexNoise(3, 2, rows*cols)
	buf := append([]complex128(nil), src...)

	p, err := NewPlan2D(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Forward(buf, buf); err != nil {
		t.Fatal(err)
	}
	if err := p.Inverse(buf, buf); err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, buf, src, 1e-10)
}

func TestPlan2DParseval(t *testing.T) {
	const rows, cols = 8, 8
	src := testutil.DeterministicComplexNoise(5, 1, rows*cols)
	p, _ := NewPlan2D(rows, cols)
	spec := make([]complex128, len(src))
	if err := p.Forward(spec, src); err != nil {
		t.Fatal(err)
	}

	et := Energy(src)
	ef := Energy(spec) / float64(rows*cols)
	if math.Abs(et-ef) > 1e-9*et {
		t.Fatalf("time energy %v, frequency energy %v", et, ef)
	}
}

func TestPlan1DImpulseIsFlat(t *testing.T) {
	p, err := NewPlan(16)
	if err != nil {
		t.Fatal(err)
	}
	src := make([]complex128, 16)
	src[0] = 1
	dst := make([]complex128, 16)
	if err := p.Forward(dst, src); err != nil {
		t.Fatal(err)
	}
	for i, v := range dst {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1", i, v)
		}
	}

	back := make([]complex128, 16)
	if err := p.Inverse(back, dst); err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, back, src, 1e-12)
}

func TestPlanErrors(t *testing.T) {
	if _, err := NewPlan(12); !errors.Is(err, ErrLength) {
		t.Fatalf("err = %v, want ErrLength", err)
	}
	if _, err := NewPlan2D(8, 6); !errors.Is(err, ErrLength) {
		t.Fatalf("err = %v, want ErrLength", err)
	}

	p, _ := NewPlan(8)
	if err := p.Forward(make([]complex128, 4), make([]complex128, 8)); !errors.Is(err, ErrBuffer) {
		t.Fatalf("err = %v, want ErrBuffer", err)
	}
	q, _ := NewPlan2D(4, 4)
	if err := q.Inverse(make([]complex128, 16), make([]complex128, 8)); !errors.Is(err, ErrBuffer) {
		t.Fatalf("err = %v, want ErrBuffer", err)
	}
	if q.Len() != 16 || q.Rows() != 4 || q.Cols() != 4 {
		t.Fatal("unexpected plan geometry")
	}
}

func TestPlan2DPooledConcurrentUse(t *testing.T) {
	const rows, cols = 16, 8
	pool := sync.Pool{New: func() any {
		p, err := NewPlan2D(rows, cols)
		if err != nil {
			panic(err)
		}
		return p
	}}

	inputs := make([][]complex128, 8)
	want := make([][]complex128, len(inputs))
	serial, err := NewPlan2D(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	for i := range inputs {
		inputs[i] = testutil.DeterministicComplexNoise(int64(i+1), 1, rows*cols)
		want[i] = make([]complex128, rows*cols)
		if err := serial.Forward(want[i], inputs[i]); err != nil {
			t.Fatal(err)
		}
	}

	got := make([][]complex128, len(inputs))
	errs := make([]error, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := pool.Get().(*Plan2D)
			defer pool.Put(p)
			for k := 0; k < 20; k++ {
				got[i] = make([]complex128, rows*cols)
				if errs[i] = p.Forward(got[i], inputs[i]); errs[i] != nil {
					return
				}
			}
		}(i)
	}
	wg.Wait()

	for i := range inputs {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		testutil.RequireComplexNearlyEqual(t, got[i], want[i], 1e-12)
	}
}
