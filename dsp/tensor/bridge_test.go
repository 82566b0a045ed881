package tensor

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sensing/internal/testutil"
)

func TestChannelBridgeRoundTripExact(t *testing.T) {
	shapes := [][]int{{8}, {4, 4}, {2, 4, 4}, {3, 2, 2, 1}}
	for _, shape := range shapes {
		n := 1
		for _, s := range shape {
			n *= s
		}
		x, err := FromSlice(testutil.DeterministicComplexNoise(int64(n), 3, n), shape...)
		if err != nil {
			t.Fatal(err)
		}

		ch := ToChannels(x)
		if ch.Rank() != x.Rank()+1 || ch.Dim(-1) != 2 {
			t.Fatalf("shape %v: channel shape %v", shape, ch.Shape())
		}

		back, err := ToComplex(ch)
		if err != nil {
			t.Fatal(err)
		}
		if !SameShape(back, x) {
			t.Fatalf("shape %v: round trip shape %v", shape, back.Shape())
		}
		for i := range x.Data() {
			if back.Data()[i] != x.Data()[i] {
				t.Fatalf("shape %v: index %d: %v != %v", shape, i, back.Data()[i], x.Data()[i])
			}
		}
	}
}

func TestToChannelsLayout(t *testing.T) {
	x, _ := FromSlice([]complex128{1 + 2i, 3 - 4i}, 1, 2)
	ch := ToChannels(x)
	if ch.At(0, 1, 0) != 3 || ch.At(0, 1, 1) != -4 || ch.At(0, 0, 1) != 2 {
		t.Fatalf("channel layout = %v", ch.Data())
	}
}

func TestChannelAxisConvention(t *testing.T) {
	x, _ := FromSlice(testutil.DeterministicComplexNoise(5, 1, 2*4*4), 2, 4, 4, 1)

	ch, err := ToChannelAxis(x)
	if err != nil {
		t.Fatal(err)
	}
	if got := ch.Shape(); got[3] != 2 || len(got) != 4 {
		t.Fatalf("ToChannelAxis shape = %v", got)
	}

	back, err := ToComplexAxis(ch)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, back.Data(), x.Data(), 0)
	if back.Dim(-1) != 1 {
		t.Fatalf("ToComplexAxis shape = %v", back.Shape())
	}
}

func TestBridgeContractErrors(t *testing.T) {
	if _, err := ToComplex(Zeros[float64](4, 4, 3)); !errors.Is(err, ErrChannels) {
		t.Fatalf("ToComplex err = %v, want ErrChannels", err)
	}
	if _, err := ToComplex(Zeros[float64](2)); !errors.Is(err, ErrChannels) {
		t.Fatalf("rank-1 ToComplex err = %v, want ErrChannels", err)
	}
	if _, err := ToChannelAxis(Zeros[complex128](4, 4, 2)); !errors.Is(err, ErrChannels) {
		t.Fatalf("ToChannelAxis err = %v, want ErrChannels", err)
	}
	if _, err := ToComplexAxis(Zeros[float64](4, 4, 1)); !errors.Is(err, ErrChannels) {
		t.Fatalf("ToComplexAxis err = %v, want ErrChannels", err)
	}
}

func TestSplitJoin(t *testing.T) {
	src := []complex128{1 + 1i, -2, 3i}
	re := make([]float64, 3)
	im := make([]float64, 3)
	Split(re, im, src)
	testutil.RequireSliceNearlyEqual(t, re, []float64{1, -2, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, im, []float64{1, 0, 3}, 0)

	dst := make([]complex128, 3)
	Join(dst, re, im)
	testutil.RequireComplexNearlyEqual(t, dst, src, 0)
}
