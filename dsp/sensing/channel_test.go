package sensing

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
	"github.com/cwbudde/algo-sensing/internal/testutil"
)

func TestChannelOperatorMatchesComplex(t *testing.T) {
	op, err := NewFourierWavelet(wavelet.DB2, 2, randomMask(t, 11, 0.4, 16, 16))
	if err != nil {
		t.Fatal(err)
	}
	ch := NewChannelOperator(op)
	x := complexGrid(t, 12, 16, 16)

	want, err := op.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ch.Forward(tensor.ToChannels(x))
	if err != nil {
		t.Fatal(err)
	}
	gotComplex, err := tensor.ToComplex(got)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, gotComplex.Data(), want.Data(), 1e-12)

	wantAdj, err := op.Adjoint(want)
	if err != nil {
		t.Fatal(err)
	}
	gotAdj, err := ch.Adjoint(got)
	if err != nil {
		t.Fatal(err)
	}
	gotAdjComplex, _ := tensor.ToComplex(gotAdj)
	testutil.RequireComplexNearlyEqual(t, gotAdjComplex.Data(), wantAdj.Data(), 1e-12)
}

func TestChannelOperatorBatch(t *testing.T) {
	op, err := NewFourierWavelet(wavelet.Haar, 3, randomMask(t, 13, 0.5, 8, 8))
	if err != nil {
		t.Fatal(err)
	}
	ch := NewChannelOperator(op)

	batch := complexGrid(t, 14, 3, 8, 8)
	got, err := ch.Forward(tensor.ToChannels(batch))
	if err != nil {
		t.Fatal(err)
	}
	if shape := got.Shape(); len(shape) != 4 || shape[0] != 3 || shape[3] != 2 {
		t.Fatalf("shape %v", shape)
	}

	for b := 0; b < 3; b++ {
		item, _ := tensor.FromSlice(batch.Data()[b*64:(b+1)*64], 8, 8)
		want, err := op.Forward(item)
		if err != nil {
			t.Fatal(err)
		}
		gotItem, _ := tensor.FromSlice(got.Data()[b*128:(b+1)*128], 8, 8, 2)
		gotComplex, _ := tensor.ToComplex(gotItem)
		testutil.RequireComplexNearlyEqual(t, gotComplex.Data(), want.Data(), 1e-12)
	}
}

func TestChannelOperatorAdjointness(t *testing.T) {
	op, err := NewFourierWavelet(wavelet.DB4, 2, randomMask(t, 15, 0.3, 16, 16))
	if err != nil {
		t.Fatal(err)
	}
	ch := NewChannelOperator(op)
	x := tensor.ToChannels(complexGrid(t, 16, 2, 16, 16))
	y := tensor.ToChannels(complexGrid(t, 17, 2, 16, 16))

	ax, err := ch.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	aty, err := ch.Adjoint(y)
	if err != nil {
		t.Fatal(err)
	}
	// The real inner product of channel tensors is Re<.,.> of the complex pair.
	lhs, _ := tensor.InnerReal(ax, y)
	rhs, _ := tensor.InnerReal(x, aty)
	if rel := testutil.RelativeError(complex(lhs, 0), complex(rhs, 0)); rel > 1e-6 {
		t.Fatalf("<Ax,y>=%v, <x,A*y>=%v", lhs, rhs)
	}
}

func TestChannelOperatorShapeErrors(t *testing.T) {
	op, err := NewFourierWavelet(wavelet.Haar, 1, FullMask(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	ch := NewChannelOperator(op)
	for _, shape := range [][]int{{8, 8}, {8, 8, 1}, {4, 8, 2}, {1, 1, 8, 8, 2}} {
		if _, err := ch.Forward(tensor.Zeros[float64](shape...)); !errors.Is(err, ErrShape) {
			t.Fatalf("shape %v: got %v, want ErrShape", shape, err)
		}
	}
}
