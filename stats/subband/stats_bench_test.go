package subband

import (
	"testing"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
	"github.com/cwbudde/algo-sensing/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	x, _ := tensor.FromSlice(testutil.DeterministicNoise(1, 1, 256*256), 256, 256)
	c, err := wavelet.Decompose(x, wavelet.DB4, 4)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = Calculate(c, 4)
	}
}
