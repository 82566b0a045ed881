package wavelet

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

func BenchmarkDecomposeInPlace(b *testing.B) {
	for _, w := range []Wavelet{Haar, DB2, DB4} {
		for _, size := range []int{64, 256} {
			b.Run(fmt.Sprintf("%s/%dx%d", w.Name(), size, size), func(b *testing.B) {
				p := tensor.NewPlane(size, size)
				for i := range p.Data {
					p.Data[i] = float64(i % 13)
				}

				b.SetBytes(int64(size * size * 8))
				b.ReportAllocs()
				b.ResetTimer()

				for range b.N {
					_ = DecomposeInPlace(p, w, 4)
				}
			})
		}
	}
}
