package subband_test

import (
	"fmt"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
	"github.com/cwbudde/algo-sensing/stats/subband"
)

func ExampleCalculate() {
	x := tensor.Zeros[float64](4, 4)
	x.Set(1, 0, 0)
	c, _ := wavelet.Decompose(x, wavelet.Haar, 1)

	stats, _ := subband.Calculate(c, 1)
	for _, s := range stats {
		fmt.Printf("%s energy=%.2f peak=%.1f\n", s.Region.Band, s.EnergyFraction, s.Peak)
	}
	// Output:
	// cA energy=0.25 peak=0.5
	// cH energy=0.25 peak=0.5
	// cV energy=0.25 peak=0.5
	// cD energy=0.25 peak=0.5
}
