package kspace_test

import (
	"fmt"

	"github.com/cwbudde/algo-sensing/dsp/sensing"
	"github.com/cwbudde/algo-sensing/stats/kspace"
)

func ExampleCalculate() {
	m, _ := sensing.NewMask([]bool{
		true, true, false, false,
		false, false, false, false,
		false, false, false, false,
		false, false, false, false,
	}, 4, 4)

	s, _ := kspace.Calculate(m, nil)
	fmt.Printf("rate=%.3f dc=%v centroid=%.3f\n", s.Rate, s.DCSampled, s.Centroid)
	// Output:
	// rate=0.125 dc=true centroid=0.125
}
