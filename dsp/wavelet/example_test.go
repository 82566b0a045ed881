package wavelet

import (
	"fmt"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

func ExampleDecompose() {
	x := tensor.Zeros[float64](4, 4)
	x.Set(1, 0, 0)

	c, _ := Decompose(x, Haar, 1)
	regions, _ := Layout(4, 4, 1)
	for _, r := range regions {
		fmt.Printf("%s %.2f\n", r.Band, c.At(r.Row, r.Col))
	}
	// Output:
	// cA 0.50
	// cH 0.50
	// cV 0.50
	// cD 0.50
}

func ExampleLookup() {
	w, _ := Lookup("DB4")
	fmt.Println(w.Name(), w.Len())
	// Output:
	// db4 8
}
