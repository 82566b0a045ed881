package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func ExampleEstimate() {
	op := MatrixOperator(mat.NewDense(2, 2, []float64{2, 1, 1, 2}))
	res, _ := Estimate(op, 2, WithIterations(100), WithRayleigh(op))
	fmt.Printf("%.4f\n", real(res.Value))
	// Output:
	// 3.0000
}
