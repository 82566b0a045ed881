package fourier

import "fmt"

func ExamplePlan_Forward() {
	plan, _ := NewPlan(4)
	x := []complex128{1, 0, 0, 0}
	_ = plan.Forward(x, x)
	fmt.Printf("%.0f %.0f %.0f %.0f\n", real(x[0]), real(x[1]), real(x[2]), real(x[3]))
	// Output:
	// 1 1 1 1
}

func ExampleShift() {
	src := []int{0, 1, 2, 3, 4}
	dst := make([]int, len(src))
	Shift(dst, src)
	fmt.Println(dst)
	// Output:
	// [3 4 0 1 2]
}
