package pattern

import "fmt"

func ExampleLine() {
	g, _ := Line(5, 5, 4, 0, false)
	fmt.Print(g)
	// Output:
	// ..#..
	// ..#..
	// #####
	// ..#..
	// ..#..
}
