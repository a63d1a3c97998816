package echelon_test

import (
	"fmt"

	"github.com/katalvlaran/presses/echelon"
	"github.com/katalvlaran/presses/field"
	"github.com/katalvlaran/presses/matrix"
	"github.com/katalvlaran/presses/rational"
)

// ExampleReduce reduces the joltage system of two buttons, A={0} and
// B={0,1}, with targets [5,3] and reads the unique solution.
func ExampleReduce() {
	inc, err := matrix.NewIncidence([][]int{{0}, {0, 1}}, []int{5, 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	m, err := matrix.Augment[rational.Rat](inc, field.Rationals{})
	if err != nil {
		fmt.Println(err)
		return
	}

	red, err := echelon.Reduce[rational.Rat](m, field.Rationals{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(red.Matrix)
	fmt.Println("pivots:", red.Pivots, "free:", red.Free)

	x, err := red.Reconstruct(nil)
	fmt.Println(x, err)
	// Output:
	// [1, 0 | 2]
	// [0, 1 | 3]
	// pivots: [{0 0} {1 1}] free: []
	// [2 3] <nil>
}

// ExampleReduced_Reconstruct shows a free column driving a pivot value.
func ExampleReduced_Reconstruct() {
	// a + c = 4, b + c = 2 over GF(2) after reducing the targets mod 2.
	m, _ := matrix.FromRows([][]field.Bit{
		{1, 0, 1, 0},
		{0, 1, 1, 0},
	})
	red, _ := echelon.Reduce[field.Bit](m, field.GF2{})

	for c := 0; c <= 1; c++ {
		x, _ := red.Reconstruct(map[int]int{2: c})
		fmt.Println(x)
	}
	// Output:
	// [0 0 0]
	// [1 1 1]
}
