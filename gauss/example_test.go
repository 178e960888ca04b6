package gauss_test

import (
	"fmt"

	"github.com/aluzardo/ratsteps/gauss"
	"github.com/aluzardo/ratsteps/parse"
	"github.com/aluzardo/ratsteps/ratmat"
)

// ExampleRREF reduces a 2×2 system and prints the trace descriptions.
func ExampleRREF() {
	m, _ := parse.ParseMatrix("2 1; 1 1")

	res, log, _ := gauss.RREF(m)
	for _, step := range log {
		fmt.Println(step.Description)
	}
	fmt.Println(ratmat.FmtMatrix(res, 2))

	// Output:
	// Initial matrix
	// Divide row 1 by 2
	// R2 <- R2 - (1)*R1
	// Divide row 2 by 1/2
	// R1 <- R1 - (1/2)*R2
	// Result: RREF
	// [[1, 0]
	//  [0, 1]]
}

// ExampleDeterminant computes an exact determinant.
func ExampleDeterminant() {
	m, _ := ratmat.FromInts([][]int64{{1, 2}, {3, 4}})

	det, _, _ := gauss.Determinant(m)
	fmt.Println(ratmat.FmtRat(det))

	// Output:
	// -2
}

// ExampleCramer solves A·x = b and prints the exact components.
func ExampleCramer() {
	a, _ := ratmat.FromInts([][]int64{{2, 1}, {1, 1}})
	b, _ := ratmat.FromInts([][]int64{{3}, {2}})

	res, _, _ := gauss.Cramer(a, b)
	for i, x := range res.Exact {
		fmt.Printf("x_%d = %s\n", i+1, ratmat.FmtRat(x))
	}

	// Output:
	// x_1 = 1
	// x_2 = 1
}

// ExampleInverse inverts a matrix with fractional entries in the result.
func ExampleInverse() {
	a, _ := ratmat.FromInts([][]int64{{1, 2}, {3, 4}})

	inv, _, _ := gauss.Inverse(a)
	fmt.Println(inv.String())

	// Output:
	// [-2, 1]
	// [3/2, -1/2]
}
