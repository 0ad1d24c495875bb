// SPDX-License-Identifier: MIT

package matrix_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/matrices/matrix"
	"github.com/katalvlaran/matrices/parallel"
)

// ExampleNew shows the identity-like default of a fresh matrix.
func ExampleNew() {
	fmt.Print(matrix.New[int](2, 3))
	// Output:
	// [1, 0, 0]
	// [0, 1, 0]
}

// ExampleDense_Mul multiplies under the rows-equal-columns rule.
func ExampleDense_Mul() {
	a := matrix.NewFromValues(3, 2, 1, 2, 3, 4, 5, 6)
	b := matrix.NewFromValues(2, 3, 1, 0, 1, 0, 1, 1)
	p, err := a.Mul(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)

	_, err = matrix.New[int](2, 3).Mul(matrix.New[int](3, 3))
	fmt.Println(err)
	// Output:
	// [1, 2, 3]
	// [3, 4, 7]
	// [5, 6, 11]
	// Mul: validateMulShape: left rows 2 != right cols 3: matrix: dimension mismatch
}

// ExampleDense_MulParallel computes the same product on a bounded pool.
func ExampleDense_MulParallel() {
	a := matrix.NewFromValues(2, 2, 1, 2, 3, 4)
	p, err := a.MulParallel(context.Background(), a, parallel.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)
	// Output:
	// [7, 10]
	// [15, 22]
}

// ExampleDense_InverseWith contrasts the two pivoting policies.
func ExampleDense_InverseWith() {
	swap := matrix.NewFromValues(2, 2, 0.0, 1.0, 1.0, 0.0)

	_, err := swap.InverseWith(matrix.PivotNaive)
	fmt.Println(err)

	inv, _ := swap.InverseWith(matrix.PivotPartial)
	fmt.Print(inv)
	// Output:
	// Inverse: zero pivot at row 0 (naive): matrix: singular matrix
	// [0, 1]
	// [1, 0]
}

// ExampleSubmatrix takes a 2×2 window from a fixed 3×3 matrix.
func ExampleSubmatrix() {
	m, _ := matrix.FixedFromValues[int, matrix.D3, matrix.D3](1, 2, 3, 4, 5, 6, 7, 8, 9)
	sub, err := matrix.Submatrix[matrix.D2, matrix.D2, matrix.D1, matrix.O0](m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(sub)
	// Output:
	// [4, 5]
	// [7, 8]
}
