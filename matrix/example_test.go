// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// ExampleCompute shows one element-mode and one scalar-mode call.
func ExampleCompute() {
	a := matrix.Grid{{1, 2}, {3, 4}}
	b := matrix.Grid{{5, 6}, {7, 8}}

	prod, _ := matrix.Compute(matrix.MustParseOpID("m_mult"), a, matrix.GridOperand(b))
	fmt.Print(prod)

	half, _ := matrix.Compute(matrix.MustParseOpID("s_div"), a, matrix.ScalarOperand(2))
	fmt.Print(half)

	// Output:
	// [5, 12]
	// [21, 32]
	// [0.5, 1]
	// [1.5, 2]
}

// ExampleComputeNamed shows IEEE-754 propagation on division by zero.
func ExampleComputeNamed() {
	out, err := matrix.ComputeNamed("s_div", matrix.Grid{{4, 2}, {0, -4}}, matrix.ScalarOperand(0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)

	// Output:
	// [+Inf, +Inf]
	// [NaN, -Inf]
}

// ExampleDimensionError shows how to inspect a shape mismatch.
func ExampleDimensionError() {
	_, err := matrix.Add(matrix.Grid{{1, 2, 3}, {4, 5, 6}}, matrix.Grid{{1, 2}, {3, 4}, {5, 6}})

	var de *matrix.DimensionError
	if errors.As(err, &de) {
		fmt.Println("expected", de.Expected, "got", de.Actual)
	}
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// expected 2×3 got 3×2
	// true
}

// ExampleAllOps lists the closed operation vocabulary.
func ExampleAllOps() {
	for _, op := range matrix.AllOps() {
		fmt.Printf("%-7s %s\n", op, op.DisplayName())
	}

	// Output:
	// m_add   Matrix Addition
	// m_sub   Matrix Subtraction
	// m_mult  Matrix Multiplication
	// m_div   Matrix Division
	// m_exp   Matrix Exponentiation
	// s_add   Scalar Addition
	// s_sub   Scalar Subtraction
	// s_mult  Scalar Multiplication
	// s_div   Scalar Division
	// s_exp   Scalar Exponentiation
}

// ExampleIdentity builds a non-square identity grid.
func ExampleIdentity() {
	g, _ := matrix.Identity(2, 3)
	fmt.Print(g)

	// Output:
	// [1, 0, 0]
	// [0, 1, 0]
}
