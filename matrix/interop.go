// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToDense copies g into a gonum *mat.Dense (row-major, same shape).
// Errors: ErrMalformedGrid when g is empty or ragged.
// Complexity: O(r*c).
func ToDense(g Grid) (*mat.Dense, error) {
	if err := ValidateGrid(g); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	r, c := len(g), len(g[0])
	data := make([]float64, 0, r*c)
	for _, row := range g {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}

// FromDense copies any gonum matrix into a new Grid.
// gonum never builds empty matrices, so the result is always a valid grid.
// Complexity: O(r*c).
func FromDense(m mat.Matrix) Grid {
	r, c := m.Dims()

	return ewFill(r, c, m.At)
}
