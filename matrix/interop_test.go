// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matrixnexus/matrix"
)

func TestToDense(t *testing.T) {
	t.Parallel()
	g := matrix.Grid{{1, 2, 3}, {4, 5, 6}}
	d, err := matrix.ToDense(g)
	require.NoError(t, err)

	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	// The dense copy is independent of the grid.
	d.Set(0, 0, 99)
	require.Equal(t, 1.0, g[0][0])

	_, err = matrix.ToDense(matrix.Grid{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrMalformedGrid)
}

func TestFromDense_RoundTripMatchesEngine(t *testing.T) {
	t.Parallel()
	a := matrix.Grid{{1, 2}, {3, 4}}
	b := matrix.Grid{{5, 6}, {7, 8}}

	da, err := matrix.ToDense(a)
	require.NoError(t, err)
	db, err := matrix.ToDense(b)
	require.NoError(t, err)

	var sum, prod mat.Dense
	sum.Add(da, db)
	prod.MulElem(da, db)

	want, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireGrid(t, want, matrix.FromDense(&sum))

	want, err = matrix.Mult(a, b)
	require.NoError(t, err)
	requireGrid(t, want, matrix.FromDense(&prod))

	// Transposed views are materialised with the view's shape.
	requireGrid(t, matrix.Grid{{1, 3}, {2, 4}}, matrix.FromDense(da.T()))
}
