// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by engine tests.
//   • Compare grids bit-for-bit so NaN and signed zeros are checked exactly.

package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/matrixnexus/matrix"
)

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

// equateGrids treats NaN as equal to NaN in cmp.Diff.
var equateGrids = cmpopts.EquateNaNs()

// requireGrid fails the test with a readable diff when got != want.
// NaN cells compare equal to NaN cells.
func requireGrid(t testing.TB, want, got matrix.Grid) {
	t.Helper()
	if diff := cmp.Diff(want, got, equateGrids); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// sampleGrids is a small table of valid grids of various shapes, all finite.
func sampleGrids() map[string]matrix.Grid {
	return map[string]matrix.Grid{
		"1x1": {{7}},
		"1x4": {{1, -2, 3.5, 0}},
		"3x1": {{1}, {2}, {3}},
		"2x3": {{1, 2, 3}, {4, 5, 6}},
		"3x3": {{0.5, -1, 2}, {1e10, -1e-10, 3}, {8, 8, 8}},
	}
}

// deepCopy copies without using Grid.Clone so tests do not depend on the code under test.
func deepCopy(g matrix.Grid) matrix.Grid {
	out := make(matrix.Grid, len(g))
	for i, row := range g {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
