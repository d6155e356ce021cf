// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/matrixnexus/matrix"
)

func TestValidateGrid(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		g       matrix.Grid
		wantErr bool
		msg     string
	}{
		{"valid 1x1", matrix.Grid{{1}}, false, ""},
		{"valid 2x3", matrix.Grid{{1, 2, 3}, {4, 5, 6}}, false, ""},
		{"nil", nil, true, "matrix: malformed grid: no rows"},
		{"empty", matrix.Grid{}, true, "matrix: malformed grid: no rows"},
		{"zero columns", matrix.Grid{{}, {}}, true, "matrix: malformed grid: no columns"},
		{"ragged", matrix.Grid{{1, 2}, {3, 4, 5}}, true, "matrix: malformed grid: row 1 has 3 columns, want 2"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateGrid(tc.g)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateGrid err=%v, wantErr=%v", err, tc.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, matrix.ErrMalformedGrid) {
				t.Fatalf("want ErrMalformedGrid, got %v", err)
			}
			if err.Error() != tc.msg {
				t.Fatalf("message = %q, want %q", err.Error(), tc.msg)
			}
		})
	}
}

func TestValidateOperandShape(t *testing.T) {
	t.Parallel()
	want := matrix.Shape{Rows: 2, Cols: 2}

	if err := matrix.ValidateOperandShape(want, matrix.Grid{{1, 2}, {3, 4}}); err != nil {
		t.Fatalf("same shape: unexpected %v", err)
	}
	// Only the first row is measured.
	if err := matrix.ValidateOperandShape(want, matrix.Grid{{1, 2}, {3}}); err != nil {
		t.Fatalf("narrow check: unexpected %v", err)
	}
	err := matrix.ValidateOperandShape(want, matrix.Grid{{1, 2, 3}, {4, 5, 6}})
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	var de *matrix.DimensionError
	if !errors.As(err, &de) || de.Actual != (matrix.Shape{Rows: 2, Cols: 3}) {
		t.Fatalf("DimensionError = %+v", de)
	}
}
