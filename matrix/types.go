// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the engine, builders and facades.
// This file contains ONLY value types (Grid, Shape, Kind, Mode, OpID) and their
// trivial methods. Errors, validation and kernels live in dedicated files.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Grid is a rectangular 2-D grid of float64 values stored row by row.
// A valid Grid has at least one row, at least one column, and rows of equal length.
// The engine never mutates a Grid it receives; results are freshly allocated.
type Grid [][]float64

// Shape is the (rows, cols) pair of a grid.
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns, measured on the first row
}

// String renders the shape as "r×c".
func (s Shape) String() string {
	return fmt.Sprintf("%d×%d", s.Rows, s.Cols)
}

// Shape reports the row count and the length of the first row.
// An empty grid reports 0×0. Shape does not check rectangularity; see ValidateGrid.
// Complexity: O(1).
func (g Grid) Shape() Shape {
	if len(g) == 0 {
		return Shape{}
	}

	return Shape{Rows: len(g), Cols: len(g[0])}
}

// Clone returns a deep copy of g backed by a single allocation.
// Ragged grids are copied row by row with their own lengths.
// Complexity: O(r*c).
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	total := 0
	for _, row := range g {
		total += len(row)
	}
	buf := make([]float64, total) // one backing buffer for all rows
	out := make(Grid, len(g))
	off := 0
	for i, row := range g {
		out[i] = buf[off : off+len(row) : off+len(row)]
		copy(out[i], row)
		off += len(row)
	}

	return out
}

// Equal reports whether g and h have identical row lengths and bit-identical
// values. NaN equals NaN when the bit patterns match; +0 and -0 differ.
// Complexity: O(r*c).
func (g Grid) Equal(h Grid) bool {
	if len(g) != len(h) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(h[i]) {
			return false
		}
		for j := range g[i] {
			if math.Float64bits(g[i][j]) != math.Float64bits(h[i][j]) {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed line per row using %g, e.g. "[1, 2]\n[3, 4]\n".
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Kind selects the arithmetic applied to each cell pair.
// The zero value is invalid.
type Kind uint8

// Operation kinds.
const (
	KindAdd  Kind = iota + 1 // a + b
	KindSub                  // a − b
	KindMult                 // a × b
	KindDiv                  // a / b
	KindExp                  // a raised to b
)

// Mode selects what the second operand is.
// The zero value is invalid.
type Mode uint8

// Operation modes.
const (
	ModeElement Mode = iota + 1 // grid with grid, cell by cell
	ModeScalar                  // grid with one number
)

// OpID identifies one of the ten supported operations.
// Only the combinations listed by AllOps are valid; the zero value is invalid.
type OpID struct {
	Kind Kind
	Mode Mode
}
