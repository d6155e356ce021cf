// SPDX-License-Identifier: MIT

package matrix

import "strconv"

// Operand is the second input of an operation: either a grid (element mode) or a
// single number (scalar mode). Build one with GridOperand or ScalarOperand; the
// zero Operand matches no mode and is rejected by Compute.
type Operand struct {
	grid   Grid
	scalar float64
	mode   Mode
}

// GridOperand wraps g as an element-mode operand. The grid is not copied; Compute
// only reads it.
func GridOperand(g Grid) Operand {
	return Operand{grid: g, mode: ModeElement}
}

// ScalarOperand wraps s as a scalar-mode operand. NaN and ±Inf are accepted and
// propagate arithmetically.
func ScalarOperand(s float64) Operand {
	return Operand{scalar: s, mode: ModeScalar}
}

// Mode reports which operation mode the operand belongs to.
func (o Operand) Mode() Mode { return o.mode }

// Grid returns the wrapped grid and true for element-mode operands.
func (o Operand) Grid() (Grid, bool) {
	return o.grid, o.mode == ModeElement
}

// Scalar returns the wrapped number and true for scalar-mode operands.
func (o Operand) Scalar() (float64, bool) {
	return o.scalar, o.mode == ModeScalar
}

// Clone returns an operand whose grid (if any) is a deep copy.
func (o Operand) Clone() Operand {
	o.grid = o.grid.Clone()

	return o
}

// String renders a scalar with %g and a grid with its shape, e.g. "2" or "grid 2×3".
func (o Operand) String() string {
	switch o.mode {
	case ModeScalar:
		return strconv.FormatFloat(o.scalar, 'g', -1, 64)
	case ModeElement:
		return "grid " + o.grid.Shape().String()
	default:
		return "<none>"
	}
}
