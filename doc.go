// SPDX-License-Identifier: MIT

// Package matrixnexus is a small calculator for element-wise arithmetic on
// numeric grids.
//
// A grid is a rectangular table of float64 values with at least one row and
// one column. Ten operations are supported: addition, subtraction,
// multiplication, division and exponentiation, each either between two grids
// of the same shape (m_add, m_sub, m_mult, m_div, m_exp) or between a grid and
// a single number (s_add, s_sub, s_mult, s_div, s_exp). Arithmetic follows
// IEEE-754: division by zero gives ±Inf or NaN instead of an error.
//
// The module is organized as follows:
//
//	matrix/     — Grid, OpID and the pure Compute engine, builders, gonum interop
//	session/    — history of recent calculations and timing statistics
//	converters/ — text, JSON and YAML encodings of a grid
//	workbook/   — HCL files describing chains of calculations
//	config/     — YAML configuration with NEXUS_* environment overrides
//	logging/    — zap logger construction and context plumbing
//	cmd/nexus/  — the command-line front end
//
// Quick example:
//
//	out, err := matrix.Compute(matrix.MustParseOpID("m_add"),
//		matrix.Grid{{1, 2}, {3, 4}},
//		matrix.GridOperand(matrix.Grid{{10, 20}, {30, 40}}))
//	// out == [[11 22] [33 44]]
//
// Or from the shell:
//
//	nexus compute --op s_div --grid "[1, 2]; [3, 4]" --scalar 2
//	nexus run examples/workbooks/calibration.hcl
package matrixnexus
