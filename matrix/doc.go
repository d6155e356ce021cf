// SPDX-License-Identifier: MIT

// Package matrix is the element-wise grid arithmetic engine of matrixnexus.
//
// The matrix package provides:
//
//   - Grid, a rectangular row-major [][]float64 value with shape helpers.
//   - A closed operation vocabulary: five kinds (add, sub, mult, div, exp) in two
//     modes (element, scalar), ten identifiers in total (OpID, ParseOpID, AllOps).
//   - Compute, a pure function applying an operation to a primary grid and an
//     Operand (a second grid or a scalar), always returning a fresh grid.
//   - Builders (Zeros, Identity, Filled, Random) and gonum interop (ToDense, FromDense).
//
// Numeric policy: results follow IEEE-754 exactly. Division by zero, negative bases
// raised to fractional powers and overflow produce ±Inf or NaN, and those values are
// propagated unchanged. Nothing is clamped or rejected on numeric grounds.
//
// Errors are package sentinels (ErrUnknownOperation, ErrMalformedGrid,
// ErrDimensionMismatch, ErrOperandMismatch) wrapped with a call-site tag; match them
// with errors.Is. DimensionError and MalformedError carry the offending shapes.
//
// Every function in this package is stateless and safe for concurrent use as long as
// the caller does not mutate input grids during a call.
package matrix
