// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for grid validation checks.
//  - Keep the engine minimal by delegating emptiness/rectangularity/shape checks here.
//  - Return plain sentinel-backed errors (no call-site tag) so callers wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//  - ValidateGrid is O(r); ValidateOperandShape is O(1).
//
// Note:
//  - ValidateOperandShape deliberately compares row count and FIRST-ROW length only.
//    Rectangularity of the operand is a separate ValidateGrid call.

package matrix

// ValidateGrid – Ensures g has at least one row, at least one column, and rows of
// equal length.
//
// Inputs: Grid value (nil is treated as empty).
// Returns: nil or *MalformedError (unwraps to ErrMalformedGrid).
// Complexity: O(r).
func ValidateGrid(g Grid) error {
	// No rows at all.
	if len(g) == 0 {
		return &MalformedError{Row: -1}
	}
	// First row fixes the width; zero columns is malformed.
	want := len(g[0])
	if want == 0 {
		return &MalformedError{Row: 0, Want: 0, Got: 0}
	}
	// Every subsequent row must match the first.
	for i := 1; i < len(g); i++ {
		if len(g[i]) != want {
			return &MalformedError{Row: i, Want: want, Got: len(g[i])}
		}
	}

	return nil
}

// ValidateOperandShape – Ensures an element-mode operand matches the primary shape.
//
// Implementation: compares len(operand) and len(operand[0]) against want; assumes
// operand has at least one row (caller must ensure).
// Returns: nil or *DimensionError (unwraps to ErrDimensionMismatch).
// Complexity: O(1).
func ValidateOperandShape(want Shape, operand Grid) error {
	got := operand.Shape()
	if got != want {
		return &DimensionError{Expected: want, Actual: got}
	}

	return nil
}
