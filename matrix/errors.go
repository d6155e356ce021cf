// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the two typed errors
// that carry shape context. All engine entry points MUST return these sentinels
// (possibly wrapped) and tests MUST check them via errors.Is / errors.As.
// Nothing in this package panics on user-supplied input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf(tag, err) so the
// message names the failing entry point; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// unknown operation -> malformed primary -> operand/mode mismatch
// -> malformed operand (empty) -> dimension mismatch -> malformed operand (ragged).

var (
	// ErrUnknownOperation is returned when an operation identifier is not one of
	// the ten valid (kind, mode) combinations.
	ErrUnknownOperation = errors.New("matrix: unknown operation")

	// ErrMalformedGrid is returned when a grid has zero rows, zero columns, or rows
	// of differing lengths.
	ErrMalformedGrid = errors.New("matrix: malformed grid")

	// ErrDimensionMismatch is returned by element-mode operations when the operand
	// grid's row count or first-row length differs from the primary grid's.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOperandMismatch is returned when the operand kind (grid or scalar) does not
	// match the operation mode.
	ErrOperandMismatch = errors.New("matrix: operand does not match operation mode")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DimensionError reports an element-mode shape mismatch.
// It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Expected Shape // shape of the primary grid
	Actual   Shape // shape of the operand grid (row count, first-row length)
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s", ErrDimensionMismatch, e.Expected, e.Actual)
}

// Unwrap exposes the sentinel.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// MalformedError reports a grid that is empty or not rectangular.
// Row is the first offending row index, or -1 when the grid has no rows.
// It unwraps to ErrMalformedGrid.
type MalformedError struct {
	Row  int // offending row, -1 for an empty grid
	Want int // expected row length (first-row length)
	Got  int // actual length of Row
}

// Error implements error.
func (e *MalformedError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%v: no rows", ErrMalformedGrid)
	case e.Want == 0 && e.Row == 0:
		return fmt.Sprintf("%v: no columns", ErrMalformedGrid)
	default:
		return fmt.Sprintf("%v: row %d has %d columns, want %d", ErrMalformedGrid, e.Row, e.Got, e.Want)
	}
}

// Unwrap exposes the sentinel.
func (e *MalformedError) Unwrap() error { return ErrMalformedGrid }
