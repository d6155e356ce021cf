// SPDX-License-Identifier: MIT

package matrix

// Operation tag used in error wrapping.
const opCompute = "Compute"

// Compute applies op to primary and operand and returns a new grid with the shape
// of primary.
//
// Implementation:
//   - Stage 1 (Resolve): map op to its cell function; ErrUnknownOperation otherwise.
//   - Stage 2 (Validate primary): non-empty and rectangular; ErrMalformedGrid otherwise.
//   - Stage 3 (Validate operand): operand mode must equal op.Mode (ErrOperandMismatch).
//     Element mode additionally requires a non-empty operand (ErrMalformedGrid), the
//     same row count and first-row length as primary (ErrDimensionMismatch), and equal
//     row lengths (ErrMalformedGrid).
//   - Stage 4 (Execute): scalar → f(p[i][j], s); element → f(p[i][j], q[i][j]).
//
// Behavior highlights:
//   - Never mutates primary or the operand grid.
//   - NaN/±Inf inputs and results propagate unchanged (IEEE-754).
//   - Deterministic: identical inputs give bit-identical outputs.
//
// Errors are wrapped as "Compute(<op>): <sentinel>..." and match with errors.Is.
// Complexity: O(r*c) time, O(r*c) space.
func Compute(op OpID, primary Grid, operand Operand) (Grid, error) {
	// Stage 1: resolve the operation before looking at any data.
	f, ok := kernelFor(op)
	if !ok {
		return nil, matrixErrorf(opCompute, matrixErrorf(op.String(), ErrUnknownOperation))
	}
	tag := opCompute + "(" + op.String() + ")"

	// Stage 2: the primary grid fixes the result shape.
	if err := ValidateGrid(primary); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 3: operand must belong to the same mode.
	if operand.mode != op.Mode {
		return nil, matrixErrorf(tag, ErrOperandMismatch)
	}

	// Stage 4: execute.
	if op.Mode == ModeScalar {
		return ewScalar(primary, operand.scalar, f), nil
	}

	q := operand.grid
	if len(q) == 0 {
		return nil, matrixErrorf(tag, &MalformedError{Row: -1})
	}
	if err := ValidateOperandShape(primary.Shape(), q); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateGrid(q); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return ewElement(primary, q, f), nil
}

// ComputeNamed resolves a wire name such as "m_add" or "s_div" with ParseOpID and
// then calls Compute. Unknown names fail with ErrUnknownOperation.
func ComputeNamed(name string, primary Grid, operand Operand) (Grid, error) {
	op, err := ParseOpID(name)
	if err != nil {
		return nil, matrixErrorf(opCompute, err)
	}

	return Compute(op, primary, operand)
}
