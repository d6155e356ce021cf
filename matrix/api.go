// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for each of the ten operations.
//   - Avoid any logic duplication — each facade delegates to Compute.
//
// Determinism & Policy:
//   - Facades never change validation order or numeric policy.

package matrix

// Pre-resolved identifiers for the facades.
var (
	opAdd  = OpID{Kind: KindAdd, Mode: ModeElement}
	opSub  = OpID{Kind: KindSub, Mode: ModeElement}
	opMult = OpID{Kind: KindMult, Mode: ModeElement}
	opDiv  = OpID{Kind: KindDiv, Mode: ModeElement}
	opPow  = OpID{Kind: KindExp, Mode: ModeElement}
)

// ---------- Element mode (grid ⊙ grid; O(rc)) ----------

// Add returns a + b cell by cell.
func Add(a, b Grid) (Grid, error) { return Compute(opAdd, a, GridOperand(b)) }

// Sub returns a − b cell by cell.
func Sub(a, b Grid) (Grid, error) { return Compute(opSub, a, GridOperand(b)) }

// Mult returns the Hadamard product a ⊙ b. It is NOT the matrix product.
func Mult(a, b Grid) (Grid, error) { return Compute(opMult, a, GridOperand(b)) }

// Div returns a / b cell by cell; zero divisors yield ±Inf or NaN.
func Div(a, b Grid) (Grid, error) { return Compute(opDiv, a, GridOperand(b)) }

// Pow returns a[i][j] raised to b[i][j].
func Pow(a, b Grid) (Grid, error) { return Compute(opPow, a, GridOperand(b)) }

// ---------- Scalar mode (grid ⊙ s; O(rc)) ----------

// AddScalar returns g + s.
func AddScalar(g Grid, s float64) (Grid, error) { return Compute(opAdd.scalar(), g, ScalarOperand(s)) }

// SubScalar returns g − s.
func SubScalar(g Grid, s float64) (Grid, error) { return Compute(opSub.scalar(), g, ScalarOperand(s)) }

// MultScalar returns g scaled by s.
func MultScalar(g Grid, s float64) (Grid, error) {
	return Compute(opMult.scalar(), g, ScalarOperand(s))
}

// DivScalar returns g / s.
func DivScalar(g Grid, s float64) (Grid, error) { return Compute(opDiv.scalar(), g, ScalarOperand(s)) }

// PowScalar returns every cell of g raised to s.
func PowScalar(g Grid, s float64) (Grid, error) { return Compute(opPow.scalar(), g, ScalarOperand(s)) }

// scalar returns op with its mode switched to ModeScalar.
func (op OpID) scalar() OpID { return OpID{Kind: op.Kind, Mode: ModeScalar} }
