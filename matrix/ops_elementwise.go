// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) shared by
//     Compute and the facades, so the tight loops exist exactly once.
//   - Keep all loops deterministic and cache-friendly.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); inputs are pre-validated.
//   - Output rows are carved from one flat row-major buffer (single allocation).
//
// Determinism & Performance:
//   - Fixed loop order i→j.
//   - No hidden allocations beyond the output grid; O(r*c) time and space.
//   - No special-casing of non-finite values: Go float64 arithmetic and math.Pow
//     already follow IEEE-754, which is the documented numeric policy.

package matrix

import "math"

// binaryFn is the per-cell function f(a, b) of an operation kind.
type binaryFn func(a, b float64) float64

// kernels is indexed by Kind; index 0 (invalid) is nil.
var kernels = [...]binaryFn{
	KindAdd:  func(a, b float64) float64 { return a + b },
	KindSub:  func(a, b float64) float64 { return a - b },
	KindMult: func(a, b float64) float64 { return a * b },
	KindDiv:  func(a, b float64) float64 { return a / b },
	KindExp:  math.Pow,
}

// kernelFor resolves an OpID to its cell function.
// Returns (nil, false) for any identifier outside the closed set.
func kernelFor(op OpID) (binaryFn, bool) {
	if !op.Valid() {
		return nil, false
	}

	return kernels[op.Kind], true
}

// newGrid allocates an r×c zero grid whose rows share one backing buffer.
// Rows are capped so an append on one row can never bleed into the next.
// Complexity: O(r*c).
func newGrid(r, c int) Grid {
	buf := make([]float64, r*c)
	out := make(Grid, r)
	for i := 0; i < r; i++ {
		base := i * c // row base offset
		out[i] = buf[base : base+c : base+c]
	}

	return out
}

// ewScalar computes out[i][j] = f(p[i][j], s).
// Assumes p is a valid grid.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewScalar(p Grid, s float64, f binaryFn) Grid {
	r, c := len(p), len(p[0])
	out := newGrid(r, c)
	for i := 0; i < r; i++ {
		src, dst := p[i], out[i] // hoist row slices once per row
		for j := 0; j < c; j++ {
			dst[j] = f(src[j], s)
		}
	}

	return out
}

// ewElement computes out[i][j] = f(p[i][j], q[i][j]).
// Assumes p and q are valid grids of identical shape.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewElement(p, q Grid, f binaryFn) Grid {
	r, c := len(p), len(p[0])
	out := newGrid(r, c)
	for i := 0; i < r; i++ {
		a, b, dst := p[i], q[i], out[i]
		for j := 0; j < c; j++ {
			dst[j] = f(a[j], b[j])
		}
	}

	return out
}

// ewFill returns an r×c grid produced by v(i, j).
// Assumes r, c > 0.
// Time: O(r*c). Space: O(r*c).
func ewFill(r, c int, v func(i, j int) float64) Grid {
	out := newGrid(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i][j] = v(i, j)
		}
	}

	return out
}
