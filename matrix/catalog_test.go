// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixnexus/matrix"
)

func TestAllOps_ClosedSet(t *testing.T) {
	t.Parallel()
	ops := matrix.AllOps()
	require.Len(t, ops, 10)

	seen := make(map[string]bool, len(ops))
	for i, op := range ops {
		require.True(t, op.Valid(), "op %d", i)
		require.False(t, seen[op.String()], "duplicate %s", op)
		seen[op.String()] = true

		back, err := matrix.ParseOpID(op.String())
		require.NoError(t, err)
		require.Equal(t, op, back)
	}
	for i := 0; i < 5; i++ {
		require.Equal(t, matrix.ModeElement, ops[i].Mode)
		require.Equal(t, matrix.ModeScalar, ops[i+5].Mode)
	}

	// Fresh slice per call.
	ops[0] = matrix.OpID{}
	require.True(t, matrix.AllOps()[0].Valid())
}

func TestParseOpID(t *testing.T) {
	t.Parallel()
	good := map[string]matrix.OpID{
		"m_add":    {Kind: matrix.KindAdd, Mode: matrix.ModeElement},
		"M_SUB":    {Kind: matrix.KindSub, Mode: matrix.ModeElement},
		" s_mult ": {Kind: matrix.KindMult, Mode: matrix.ModeScalar},
		"s_Div":    {Kind: matrix.KindDiv, Mode: matrix.ModeScalar},
		"m_exp\n":  {Kind: matrix.KindExp, Mode: matrix.ModeElement},
	}
	for in, want := range good {
		got, err := matrix.ParseOpID(in)
		require.NoError(t, err, "%q", in)
		require.Equal(t, want, got, "%q", in)
	}

	for _, in := range []string{"", "add", "m_", "s_", "x_add", "m_pow", "m_add_", "mm_add", "s-add", "bogus_op"} {
		_, err := matrix.ParseOpID(in)
		require.ErrorIs(t, err, matrix.ErrUnknownOperation, "%q", in)
	}
}

func TestMustParseOpID_Panics(t *testing.T) {
	t.Parallel()
	require.NotPanics(t, func() { matrix.MustParseOpID("s_exp") })
	require.Panics(t, func() { matrix.MustParseOpID("nope") })
}

func TestOpID_Names(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Matrix Addition", matrix.MustParseOpID("m_add").DisplayName())
	require.Equal(t, "Scalar Division", matrix.MustParseOpID("s_div").DisplayName())
	require.Equal(t, "Scalar Exponentiation", matrix.MustParseOpID("s_exp").DisplayName())

	bad := matrix.OpID{Kind: 7, Mode: matrix.ModeScalar}
	require.False(t, bad.Valid())
	require.Equal(t, "OpID(7,2)", bad.String())
	require.Equal(t, "OpID(7,2)", bad.DisplayName())
}

func TestKindAndMode_Strings(t *testing.T) {
	t.Parallel()
	require.Equal(t, "mult", matrix.KindMult.String())
	require.Equal(t, "×", matrix.KindMult.Symbol())
	require.Equal(t, "^", matrix.KindExp.Symbol())
	require.Equal(t, "Kind(0)", matrix.Kind(0).String())
	require.Equal(t, "?", matrix.Kind(0).Symbol())

	require.Equal(t, "element", matrix.ModeElement.String())
	require.Equal(t, "scalar", matrix.ModeScalar.String())
	require.Equal(t, "Mode(9)", matrix.Mode(9).String())
	require.False(t, matrix.Mode(0).Valid())
}

func TestOperand_Accessors(t *testing.T) {
	t.Parallel()
	g := matrix.Grid{{1, 2, 3}, {4, 5, 6}}

	op := matrix.GridOperand(g)
	got, ok := op.Grid()
	require.True(t, ok)
	require.Equal(t, g, got)
	_, ok = op.Scalar()
	require.False(t, ok)
	require.Equal(t, matrix.ModeElement, op.Mode())
	require.Equal(t, "grid 2×3", op.String())

	clone := op.Clone()
	cg, _ := clone.Grid()
	cg[0][0] = 100
	require.Equal(t, 1.0, g[0][0])

	s := matrix.ScalarOperand(2.5)
	v, ok := s.Scalar()
	require.True(t, ok)
	require.Equal(t, 2.5, v)
	require.Equal(t, "2.5", s.String())

	require.Equal(t, "<none>", matrix.Operand{}.String())
	require.Equal(t, matrix.Mode(0), matrix.Operand{}.Mode())
}
