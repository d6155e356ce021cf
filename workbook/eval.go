// SPDX-License-Identifier: MIT

package workbook

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// gridType is the cty type every grid value is converted to before decoding.
var gridType = cty.List(cty.List(cty.Number))

// functions available inside grid and operand expressions.
var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"log":    stdlib.LogFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"pow":    stdlib.PowFunc,
	"signum": stdlib.SignumFunc,
}

// buildEvalContext exposes earlier results as calculation.<name>.result.
// Results containing NaN have no cty representation and are exposed as unknown.
func buildEvalContext(results map[string]matrix.Grid) *hcl.EvalContext {
	calcs := make(map[string]cty.Value, len(results))
	for name, g := range results {
		calcs[name] = cty.ObjectVal(map[string]cty.Value{
			"result": gridValue(g),
		})
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"calculation": cty.ObjectVal(calcs)},
		Functions: functions,
	}
}

// gridValue converts g to a list of number lists.
func gridValue(g matrix.Grid) cty.Value {
	for _, row := range g {
		for _, v := range row {
			if math.IsNaN(v) {
				return cty.UnknownVal(gridType)
			}
		}
	}
	v, err := gocty.ToCtyValue([][]float64(g), gridType)
	if err != nil {
		return cty.UnknownVal(gridType)
	}

	return v
}

// evalGrid evaluates expr and decodes it as a grid. Shape problems are left to
// the engine so they surface as matrix errors.
func evalGrid(expr hcl.Expression, ectx *hcl.EvalContext) (matrix.Grid, error) {
	v, diags := expr.Value(ectx)
	if diags.HasErrors() {
		return nil, diags
	}

	return gridFromValue(v)
}

// evalOperand evaluates expr as a scalar (number) or a grid (list of lists).
func evalOperand(expr hcl.Expression, ectx *hcl.EvalContext) (matrix.Operand, error) {
	v, diags := expr.Value(ectx)
	if diags.HasErrors() {
		return matrix.Operand{}, diags
	}
	if !v.IsWhollyKnown() {
		return matrix.Operand{}, ErrUnresolved
	}
	if !v.IsNull() && v.Type() == cty.Number {
		var s float64
		if err := gocty.FromCtyValue(v, &s); err != nil {
			return matrix.Operand{}, fmt.Errorf("%w: %v", ErrOperandType, err)
		}
		return matrix.ScalarOperand(s), nil
	}

	g, err := gridFromValue(v)
	if err != nil {
		return matrix.Operand{}, err
	}

	return matrix.GridOperand(g), nil
}

// gridFromValue accepts tuples or lists of tuples or lists of numbers.
func gridFromValue(v cty.Value) (matrix.Grid, error) {
	if !v.IsWhollyKnown() {
		return nil, ErrUnresolved
	}
	if v.IsNull() {
		return nil, fmt.Errorf("%w: null", ErrOperandType)
	}
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("%w: %s", ErrOperandType, ty.FriendlyName())
	}

	lv, err := convert.Convert(v, gridType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperandType, err)
	}
	var rows [][]float64
	if err := gocty.FromCtyValue(lv, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperandType, err)
	}

	return matrix.Grid(rows), nil
}
