// SPDX-License-Identifier: MIT

package workbook

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixnexus/logging"
	"github.com/katalvlaran/matrixnexus/matrix"
	"github.com/katalvlaran/matrixnexus/session"
)

// Performer executes one calculation. *session.Session satisfies it.
type Performer interface {
	Perform(ctx context.Context, op matrix.OpID, primary matrix.Grid, operand matrix.Operand) (session.Entry, error)
}

// Outcome is the result of one calculation. Exactly one of Entry.Result and Err
// is set.
type Outcome struct {
	Name  string
	Entry session.Entry
	Err   error
}

// Failed counts outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// Run executes the calculations of wb in order through p.
//
// A failing calculation does not stop the run; its Outcome carries the error and
// later calculations that reference its result fail to evaluate. Run stops early
// when ctx is done and returns the outcomes gathered so far.
func Run(ctx context.Context, p Performer, wb *Workbook) []Outcome {
	logger := logging.FromContext(ctx)
	results := make(map[string]matrix.Grid, len(wb.Calculations))
	outcomes := make([]Outcome, 0, len(wb.Calculations))

	for _, c := range wb.Calculations {
		if err := ctx.Err(); err != nil {
			logger.Warn("workbook run interrupted",
				zap.Int("done", len(outcomes)),
				zap.Int("total", len(wb.Calculations)),
				zap.Error(err))
			break
		}

		entry, err := runOne(ctx, p, c, buildEvalContext(results))
		outcomes = append(outcomes, Outcome{Name: c.Name, Entry: entry, Err: err})
		if err != nil {
			logger.Info("calculation failed", zap.String("name", c.Name), zap.Error(err))
			continue
		}
		results[c.Name] = entry.Result
		logger.Debug("calculation done",
			zap.String("name", c.Name),
			zap.Stringer("op", c.Op),
			zap.Duration("elapsed", entry.Elapsed))
	}

	return outcomes
}

// runOne evaluates the inputs of c and performs it.
func runOne(ctx context.Context, p Performer, c Calculation, ectx *hcl.EvalContext) (session.Entry, error) {
	grid, err := evalGrid(c.Grid, ectx)
	if err != nil {
		return session.Entry{}, fmt.Errorf("calculation %q: grid: %w", c.Name, err)
	}
	operand, err := evalOperand(c.Operand, ectx)
	if err != nil {
		return session.Entry{}, fmt.Errorf("calculation %q: operand: %w", c.Name, err)
	}
	entry, err := p.Perform(ctx, c.Op, grid, operand)
	if err != nil {
		return session.Entry{}, fmt.Errorf("calculation %q: %w", c.Name, err)
	}

	return entry, nil
}
