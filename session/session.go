// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// Session records successful calculations and their timings.
// The zero value is not usable; call New.
type Session struct {
	mu      sync.Mutex
	opts    options
	history *History
	metrics *metrics
	last    matrix.Grid
}

// New returns an empty session configured by opts.
func New(opts ...Option) *Session {
	o := gatherOptions(opts...)

	return &Session{
		opts:    o,
		history: NewHistory(o.historySize),
		metrics: newMetrics(o.timingWindow),
	}
}

// Perform runs matrix.Compute and records the outcome.
//
// Implementation:
//   - Stage 1: return ctx.Err() (wrapped) if the context is already done.
//   - Stage 2: time matrix.Compute with the session clock.
//   - Stage 3: on error, bump the failure counter and return the engine error
//     unchanged; history and timings are untouched.
//   - Stage 4: on success, push a deep-copied Entry and record the timing.
//
// The returned Entry is the caller's own copy.
func (s *Session) Perform(ctx context.Context, op matrix.OpID, primary matrix.Grid, operand matrix.Operand) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, sessionErrorf("Perform", err)
	}

	start := s.opts.clock()
	result, err := matrix.Compute(op, primary, operand)
	elapsed := s.opts.clock().Sub(start)
	if err != nil {
		s.mu.Lock()
		s.metrics.failures++
		s.mu.Unlock()
		s.opts.logger.Debug("calculation rejected",
			zap.Stringer("op", op),
			zap.Error(err))
		return Entry{}, err
	}

	e := Entry{
		ID:      uuid.NewString(),
		Op:      op,
		Primary: primary.Clone(),
		Operand: operand.Clone(),
		Result:  result,
		Elapsed: elapsed,
		At:      start,
	}

	s.mu.Lock()
	s.history.Push(e)
	s.metrics.record(op.String(), elapsed)
	s.last = result
	s.mu.Unlock()

	s.opts.logger.Debug("calculation performed",
		zap.String("id", e.ID),
		zap.Stringer("op", op),
		zap.Stringer("shape", result.Shape()),
		zap.Duration("elapsed", elapsed))

	return e.clone(), nil
}

// PerformNamed resolves name with matrix.ParseOpID and calls Perform.
// An unknown name counts as a failure.
func (s *Session) PerformNamed(ctx context.Context, name string, primary matrix.Grid, operand matrix.Operand) (Entry, error) {
	op, err := matrix.ParseOpID(name)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Entry{}, sessionErrorf("PerformNamed", ctxErr)
		}
		s.mu.Lock()
		s.metrics.failures++
		s.mu.Unlock()
		return Entry{}, err
	}

	return s.Perform(ctx, op, primary, operand)
}

// Entries returns the history snapshot, newest first.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.Entries()
}

// Latest returns a copy of the newest history entry.
func (s *Session) Latest() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.history.Latest()
	if !ok {
		return Entry{}, false
	}

	return e.clone(), true
}

// ClearHistory drops every history entry. Counters and Last are kept.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	s.history.Clear()
	s.mu.Unlock()
	s.opts.logger.Debug("history cleared")
}

// Last returns a copy of the most recent successful result, or nil before the
// first success. Unlike Latest it survives ClearHistory.
func (s *Session) Last() matrix.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last.Clone()
}

// Stats returns a snapshot of the counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.metrics.snapshot()
}
