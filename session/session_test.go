// SPDX-License-Identifier: MIT

package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/matrixnexus/matrix"
	"github.com/katalvlaran/matrixnexus/session"
)

// stepClock advances by step on every call.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func newClock(step time.Duration) *stepClock {
	return &stepClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), step: step}
}

var (
	opMAdd = matrix.MustParseOpID("m_add")
	opSMul = matrix.MustParseOpID("s_mult")
)

func TestPerform_RecordsEntry(t *testing.T) {
	clock := newClock(time.Millisecond)
	s := session.New(session.WithClock(clock.Now))

	a := matrix.Grid{{1, 2}, {3, 4}}
	e, err := s.Perform(context.Background(), opSMul, a, matrix.ScalarOperand(2))
	require.NoError(t, err)

	_, err = uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, opSMul, e.Op)
	assert.Equal(t, matrix.Grid{{2, 4}, {6, 8}}, e.Result)
	assert.Equal(t, time.Millisecond, e.Elapsed)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), e.At)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, e.ID, latest.ID)
	assert.Equal(t, e.Result, s.Last())
}

func TestPerform_EntriesAreCopies(t *testing.T) {
	s := session.New()
	a := matrix.Grid{{1, 2}}
	b := matrix.Grid{{3, 4}}

	e, err := s.Perform(context.Background(), opMAdd, a, matrix.GridOperand(b))
	require.NoError(t, err)

	// Mutating the caller's inputs and the returned entry must not reach history.
	a[0][0], b[0][0] = 100, 100
	e.Result[0][0] = -1
	e.Primary[0][1] = -1

	stored := s.Entries()[0]
	assert.Equal(t, matrix.Grid{{1, 2}}, stored.Primary)
	g, ok := stored.Operand.Grid()
	require.True(t, ok)
	assert.Equal(t, matrix.Grid{{3, 4}}, g)
	assert.Equal(t, matrix.Grid{{4, 6}}, stored.Result)

	// Snapshots are copies too.
	stored.Result[0][0] = 999
	assert.Equal(t, 4.0, s.Entries()[0].Result[0][0])
	last := s.Last()
	last[0][0] = 999
	assert.Equal(t, 4.0, s.Last()[0][0])
}

func TestPerform_FailureLeavesHistoryAlone(t *testing.T) {
	s := session.New()
	ctx := context.Background()

	_, err := s.Perform(ctx, opMAdd, matrix.Grid{{1}}, matrix.ScalarOperand(1))
	require.ErrorIs(t, err, matrix.ErrOperandMismatch)

	_, err = s.Perform(ctx, opMAdd, matrix.Grid{{1, 2}}, matrix.GridOperand(matrix.Grid{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = s.PerformNamed(ctx, "bogus_op", matrix.Grid{{1}}, matrix.ScalarOperand(1))
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)

	st := s.Stats()
	assert.Equal(t, 0, st.Operations)
	assert.Equal(t, 3, st.Failures)
	assert.Empty(t, s.Entries())
	assert.Nil(t, s.Last())
	_, ok := s.Latest()
	assert.False(t, ok)
}

func TestPerform_CancelledContext(t *testing.T) {
	s := session.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Perform(ctx, opSMul, matrix.Grid{{1}}, matrix.ScalarOperand(2))
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.PerformNamed(ctx, "nope", matrix.Grid{{1}}, matrix.ScalarOperand(2))
	require.ErrorIs(t, err, context.Canceled)

	st := s.Stats()
	assert.Zero(t, st.Operations)
	assert.Zero(t, st.Failures)
}

func TestPerform_HistoryCapAndOrder(t *testing.T) {
	s := session.New(session.WithHistorySize(3))
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		_, err := s.Perform(ctx, opSMul, matrix.Grid{{1}}, matrix.ScalarOperand(float64(i)))
		require.NoError(t, err)
	}

	entries := s.Entries()
	require.Len(t, entries, 3)
	for i, want := range []float64{5, 4, 3} {
		assert.Equal(t, want, entries[i].Result[0][0], "entry %d", i)
	}

	s.ClearHistory()
	assert.Empty(t, s.Entries())
	assert.Equal(t, 5, s.Stats().Operations)
	assert.Equal(t, matrix.Grid{{5}}, s.Last())
}

func TestPerform_DefaultHistoryIsTen(t *testing.T) {
	s := session.New()
	for i := 0; i < 15; i++ {
		_, err := s.Perform(context.Background(), opSMul, matrix.Grid{{1}}, matrix.ScalarOperand(float64(i)))
		require.NoError(t, err)
	}
	assert.Len(t, s.Entries(), session.DefaultHistorySize)
}

func TestPerform_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := session.New(session.WithLogger(zap.New(core)))

	_, err := s.Perform(context.Background(), opSMul, matrix.Grid{{1}}, matrix.ScalarOperand(2))
	require.NoError(t, err)
	_, err = s.Perform(context.Background(), opMAdd, matrix.Grid{{1}}, matrix.ScalarOperand(2))
	require.Error(t, err)

	require.Equal(t, 1, logs.FilterMessage("calculation performed").Len())
	rejected := logs.FilterMessage("calculation rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "m_add", rejected[0].ContextMap()["op"])
}

func TestPerform_Concurrent(t *testing.T) {
	s := session.New(session.WithHistorySize(50))
	g := matrix.Grid{{1, 2}, {3, 4}}

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := s.Perform(context.Background(), opMAdd, g, matrix.GridOperand(g)); err != nil {
					t.Error(err)
					return
				}
				_ = s.Stats()
				_ = s.Entries()
			}
		}()
	}
	wg.Wait()

	st := s.Stats()
	assert.Equal(t, workers*perWorker, st.Operations)
	assert.Equal(t, workers*perWorker, st.ByOp["m_add"])
	assert.Len(t, s.Entries(), 50)
	assert.Len(t, st.Window, session.DefaultTimingWindow)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { session.WithHistorySize(0) })
	assert.Panics(t, func() { session.WithTimingWindow(-1) })
	assert.Panics(t, func() { session.WithClock(nil) })
	assert.NotPanics(t, func() { session.New(nil, session.WithLogger(nil)) })
}
