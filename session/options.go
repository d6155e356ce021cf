// SPDX-License-Identifier: MIT

// Package session: functional configuration for Session.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package session

import (
	"time"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHistorySize is the number of successful calculations kept, newest first.
	DefaultHistorySize = 10

	// DefaultTimingWindow is the number of recent timings kept for charting.
	DefaultTimingWindow = 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicHistorySizeInvalid  = "session: WithHistorySize: size must be > 0"
	panicTimingWindowInvalid = "session: WithTimingWindow: window must be > 0"
	panicClockNil            = "session: WithClock: clock must be non-nil"
)

// Option mutates internal options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	historySize  int              // DefaultHistorySize
	timingWindow int              // DefaultTimingWindow
	clock        func() time.Time // time.Now
	logger       *zap.Logger      // zap.NewNop()
}

// WithHistorySize sets how many successful calculations are retained.
// Panics when n <= 0.
func WithHistorySize(n int) Option {
	if n <= 0 {
		panic(panicHistorySizeInvalid)
	}

	return func(o *options) { o.historySize = n }
}

// WithTimingWindow sets how many recent timings Stats reports.
// Panics when n <= 0.
func WithTimingWindow(n int) Option {
	if n <= 0 {
		panic(panicTimingWindowInvalid)
	}

	return func(o *options) { o.timingWindow = n }
}

// WithClock replaces time.Now, mainly for tests that need stable timings.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic(panicClockNil)
	}

	return func(o *options) { o.clock = clock }
}

// WithLogger attaches a zap logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() options {
	return options{
		historySize:  DefaultHistorySize,
		timingWindow: DefaultTimingWindow,
		clock:        time.Now,
		logger:       zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
