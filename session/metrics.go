// SPDX-License-Identifier: MIT

package session

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats is a point-in-time snapshot of a session's performance counters.
type Stats struct {
	Operations int            // successful calculations
	Failures   int            // calculations rejected by the engine
	Total      time.Duration  // summed Elapsed of successful calculations
	Average    time.Duration  // Total / Operations, 0 before the first success
	OpsPerSec  float64        // 1 / Average in seconds; 0 when Average is 0
	ByOp       map[string]int // successes per wire name ("m_add", ...)

	Window     []time.Duration // most recent timings, oldest first
	WindowMin  time.Duration
	WindowMax  time.Duration
	WindowMean time.Duration
}

// metrics accumulates counters; guarded by Session.mu.
type metrics struct {
	operations int
	failures   int
	total      time.Duration
	byOp       map[string]int
	window     []time.Duration // len <= size, oldest first
	size       int
}

func newMetrics(window int) *metrics {
	return &metrics{
		byOp:   make(map[string]int),
		window: make([]time.Duration, 0, window),
		size:   window,
	}
}

// record adds one successful calculation.
func (m *metrics) record(op string, d time.Duration) {
	m.operations++
	m.total += d
	m.byOp[op]++
	if len(m.window) == m.size {
		copy(m.window, m.window[1:])
		m.window = m.window[:m.size-1]
	}
	m.window = append(m.window, d)
}

// snapshot builds a Stats value that shares nothing with m.
func (m *metrics) snapshot() Stats {
	s := Stats{
		Operations: m.operations,
		Failures:   m.failures,
		Total:      m.total,
		ByOp:       make(map[string]int, len(m.byOp)),
		Window:     append([]time.Duration(nil), m.window...),
	}
	for k, v := range m.byOp {
		s.ByOp[k] = v
	}
	if m.operations > 0 {
		s.Average = m.total / time.Duration(m.operations)
	}
	if s.Average > 0 {
		s.OpsPerSec = 1 / s.Average.Seconds()
	}
	if len(m.window) == 0 {
		return s
	}

	ns := make([]float64, len(m.window))
	for i, d := range m.window {
		ns[i] = float64(d)
	}
	s.WindowMin = time.Duration(floats.Min(ns))
	s.WindowMax = time.Duration(floats.Max(ns))
	s.WindowMean = time.Duration(stat.Mean(ns, nil))

	return s
}
