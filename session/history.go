// SPDX-License-Identifier: MIT

package session

import (
	"time"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// Entry is one successful calculation. All grids are private copies; an Entry
// obtained from a Session can be modified freely without affecting the history.
type Entry struct {
	ID      string         // random UUID
	Op      matrix.OpID    // operation performed
	Primary matrix.Grid    // first input
	Operand matrix.Operand // second input (grid or scalar)
	Result  matrix.Grid    // engine output
	Elapsed time.Duration  // time spent in matrix.Compute
	At      time.Time      // when the calculation started
}

// clone returns a deep copy of e.
func (e Entry) clone() Entry {
	e.Primary = e.Primary.Clone()
	e.Operand = e.Operand.Clone()
	e.Result = e.Result.Clone()

	return e
}

// History is a fixed-capacity ring of entries ordered newest first. Pushing into
// a full history evicts the oldest entry.
//
// History is not safe for concurrent use on its own; Session guards it.
type History struct {
	buf  []Entry
	head int // index of the next write
	n    int // number of stored entries
}

// NewHistory returns an empty history holding at most capacity entries.
// Panics when capacity <= 0.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		panic(panicHistorySizeInvalid)
	}

	return &History{buf: make([]Entry, capacity)}
}

// Cap returns the maximum number of entries.
func (h *History) Cap() int { return len(h.buf) }

// Len returns the number of stored entries.
func (h *History) Len() int { return h.n }

// Push stores e as the newest entry.
// Complexity: O(1).
func (h *History) Push(e Entry) {
	h.buf[h.head] = e
	h.head = (h.head + 1) % len(h.buf)
	if h.n < len(h.buf) {
		h.n++
	}
}

// Latest returns the newest entry and true, or the zero Entry and false when empty.
func (h *History) Latest() (Entry, bool) {
	if h.n == 0 {
		return Entry{}, false
	}

	return h.at(0), true
}

// Entries returns a snapshot, newest first. The snapshot owns its grids.
// Complexity: O(n*r*c).
func (h *History) Entries() []Entry {
	out := make([]Entry, h.n)
	for i := range out {
		out[i] = h.at(i).clone()
	}

	return out
}

// Clear drops every entry and releases the grids they reference.
func (h *History) Clear() {
	clear(h.buf)
	h.head, h.n = 0, 0
}

// at returns the i-th newest entry; i must be < n.
func (h *History) at(i int) Entry {
	k := len(h.buf)

	return h.buf[(h.head-1-i+k)%k]
}
