// SPDX-License-Identifier: MIT

package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixnexus/matrix"
	"github.com/katalvlaran/matrixnexus/session"
)

func entry(id string, v float64) session.Entry {
	return session.Entry{ID: id, Result: matrix.Grid{{v}}}
}

func TestHistory_Ring(t *testing.T) {
	h := session.NewHistory(2)
	assert.Equal(t, 2, h.Cap())
	_, ok := h.Latest()
	assert.False(t, ok)
	assert.Empty(t, h.Entries())

	h.Push(entry("a", 1))
	h.Push(entry("b", 2))
	h.Push(entry("c", 3))

	require.Equal(t, 2, h.Len())
	ids := []string{}
	for _, e := range h.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"c", "b"}, ids)

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, "c", latest.ID)

	h.Clear()
	assert.Zero(t, h.Len())
	h.Push(entry("d", 4))
	assert.Equal(t, "d", h.Entries()[0].ID)
}

func TestHistory_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { session.NewHistory(0) })
}
