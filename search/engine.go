package search

import (
	"sync/atomic"
	"time"
)

// Engine bundles the long-lived search state: the transposition table,
// allocated once and reused across calls, plus the killer/history tables
// and node counters that are reset at the start of every Solve.
type Engine struct {
	tt *transTable

	killers *killerTable
	history *historyTable

	nodes     int64
	cancelled atomic.Bool

	hasDeadline bool
	deadline    time.Time
}

// NewEngine allocates the fixed-size transposition table once; it persists
// across every subsequent call to Solve.
func NewEngine() *Engine {
	return &Engine{
		tt:      newTransTable(),
		killers: newKillerTable(),
		history: newHistoryTable(),
	}
}

func (e *Engine) isCancelled() bool {
	return e.cancelled.Load()
}

// Cancel requests that the in-progress Solve call stop at its next check.
// It is safe to call from another goroutine; a plain atomic.Bool is enough
// because the searching routine only ever needs to observe the flag going
// true, never any ordering relative to other writes.
func (e *Engine) Cancel() {
	e.cancelled.Store(true)
}

// setDeadline arms (or disarms, with a zero time) the wall-clock budget
// checked periodically during the search. Called fresh at the start of
// every Solve.
func (e *Engine) setDeadline(d time.Time) {
	e.hasDeadline = !d.IsZero()
	e.deadline = d
}

// ClearTransTable drops every cached result; not required between
// searches, but useful for tests that want a cold-cache baseline.
func (e *Engine) ClearTransTable() {
	e.tt.clear()
}

// Nodes reports how many nodes the most recent iterative-deepening
// iteration visited; Solve restarts the counter at every depth, so after a
// cut-off final iteration it holds only that iteration's partial count.
func (e *Engine) Nodes() int64 {
	return e.nodes
}
