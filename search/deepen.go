package search

import (
	"time"

	"github.com/vfomin/chesscore/rules"
)

// Solve is the engine's single public entry point: it runs iterative
// deepening from depth 1 up to MaxDepth under the given wall-clock budget
// and returns the best move found by the deepest fully completed
// iteration. If progress is non-nil it is called once per completed
// depth with a diagnostic summary, in the style of a UCI "info" line.
//
// The killer and history tables are reset at the start of every call so a
// stale search never biases a later, unrelated one; the transposition
// table is not reset and is reused across calls.
func (e *Engine) Solve(pos Adapter, budget time.Duration, progress func(DepthReport)) rules.Move {
	e.cancelled.Store(false)
	e.killers = newKillerTable()
	e.history = newHistoryTable()

	start := time.Now()
	if budget > 0 {
		e.setDeadline(start.Add(budget))
	} else {
		e.setDeadline(time.Time{})
	}

	rootMoves := pos.LegalMoves()
	if len(rootMoves) == 0 {
		return rules.MoveNone
	}

	best := rootMoves[0]
	completedAny := false

	for depth := 1; depth <= MaxDepth; depth++ {
		e.nodes = 0
		var candidate rules.Move = rules.MoveNone
		score := e.alphaBeta(pos, 0, depth, -InfScore, InfScore, &candidate)

		if e.isCancelled() {
			break
		}

		if !candidate.IsNone() {
			best = candidate
		}
		completedAny = true

		if progress != nil {
			progress(DepthReport{
				Depth:    depth,
				Score:    score,
				Elapsed:  time.Since(start).Seconds(),
				Nodes:    e.nodes,
				BestMove: best.String(),
			})
		}
	}

	if !completedAny {
		return rootMoves[0]
	}
	return best
}
