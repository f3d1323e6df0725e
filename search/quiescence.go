package search

import "github.com/vfomin/chesscore/rules"

// quiesce is the capture-only extension below the horizon, written in
// negamax form: alpha, beta and the return value are always relative to
// whoever is to move at this node, never white's POV directly. The
// alpha-beta driver converts at the boundary (see alphabeta.go).
func (e *Engine) quiesce(pos Adapter, alpha, beta Score) Score {
	if e.isCancelled() {
		return 0
	}
	e.nodes++

	standPat := Evaluate(pos)
	if !pos.WhiteToMove() {
		standPat = -standPat
	}
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := orderCaptures(filterCaptures(pos.LegalMoves()), pos)
	for _, m := range captures {
		pos.Push(m)
		v := -e.quiesce(pos, -beta, -alpha)
		pos.Pop(m)

		if e.isCancelled() {
			return 0
		}
		if v >= beta {
			return v
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}

func filterCaptures(moves []rules.Move) []rules.Move {
	out := moves[:0:0]
	for _, m := range moves {
		if m.Captured != rules.Empty {
			out = append(out, m)
		}
	}
	return out
}
