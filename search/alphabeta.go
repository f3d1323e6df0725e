package search

import (
	"time"

	"github.com/vfomin/chesscore/rules"
)

// alphaBeta is the minimax search driver: scores are always from White's
// point of view, so White maximizes and Black minimizes. Quiescence
// (negamax) is entered at the horizon with an explicit sign conversion.
func (e *Engine) alphaBeta(pos Adapter, ply, maxDepth int, alpha, beta Score, rootBest *rules.Move) Score {
	if e.isCancelled() {
		return 0
	}
	if ply%TimeCheckPlies == 0 && e.pastDeadline() {
		e.cancelled.Store(true)
		return 0
	}

	e.nodes++
	alphaOriginal := alpha
	searchDepth := maxDepth - ply
	key := zobristKey(pos)

	var ttMove rules.Move = rules.MoveNone
	if entry, ok := e.tt.probe(key); ok {
		ttMove = entry.best
		if entry.depth >= searchDepth {
			// A cutoff at the root must still hand the caller a move.
			if ply == 0 && !entry.best.IsNone() {
				*rootBest = entry.best
			}
			switch entry.bound {
			case BoundExact:
				return entry.score
			case BoundLower:
				if entry.score >= beta {
					return entry.score
				}
				if entry.score > alpha {
					alpha = entry.score
				}
			case BoundUpper:
				if entry.score <= alpha {
					return entry.score
				}
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				return entry.score
			}
		}
	}

	if pos.IsDraw() {
		return 0
	}

	switch pos.Terminal() {
	case rules.WhiteMated:
		return -InfScore + Score(ply)
	case rules.BlackMated:
		return InfScore - Score(ply)
	case rules.WhiteStalemated, rules.BlackStalemated:
		return 0
	}

	if ply == maxDepth {
		return e.quiesceFromWhitePOV(pos, alpha, beta)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return 0
	}
	moves = orderMoves(moves, pos, ttMove, ply, e.killers, e.history)

	white := pos.WhiteToMove()
	var bestScore Score
	if white {
		bestScore = -InfScore
	} else {
		bestScore = InfScore
	}
	bestMove := rules.MoveNone

	for _, m := range moves {
		pos.Push(m)
		score := e.alphaBeta(pos, ply+1, maxDepth, alpha, beta, rootBest)
		pos.Pop(m)

		if e.isCancelled() {
			return 0
		}

		if white {
			if score > bestScore {
				bestScore = score
				bestMove = m
				if ply == 0 {
					*rootBest = m
				}
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if alpha >= beta {
				e.recordCutoff(m, ttMove, ply, searchDepth)
				break
			}
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = m
				if ply == 0 {
					*rootBest = m
				}
			}
			if bestScore < beta {
				beta = bestScore
			}
			if beta <= alpha {
				e.recordCutoff(m, ttMove, ply, searchDepth)
				break
			}
		}
	}

	var bound Bound
	switch {
	case bestScore <= alphaOriginal:
		bound = BoundUpper
	case bestScore >= beta:
		bound = BoundLower
	default:
		bound = BoundExact
	}
	e.tt.store(key, searchDepth, bestScore, bound, bestMove)

	return bestScore
}

// recordCutoff updates the killer/history ordering hints on a beta cutoff,
// but only for quiet moves that are not the TT/PV move.
func (e *Engine) recordCutoff(m, ttMove rules.Move, ply, depth int) {
	if m.Captured != rules.Empty || m.IsPromotion() || m == ttMove {
		return
	}
	e.killers.record(ply, m)
	e.history.bump(m, depth)
}

// quiesceFromWhitePOV converts the minimax driver's White-POV alpha/beta
// window into quiesce's side-to-move-relative negamax convention, and
// converts the result back on return.
func (e *Engine) quiesceFromWhitePOV(pos Adapter, alpha, beta Score) Score {
	if pos.WhiteToMove() {
		return e.quiesce(pos, alpha, beta)
	}
	return -e.quiesce(pos, -beta, -alpha)
}

func (e *Engine) pastDeadline() bool {
	return e.hasDeadline && time.Now().After(e.deadline)
}
