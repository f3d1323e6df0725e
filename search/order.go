package search

import (
	"sort"

	"github.com/vfomin/chesscore/rules"
)

// scoreMove ranks a candidate move by a capture bonus keyed on the victim,
// a flat promotion bonus, and a positional delta from the piece-square
// tables, mirrored for Black.
func scoreMove(m rules.Move, pos Adapter) Score {
	var s Score
	if m.Captured != rules.Empty {
		s += captureValue(m.Captured)
	}
	if m.IsPromotion() {
		s += 9
	}

	movingPiece := pos.Square(m.From)
	white := isWhitePieceByte(movingPiece)
	fromSq, toSq := m.From, m.To
	if !white {
		fromSq, toSq = 63-fromSq, 63-toSq
	}
	kind := upperByte(movingPiece)
	s += (pstValue(kind, toSq) - pstValue(kind, fromSq)) / 100
	return s
}

func captureValue(captured byte) Score {
	switch upperByte(captured) {
	case 'P':
		return 1
	case 'N', 'B':
		return 3
	case 'R':
		return 5
	case 'Q':
		return 9
	case 'K':
		return 1000
	}
	return 0
}

// orderInf and orderInfMinusOne place the TT move and killer moves ahead
// of every scored move.
const (
	orderInf          Score = 1 << 30
	orderInfMinusOne  Score = orderInf - 1
	orderHistoryScale       = 1
)

// killerTable holds up to MaxKillerMoves quiet moves per ply that caused a
// beta cutoff, FIFO-replaced. It is scoped to a single Solve invocation so
// killers from a stale, unrelated search never leak into ordering.
type killerTable struct {
	moves [MaxDepth + 1][MaxKillerMoves]rules.Move
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

func (k *killerTable) record(ply int, m rules.Move) {
	if ply > MaxDepth {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) isKiller(ply int, m rules.Move) bool {
	if ply > MaxDepth {
		return false
	}
	return m == k.moves[ply][0] || m == k.moves[ply][1]
}

// historyTable tracks how often a quiet (from,to) pair caused a beta
// cutoff, weighted by the depth at which it happened.
type historyTable struct {
	counters [64][64]int
}

func newHistoryTable() *historyTable {
	return &historyTable{}
}

func (h *historyTable) bump(m rules.Move, depth int) {
	h.counters[m.From][m.To] += depth * depth
}

func (h *historyTable) score(m rules.Move) Score {
	return Score(h.counters[m.From][m.To])
}

// orderedMove pairs a move with its precomputed ordering key so sorting
// does not re-derive it.
type orderedMove struct {
	move rules.Move
	key  Score
}

// orderMoves ranks moves for an interior search node: the TT best move
// first, then killer moves, then everything else by scoreMove plus history.
func orderMoves(moves []rules.Move, pos Adapter, ttMove rules.Move, ply int, killers *killerTable, hist *historyTable) []rules.Move {
	scored := make([]orderedMove, len(moves))
	for i, m := range moves {
		var key Score
		switch {
		case !ttMove.IsNone() && m == ttMove:
			key = orderInf
		case killers != nil && killers.isKiller(ply, m):
			key = orderInfMinusOne
		default:
			key = scoreMove(m, pos)
			if hist != nil && m.Captured == rules.Empty && !m.IsPromotion() {
				key += hist.score(m) * orderHistoryScale / 1000
			}
		}
		scored[i] = orderedMove{move: m, key: key}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].key > scored[j].key
	})
	out := make([]rules.Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move
	}
	return out
}

// orderCaptures ranks quiescence's capture-only move list by scoreMove
// alone — there is no TT/killer bookkeeping at this level.
func orderCaptures(moves []rules.Move, pos Adapter) []rules.Move {
	scored := make([]orderedMove, len(moves))
	for i, m := range moves {
		scored[i] = orderedMove{move: m, key: scoreMove(m, pos)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].key > scored[j].key
	})
	out := make([]rules.Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move
	}
	return out
}
