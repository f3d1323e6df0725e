package search

import "github.com/vfomin/chesscore/rules"

// ttEntry is one transposition-table row: a Zobrist key, the depth-to-go it
// was computed at, the resulting score, its bound type and the principal
// move at that node.
type ttEntry struct {
	key      uint64
	depth    int
	score    Score
	bound    Bound
	best     rules.Move
	occupied bool
}

// transTable is a fixed-size, power-of-two, direct-mapped cache allocated
// once and reused across searches.
type transTable struct {
	items []ttEntry
}

func newTransTable() *transTable {
	return &transTable{items: make([]ttEntry, TTSize)}
}

func (tt *transTable) index(key uint64) uint64 {
	return key & (TTSize - 1)
}

// probe returns the entry stored for key and true when the slot holds that
// same key; on a miss it returns a zero entry and false.
func (tt *transTable) probe(key uint64) (ttEntry, bool) {
	e := tt.items[tt.index(key)]
	if e.occupied && e.key == key {
		return e, true
	}
	return ttEntry{}, false
}

// store replaces the slot only when the new result is strictly deeper than
// what is already there — depth-preferred replacement, ties keep the
// existing entry. This applies even across a hash collision between two
// unrelated positions: a store no deeper than the current occupant never
// evicts it just because it belongs to a different key.
func (tt *transTable) store(key uint64, depth int, score Score, bound Bound, best rules.Move) {
	idx := tt.index(key)
	existing := tt.items[idx]
	if existing.occupied && existing.depth >= depth {
		return
	}
	tt.items[idx] = ttEntry{
		key:      key,
		depth:    depth,
		score:    score,
		bound:    bound,
		best:     best,
		occupied: true,
	}
}

// clear resets every slot; used when the caller wants a cold cache (not
// required between searches, but useful for deterministic-output tests).
func (tt *transTable) clear() {
	for i := range tt.items {
		tt.items[i] = ttEntry{}
	}
}
