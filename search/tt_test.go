package search

import (
	"testing"

	"github.com/vfomin/chesscore/rules"
)

func TestTTProbeMiss(t *testing.T) {
	tt := newTransTable()
	if _, ok := tt.probe(12345); ok {
		t.Fatal("probe on an empty table should miss")
	}
}

func TestTTStoreThenProbe(t *testing.T) {
	tt := newTransTable()
	m := rules.Move{From: 1, To: 2}
	tt.store(999, 4, 150, BoundExact, m)

	entry, ok := tt.probe(999)
	if !ok {
		t.Fatal("expected a hit after store")
	}
	if entry.depth != 4 || entry.score != 150 || entry.bound != BoundExact || entry.best != m {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestTTDepthPreferredReplacement(t *testing.T) {
	tt := newTransTable()
	key := uint64(42)
	tt.store(key, 6, 100, BoundExact, rules.Move{From: 1, To: 2})
	tt.store(key, 2, 200, BoundExact, rules.Move{From: 3, To: 4})

	entry, ok := tt.probe(key)
	if !ok {
		t.Fatal("expected a hit")
	}
	if entry.depth != 6 || entry.score != 100 {
		t.Fatalf("shallower store should not have replaced the deeper entry, got %+v", entry)
	}
}

func TestTTDeeperStoreReplaces(t *testing.T) {
	tt := newTransTable()
	key := uint64(42)
	tt.store(key, 2, 100, BoundExact, rules.Move{From: 1, To: 2})
	tt.store(key, 6, 200, BoundExact, rules.Move{From: 3, To: 4})

	entry, ok := tt.probe(key)
	if !ok {
		t.Fatal("expected a hit")
	}
	if entry.depth != 6 || entry.score != 200 {
		t.Fatalf("deeper store should have replaced the shallower entry, got %+v", entry)
	}
}

func TestTTEqualDepthStoreKeepsExistingEntry(t *testing.T) {
	tt := newTransTable()
	key := uint64(42)
	tt.store(key, 4, 100, BoundExact, rules.Move{From: 1, To: 2})
	tt.store(key, 4, 200, BoundExact, rules.Move{From: 3, To: 4})

	entry, ok := tt.probe(key)
	if !ok {
		t.Fatal("expected a hit")
	}
	if entry.score != 100 {
		t.Fatalf("a same-depth store must not replace the existing entry, got %+v", entry)
	}
}

func TestTTDeeperEntrySurvivesHashCollision(t *testing.T) {
	tt := newTransTable()
	keyA := uint64(7)
	keyB := keyA + TTSize // collides with keyA in the same slot, different position

	tt.store(keyA, 8, 100, BoundExact, rules.Move{From: 1, To: 2})
	tt.store(keyB, 2, 200, BoundExact, rules.Move{From: 3, To: 4})

	entry, ok := tt.probe(keyA)
	if !ok {
		t.Fatal("expected the deeper entry for keyA to still be present")
	}
	if entry.key != keyA || entry.depth != 8 || entry.score != 100 {
		t.Fatalf("a shallower store for a colliding key must not evict a deeper entry, got %+v", entry)
	}
	if _, ok := tt.probe(keyB); ok {
		t.Fatal("keyB should miss: its shallower store was correctly rejected by the deeper occupant")
	}
}

func TestTTShallowerEntryReplacedAcrossHashCollision(t *testing.T) {
	tt := newTransTable()
	keyA := uint64(7)
	keyB := keyA + TTSize

	tt.store(keyA, 2, 100, BoundExact, rules.Move{From: 1, To: 2})
	tt.store(keyB, 8, 200, BoundExact, rules.Move{From: 3, To: 4})

	entry, ok := tt.probe(keyB)
	if !ok {
		t.Fatal("expected the deeper entry for keyB to have taken the slot")
	}
	if entry.key != keyB || entry.depth != 8 || entry.score != 200 {
		t.Fatalf("a deeper store must evict a shallower entry even across different keys, got %+v", entry)
	}
	if _, ok := tt.probe(keyA); ok {
		t.Fatal("keyA should miss: its slot was correctly taken over by the deeper store")
	}
}

func TestTTClear(t *testing.T) {
	tt := newTransTable()
	tt.store(1, 1, 1, BoundExact, rules.Move{})
	tt.clear()
	if _, ok := tt.probe(1); ok {
		t.Fatal("expected a miss after clear")
	}
}
