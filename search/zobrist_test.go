package search

import (
	"testing"

	"github.com/vfomin/chesscore/rules"
)

func TestZobristDistinguishesSideToMove(t *testing.T) {
	white, err := rules.NewPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	black, err := rules.NewPositionFromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if zobristKey(white) == zobristKey(black) {
		t.Fatal("positions differing only in side to move must hash differently")
	}
}

func TestZobristDistinguishesCastlingRights(t *testing.T) {
	full, err := rules.NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	partial, err := rules.NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if zobristKey(full) == zobristKey(partial) {
		t.Fatal("positions differing only in castling rights must hash differently")
	}
}

func TestZobristDistinguishesEnPassantFile(t *testing.T) {
	withEP, err := rules.NewPositionFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	withoutEP, err := rules.NewPositionFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	if err != nil {
		t.Fatal(err)
	}
	if zobristKey(withEP) == zobristKey(withoutEP) {
		t.Fatal("positions differing only in en-passant file must hash differently")
	}
}

func TestZobristDistinguishesPiecePlacement(t *testing.T) {
	a, err := rules.NewPositionFromFEN("4k3/8/8/8/4N3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := rules.NewPositionFromFEN("4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if zobristKey(a) == zobristKey(b) {
		t.Fatal("positions differing in piece placement must hash differently")
	}
}

func TestZobristDeterministic(t *testing.T) {
	p1 := rules.NewInitialPosition()
	p2 := rules.NewInitialPosition()
	if zobristKey(p1) != zobristKey(p2) {
		t.Fatal("identical positions must hash identically")
	}
}
