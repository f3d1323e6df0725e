package rules

import "testing"

func TestNewInitialPositionFEN(t *testing.T) {
	p := NewInitialPosition()
	if got := p.FEN(); got != InitialPositionFEN {
		t.Fatalf("FEN roundtrip: got %q, want %q", got, InitialPositionFEN)
	}
	if !p.WhiteToMove() {
		t.Fatal("initial position should have white to move")
	}
	rights := p.CastlingRights()
	if !rights.WK || !rights.WQ || !rights.BK || !rights.BQ {
		t.Fatalf("initial position should have all castling rights, got %+v", rights)
	}
}

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		InitialPositionFEN,
		"7k/5ppp/8/8/8/8/5PPP/R6K w - - 0 1",
		"8/8/8/4k3/8/4K3/8/4Q3 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
	}
	for _, fen := range cases {
		p, err := NewPositionFromFEN(fen)
		if err != nil {
			t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
		}
		if got := p.FEN(); got != fen {
			t.Errorf("FEN roundtrip: got %q, want %q", got, fen)
		}
	}
}

func TestBadFEN(t *testing.T) {
	cases := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := NewPositionFromFEN(fen); err == nil {
			t.Errorf("NewPositionFromFEN(%q): expected error, got none", fen)
		}
	}
}

func TestPushPopBalance(t *testing.T) {
	p := NewInitialPosition()
	before := p.FEN()

	for _, m := range p.LegalMoves() {
		p.Push(m)
		p.Pop(m)
		if got := p.FEN(); got != before {
			t.Fatalf("push/pop of %v unbalanced: got %q, want %q", m, got, before)
		}
	}
}

func TestPushPopBalanceDeep(t *testing.T) {
	p := NewInitialPosition()
	before := p.FEN()

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		moves := p.LegalMoves()
		if len(moves) == 0 {
			return
		}
		m := moves[0]
		p.Push(m)
		walk(depth - 1)
		p.Pop(m)
	}
	walk(4)

	if got := p.FEN(); got != before {
		t.Fatalf("deep push/pop unbalanced: got %q, want %q", got, before)
	}
	if p.UndoDepth() != 0 {
		t.Fatalf("undo stack not empty after unwinding: depth %d", p.UndoDepth())
	}
}
