package rules

import "testing"

func TestCheckmateDetection(t *testing.T) {
	// Back-rank mate: black king boxed in by its own pawns, white rook
	// controls the entire 8th rank.
	p, err := NewPositionFromFEN("4R1k1/5ppp/8/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if term := p.Terminal(); term != BlackMated {
		t.Fatalf("expected black to be mated, got %v (legal moves: %v)", term, p.LegalMoves())
	}
}

func TestStalemateDetection(t *testing.T) {
	// Classic KQ vs K stalemate: black king in the corner, not in check, no moves.
	p, err := NewPositionFromFEN("k7/8/1QK5/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if p.InCheck(false) {
		t.Fatal("test position should not have black in check")
	}
	if term := p.Terminal(); term != BlackStalemated {
		t.Fatalf("expected stalemate, got %v (legal moves: %v)", term, p.LegalMoves())
	}
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	p, err := NewPositionFromFEN("8/8/4k3/8/8/3K4/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsDraw() {
		t.Fatal("king vs king should be an insufficient-material draw")
	}
}

func TestSufficientMaterialIsNotDraw(t *testing.T) {
	p, err := NewPositionFromFEN("8/8/4k3/8/8/3KR3/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsDraw() {
		t.Fatal("king and rook vs king should not be an insufficient-material draw")
	}
}

func TestFiftyMoveRule(t *testing.T) {
	p, err := NewPositionFromFEN("8/8/4k3/8/8/3KR3/8/8 w - - 99 60")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsDraw() {
		t.Fatal("halfmove clock at 99 should not yet be a draw")
	}
	p, err = NewPositionFromFEN("8/8/4k3/8/8/3KR3/8/8 w - - 100 60")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsDraw() {
		t.Fatal("halfmove clock at 100 should be a fifty-move draw")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	p := NewInitialPosition()
	if p.IsDraw() {
		t.Fatal("starting position should not be a repetition draw")
	}

	playMove := func(uci string) {
		m, err := p.ParseUserMove(uci)
		if err != nil {
			t.Fatalf("ParseUserMove(%q): %v", uci, err)
		}
		p.Push(m)
	}

	for i := 0; i < 2; i++ {
		playMove("g1f3")
		playMove("g8f6")
		playMove("f3g1")
		playMove("f6g8")
	}
	if !p.IsDraw() {
		t.Fatal("position repeated three times should be a draw")
	}
}
