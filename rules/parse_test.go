package rules

import "testing"

func TestParseUserMoveBasic(t *testing.T) {
	p := NewInitialPosition()
	m, err := p.ParseUserMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "e2e4" {
		t.Fatalf("got %q, want e2e4", m.String())
	}
}

func TestParseUserMoveRejectsIllegal(t *testing.T) {
	p := NewInitialPosition()
	if _, err := p.ParseUserMove("e2e5"); err == nil {
		t.Fatal("expected an error for an illegal move")
	}
}

func TestParseUserMoveRejectsGarbage(t *testing.T) {
	p := NewInitialPosition()
	cases := []string{"", "z9z9", "e2", "e2e4e4", "e2e4z"}
	for _, s := range cases {
		if _, err := p.ParseUserMove(s); err == nil {
			t.Errorf("ParseUserMove(%q): expected an error", s)
		}
	}
}

func TestParseUserMovePromotion(t *testing.T) {
	p, err := NewPositionFromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := p.ParseUserMove("a7a8q")
	if err != nil {
		t.Fatal(err)
	}
	if m.Special != SpecialPromoteQueen {
		t.Fatalf("expected queen promotion, got %v", m.Special)
	}
	if m.String() != "a7a8q" {
		t.Fatalf("got %q, want a7a8q", m.String())
	}
}

func TestMoveNoneString(t *testing.T) {
	if MoveNone.String() != "0000" {
		t.Fatalf("MoveNone.String() = %q, want 0000", MoveNone.String())
	}
	if !MoveNone.IsNone() {
		t.Fatal("MoveNone.IsNone() should be true")
	}
}
