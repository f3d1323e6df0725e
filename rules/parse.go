package rules

import (
	"fmt"
	"strings"
)

// ParseUserMove parses coordinate notation such as "e2e4" or "e7e8q" and
// resolves it against the position's legal moves. Board printing and move
// parsing are driver-side concerns; the search core never calls this.
func (p *Position) ParseUserMove(input string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, fmt.Errorf("rules: unparseable move %q", input)
	}
	from, err := parseSquareName(s[0:2])
	if err != nil {
		return MoveNone, fmt.Errorf("rules: unparseable move %q: %w", input, err)
	}
	to, err := parseSquareName(s[2:4])
	if err != nil {
		return MoveNone, fmt.Errorf("rules: unparseable move %q: %w", input, err)
	}
	var promo byte
	if len(s) == 5 {
		promo = s[4]
		switch promo {
		case 'q', 'r', 'b', 'n':
		default:
			return MoveNone, fmt.Errorf("rules: unparseable move %q: bad promotion piece", input)
		}
	}

	for _, m := range p.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if !m.IsPromotion() {
			if promo == 0 {
				return m, nil
			}
			continue
		}
		if promoLetter(m.Special) == promo {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("rules: illegal move %q", input)
}

func promoLetter(s Special) byte {
	switch s {
	case SpecialPromoteQueen:
		return 'q'
	case SpecialPromoteRook:
		return 'r'
	case SpecialPromoteBishop:
		return 'b'
	case SpecialPromoteKnight:
		return 'n'
	}
	return 0
}

// String renders a move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := squareName(m.From) + squareName(m.To)
	if letter := promoLetter(m.Special); letter != 0 {
		s += string(letter)
	}
	return s
}
