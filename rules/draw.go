package rules

// IsDraw reports whether the current position is drawn by the 50-move
// rule, insufficient mating material, or threefold repetition.
func (p *Position) IsDraw() bool {
	if p.halfmoveClock >= 100 {
		return true
	}
	if p.hasInsufficientMaterial() {
		return true
	}
	return p.isThreefoldRepetition()
}

func (p *Position) hasInsufficientMaterial() bool {
	var minors, otherWhite, otherBlack int
	var whiteBishopSquares, blackBishopSquares []int
	for sq, piece := range p.board {
		switch piece {
		case Empty, WhiteKing, BlackKing:
			continue
		case WhitePawn, WhiteRook, WhiteQueen:
			otherWhite++
		case BlackPawn, BlackRook, BlackQueen:
			otherBlack++
		case WhiteKnight:
			minors++
		case BlackKnight:
			minors++
		case WhiteBishop:
			minors++
			whiteBishopSquares = append(whiteBishopSquares, sq)
		case BlackBishop:
			minors++
			blackBishopSquares = append(blackBishopSquares, sq)
		}
	}
	if otherWhite > 0 || otherBlack > 0 {
		return false
	}
	if minors <= 1 {
		return true
	}
	if minors == 2 && len(whiteBishopSquares) == 1 && len(blackBishopSquares) == 1 {
		return squareColor(whiteBishopSquares[0]) == squareColor(blackBishopSquares[0])
	}
	return false
}

func squareColor(sq int) int {
	return (fileOf(sq) + rankOf(sq)) % 2
}

func (p *Position) isThreefoldRepetition() bool {
	n := len(p.history)
	if n == 0 {
		return false
	}
	current := p.history[n-1]
	window := p.halfmoveClock
	if window > n-1 {
		window = n - 1
	}
	occurrences := 0
	for i := 0; i <= window; i += 2 {
		if p.history[n-1-i] == current {
			occurrences++
			if occurrences >= 3 {
				return true
			}
		}
	}
	return false
}

// Terminal classifies a position with no legal moves; it returns
// TerminalNone whenever a legal move exists.
func (p *Position) Terminal() Terminal {
	if len(p.LegalMoves()) > 0 {
		return TerminalNone
	}
	white := p.whiteToMove
	if p.InCheck(white) {
		if white {
			return WhiteMated
		}
		return BlackMated
	}
	if white {
		return WhiteStalemated
	}
	return BlackStalemated
}
