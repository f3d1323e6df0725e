package rules

// undoRecord captures everything Pop needs to restore a Position to exactly
// the state it had before the matching Push.
type undoRecord struct {
	movingPieceOriginal byte
	captured            byte
	capturedSquare      int
	prevCastle          CastlingRights
	prevEP              int
	prevHalfmove        int
	prevFullmove        int
	rookFrom, rookTo    int
}

// Push applies m to the position, recording enough undo information for a
// later Pop(m) to restore the prior state bit-for-bit. The caller is
// responsible for calling Pop with the same move, in strict LIFO order.
func (p *Position) Push(m Move) {
	white := p.whiteToMove
	movingPiece := p.board[m.From]

	rec := undoRecord{
		movingPieceOriginal: movingPiece,
		capturedSquare:      m.To,
		prevCastle:          p.CastlingRights(),
		prevEP:              p.epSquare,
		prevHalfmove:        p.halfmoveClock,
		prevFullmove:        p.fullmoveNumber,
		rookFrom:            -1,
		rookTo:              -1,
	}

	if m.Special == SpecialEnPassant {
		rec.capturedSquare = squareOf(fileOf(m.To), rankOf(m.From))
	}
	rec.captured = p.board[rec.capturedSquare]

	if rec.captured != Empty {
		p.board[rec.capturedSquare] = Empty
	}

	p.board[m.From] = Empty
	if m.IsPromotion() {
		p.board[m.To] = m.PromotionPiece(white)
	} else {
		p.board[m.To] = movingPiece
	}

	switch m.Special {
	case SpecialCastleKingside:
		if white {
			rec.rookFrom, rec.rookTo = SquareH1, SquareF1
		} else {
			rec.rookFrom, rec.rookTo = SquareH8, SquareF8
		}
	case SpecialCastleQueenside:
		if white {
			rec.rookFrom, rec.rookTo = SquareA1, SquareD1
		} else {
			rec.rookFrom, rec.rookTo = SquareA8, SquareD8
		}
	}
	if rec.rookFrom >= 0 {
		p.board[rec.rookTo] = p.board[rec.rookFrom]
		p.board[rec.rookFrom] = Empty
	}

	switch movingPiece {
	case WhiteKing:
		p.castleWK, p.castleWQ = false, false
	case BlackKing:
		p.castleBK, p.castleBQ = false, false
	}
	if m.From == SquareA1 || rec.capturedSquare == SquareA1 {
		p.castleWQ = false
	}
	if m.From == SquareH1 || rec.capturedSquare == SquareH1 {
		p.castleWK = false
	}
	if m.From == SquareA8 || rec.capturedSquare == SquareA8 {
		p.castleBQ = false
	}
	if m.From == SquareH8 || rec.capturedSquare == SquareH8 {
		p.castleBK = false
	}

	if m.Special == SpecialDoublePawnPush {
		p.epSquare = squareOf(fileOf(m.From), (rankOf(m.From)+rankOf(m.To))/2)
	} else {
		p.epSquare = NoEnPassant
	}

	if upper(movingPiece) == 'P' || rec.captured != Empty {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if !white {
		p.fullmoveNumber++
	}

	p.whiteToMove = !white
	p.undo = append(p.undo, rec)
	p.history = append(p.history, p.signature())
}

// Pop reverses the effect of the immediately preceding Push(m). Behaviour
// is undefined if m does not match the last pushed move.
func (p *Position) Pop(m Move) {
	n := len(p.undo)
	rec := p.undo[n-1]
	p.undo = p.undo[:n-1]
	p.history = p.history[:len(p.history)-1]

	p.board[m.From] = rec.movingPieceOriginal
	p.board[m.To] = Empty
	if rec.captured != Empty {
		p.board[rec.capturedSquare] = rec.captured
	}
	if rec.rookFrom >= 0 {
		p.board[rec.rookFrom] = p.board[rec.rookTo]
		p.board[rec.rookTo] = Empty
	}

	p.castleWK, p.castleWQ = rec.prevCastle.WK, rec.prevCastle.WQ
	p.castleBK, p.castleBQ = rec.prevCastle.BK, rec.prevCastle.BQ
	p.epSquare = rec.prevEP
	p.halfmoveClock = rec.prevHalfmove
	p.fullmoveNumber = rec.prevFullmove
	p.whiteToMove = !p.whiteToMove
}
