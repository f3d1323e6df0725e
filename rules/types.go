// Package rules implements the black-box chess rules module that the search
// core treats as an opaque interface: legal move generation, push/pop with
// exact undo, draw and terminal detection, and read-only inspection of the
// board, side to move, castling rights and en-passant state.
package rules

// Piece codes follow the board's own convention: uppercase for White,
// lowercase for Black, a space for an empty square.
const (
	Empty byte = ' '

	WhitePawn   byte = 'P'
	WhiteKnight byte = 'N'
	WhiteBishop byte = 'B'
	WhiteRook   byte = 'R'
	WhiteQueen  byte = 'Q'
	WhiteKing   byte = 'K'

	BlackPawn   byte = 'p'
	BlackKnight byte = 'n'
	BlackBishop byte = 'b'
	BlackRook   byte = 'r'
	BlackQueen  byte = 'q'
	BlackKing   byte = 'k'
)

// Square files and ranks, matching the a1=0 .. h8=63 numbering used
// throughout this package and the search core.
const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const NoEnPassant = -1

// Special tags a Move can carry, beyond a plain quiet move or a capture.
type Special int

const (
	SpecialNone Special = iota
	SpecialDoublePawnPush
	SpecialEnPassant
	SpecialCastleKingside
	SpecialCastleQueenside
	SpecialPromoteQueen
	SpecialPromoteRook
	SpecialPromoteBishop
	SpecialPromoteKnight
)

// Move is a value type: two moves compare equal iff every field matches.
type Move struct {
	From, To int
	Captured byte
	Special  Special
}

// MoveNone is the sentinel for "no move", returned e.g. by Solve when the
// position has no legal moves at all.
var MoveNone = Move{From: -1, To: -1}

func (m Move) IsNone() bool {
	return m.From < 0
}

func (m Move) IsPromotion() bool {
	switch m.Special {
	case SpecialPromoteQueen, SpecialPromoteRook, SpecialPromoteBishop, SpecialPromoteKnight:
		return true
	}
	return false
}

func (m Move) PromotionPiece(whiteMoves bool) byte {
	var p byte
	switch m.Special {
	case SpecialPromoteQueen:
		p = 'q'
	case SpecialPromoteRook:
		p = 'r'
	case SpecialPromoteBishop:
		p = 'b'
	case SpecialPromoteKnight:
		p = 'n'
	default:
		return Empty
	}
	if whiteMoves {
		p -= 'a' - 'A'
	}
	return p
}

// Terminal classifies a position that has no legal moves.
type Terminal int

const (
	TerminalNone Terminal = iota
	WhiteMated
	BlackMated
	WhiteStalemated
	BlackStalemated
)

// CastlingRights tracks the four independent castling privileges.
type CastlingRights struct {
	WK, WQ, BK, BQ bool
}

func fileOf(sq int) int { return sq % 8 }
func rankOf(sq int) int { return sq / 8 }
func squareOf(file, rank int) int {
	return rank*8 + file
}
func isWhitePiece(p byte) bool {
	return p >= 'A' && p <= 'Z'
}
func isBlackPiece(p byte) bool {
	return p >= 'a' && p <= 'z'
}
