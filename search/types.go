package search

import "github.com/vfomin/chesscore/rules"

// Score is a signed evaluation in centipawns, positive favouring White.
type Score float64

const (
	// InfScore is the sentinel value standing in for infinity in alpha-beta
	// bounds and mate scoring.
	InfScore Score = 1_000_000

	// MaxDepth is the compile-time ceiling on iterative deepening;
	// the wall-clock budget is the authoritative limit, this only
	// bounds memory and recursion depth.
	MaxDepth = 8

	// TTSize must be a power of two so probing can mask instead of
	// mod-divide.
	TTSize = 1 << 20

	// EndgameMaterialThreshold is the cutoff on both sides' material
	// (pawns included, kings excluded) at or below which the evaluator
	// switches on king-activity scoring instead of king-safety scoring.
	EndgameMaterialThreshold Score = 2400

	// TimeCheckPlies is how often, in plies, the alpha-beta driver
	// checks the wall clock against the search budget.
	TimeCheckPlies = 5

	// MaxKillerMoves bounds the FIFO killer-move table per ply.
	MaxKillerMoves = 2
)

// Bound classifies a stored transposition-table score relative to the
// window it was computed in.
type Bound int8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// Piece material values in centipawns.
const (
	ValuePawn   Score = 100
	ValueKnight Score = 320
	ValueBishop Score = 330
	ValueRook   Score = 500
	ValueQueen  Score = 900
	ValueKing   Score = 20000
)

func pieceValue(piece byte) Score {
	switch piece {
	case rules.WhitePawn, rules.BlackPawn:
		return ValuePawn
	case rules.WhiteKnight, rules.BlackKnight:
		return ValueKnight
	case rules.WhiteBishop, rules.BlackBishop:
		return ValueBishop
	case rules.WhiteRook, rules.BlackRook:
		return ValueRook
	case rules.WhiteQueen, rules.BlackQueen:
		return ValueQueen
	case rules.WhiteKing, rules.BlackKing:
		return ValueKing
	}
	return 0
}
