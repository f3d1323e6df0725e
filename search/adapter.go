// Package search implements the move-search engine core: Zobrist keying,
// static evaluation, move ordering, a transposition table, quiescence
// search, an alpha-beta minimax driver, and iterative deepening under a
// wall-clock budget.
//
// The package treats the chess rules themselves as an opaque external
// collaborator, reached only through the Adapter interface below; it never
// assumes anything about how positions are represented internally.
package search

import "github.com/vfomin/chesscore/rules"

// Adapter is the uniform view the search core requires over a chess
// position. rules.Position implements it; beyond this interface the core
// uses only the rules package's value types (Move, Terminal,
// CastlingRights) and piece-code constants.
type Adapter interface {
	LegalMoves() []rules.Move
	Push(m rules.Move)
	Pop(m rules.Move)
	IsDraw() bool
	Terminal() rules.Terminal
	Square(sq int) byte
	WhiteToMove() bool
	CastlingRights() rules.CastlingRights
	EnPassantFile() (file int, ok bool)
}

var _ Adapter = (*rules.Position)(nil)
