package search

import (
	"math/rand"

	"github.com/vfomin/chesscore/rules"
)

// zobristSeed is fixed so that keys, and therefore the TT and every
// deterministic-output test, are reproducible across runs: a package-level
// init seeds a single rand.Rand from this literal constant once, rather than
// reseeding per call.
const zobristSeed = 20260806

var (
	zPiece  [12][64]uint64
	zSide   uint64
	zCastle [16]uint64
	zEp     [8]uint64
)

// Piece order within a color: P,N,B,R,Q,K. White occupies indices 0..5,
// Black 6..11.
var zobristPieceIndex = map[byte]int{
	rules.WhitePawn: 0, rules.WhiteKnight: 1, rules.WhiteBishop: 2,
	rules.WhiteRook: 3, rules.WhiteQueen: 4, rules.WhiteKing: 5,
	rules.BlackPawn: 6, rules.BlackKnight: 7, rules.BlackBishop: 8,
	rules.BlackRook: 9, rules.BlackQueen: 10, rules.BlackKing: 11,
}

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			zPiece[p][sq] = r.Uint64()
		}
	}
	zSide = r.Uint64()
	for i := range zCastle {
		zCastle[i] = r.Uint64()
	}
	for i := range zEp {
		zEp[i] = r.Uint64()
	}
}

func castlingMask(rights rules.CastlingRights) int {
	mask := 0
	if rights.WK {
		mask |= 1
	}
	if rights.WQ {
		mask |= 2
	}
	if rights.BK {
		mask |= 4
	}
	if rights.BQ {
		mask |= 8
	}
	return mask
}

// zobristKey computes the position's 64-bit fingerprint from scratch by
// XORing the contribution of every occupied square, the side to move, the
// castling-rights mask and the en-passant file. Incremental maintenance
// would be a valid optimization but is not implemented here.
func zobristKey(pos Adapter) uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		piece := pos.Square(sq)
		if idx, ok := zobristPieceIndex[piece]; ok {
			key ^= zPiece[idx][sq]
		}
	}
	if !pos.WhiteToMove() {
		key ^= zSide
	}
	key ^= zCastle[castlingMask(pos.CastlingRights())]
	if file, ok := pos.EnPassantFile(); ok {
		key ^= zEp[file]
	}
	return key
}
