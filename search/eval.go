package search

import "github.com/vfomin/chesscore/rules"

// Evaluate is the static position evaluator: material, piece-square bonus,
// bishop pair, mobility, pawn structure and king safety/activity, summed
// from White's point of view.
func Evaluate(pos Adapter) Score {
	var total Score
	var whiteBishops, blackBishops int
	var whitePawnFiles, blackPawnFiles [8]int
	whiteKingSq, blackKingSq := -1, -1

	for sq := 0; sq < 64; sq++ {
		piece := pos.Square(sq)
		if piece == rules.Empty {
			continue
		}
		white := isWhitePieceByte(piece)
		value := pieceValue(piece)

		pstSq := sq
		if !white {
			pstSq = 63 - sq
		}
		bonus := pstValue(upperByte(piece), pstSq)

		if white {
			total += value + bonus
		} else {
			total -= value + bonus
		}

		switch piece {
		case rules.WhiteBishop:
			whiteBishops++
		case rules.BlackBishop:
			blackBishops++
		case rules.WhitePawn:
			whitePawnFiles[sq%8]++
		case rules.BlackPawn:
			blackPawnFiles[sq%8]++
		case rules.WhiteKing:
			whiteKingSq = sq
		case rules.BlackKing:
			blackKingSq = sq
		}
	}

	if whiteBishops >= 2 {
		total += 50
	}
	if blackBishops >= 2 {
		total -= 50
	}

	total += mobilityScore(pos, true) - mobilityScore(pos, false)

	total += pawnStructurePenalty(whitePawnFiles) - pawnStructurePenalty(blackPawnFiles)

	endgame := nonKingMaterial(pos) <= EndgameMaterialThreshold

	if !endgame {
		total += kingSafety(pos, whiteKingSq, true) - kingSafety(pos, blackKingSq, false)
	} else {
		whiteActivity, blackActivity := kingActivity(whiteKingSq, blackKingSq)
		total += whiteActivity - blackActivity
	}

	return total
}

// nonKingMaterial sums both sides' material, excluding the kings, which are
// always on the board and would otherwise keep this permanently above
// EndgameMaterialThreshold.
func nonKingMaterial(pos Adapter) Score {
	var total Score
	for sq := 0; sq < 64; sq++ {
		piece := pos.Square(sq)
		if piece == rules.Empty || piece == rules.WhiteKing || piece == rules.BlackKing {
			continue
		}
		total += pieceValue(piece)
	}
	return total
}

func isWhitePieceByte(p byte) bool { return p >= 'A' && p <= 'Z' }

func upperByte(p byte) byte {
	if p >= 'a' && p <= 'z' {
		return p - ('a' - 'A')
	}
	return p
}

// mobilityScore approximates the number of pseudo-legal moves available to
// one side's knights/bishops/rooks/queens, weighted N=4 B=4 R=2 Q=1. It
// scans the board directly rather than calling LegalMoves so that both
// sides can be measured regardless of whose turn it actually is — a naive
// single-sided approximation would make the evaluation asymmetric.
func mobilityScore(pos Adapter, forWhite bool) Score {
	var total Score
	for sq := 0; sq < 64; sq++ {
		piece := pos.Square(sq)
		if piece == rules.Empty || isWhitePieceByte(piece) != forWhite {
			continue
		}
		switch upperByte(piece) {
		case 'N':
			total += Score(countLeaperMoves(pos, sq, forWhite, knightDeltas[:])) * 4
		case 'B':
			total += Score(countSliderMoves(pos, sq, forWhite, diagonalDirs[:])) * 4
		case 'R':
			total += Score(countSliderMoves(pos, sq, forWhite, orthogonalDirs[:])) * 2
		case 'Q':
			total += Score(countSliderMoves(pos, sq, forWhite, diagonalDirs[:]) +
				countSliderMoves(pos, sq, forWhite, orthogonalDirs[:]))
		}
	}
	return total
}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}
var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func onBoard(file, rank int) bool {
	return file >= 0 && file <= 7 && rank >= 0 && rank <= 7
}

func countLeaperMoves(pos Adapter, sq int, white bool, deltas [][2]int) int {
	file, rank := sq%8, sq/8
	count := 0
	for _, d := range deltas {
		f, r := file+d[0], rank+d[1]
		if !onBoard(f, r) {
			continue
		}
		target := pos.Square(r*8 + f)
		if target == rules.Empty || isWhitePieceByte(target) != white {
			count++
		}
	}
	return count
}

func countSliderMoves(pos Adapter, sq int, white bool, dirs [][2]int) int {
	file, rank := sq%8, sq/8
	count := 0
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for onBoard(f, r) {
			target := pos.Square(r*8 + f)
			if target == rules.Empty {
				count++
			} else {
				if isWhitePieceByte(target) != white {
					count++
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return count
}

// pawnStructurePenalty scores one side's own pawn-file histogram: doubled,
// island and isolated pawn penalties. The result is a non-positive number.
func pawnStructurePenalty(files [8]int) Score {
	var penalty Score
	for f := 0; f < 8; f++ {
		if files[f] > 1 {
			penalty -= Score(files[f]-1) * 10
		}
		if files[f] > 0 {
			leftEmpty := f == 0 || files[f-1] == 0
			rightEmpty := f == 7 || files[f+1] == 0
			if leftEmpty && rightEmpty {
				penalty -= 15
			}
		}
	}

	islands := 0
	inIsland := false
	for f := 0; f < 8; f++ {
		if files[f] > 0 {
			if !inIsland {
				islands++
				inIsland = true
			}
		} else {
			inIsland = false
		}
	}
	if islands > 1 {
		penalty -= Score(islands-1) * 5
	}
	return penalty
}

// kingSafety inspects the three shield squares one rank toward the enemy.
func kingSafety(pos Adapter, kingSq int, white bool) Score {
	if kingSq < 0 {
		return 0
	}
	file, rank := kingSq%8, kingSq/8
	shieldRank := rank + 1
	pawn := byte(rules.WhitePawn)
	if !white {
		shieldRank = rank - 1
		pawn = rules.BlackPawn
	}
	if shieldRank < 0 || shieldRank > 7 {
		return 0
	}
	var bonus Score
	for _, f := range [3]int{file - 1, file, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		if pos.Square(shieldRank*8+f) == pawn {
			bonus += 10
		}
	}
	if bonus == 0 {
		bonus -= 20
	}
	return bonus
}

// kingActivity rewards king centralization in the endgame, and rewards
// White for closing the distance to Black's king while rewarding Black for
// maintaining it.
func kingActivity(whiteKingSq, blackKingSq int) (whiteScore, blackScore Score) {
	if whiteKingSq < 0 || blackKingSq < 0 {
		return 0, 0
	}
	wf, wr := whiteKingSq%8, whiteKingSq/8
	bf, br := blackKingSq%8, blackKingSq/8

	kingDist := Score(abs(wf-bf) + abs(wr-br))
	whiteScore = -5*centerDistance(wf, wr) - 2*kingDist + 20
	blackScore = -5*centerDistance(bf, br) + 2*kingDist + 20
	return
}

// centerDistance measures a square's Manhattan distance to the board's
// continuous center point (3.5, 3.5) rather than to the nearest of the four
// center squares: min(|file-3|,|file-4|) is exactly half a square short of
// that on each axis, so the two halves are added back in as the flat +1.
func centerDistance(file, rank int) Score {
	fd := minInt(abs(file-3), abs(file-4))
	rd := minInt(abs(rank-3), abs(rank-4))
	return Score(fd+rd) + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
