package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// NewPositionFromFEN parses Forsyth-Edwards notation: split on spaces,
// decode the board field rank by rank, then side to move, castling rights
// and en-passant square, plus the halfmove clock and fullmove number when
// present (they default to 0 and 1).
func NewPositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("rules: bad fen %q: expected at least 4 fields", fen)
	}

	p := &Position{epSquare: NoEnPassant}
	for i := range p.board {
		p.board[i] = Empty
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("rules: bad fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank8 - i
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file > FileH {
				return nil, fmt.Errorf("rules: bad fen %q: rank overflow", fen)
			}
			p.board[squareOf(file, rank)] = byte(c)
			file++
		}
		if file != FileH+1 {
			return nil, fmt.Errorf("rules: bad fen %q: rank %d has wrong length", fen, rank)
		}
	}

	switch fields[1] {
	case "w":
		p.whiteToMove = true
	case "b":
		p.whiteToMove = false
	default:
		return nil, fmt.Errorf("rules: bad fen %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castleWK = true
			case 'Q':
				p.castleWQ = true
			case 'k':
				p.castleBK = true
			case 'q':
				p.castleBQ = true
			default:
				return nil, fmt.Errorf("rules: bad fen %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := parseSquareName(fields[3])
		if err != nil {
			return nil, fmt.Errorf("rules: bad fen %q: %w", fen, err)
		}
		p.epSquare = sq
	}

	p.halfmoveClock = 0
	p.fullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmoveNumber = n
		}
	}

	p.history = []uint64{p.signature()}
	return p, nil
}

// FEN renders the position back to Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		empty := 0
		for file := FileA; file <= FileH; file++ {
			piece := p.board[squareOf(file, rank)]
			if piece == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != Rank1 {
			sb.WriteByte('/')
		}
	}

	if p.whiteToMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	castle := ""
	if p.castleWK {
		castle += "K"
	}
	if p.castleWQ {
		castle += "Q"
	}
	if p.castleBK {
		castle += "k"
	}
	if p.castleBQ {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}
	sb.WriteString(castle)
	sb.WriteByte(' ')

	if p.epSquare == NoEnPassant {
		sb.WriteString("-")
	} else {
		sb.WriteString(squareName(p.epSquare))
	}

	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}

func parseSquareName(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < FileA || file > FileH || rank < Rank1 || rank > Rank8 {
		return 0, fmt.Errorf("bad square %q", s)
	}
	return squareOf(file, rank), nil
}

func squareName(sq int) string {
	return string([]byte{byte('a' + fileOf(sq)), byte('1' + rankOf(sq))})
}
