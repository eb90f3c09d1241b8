// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/morlock-mb/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode parses a FEN string into its constituent pieces, active color, castling
// rights, en passant target, halfmove clock and fullmove number, without constructing
// a Position (callers supply their own *board.ZobristTable via ParsePosition/ParseFEN).
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (pieces []board.Placement, turn board.Color, castling board.Castling, ep board.Square, halfmove, fullmove int, err error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement (from white's perspective). Each rank is described,
	// starting with rank 8 and ending with rank 1; within each rank, the
	// contents of each square are described from file a through file h.

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid number of ranks in FEN: '%v'", fen)
	}

	for i, row := range ranks {
		r := board.Rank8 - board.Rank(i)
		f := board.ZeroFile

		for _, r2 := range []rune(row) {
			switch {
			case unicode.IsDigit(r2):
				f += board.File(r2 - '0')

			case unicode.IsLetter(r2):
				if f >= board.NumFiles {
					return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid rank in FEN: '%v'", fen)
				}
				color, piece, ok := parsePiece(r2)
				if !ok {
					return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid piece '%v' in FEN: '%v'", r2, fen)
				}
				pieces = append(pieces, board.Placement{Square: board.NewSquare(f, r), Color: color, Piece: piece})
				f++

			default:
				return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid character in FEN: '%v'", fen)
			}
		}
		if f != board.NumFiles {
			return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid number of squares in rank %v of FEN: '%v'", i, fen)
		}
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}

	// (3) Castling availability.

	rights, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid castling in FEN: '%v'", fen)
	}

	// (4) En passant target square in algebraic notation, or "-".

	target := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid en passant in FEN: '%v'", fen)
		}
		target = sq
	}

	// (5) Halfmove clock.

	np, err := strconv.Atoi(parts[4])
	if err != nil || np < 0 {
		return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid halfmove in FEN: '%v'", fen)
	}

	// (6) Fullmove number.

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, 0, 0, 0, 0, 0, fmt.Errorf("invalid full moves in FEN: '%v'", fen)
	}

	return pieces, active, rights, target, np, fm, nil
}

// ParsePosition decodes a FEN string into a ready-to-play Position, using a fresh
// Zobrist table. Most callers that need to compare positions across games should use
// ParseFEN with a shared table instead, so hashes are comparable.
func ParsePosition(f string) (*board.Position, error) {
	return ParseFEN(board.NewZobristTable(1), f)
}

// ParseFEN decodes a FEN string into a Position hashed against the given table.
func ParseFEN(zt *board.ZobristTable, f string) (*board.Position, error) {
	pieces, turn, castling, ep, halfmove, fullmove, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return board.NewPosition(zt, pieces, turn, castling, ep, halfmove, fullmove)
}

// Encode encodes the position in FEN notation.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			color, piece, ok := pos.Square(board.NewSquare(f, r))
			if !ok {
				blanks++
				continue
			}

			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}

			sb.WriteRune(printPiece(color, piece))
		}

		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}

		if r == board.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	turn := printColor(pos.Turn())
	castling := printCastling(pos.Castling())

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = strings.ToLower(sq.String())
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, castling, ep, pos.HalfmoveClock(), pos.FullmoveNumber())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	if c == 0 {
		return "-"
	}

	ret := ""
	if c.IsAllowed(board.WhiteKingSideCastle) {
		ret += "K"
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		ret += "Q"
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		ret += "k"
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		ret += "q"
	}
	return ret
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	switch r {
	case 'P':
		return board.White, board.Pawn, true
	case 'B':
		return board.White, board.Bishop, true
	case 'N':
		return board.White, board.Knight, true
	case 'R':
		return board.White, board.Rook, true
	case 'Q':
		return board.White, board.Queen, true
	case 'K':
		return board.White, board.King, true

	case 'p':
		return board.Black, board.Pawn, true
	case 'b':
		return board.Black, board.Bishop, true
	case 'n':
		return board.Black, board.Knight, true
	case 'r':
		return board.Black, board.Rook, true
	case 'q':
		return board.Black, board.Queen, true
	case 'k':
		return board.Black, board.King, true

	default:
		return 0, 0, false
	}
}

func printPiece(c board.Color, p board.Piece) rune {
	if c == board.White {
		switch p {
		case board.Pawn:
			return 'P'
		case board.Bishop:
			return 'B'
		case board.Knight:
			return 'N'
		case board.Rook:
			return 'R'
		case board.Queen:
			return 'Q'
		case board.King:
			return 'K'
		default:
			return '?'
		}
	}

	switch p {
	case board.Pawn:
		return 'p'
	case board.Bishop:
		return 'b'
	case board.Knight:
		return 'n'
	case board.Rook:
		return 'r'
	case board.Queen:
		return 'q'
	case board.King:
		return 'k'
	default:
		return '?'
	}
}
