package eval

import (
	"context"

	"github.com/herohde/morlock-mb/pkg/board"
)

// PSQT is a piece-square-table evaluator: material (via NominalValue) plus a
// positional bonus/penalty per (piece, square), from White's perspective, mirrored
// for Black. Grounded on the teacher's Material.Evaluate bitboard-iteration idiom
// (for bb != 0 { sq, bb = bb.PopSquare() ... }), extended with the square-indexed
// table lookup tables below.
type PSQT struct{}

func (PSQT) Evaluate(ctx context.Context, b *board.Board) Pawns {
	pos := b.Position()
	turn := b.Turn()

	var score Pawns
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		score += pieceSquareSum(pos, board.White, p) - pieceSquareSum(pos, board.Black, p)
	}

	if turn == board.Black {
		score = -score
	}
	return score
}

func pieceSquareSum(pos *board.Position, c board.Color, p board.Piece) Pawns {
	table := psqt[p]

	var sum Pawns
	bb := pos.PieceBitboard(c, p)
	for bb != 0 {
		var sq board.Square
		sq, bb = bb.PopSquare()

		sum += NominalValue(p)
		sum += Pawns(table[squareIndex(c, sq)]) / 100
	}
	return sum
}

// squareIndex mirrors Black squares vertically so a single White-oriented table can be
// shared by both colors: rank 1 for White corresponds to rank 8 for Black, etc.
func squareIndex(c board.Color, sq board.Square) int {
	if c == board.White {
		return int(sq)
	}
	mirrored := board.NewSquare(sq.File(), board.Rank8-sq.Rank())
	return int(mirrored)
}

// Tables below are expressed in centi-pawns, White's perspective, A1=0..H8=63 ordering,
// and are the well-known Fruit-derived piece-square values used widely as placeholder
// tuning targets in small engines.
var psqt = [board.NumPieces][64]int16{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}
