package eval

import (
	"sort"

	"github.com/herohde/morlock-mb/pkg/board"
)

// FindCapture returns the pieces of the given color that directly target the square.
func FindCapture(pos *board.Position, side board.Color, sq board.Square) []board.Placement {
	var ret []board.Placement
	occupied := pos.Occupied()

	for _, piece := range board.KingQueenRookKnightBishop {
		bb := board.Attackboard(occupied, sq, piece) & pos.PieceBitboard(side, piece)
		for bb != 0 {
			var from board.Square
			from, bb = bb.PopSquare()
			ret = append(ret, board.Placement{Piece: piece, Color: side, Square: from})
		}
	}

	bb := board.PawnCaptureboard(side.Opponent() /* reverse direction */, board.BitMask(sq)) & pos.PieceBitboard(side, board.Pawn)
	for bb != 0 {
		var from board.Square
		from, bb = bb.PopSquare()
		ret = append(ret, board.Placement{Piece: board.Pawn, Color: side, Square: from})
	}

	return ret
}

// SortByNominalValue orders the placement list by nominal material value, low to high.
func SortByNominalValue(pieces []board.Placement) []board.Placement {
	sort.SliceStable(pieces, func(i, j int) bool {
		return NominalValue(pieces[i].Piece) < NominalValue(pieces[j].Piece)
	})
	return pieces
}
