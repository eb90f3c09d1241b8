package eval

import "github.com/herohde/morlock-mb/pkg/board"

// Pin represents a pinned piece. A pinned piece cannot attack anything but
// the attacker itself, if the relative value of attacker/target is high enough.
type Pin struct {
	Attacker, Pinned, Target board.Square
}

// FindPins returns all pins targeting the given piece.
func FindPins(pos *board.Position, side board.Color, piece board.Piece) []Pin {
	var ret []Pin
	occupied := pos.Occupied()
	own := pos.ColorBitboard(side)

	bb := pos.PieceBitboard(side, piece)
	for bb != 0 {
		var target board.Square
		target, bb = bb.PopSquare()

		// (1) Rook/Queen pins

		rooks := board.RookAttackboard(occupied, target)
		pins := rooks & own
		for pins != 0 {
			var pinned board.Square
			pinned, pins = pins.PopSquare()

			attackers := pos.PieceBitboard(side.Opponent(), board.Queen) | pos.PieceBitboard(side.Opponent(), board.Rook)

			xray := occupied &^ board.BitMask(pinned)
			candidate := (board.RookAttackboard(xray, target) &^ rooks) & attackers
			if candidate != 0 {
				attacker := candidate.LastPopSquare()
				ret = append(ret, Pin{Attacker: attacker, Pinned: pinned, Target: target})
			}
		}

		// (2) Bishop/Queen pins

		bishops := board.BishopAttackboard(occupied, target)
		pins = bishops & own
		for pins != 0 {
			var pinned board.Square
			pinned, pins = pins.PopSquare()

			attackers := pos.PieceBitboard(side.Opponent(), board.Queen) | pos.PieceBitboard(side.Opponent(), board.Bishop)

			xray := occupied &^ board.BitMask(pinned)
			candidate := (board.BishopAttackboard(xray, target) &^ bishops) & attackers
			if candidate != 0 {
				attacker := candidate.LastPopSquare()
				ret = append(ret, Pin{Attacker: attacker, Pinned: pinned, Target: target})
			}
		}
	}

	return ret
}
