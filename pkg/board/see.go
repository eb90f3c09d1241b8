package board

// nominalValue gives the material value used by SEE, in the same units as the
// pawn=1/knight=bishop=3/rook=5/queen=9/king=100 scale used throughout the engine.
// Duplicated here (rather than imported from pkg/eval) to keep board dependency-free of
// eval, matching the teacher's layering where board never imports eval.
func nominalValue(p Piece) int {
	switch p {
	case Pawn:
		return 1
	case Bishop, Knight:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 100
	default:
		return 0
	}
}

// attackersTo returns the combined bitboard of pieces of the given color that attack
// sq, given the (possibly reduced, for x-ray purposes) occupancy board occ.
func attackersTo(occ Bitboard, side Color, sq Square, pieces [NumColors][NumPieces]Bitboard) Bitboard {
	var ret Bitboard
	for _, piece := range KingQueenRookKnightBishop {
		ret |= Attackboard(occ, sq, piece) & pieces[side][piece]
	}
	ret |= PawnCaptureboard(side.Opponent(), BitMask(sq)) & pieces[side][Pawn]
	return ret
}

// leastValuableAttacker picks the lowest-nominal-value piece out of attackers and
// returns its square, its piece kind, and whether any attacker was found.
func leastValuableAttacker(attackers Bitboard, side Color, pieces [NumColors][NumPieces]Bitboard) (Square, Piece, bool) {
	for _, piece := range []Piece{Pawn, Knight, Bishop, Rook, Queen, King} {
		bb := attackers & pieces[side][piece]
		if bb != 0 {
			return bb.LastPopSquare(), piece, true
		}
	}
	return ZeroSquare, ZeroPiece, false
}

// SEE performs Static Exchange Evaluation for a capture by the side to move landing on
// m.To, returning the net material gain (in nominal pawn units) of playing out the full
// capture sequence on that square with both sides trading in least-valuable-attacker
// order. A non-negative result means the capture does not lose material. Grounded on
// the attacker-enumeration idiom of FindCapture/FindPins (pkg/eval), generalized here
// into the standard minimax "swap list" exchange simulation, including the X-ray
// re-reveal of attackers uncovered behind a piece once it is removed from the board.
func SEE(pos *Position, m Move) int {
	if !m.IsCapture() {
		return 0
	}

	target := m.To
	occ := pos.Occupied()
	pieces := pos.pieces

	// Remove the initial attacker from its origin square; it is about to move to target.
	occ &^= BitMask(m.From)

	var captured Piece
	if ep, ok := m.EnPassantCapture(); ok {
		captured = Pawn
		occ &^= BitMask(ep)
		pieces[pos.turn.Opponent()][Pawn] &^= BitMask(ep)
	} else {
		captured = m.Capture
	}
	pieces[pos.turn][m.Piece] &^= BitMask(m.From)
	pieces[pos.turn][m.Piece] |= BitMask(target)
	occ |= BitMask(target)

	gain := make([]int, 0, 32)
	gain = append(gain, nominalValue(captured))

	side := pos.turn.Opponent()
	attacker := m.Piece

	for {
		attackers := attackersTo(occ, side, target, pieces)
		if attackers == 0 {
			break
		}
		sq, piece, ok := leastValuableAttacker(attackers, side, pieces)
		if !ok {
			break
		}

		gain = append(gain, nominalValue(attacker)-gain[len(gain)-1])

		occ &^= BitMask(sq)
		pieces[side][piece] &^= BitMask(sq)

		attacker = piece
		side = side.Opponent()
	}

	// Fold the swap list from the last (deepest) exchange back to the front: at each
	// step a side only continues the exchange if doing so improves its own outcome.
	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}
