package board

// GenerateMoves returns all pseudo-legal moves for the side to move. Pseudo-legal means
// every move obeys normal piece movement rules, but may still leave the mover's own king
// in check; use GenerateLegalMoves, or Make+IsChecked+Unmake, to filter those out.
func GenerateMoves(pos *Position) []Move {
	var buf MoveBuffer
	generateMoves(pos, &buf, false)
	return append([]Move(nil), buf.Slice()...)
}

// GenerateLegalMoves returns all legal moves for the side to move, by generating
// pseudo-legal moves and discarding those that leave the mover's own king in check.
func GenerateLegalMoves(pos *Position) []Move {
	turn := pos.Turn()
	pseudo := GenerateMoves(pos)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		pos.Make(m)
		if !pos.IsAttacked(turn, pos.KingSquare(turn)) {
			legal = append(legal, m)
		}
		pos.Unmake()
	}
	return legal
}

// IsLegal reports whether the given pseudo-legal move is in fact legal (does not leave
// the mover's own king in check).
func IsLegal(pos *Position, m Move) bool {
	turn := pos.Turn()
	pos.Make(m)
	ok := !pos.IsAttacked(turn, pos.KingSquare(turn))
	pos.Unmake()
	return ok
}

// GenerateCaptures returns all pseudo-legal captures and quiet queen promotions for
// the side to move, used to seed quiescence search.
func GenerateCaptures(pos *Position) []Move {
	var buf MoveBuffer
	generateMoves(pos, &buf, true)
	return append([]Move(nil), buf.Slice()...)
}

func generateMoves(pos *Position, buf *MoveBuffer, capturesOnly bool) {
	turn := pos.Turn()
	own := pos.ColorBitboard(turn)
	enemy := pos.ColorBitboard(turn.Opponent())
	all := pos.Occupied()

	generatePawnMoves(pos, buf, turn, enemy, all, capturesOnly)

	for _, piece := range KingQueenRookKnightBishop {
		origin := pos.PieceBitboard(turn, piece)
		for origin != 0 {
			var from Square
			from, origin = origin.PopSquare()

			targets := Attackboard(all, from, piece) &^ own
			if capturesOnly {
				targets &= enemy
			}
			for targets != 0 {
				var to Square
				to, targets = targets.PopSquare()
				buf.Add(newNonPawnMove(pos, piece, from, to))
			}
		}
	}

	if !capturesOnly {
		buf.appendAll(GenerateCastles(pos, turn))
	}
}

func (b *MoveBuffer) appendAll(moves []Move) {
	for _, m := range moves {
		b.Add(m)
	}
}

func newNonPawnMove(pos *Position, piece Piece, from, to Square) Move {
	if _, capture, ok := pos.Square(to); ok {
		return Move{Type: Capture, Piece: piece, From: from, To: to, Capture: capture}
	}
	return Move{Type: Normal, Piece: piece, From: from, To: to}
}

var promotionPieces = []Piece{Queen, Rook, Knight, Bishop}

func generatePawnMoves(pos *Position, buf *MoveBuffer, turn Color, enemy, all Bitboard, capturesOnly bool) {
	pawns := pos.PieceBitboard(turn, Pawn)
	promoRank := PawnPromotionRank(turn)

	// Captures, including promotion-captures.
	attacks := pawns
	for attacks != 0 {
		var from Square
		from, attacks = attacks.PopSquare()

		targets := PawnCaptureboard(turn, BitMask(from)) & enemy
		for targets != 0 {
			var to Square
			to, targets = targets.PopSquare()
			_, capture, _ := pos.Square(to)

			if BitMask(to)&promoRank != 0 {
				for _, promo := range promotionPieces {
					buf.Add(Move{Type: CapturePromotion, Piece: Pawn, From: from, To: to, Promotion: promo, Capture: capture})
				}
			} else {
				buf.Add(Move{Type: Capture, Piece: Pawn, From: from, To: to, Capture: capture})
			}
		}

		if ep, ok := pos.EnPassant(); ok && PawnCaptureboard(turn, BitMask(from))&BitMask(ep) != 0 {
			buf.Add(Move{Type: EnPassant, Piece: Pawn, From: from, To: ep, Capture: Pawn})
		}
	}

	// Single and double pushes, including quiet promotions.
	single := PawnMoveboard(all, turn, pawns)
	from := pawns
	for from != 0 {
		var sq Square
		sq, from = from.PopSquare()

		to := pawnPushTarget(turn, sq)
		if single&BitMask(to) == 0 {
			continue
		}

		if BitMask(to)&promoRank != 0 {
			if capturesOnly {
				// Quiet non-capturing promotions are still forcing enough to search at
				// the horizon, but only promoting to a queen (spec.md §4.4/§4.8).
				buf.Add(Move{Type: Promotion, Piece: Pawn, From: sq, To: to, Promotion: Queen})
				continue
			}
			for _, promo := range promotionPieces {
				buf.Add(Move{Type: Promotion, Piece: Pawn, From: sq, To: to, Promotion: promo})
			}
			continue
		}
		if capturesOnly {
			continue
		}
		buf.Add(Move{Type: Push, Piece: Pawn, From: sq, To: to})

		if BitMask(sq)&PawnHomeRank(turn) != 0 {
			jump := pawnPushTarget(turn, to)
			if pos.IsEmpty(jump) {
				buf.Add(Move{Type: Jump, Piece: Pawn, From: sq, To: jump})
			}
		}
	}
}

func pawnPushTarget(c Color, sq Square) Square {
	if c == White {
		return NewSquare(sq.File(), sq.Rank()+1)
	}
	return NewSquare(sq.File(), sq.Rank()-1)
}

// PawnHomeRank returns the starting rank for the given color's pawns.
func PawnHomeRank(c Color) Bitboard {
	if c == White {
		return BitRank(Rank2)
	}
	return BitRank(Rank7)
}

// GenerateCastles returns the pseudo-legal castling moves available to turn: the
// relevant rights must be held, the squares between king and rook must be empty, and
// the king must not start, pass through, or land on an attacked square.
func GenerateCastles(pos *Position, turn Color) []Move {
	var moves []Move
	rights := pos.Castling()
	rank := Rank1
	if turn == Black {
		rank = Rank8
	}
	kingFrom := NewSquare(FileE, rank)

	if pos.mailbox[kingFrom] != King || pos.IsAttacked(turn, kingFrom) {
		return nil
	}

	if rights.IsAllowed(KingSide(turn)) {
		f, g, h := NewSquare(FileF, rank), NewSquare(FileG, rank), NewSquare(FileH, rank)
		if pos.IsEmpty(f) && pos.IsEmpty(g) && pos.mailbox[h] == Rook &&
			!pos.IsAttacked(turn, f) && !pos.IsAttacked(turn, g) {
			moves = append(moves, Move{Type: KingSideCastle, Piece: King, From: kingFrom, To: g})
		}
	}
	if rights.IsAllowed(QueenSide(turn)) {
		d, c, b, a := NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank), NewSquare(FileA, rank)
		if pos.IsEmpty(d) && pos.IsEmpty(c) && pos.IsEmpty(b) && pos.mailbox[a] == Rook &&
			!pos.IsAttacked(turn, d) && !pos.IsAttacked(turn, c) {
			moves = append(moves, Move{Type: QueenSideCastle, Piece: King, From: kingFrom, To: c})
		}
	}
	return moves
}
