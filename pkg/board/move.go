package board

import (
	"fmt"
	"strings"
)

// MoveType indicates the type of move. The no-progress counter is reset with any move
// other than a Normal move or a castling move.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // Pawn move
	Jump               // Pawn 2-square move
	EnPassant          // Implicitly a pawn capture
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion
)

func (t MoveType) IsCapture() bool {
	return t == Capture || t == CapturePromotion || t == EnPassant
}

func (t MoveType) IsPromotion() bool {
	return t == Promotion || t == CapturePromotion
}

func (t MoveType) IsCastle() bool {
	return t == QueenSideCastle || t == KingSideCastle
}

// Move represents a not-necessarily legal move along with contextual metadata. The
// mover Piece and any captured Piece are carried so Position.Unmake never has to
// re-derive them from a mailbox lookup after the board has already changed.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Piece // the piece being moved
	Promotion Piece // desired piece for promotion, if any.
	Capture   Piece // captured piece, if any.
	Score     Score
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move does not contain contextual information like castling or en passant;
// callers should match it against a generated pseudo-legal move to recover full metadata.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

// NullMove is the sentinel used by null-move pruning. No generated move ever has
// From == To, so it is unambiguously distinguishable from every legal move.
var NullMove = Move{}

func (m Move) IsNull() bool {
	return m.From == m.To
}

func (m Move) IsCapture() bool {
	return m.Type.IsCapture()
}

func (m Move) IsPromotion() bool {
	return m.Type.IsPromotion()
}

// Equals compares moves by from/to/promotion only, matching on wire notation: two
// moves parsed from the same UCI string are equal regardless of other metadata.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// CastlingRightsLost returns the castling rights this move revokes: a king or rook
// leaving its home square, or an enemy rook being captured on its home square.
func (m Move) CastlingRightsLost() Castling {
	var lost Castling
	switch m.Piece {
	case King:
		if m.From == E1 || m.From == E8 {
			lost |= Both(homeColor(m.From))
		}
	case Rook:
		lost |= rookHomeRight(m.From)
	}
	if m.IsCapture() {
		lost |= rookHomeRight(m.To)
	}
	return lost
}

func homeColor(sq Square) Color {
	if sq.Rank() == Rank1 {
		return White
	}
	return Black
}

func rookHomeRight(sq Square) Castling {
	switch sq {
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	default:
		return 0
	}
}

// EnPassantCapture returns the square of the pawn captured en passant, if this
// move is an EnPassant move.
func (m Move) EnPassantCapture() (Square, bool) {
	if m.Type != EnPassant {
		return NoSquare, false
	}
	if m.To.Rank() == Rank6 {
		return NewSquare(m.To.File(), Rank5), true
	}
	return NewSquare(m.To.File(), Rank4), true
}

// EnPassantTarget returns the en passant target square created by this move, if
// this move is a Jump (double pawn push).
func (m Move) EnPassantTarget() (Square, bool) {
	if m.Type != Jump {
		return NoSquare, false
	}
	if m.To.Rank() == Rank4 {
		return NewSquare(m.To.File(), Rank3), true
	}
	return NewSquare(m.To.File(), Rank6), true
}

// CastlingRookMove returns the rook's from/to squares for a castling move.
func (m Move) CastlingRookMove() (Square, Square, bool) {
	switch {
	case m.Type == KingSideCastle && m.From.Rank() == Rank1:
		return H1, F1, true
	case m.Type == KingSideCastle:
		return H8, F8, true
	case m.Type == QueenSideCastle && m.From.Rank() == Rank1:
		return A1, D1, true
	case m.Type == QueenSideCastle:
		return A8, D8, true
	default:
		return 0, 0, false
	}
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return strings.ToLower(fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion))
	}
	return strings.ToLower(fmt.Sprintf("%v%v", m.From, m.To))
}

// FormatMoves renders a move list using the given formatter, space-separated.
func FormatMoves(moves []Move, fn func(Move) string) string {
	var s string
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += fn(m)
	}
	return s
}

// PrintMoves renders a move list in long algebraic notation, space-separated.
func PrintMoves(moves []Move) string {
	return FormatMoves(moves, Move.String)
}
