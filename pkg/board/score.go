package board

import (
	"fmt"
	"math"
)

// Score is a signed move or position score in centi-pawns from the perspective of the
// side to move: positive favors the side to move, negative favors the opponent. If all
// pawns become queens and the opponent has only the king left, the standard material
// advantage score is: 9*8 (p) + 9 (q) + 2*5 (r) + 2*3 (n) + 2*3 (b) = 10300 centi-pawns.
// Scores near MateScore encode distance to forced mate; see MateIn/MateDistance.
type Score int16

const (
	MinScore Score = -30000
	MaxScore Score = 30000

	// MateScore is the score assigned to the side delivering checkmate at ply 0. Scores
	// within MaxPly of +/-MateScore encode a forced mate; see MateIn and MateDistance.
	MateScore Score = 29000
	MaxPly          = 128

	// NegInf and Inf sit strictly outside [MinScore;MaxScore] and seed alpha-beta search
	// windows; they can never themselves be the value of a leaf evaluation.
	NegInf Score = MinScore - 1000
	Inf    Score = MaxScore + 1000

	// InvalidScore marks the absence of a usable aspiration-window bound.
	InvalidScore Score = math.MinInt16

	ZeroScore Score = 0
)

func (s Score) String() string {
	if d, ok := s.MateDistance(); ok {
		return fmt.Sprintf("mate%v", d)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// IsInvalid reports whether s is the InvalidScore sentinel.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// Negate flips the score to the opponent's perspective.
func (s Score) Negate() Score {
	return -s
}

// Less reports whether s is strictly less than o.
func (s Score) Less(o Score) bool {
	return s < o
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// Unit returns +1 for White and -1 for Black, to convert a White-centric score to a
// side-to-move-centric score or vice versa.
func Unit(c Color) Score {
	if c == White {
		return 1
	}
	return -1
}

// MateIn returns the score for delivering checkmate in the given number of plies, from
// the perspective of the side delivering it. ply must be >= 0.
func MateIn(ply int) Score {
	return MateScore - Score(ply)
}

// MatedIn returns the score for being checkmated in the given number of plies.
func MatedIn(ply int) Score {
	return -MateScore + Score(ply)
}

// MateDistance returns the number of plies to forced mate, if s encodes one. Positive
// means the side to move delivers mate; negative means it is mated.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s >= MateScore-MaxPly && s <= MateScore:
		return int(MateScore - s), true
	case s <= -MateScore+MaxPly && s >= -MateScore:
		return -int(MateScore + s), true
	default:
		return 0, false
	}
}

// IncrementMateDistance moves a mate score one ply further away, as it is propagated up
// the search tree from the position where the mate was found back towards the root.
func IncrementMateDistance(s Score) Score {
	switch {
	case s >= MateScore-MaxPly:
		return s - 1
	case s <= -MateScore+MaxPly:
		return s + 1
	default:
		return s
	}
}
