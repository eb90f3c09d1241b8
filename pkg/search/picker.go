package search

import (
	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/eval"
)

// stage identifies the current phase of the staged move picker.
type stage int

const (
	stageTT stage = iota
	stageGoodCaptures
	stageKiller1
	stageKiller2
	stageCounter
	stageQuiets
	stageBadCaptures
	stageDone
)

// Picker generates pseudo-legal moves for one node in stages, cheapest/most-promising
// first, so alpha-beta cutoffs are found without scoring the whole move list up front:
// TT move, captures that don't lose material by SEE (ordered by nominal material gain), killer
// moves, the counter move, quiet moves ordered by butterfly history, and finally
// captures that do lose material by SEE. Grounded on the teacher's
// search.MoveList/board.MoveList heap-based priority queue, generalized into the
// multi-stage selection spec.md §4.6 describes.
type Picker struct {
	pos                      *board.Position
	ttMove, killer1, killer2 board.Move
	counter                  board.Move

	goodCaptures, badCaptures, quiets []board.Move
	gi, bi                            int
	quietList                         *board.MoveList

	stage stage
}

// NewPicker creates a staged move picker for the position to move next, given the TT's
// recorded best move (if any), the butterfly/killer/counter history, the search ply and
// the opponent's last move (for counter-move lookup).
func NewPicker(pos *board.Position, h *History, ttMove board.Move, ply int, last board.Move) *Picker {
	k1, k2 := h.Killers(ply)
	counter, _ := h.CounterMove(pos.Turn(), last)

	p := &Picker{pos: pos, ttMove: ttMove, killer1: k1, killer2: k2, counter: counter}

	p.ttMove = board.NullMove // kept only if generated here, with its full metadata
	var captures, quiets []board.Move
	for _, m := range board.GenerateMoves(pos) {
		if !ttMove.IsNull() && m.Equals(ttMove) {
			p.ttMove = m
			continue // surfaced in stageTT
		}
		if m.IsCapture() || m.IsPromotion() {
			captures = append(captures, m)
		} else {
			quiets = append(quiets, m)
		}
	}

	board.SortByPriority(captures, func(m board.Move) board.MovePriority {
		return board.MovePriority(eval.NominalValueGain(m))
	})
	for _, m := range captures {
		if board.SEE(pos, m) >= 0 {
			p.goodCaptures = append(p.goodCaptures, m)
		} else {
			p.badCaptures = append(p.badCaptures, m)
		}
	}

	turn := pos.Turn()
	p.quiets = quiets
	p.quietList = board.NewMoveList(quiets, func(m board.Move) board.MovePriority {
		return board.MovePriority(h.Score(turn, m))
	})

	return p
}

// Next returns the next move to try, and whether the picker is exhausted.
func (p *Picker) Next() (board.Move, bool) {
	for {
		switch p.stage {
		case stageTT:
			p.stage = stageGoodCaptures
			if !p.ttMove.IsNull() {
				return p.ttMove, true
			}

		case stageGoodCaptures:
			if p.gi < len(p.goodCaptures) {
				m := p.goodCaptures[p.gi]
				p.gi++
				return m, true
			}
			p.stage = stageKiller1

		case stageKiller1:
			p.stage = stageKiller2
			if m, ok := p.takeQuiet(p.killer1); ok {
				return m, true
			}

		case stageKiller2:
			p.stage = stageCounter
			if m, ok := p.takeQuiet(p.killer2); ok {
				return m, true
			}

		case stageCounter:
			p.stage = stageQuiets
			if p.counter.Equals(p.killer1) || p.counter.Equals(p.killer2) {
				break // already yielded (or will be) as a killer
			}
			if m, ok := p.takeQuiet(p.counter); ok {
				return m, true
			}

		case stageQuiets:
			for {
				m, ok := p.quietList.Next()
				if !ok {
					p.stage = stageBadCaptures
					break
				}
				if m.Equals(p.killer1) || m.Equals(p.killer2) || m.Equals(p.counter) {
					continue // already yielded above
				}
				return m, true
			}

		case stageBadCaptures:
			if p.bi < len(p.badCaptures) {
				m := p.badCaptures[p.bi]
				p.bi++
				return m, true
			}
			p.stage = stageDone

		default:
			return board.NullMove, false
		}
	}
}

// takeQuiet returns m if it is a non-null quiet move present in this position's quiet
// list (i.e. pseudo-legal here), so killer/counter moves from a different position
// shape are never played out of turn.
func (p *Picker) takeQuiet(m board.Move) (board.Move, bool) {
	if m.IsNull() {
		return board.NullMove, false
	}
	for _, q := range p.quiets {
		if q.Equals(m) {
			return q, true
		}
	}
	return board.NullMove, false
}
