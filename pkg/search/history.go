package search

import "github.com/herohde/morlock-mb/pkg/board"

// maxPly bounds the ply-indexed tables (killers, counter moves) below.
const maxPly = int(board.MaxPly)

// History collects move-ordering signals accumulated over the course of one search:
// killer moves (quiet moves that caused a beta cutoff at a given ply), counter moves
// (a reply that refuted the opponent's last move in this position type) and a
// butterfly history table (how often a [color][from][to] quiet move has produced a
// cutoff versus been tried). None of this is persisted across searches. Grounded on
// the teacher's small-struct-over-fixed-array style used by ZobristTable/transposition
// table (pkg/board/zobrist.go, pkg/search/transposition.go).
type History struct {
	killers   [maxPly][2]board.Move
	counters  [board.NumColors][board.NumSquares][board.NumSquares]board.Move
	butterfly [board.NumColors][board.NumSquares][board.NumSquares]int32
}

func NewHistory() *History {
	return &History{}
}

// Killers returns the (up to two) killer moves recorded for the given ply.
func (h *History) Killers(ply int) (board.Move, board.Move) {
	if ply < 0 || ply >= maxPly {
		return board.NullMove, board.NullMove
	}
	k := h.killers[ply]
	return k[0], k[1]
}

// AddKiller records a quiet move that caused a beta cutoff at ply, bumping the
// existing primary killer down to secondary.
func (h *History) AddKiller(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly || m.IsCapture() {
		return
	}
	if h.killers[ply][0].Equals(m) {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// CounterMove returns the recorded reply to the opponent's last move, if any.
func (h *History) CounterMove(turn board.Color, last board.Move) (board.Move, bool) {
	if last.IsNull() {
		return board.NullMove, false
	}
	m := h.counters[turn][last.From][last.To]
	return m, !m.IsNull()
}

// SetCounterMove records m as the reply that refuted the opponent's last move.
func (h *History) SetCounterMove(turn board.Color, last, m board.Move) {
	if last.IsNull() || m.IsCapture() {
		return
	}
	h.counters[turn][last.From][last.To] = m
}

// butterflyMax caps the history score to prevent runaway growth across a long search
// from drowning out move ordering signal from TT/killers/SEE.
const butterflyMax = 1 << 14

// Score returns the butterfly history score for a quiet move.
func (h *History) Score(turn board.Color, m board.Move) int32 {
	return h.butterfly[turn][m.From][m.To]
}

// AddCutoff rewards the quiet move that caused a beta cutoff and penalizes the quiet
// moves tried before it at the same depth, proportional to depth squared (the standard
// "history heuristic" update). Entries are clamped to +/-butterflyMax; the table is not
// otherwise aged or scaled down.
func (h *History) AddCutoff(turn board.Color, cutoff board.Move, tried []board.Move, depth int) {
	if cutoff.IsCapture() {
		return
	}
	bonus := int32(depth * depth)

	h.bump(turn, cutoff, bonus)
	for _, m := range tried {
		if m.Equals(cutoff) || m.IsCapture() {
			continue
		}
		h.bump(turn, m, -bonus)
	}
}

func (h *History) bump(turn board.Color, m board.Move, delta int32) {
	v := &h.butterfly[turn][m.From][m.To]
	*v += delta
	if *v > butterflyMax {
		*v = butterflyMax
	}
	if *v < -butterflyMax {
		*v = -butterflyMax
	}
}
