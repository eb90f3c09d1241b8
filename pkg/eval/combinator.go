package eval

import (
	"context"

	"github.com/herohde/morlock-mb/pkg/board"
)

// Sum combines several Evaluators into one by adding their scores, letting the engine
// compose e.g. PSQT{} (material + piece-square bonus) with Random{} (a small amount of
// noise, so the engine does not always repeat the same game against itself).
type Sum []Evaluator

func (s Sum) Evaluate(ctx context.Context, b *board.Board) Pawns {
	var total Pawns
	for _, e := range s {
		total += e.Evaluate(ctx, b)
	}
	return total
}
