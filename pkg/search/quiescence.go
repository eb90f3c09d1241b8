package search

import (
	"context"

	"github.com/herohde/morlock-mb/pkg/board"
)

// Quiescence implements a capture-only alpha-beta search extending past the nominal
// search horizon until the position is "quiet" (no more captures worth making), to
// avoid misjudging positions stopped mid-exchange (the horizon effect). Captures that
// SEE judges as losing material are pruned outright rather than explored, since they
// cannot improve on the stand-pat score except in the rare case the opponent king is
// exposed -- handled by never pruning while in check. Generalizes the teacher's
// search.Quiescence (stand-pat plus Exploration-gated recursion) with SEE-based
// capture pruning in place of the teacher's unconditional MVV-LVA-ordered recursion.
type Quiescence struct{}

func (q Quiescence) QuietSearch(ctx context.Context, sctx *Context, b *board.Board, ply int, alpha, beta board.Score, quit <-chan struct{}) (uint64, board.Score) {
	run := &runQuiescence{sctx: sctx, b: b, quit: quit}
	score := run.search(ctx, ply, alpha, beta)
	return run.nodes, score
}

type runQuiescence struct {
	sctx  *Context
	b     *board.Board
	nodes uint64
	quit  <-chan struct{}
}

// maxQuiescencePly bounds the ply, counted from the root of the overall search, up to
// which quiescence recurses, against pathological positions with long forced capture
// chains.
const maxQuiescencePly = 32

func (r *runQuiescence) search(ctx context.Context, ply int, alpha, beta board.Score) board.Score {
	if isClosed(r.quit) {
		return 0
	}
	if r.b.Result().Outcome == board.Draw {
		return 0
	}

	r.nodes++
	pos := r.b.Position()
	inCheck := pos.IsChecked(r.b.Turn())

	if !inCheck {
		stand := board.Score(100 * r.sctx.Eval.Evaluate(ctx, r.b))
		if stand >= beta {
			return stand
		}
		alpha = board.Max(alpha, stand)
	}

	if ply >= maxQuiescencePly {
		return alpha
	}

	var moves []board.Move
	if inCheck {
		moves = board.GenerateMoves(pos) // must find a way out of check, quiet or not
	} else {
		moves = board.GenerateCaptures(pos)
	}

	hasLegalMove := false
	for _, m := range moves {
		if !inCheck && m.IsCapture() && board.SEE(pos, m) < 0 {
			continue
		}
		if !r.b.PushMove(m) {
			continue
		}
		hasLegalMove = true

		score := r.search(ctx, ply+1, beta.Negate(), alpha.Negate())
		score = board.IncrementMateDistance(score).Negate()

		r.b.PopMove()

		alpha = board.Max(alpha, score)
		if alpha >= beta {
			break
		}
	}

	if inCheck && !hasLegalMove {
		if result := r.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return board.MatedIn(0)
		}
		return 0
	}
	return alpha
}
