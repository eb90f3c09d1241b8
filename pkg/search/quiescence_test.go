package search_test

import (
	"context"
	"testing"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiescence(t *testing.T) {
	ctx := context.Background()
	quit := make(chan struct{})

	t.Run("a quiet position just stands pat at the static evaluation", func(t *testing.T) {
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.D1, Color: board.White, Piece: board.Rook},
		}, board.White)

		sctx := newSearchTestContext()
		q := search.Quiescence{}

		_, score := q.QuietSearch(ctx, sctx, b, 0, board.NegInf, board.Inf, quit)
		assert.Equal(t, board.Score(500), score) // +1 rook, nominal value 5 pawns
	})

	t.Run("a losing capture is pruned, leaving the stand-pat score", func(t *testing.T) {
		// White queen could take a pawn defended by a pawn, but SEE says that loses
		// material, so quiescence should never make the trade.
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.D1, Color: board.White, Piece: board.Queen},
			{Square: board.D5, Color: board.Black, Piece: board.Pawn},
			{Square: board.E6, Color: board.Black, Piece: board.Pawn},
		}, board.White)

		sctx := newSearchTestContext()
		q := search.Quiescence{}

		_, score := q.QuietSearch(ctx, sctx, b, 0, board.NegInf, board.Inf, quit)
		assert.Equal(t, board.Score(700), score) // stand-pat: queen+king vs two pawns+king, the losing trade is skipped
	})

	t.Run("a winning capture is taken, improving on stand-pat", func(t *testing.T) {
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.E4, Color: board.White, Piece: board.Knight},
			{Square: board.D6, Color: board.Black, Piece: board.Rook},
		}, board.White)

		sctx := newSearchTestContext()
		q := search.Quiescence{}

		_, score := q.QuietSearch(ctx, sctx, b, 0, board.NegInf, board.Inf, quit)
		assert.Equal(t, board.Score(300), score) // knight+king vs king after the trade, nothing recaptures
	})

	t.Run("when in check, all legal replies are considered, not just captures", func(t *testing.T) {
		// Black king in check from the white rook; the only way out is to block or
		// move the king, none of which are captures.
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.H8, Color: board.Black, Piece: board.King},
			{Square: board.A8, Color: board.White, Piece: board.Rook},
		}, board.Black)

		sctx := newSearchTestContext()
		q := search.Quiescence{}

		_, score := q.QuietSearch(ctx, sctx, b, 0, board.NegInf, board.Inf, quit)
		// King steps off the back rank (e.g. h8-h7) and the position is no longer
		// forcing, so the search terminates rather than reporting a loss.
		assert.NotEqual(t, board.MatedIn(0), score)
	})

	t.Run("stand-pat above beta fails high immediately", func(t *testing.T) {
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.D1, Color: board.White, Piece: board.Queen},
		}, board.White)

		sctx := newSearchTestContext()
		q := search.Quiescence{}

		_, score := q.QuietSearch(ctx, sctx, b, 0, board.NegInf, board.Score(1), quit)
		assert.Equal(t, board.Score(900), score)
	})

	t.Run("stalemate-by-draw-adjudication scores zero before recursing", func(t *testing.T) {
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.B6, Color: board.White, Piece: board.King},
			{Square: board.C7, Color: board.White, Piece: board.Pawn},
		}, board.Black)
		b.AdjudicateNoLegalMoves()

		sctx := newSearchTestContext()
		q := search.Quiescence{}

		_, score := q.QuietSearch(ctx, sctx, b, 0, board.NegInf, board.Inf, quit)
		assert.Equal(t, board.Score(0), score)
	})
}
