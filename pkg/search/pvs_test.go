package search_test

import (
	"context"
	"testing"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/eval"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchTestBoard(t *testing.T, pieces []board.Placement, turn board.Color) *board.Board {
	t.Helper()
	zt := board.NewZobristTable(1)
	pos, err := board.NewPosition(zt, pieces, turn, 0, board.NoSquare, 0, 1)
	require.NoError(t, err)
	return board.NewBoard(pos)
}

// materialEvaluator is a pure material-balance evaluator used by these tests so
// expected centipawn values are simple to hand-compute; the engine's real evaluator
// (eval.PSQT) adds positional bonuses on top of material that would make exact-value
// assertions fragile.
type materialEvaluator struct{}

func (materialEvaluator) Evaluate(ctx context.Context, b *board.Board) eval.Pawns {
	pos := b.Position()
	turn := b.Turn()

	var pawns eval.Pawns
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		pawns += eval.Pawns(pos.PieceBitboard(turn, p).PopCount()-pos.PieceBitboard(turn.Opponent(), p).PopCount()) * eval.NominalValue(p)
	}
	return pawns
}

func newSearchTestContext() *search.Context {
	return &search.Context{
		TT:      search.NoTranspositionTable{},
		History: search.NewHistory(),
		Eval:    materialEvaluator{},
	}
}

func TestPVS(t *testing.T) {
	ctx := context.Background()
	quit := make(chan struct{})

	t.Run("finds a mate in one", func(t *testing.T) {
		// Black king boxed in on h8 by its own pawns; white rook delivers back-rank mate
		// by sliding down the open a1-a8 file then across the open 8th rank to check
		// along it (a8-h8 is clear).
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.C1, Color: board.White, Piece: board.King},
			{Square: board.A1, Color: board.White, Piece: board.Rook},
			{Square: board.H8, Color: board.Black, Piece: board.King},
			{Square: board.F7, Color: board.Black, Piece: board.Pawn},
			{Square: board.G7, Color: board.Black, Piece: board.Pawn},
			{Square: board.H7, Color: board.Black, Piece: board.Pawn},
		}, board.White)

		p := search.PVS{Quiet: search.Quiescence{}}
		sctx := newSearchTestContext()

		_, score, pv, err := p.Search(ctx, sctx, b, 3, quit)
		require.NoError(t, err)
		require.NotEmpty(t, pv)

		d, ok := score.MateDistance()
		require.True(t, ok)
		assert.Equal(t, 1, d)
		assert.True(t, board.Move{From: board.A1, To: board.A8}.Equals(pv[0]))
	})

	t.Run("a hanging queen is found and taken", func(t *testing.T) {
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.E4, Color: board.White, Piece: board.Rook},
			{Square: board.E8, Color: board.Black, Piece: board.Queen},
			{Square: board.A8, Color: board.Black, Piece: board.King},
		}, board.White)

		p := search.PVS{Quiet: search.Quiescence{}}
		sctx := newSearchTestContext()

		_, _, pv, err := p.Search(ctx, sctx, b, 2, quit)
		require.NoError(t, err)
		require.NotEmpty(t, pv)
		assert.True(t, board.Move{From: board.E4, To: board.E8}.Equals(pv[0]))
	})

	t.Run("returns ErrHalted when the quit channel is already closed", func(t *testing.T) {
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.H1, Color: board.White, Piece: board.Rook},
		}, board.White)

		closed := make(chan struct{})
		close(closed)

		p := search.PVS{Quiet: search.Quiescence{}}
		sctx := newSearchTestContext()

		_, _, _, err := p.Search(ctx, sctx, b, 3, closed)
		assert.ErrorIs(t, err, search.ErrHalted)
	})

	t.Run("a king-and-pawn-only stalemate scores as a draw", func(t *testing.T) {
		// Classic stalemate: black king on a8 has no moves and is not in check.
		b := newSearchTestBoard(t, []board.Placement{
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.B6, Color: board.White, Piece: board.King},
			{Square: board.C7, Color: board.White, Piece: board.Pawn},
		}, board.Black)

		p := search.PVS{Quiet: search.Quiescence{}}
		sctx := newSearchTestContext()

		_, score, _, err := p.Search(ctx, sctx, b, 2, quit)
		require.NoError(t, err)
		assert.Equal(t, board.Score(0), score)
	})
}
