package searchctl_test

import (
	"context"
	"testing"
	"time"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/eval"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/herohde/morlock-mb/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/seekerror/stdlib/pkg/lang"
)

func TestIterative(t *testing.T) {
	ctx := context.Background()

	newBoard := func(t *testing.T) *board.Board {
		t.Helper()
		zt := board.NewZobristTable(1)
		pos, err := board.NewPosition(zt, []board.Placement{
			{Square: board.A1, Color: board.White, Piece: board.King},
			{Square: board.A8, Color: board.Black, Piece: board.King},
			{Square: board.D1, Color: board.White, Piece: board.Rook},
		}, board.White, 0, board.NoSquare, 0, 1)
		require.NoError(t, err)
		return board.NewBoard(pos)
	}

	t.Run("deepens up to and stops at the requested depth limit", func(t *testing.T) {
		it := &searchctl.Iterative{Root: search.PVS{Quiet: search.Quiescence{}}}
		sctx := &search.Context{TT: search.NoTranspositionTable{}, History: search.NewHistory(), Eval: eval.PSQT{}}

		opt := searchctl.Options{DepthLimit: lang.Some(uint(3))}
		handle, out := it.Launch(ctx, newBoard(t), sctx, opt)

		var last search.PV
		for pv := range out {
			assert.LessOrEqual(t, pv.Depth, 3)
			last = pv
		}
		assert.Equal(t, 3, last.Depth)

		// Halt after completion is idempotent and returns the final PV.
		assert.Equal(t, last.Score, handle.Halt().Score)
	})

	t.Run("Halt stops a search before it reaches its depth limit", func(t *testing.T) {
		it := &searchctl.Iterative{Root: search.PVS{Quiet: search.Quiescence{}}}
		sctx := &search.Context{TT: search.NoTranspositionTable{}, History: search.NewHistory(), Eval: eval.PSQT{}}

		opt := searchctl.Options{DepthLimit: lang.Some(uint(64))}
		handle, out := it.Launch(ctx, newBoard(t), sctx, opt)

		// Let at least one iteration complete, then halt.
		<-out
		time.Sleep(10 * time.Millisecond)
		pv := handle.Halt()

		assert.Less(t, pv.Depth, 64)

		// Draining the channel must terminate (the goroutine closes it on halt).
		for range out {
		}
	})
}
