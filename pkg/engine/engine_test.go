package engine_test

import (
	"context"
	"testing"

	"github.com/herohde/morlock-mb/pkg/board/fen"
	"github.com/herohde/morlock-mb/pkg/engine"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *engine.Engine {
	ctx := context.Background()
	return engine.New(ctx, "test", "tester", search.PVS{Quiet: search.Quiescence{}})
}

func TestEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("starts at the initial position", func(t *testing.T) {
		e := newTestEngine()
		assert.Equal(t, fen.Initial, e.Position())
	})

	t.Run("move then take back round trips the position", func(t *testing.T) {
		e := newTestEngine()

		require.NoError(t, e.Move(ctx, "e2e4"))
		assert.NotEqual(t, fen.Initial, e.Position())

		require.NoError(t, e.TakeBack(ctx))
		assert.Equal(t, fen.Initial, e.Position())
	})

	t.Run("an unparseable move is rejected", func(t *testing.T) {
		e := newTestEngine()
		assert.Error(t, e.Move(ctx, "not-a-move"))
	})

	t.Run("a well-formed but illegal move is rejected", func(t *testing.T) {
		e := newTestEngine()
		// e2e5 skips two ranks; not a legal pawn move from the start position.
		assert.Error(t, e.Move(ctx, "e2e5"))
	})

	t.Run("take back with no moves played fails", func(t *testing.T) {
		e := newTestEngine()
		assert.Error(t, e.TakeBack(ctx))
	})

	t.Run("reset loads a new FEN and clears history", func(t *testing.T) {
		e := newTestEngine()
		require.NoError(t, e.Move(ctx, "e2e4"))

		kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
		require.NoError(t, e.Reset(ctx, kiwipete))
		assert.Equal(t, kiwipete, e.Position())

		// The move history from before reset is gone.
		assert.Error(t, e.TakeBack(ctx))
	})

	t.Run("options round trip through Set*", func(t *testing.T) {
		e := newTestEngine()
		e.SetDepth(4)
		e.SetHash(16)
		e.SetNoise(25)

		opt := e.Options()
		assert.Equal(t, uint(4), opt.Depth)
		assert.Equal(t, uint(16), opt.Hash)
		assert.Equal(t, uint(25), opt.Noise)
	})
}
