package search_test

import (
	"context"
	"testing"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspositionTable(t *testing.T) {
	ctx := context.Background()

	t.Run("write then read round trips an entry", func(t *testing.T) {
		tt := search.NewTranspositionTable(ctx, 1<<20)

		m := board.Move{From: board.E2, To: board.E4}
		ok := tt.Write(42, 0, 6, search.ExactBound, 123, m)
		require.True(t, ok)

		bound, depth, score, move, found := tt.Read(42, 0)
		require.True(t, found)
		assert.Equal(t, search.ExactBound, bound)
		assert.Equal(t, 6, depth)
		assert.Equal(t, board.Score(123), score)
		assert.True(t, m.Equals(move))
	})

	t.Run("miss on an unwritten hash", func(t *testing.T) {
		tt := search.NewTranspositionTable(ctx, 1<<20)
		_, _, _, _, found := tt.Read(7, 0)
		assert.False(t, found)
	})

	t.Run("depth-preferred slot rejects a shallower colliding entry but keeps it in the always-replace slot", func(t *testing.T) {
		// Size the table down to a single bucket so any two distinct hashes collide,
		// exercising the depth-preferred-vs-always-replace policy deterministically.
		tt := search.NewTranspositionTable(ctx, 64)

		deep := board.Move{From: board.D2, To: board.D4}
		shallow := board.Move{From: board.G1, To: board.F3}

		require.True(t, tt.Write(99, 0, 10, search.ExactBound, 50, deep))
		require.True(t, tt.Write(1000, 0, 2, search.UpperBound, -10, shallow))

		// Slot 0 still holds the deep entry for hash 99 (the colliding shallower write
		// couldn't evict it and instead landed in the always-replace slot).
		bound, depth, score, move, found := tt.Read(99, 0)
		require.True(t, found)
		assert.Equal(t, search.ExactBound, bound)
		assert.Equal(t, 10, depth)
		assert.Equal(t, board.Score(50), score)
		assert.True(t, deep.Equals(move))

		// The shallower entry is still retrievable via the always-replace slot, albeit
		// now keyed on its own hash (both slots are scanned by Read).
		_, _, _, move, found = tt.Read(1000, 0)
		require.True(t, found)
		assert.True(t, shallow.Equals(move))
	})

	t.Run("mate scores are stored root-relative and read back ply-relative", func(t *testing.T) {
		tt := search.NewTranspositionTable(ctx, 1<<20)

		// Mate found 3 plies into the tree from a node reached at ply 5: store at
		// ply 5, then probe the same node again from ply 5.
		mate := board.MateIn(3)
		require.True(t, tt.Write(5, 5, 4, search.ExactBound, mate, board.NullMove))

		_, _, score, _, found := tt.Read(5, 5)
		require.True(t, found)
		assert.Equal(t, mate, score)
	})

	t.Run("no-op table never stores anything", func(t *testing.T) {
		var tt search.NoTranspositionTable
		assert.False(t, tt.Write(1, 0, 1, search.ExactBound, 1, board.NullMove))
		_, _, _, _, found := tt.Read(1, 0)
		assert.False(t, found)
		assert.Equal(t, uint64(0), tt.Size())
	})
}
