package search_test

import (
	"testing"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	e2e4 := board.Move{From: board.E2, To: board.E4}
	d2d4 := board.Move{From: board.D2, To: board.D4}
	g1f3 := board.Move{From: board.G1, To: board.F3}

	t.Run("killers", func(t *testing.T) {
		h := search.NewHistory()

		k1, k2 := h.Killers(3)
		assert.True(t, k1.IsNull())
		assert.True(t, k2.IsNull())

		h.AddKiller(3, e2e4)
		k1, k2 = h.Killers(3)
		assert.True(t, e2e4.Equals(k1))
		assert.True(t, k2.IsNull())

		h.AddKiller(3, d2d4)
		k1, k2 = h.Killers(3)
		assert.True(t, d2d4.Equals(k1)) // newest killer becomes primary
		assert.True(t, e2e4.Equals(k2)) // old primary bumped to secondary

		h.AddKiller(3, d2d4) // re-adding the current primary is a no-op
		k1, k2 = h.Killers(3)
		assert.True(t, d2d4.Equals(k1))
		assert.True(t, e2e4.Equals(k2))

		// Out of range plies never panic, just return no killers.
		k1, k2 = h.Killers(-1)
		assert.True(t, k1.IsNull())
		assert.True(t, k2.IsNull())
	})

	t.Run("counter moves", func(t *testing.T) {
		h := search.NewHistory()

		_, ok := h.CounterMove(board.White, e2e4)
		assert.False(t, ok)

		h.SetCounterMove(board.White, e2e4, g1f3)
		m, ok := h.CounterMove(board.White, e2e4)
		assert.True(t, ok)
		assert.True(t, g1f3.Equals(m))

		// Different side-to-move or different last move misses.
		_, ok = h.CounterMove(board.Black, e2e4)
		assert.False(t, ok)
		_, ok = h.CounterMove(board.White, d2d4)
		assert.False(t, ok)
	})

	t.Run("butterfly history rewards cutoffs and penalizes tried alternatives", func(t *testing.T) {
		h := search.NewHistory()

		assert.Equal(t, int32(0), h.Score(board.White, e2e4))

		h.AddCutoff(board.White, e2e4, []board.Move{d2d4, g1f3}, 4)

		assert.Equal(t, int32(16), h.Score(board.White, e2e4))  // +depth^2
		assert.Equal(t, int32(-16), h.Score(board.White, d2d4)) // -depth^2
		assert.Equal(t, int32(-16), h.Score(board.White, g1f3))
	})

	t.Run("butterfly history saturates instead of overflowing", func(t *testing.T) {
		h := search.NewHistory()

		for i := 0; i < 2000; i++ {
			h.AddCutoff(board.White, e2e4, nil, 100)
		}
		assert.Equal(t, int32(1<<14), h.Score(board.White, e2e4))
	})
}
