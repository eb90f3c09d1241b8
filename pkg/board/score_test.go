package board_test

import (
	"testing"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("mate distance round trip", func(t *testing.T) {
		tests := []int{0, 1, 2, 10, board.MaxPly - 1}

		for _, ply := range tests {
			win := board.MateIn(ply)
			d, ok := win.MateDistance()
			assert.True(t, ok)
			assert.Equal(t, ply, d)

			loss := board.MatedIn(ply)
			d, ok = loss.MateDistance()
			assert.True(t, ok)
			assert.Equal(t, -ply, d)
		}
	})

	t.Run("heuristic scores don't encode mate", func(t *testing.T) {
		tests := []board.Score{0, 100, -100, board.MinScore, board.MaxScore}
		for _, s := range tests {
			_, ok := s.MateDistance()
			assert.False(t, ok)
		}
	})

	t.Run("increment moves mate one ply further from the root", func(t *testing.T) {
		win := board.MateIn(3)
		d, _ := board.IncrementMateDistance(win).MateDistance()
		assert.Equal(t, 4, d)

		loss := board.MatedIn(3)
		d, _ = board.IncrementMateDistance(loss).MateDistance()
		assert.Equal(t, -4, d)

		assert.Equal(t, board.Score(100), board.IncrementMateDistance(100))
	})

	t.Run("negate flips sign, not magnitude", func(t *testing.T) {
		assert.Equal(t, board.Score(-50), board.Score(50).Negate())
		assert.Equal(t, board.Score(50), board.Score(-50).Negate())
	})

	t.Run("string formats mate scores distinctly from centipawns", func(t *testing.T) {
		assert.Equal(t, "mate1", board.MateIn(1).String())
		assert.Equal(t, "1.00", board.Score(100).String())
	})
}
