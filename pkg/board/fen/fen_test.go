package fen_test

import (
	"testing"

	"github.com/herohde/morlock-mb/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/1PB1P1b1/P1NP1N2/2P1QPPP/R4RK1 b - b3 0 10",
	}

	for _, tt := range tests {
		pos, err := fen.ParsePosition(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(pos))
	}
}
