// Package search contains game-tree search functionality: transposition table, move
// ordering history, staged move picker, principal variation search and quiescence.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/eval"
)

// ErrHalted indicates the search was halted via its quit channel before completing.
var ErrHalted = errors.New("search halted")

// Context carries the per-search-tree state threaded through every recursive call:
// the transposition table, move ordering history and leaf evaluator. A fresh Context
// is created per Launch and shared across all depths of one iterative deepening run.
type Context struct {
	TT      TranspositionTable
	History *History
	Eval    eval.Evaluator
}

// Search implements search of the game tree to a given depth from the position's
// current turn, returning the node count, score (from the side to move's perspective)
// and principal variation. Thread-safe only insofar as Context/board.Board are not
// shared across concurrent calls.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int, quit <-chan struct{}) (uint64, board.Score, []board.Move, error)
}

// PV represents the principal variation found at some iterative-deepening depth.
type PV struct {
	Depth int
	Moves []board.Move
	Score board.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // transposition table utilization [0;1]
}

func (p PV) String() string {
	pv := board.PrintMoves(p.Moves)
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v", p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), pv)
}

// isClosed reports whether the given channel has already been closed.
func isClosed(quit <-chan struct{}) bool {
	select {
	case <-quit:
		return true
	default:
		return false
	}
}
