// Package searchctl contains the iterative-deepening search harness and time control
// used to drive pkg/search from the engine layer.
package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold dynamic search options. The user may change these on a particular search.
type Options struct {
	// DepthLimit, if set, limits the search to the given ply depth.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, limits the search to the given time parameters.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher is an interface for managing searches. The engine is expected to spin off
// searches with forked boards and close/abandon them when no longer needed.
type Launcher interface {
	// Launch a new iterative-deepening search from the given position. sctx carries the
	// transposition table, history and evaluator shared across all depths of this run.
	Launch(ctx context.Context, b *board.Board, sctx *search.Context, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the engine stop a running search and retrieve its best result so far.
type Handle interface {
	// Halt halts the search, if running. Idempotent.
	Halt() search.PV
}
