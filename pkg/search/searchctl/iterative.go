package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/seekerror/logw"
)

// aspirationWindow is the initial +/- margin (centi-pawns) around the previous
// iteration's score used to bound the next iteration's search; a fail-high or fail-low
// widens the window and retries at the same depth, per spec.md §4.8.
const aspirationWindow = board.Score(50)

// Iterative is a search harness for iterative deepening with aspiration windows.
// Grounded on the teacher's searchctl.Iterative depth-loop/PV-channel shape, adding the
// aspiration-window retry loop.
type Iterative struct {
	Root search.Search
}

func (i *Iterative) Launch(ctx context.Context, b *board.Board, sctx *search.Context, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{init: make(chan struct{}), quit: make(chan struct{})}
	go h.process(ctx, i.Root, b, sctx, opt, out)
	return h, out
}

type handle struct {
	init, quit chan struct{}
	once       sync.Once

	pv search.PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, root search.Search, b *board.Board, sctx *search.Context, opt Options, out chan search.PV) {
	defer h.markInitialized()
	defer close(out)

	soft, useSoft := EnforceTimeControl(ctx, h, opt.TimeControl, b.Turn())

	launched := time.Now()

	var prev board.Score
	depth := 1
	for {
		select {
		case <-h.quit:
			return
		default:
		}

		start := time.Now()

		alpha, beta := board.NegInf, board.Inf
		if depth > 1 {
			alpha, beta = prev-aspirationWindow, prev+aspirationWindow
		}

		var nodes uint64
		var score board.Score
		var moves []board.Move
		var err error

		for {
			nodes, score, moves, err = root.Search(ctx, sctx, b, depth, h.quit)
			if err != nil {
				break
			}
			if score <= alpha {
				alpha = board.NegInf // fail low: re-search with a full window below
				continue
			}
			if score >= beta {
				beta = board.Inf // fail high: re-search with a full window above
				continue
			}
			break
		}

		if err != nil {
			if err == search.ErrHalted {
				return
			}
			logw.Errorf(ctx, "Search failed on %v at depth=%v: %v", b, depth, err)
			return
		}

		pv := search.PV{Depth: depth, Nodes: nodes, Score: score, Moves: moves, Time: time.Since(start)}
		if sctx.TT != nil {
			pv.Hash = sctx.TT.Used()
		}

		logw.Debugf(ctx, "Searched %v: %v", b.Position(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.markInitialized()
		prev = score

		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) == limit {
			return
		}
		if md, ok := score.MateDistance(); ok && md > 0 && md <= depth {
			return // forced mate found within full-width search
		}
		if useSoft && soft < time.Since(launched) {
			return
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init
	h.once.Do(func() { close(h.quit) })

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

func (h *handle) markInitialized() {
	select {
	case <-h.init:
	default:
		close(h.init)
	}
}
