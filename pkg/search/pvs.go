package search

import (
	"context"

	"github.com/herohde/morlock-mb/pkg/board"
)

// PVS implements principal variation search with a null-window scout for all but the
// first move, plus the standard pruning/extension/reduction table: null-move pruning,
// reverse futility pruning, razoring, futility pruning, late move reductions (LMR),
// internal iterative reduction (IIR) and check extensions. Pseudo-code (core PVS):
//
// function pvs(node, depth, α, β, color) is
//
//	if depth = 0 or node is a terminal node then
//	    return color × the heuristic value of node
//	for each child of node do
//	    if child is first child then
//	        score := −pvs(child, depth − 1, −β, −α, −color)
//	    else
//	        score := −pvs(child, depth − 1, −α − 1, −α, −color) (* search with a null window *)
//	        if α < score < β then
//	            score := −pvs(child, depth − 1, −β, −score, −color) (* if it failed high, do a full re-search *)
//	    α := max(α, score)
//	    if α ≥ β then
//	        break (* beta cut-off *)
//	return α
//
// See: https://en.wikipedia.org/wiki/Principal_variation_search.
type PVS struct {
	Quiet Quiescence
}

func (p PVS) Search(ctx context.Context, sctx *Context, b *board.Board, depth int, quit <-chan struct{}) (uint64, board.Score, []board.Move, error) {
	run := &runPVS{sctx: sctx, quiet: p.Quiet, b: b, quit: quit}
	score, pv := run.search(ctx, depth, 0, board.NegInf, board.Inf, board.NullMove)
	if isClosed(quit) {
		return run.nodes, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runPVS struct {
	sctx  *Context
	quiet Quiescence
	b     *board.Board
	nodes uint64
	quit  <-chan struct{}
}

// nullMoveMinDepth is the shallowest depth at which null-move pruning is attempted;
// below it the reduced search would be too shallow to trust.
const nullMoveMinDepth = 3

// reverseFutilityMaxDepth bounds reverse futility pruning to near-leaf nodes, where a
// large static-eval margin over beta is a reliable proxy for "this subtree is lost for
// the opponent no matter what they do".
const reverseFutilityMaxDepth = 6

// razorMaxDepth bounds razoring (dropping straight into quiescence when static eval is
// far below alpha) to near-leaf nodes for the same reason.
const razorMaxDepth = 3

// futilityMaxDepth bounds pruning of quiet moves unlikely to raise alpha at all.
const futilityMaxDepth = 6

// search returns the score from the perspective of the side to move at this node, and
// the principal variation below it. ply counts plies from the search root (for killer
// lookup and mate-distance bookkeeping); last is the move that led to this node (for
// counter-move lookup).
func (m *runPVS) search(ctx context.Context, depth, ply int, alpha, beta board.Score, last board.Move) (board.Score, []board.Move) {
	if isClosed(m.quit) {
		return 0, nil
	}
	if m.b.Result().Outcome == board.Draw {
		return 0, nil
	}

	pvNode := beta-alpha > 1
	turn := m.b.Turn()
	hash := m.b.Position().Hash()

	var ttMove board.Move
	if bound, d, score, bm, ok := m.sctx.TT.Read(hash, ply); ok {
		ttMove = bm
		if !pvNode && d >= depth {
			switch bound {
			case ExactBound:
				return score, nil
			case LowerBound:
				if score >= beta {
					return score, nil
				}
			case UpperBound:
				if score <= alpha {
					return score, nil
				}
			}
		}
	}

	inCheck := m.b.Position().IsChecked(turn)

	if depth <= 0 {
		nodes, score := m.quiet.QuietSearch(ctx, m.sctx, m.b, ply, alpha, beta, m.quit)
		m.nodes += nodes
		return score, nil
	}
	m.nodes++

	static := board.Score(100 * m.sctx.Eval.Evaluate(ctx, m.b))

	// Reverse futility pruning: if we are already comfortably above beta by more than
	// the opponent could plausibly swing back in a few plies, assume it holds.
	if !pvNode && !inCheck && depth <= reverseFutilityMaxDepth {
		margin := board.Score(100 * depth)
		if static-margin >= beta {
			return static - margin, nil
		}
	}

	// Razoring: if static eval is far below alpha near the leaves, a quiescence probe
	// is cheaper than a full-width search and the position is very unlikely to recover.
	if !pvNode && !inCheck && depth <= razorMaxDepth {
		margin := board.Score(300 + 100*depth)
		if static+margin < alpha {
			nodes, score := m.quiet.QuietSearch(ctx, m.sctx, m.b, ply, alpha, beta, m.quit)
			m.nodes += nodes
			if score < alpha {
				return score, nil
			}
		}
	}

	// Null-move pruning: let the opponent move twice in a row; if we still beat beta,
	// our position is so good a real move would do even better. Skipped in PV nodes, in
	// check, below nullMoveMinDepth remaining depth, and when only king+pawns remain
	// (zugzwang risk).
	if !pvNode && !inCheck && depth >= nullMoveMinDepth && static >= beta && hasNonPawnMaterial(m.b, turn) {
		m.b.Position().MakeNull()
		reduction := 2 + depth/4
		nullDepth := depth - 1 - reduction
		if nullDepth < 0 {
			nullDepth = 0
		}
		score, _ := m.search(ctx, nullDepth, ply+1, beta.Negate()-1, beta.Negate(), board.NullMove)
		score = board.IncrementMateDistance(score).Negate()
		m.b.Position().UnmakeNull()

		if score >= beta {
			return beta, nil
		}
	}

	// Internal iterative reduction: without a TT move to try first, move ordering at
	// this node is weaker, so shave a ply off the depth rather than spend full effort.
	if ttMove.IsNull() && depth >= 4 && !inCheck {
		depth--
	}

	picker := NewPicker(m.b.Position(), m.sctx.History, ttMove, ply, last)

	hasLegalMove := false
	moveIndex := 0
	bestScore := board.NegInf
	var best board.Move
	var pv []board.Move
	bound := UpperBound
	var tried []board.Move

	for {
		move, ok := picker.Next()
		if !ok {
			break
		}
		if !m.b.PushMove(move) {
			continue
		}
		hasLegalMove = true
		moveIndex++
		tried = append(tried, move)

		givesCheck := m.b.Position().IsChecked(m.b.Turn())
		ext := 0
		if givesCheck {
			ext = 1 // check extension: search one ply deeper to resolve forcing lines
		}

		childDepth := depth - 1 + ext

		// Futility pruning: a quiet, non-check move this far below alpha that isn't
		// even the first move tried is very unlikely to change the outcome.
		if !pvNode && depth <= futilityMaxDepth && moveIndex > 1 && !move.IsCapture() && !inCheck && !givesCheck {
			margin := board.Score(150 + 100*depth)
			if static+margin <= alpha {
				m.b.PopMove()
				continue
			}
		}

		// Late move reductions: search quiet, late moves at reduced depth first; only
		// a move that beats alpha earns a full-depth re-search.
		reduction := 0
		if depth >= 3 && moveIndex > 3 && ext == 0 && !move.IsCapture() && !inCheck {
			reduction = 1
			if moveIndex > 8 {
				reduction = 2
			}
		}

		var score board.Score
		var rem []board.Move

		switch {
		case moveIndex == 1:
			score, rem = m.search(ctx, childDepth, ply+1, beta.Negate(), alpha.Negate(), move)
			score = board.IncrementMateDistance(score).Negate()
		default:
			searchDepth := childDepth - reduction
			if searchDepth < 0 {
				searchDepth = 0
			}
			score, rem = m.search(ctx, searchDepth, ply+1, alpha.Negate()-1, alpha.Negate(), move)
			score = board.IncrementMateDistance(score).Negate()

			if score > alpha && (reduction > 0 || score < beta) {
				score, rem = m.search(ctx, childDepth, ply+1, beta.Negate(), alpha.Negate(), move)
				score = board.IncrementMateDistance(score).Negate()
			}
		}

		m.b.PopMove()

		if score > bestScore {
			bestScore = score
			best = move
			pv = append([]board.Move{move}, rem...)
		}
		if score > alpha {
			alpha = score
			bound = ExactBound
		}
		if alpha >= beta {
			bound = LowerBound
			m.sctx.History.AddCutoff(turn, move, tried, depth)
			m.sctx.History.AddKiller(ply, move)
			m.sctx.History.SetCounterMove(turn, last, move)
			break
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return board.MatedIn(0), nil
		}
		return 0, nil
	}

	m.sctx.TT.Write(hash, ply, depth, bound, bestScore, best)
	return bestScore, pv
}

// hasNonPawnMaterial reports whether the side has any piece besides king and pawns,
// used to avoid null-move pruning in positions prone to zugzwang.
func hasNonPawnMaterial(b *board.Board, c board.Color) bool {
	pos := b.Position()
	for _, p := range []board.Piece{board.Queen, board.Rook, board.Bishop, board.Knight} {
		if pos.PieceBitboard(c, p) != 0 {
			return true
		}
	}
	return false
}
