package search

import (
	"context"
	"math/rand"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// failHigh and failLow are the sentinel scores returned out of a beta or alpha cutoff, in
// place of the true best_score/best_line accumulated so far. They are not ordinary scores:
// they sit at the very bounds MaxScore/MinScore, far beyond any evaluation or mate score, and
// exist only to signal "the caller should not
// prefer this branch". If a cutoff happens to occur all the way up at the root ply, one of
// these sentinels corrupts the returned principal variation. A cleaner implementation would
// simply break out of the move loop here and return the accumulated best_score/best_line
// instead; this one does not, matching the design it was lifted from.
const (
	failHigh eval.Score = 1000000
	failLow  eval.Score = -1000000
)

// runner holds the state threaded through one negamax call tree: the transposition table, the
// prior iteration's principal variation (for move ordering), node/skip counters and the PRNG
// used to shuffle move order at every ply.
type runner struct {
	b    *board.Board
	eval eval.Evaluator
	tt   *TranspositionTable
	pv   []board.Move
	rand *rand.Rand

	nodes uint64
}

// negamax implements alpha-beta search over a signed score that is always expressed from
// White's perspective, rather than the more common relative-to-mover convention: turnSign is
// +1 when White is to move at this node and -1 when Black is to move, and the side to move
// always tries to push the score in the direction of its own sign.
//
// Contract:
//   - depth < 1: frontier. Terminal outcomes still win; otherwise hand off to quiescence.
//   - no legal moves: the position is decided (checkmate or stalemate); return that score.
//   - otherwise: enumerate, shuffle, order, and recurse move by move, pruning via alpha/beta.
func (r *runner) negamax(ctx context.Context, depth int, turnSign eval.Score, alpha, beta eval.Score, ply int) (eval.Score, []board.Move) {
	r.nodes++

	if score, ok := outcomeScore(r.b.Result(), depth); ok {
		return score, nil
	}

	if depth < 1 {
		return r.quiescence(ctx, turnSign, alpha, beta, ply)
	}

	moves := r.b.Position().PseudoLegalMoves(r.b.Turn())
	legal := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if r.b.PushMove(m) {
			r.b.PopMove()
			legal = append(legal, m)
		}
	}
	if len(legal) == 0 {
		result := r.b.AdjudicateNoLegalMoves()
		score, _ := outcomeScore(result, depth)
		return score, nil
	}

	orderMoves(r.b.Position(), legal, ply, r.pv, r.rand)

	bestScore := -failHigh * turnSign
	var bestLine []board.Move

	for _, m := range legal {
		if contextx.IsCancelled(ctx) {
			break
		}

		r.b.PushMove(m)
		childHash := r.b.Hash()

		var childScore eval.Score
		var childLine []board.Move
		if cached, ok := r.tt.Get(depth-1, childHash); ok {
			childScore = cached
		} else {
			childScore, childLine = r.negamax(ctx, depth-1, -turnSign, alpha, beta, ply+1)
			r.tt.Put(depth-1, childHash, childScore)
		}
		r.b.PopMove()

		improved := false
		if turnSign > 0 {
			improved = bestLine == nil || childScore > bestScore
		} else {
			improved = bestLine == nil || childScore < bestScore
		}

		if improved {
			bestScore = childScore
			bestLine = append([]board.Move{m}, childLine...)

			if turnSign > 0 {
				alpha = eval.Max(alpha, bestScore)
				if bestScore >= beta {
					return failHigh, nil
				}
			} else {
				beta = eval.Min(beta, bestScore)
				if bestScore <= alpha {
					return failLow, nil
				}
			}
		}
	}

	return bestScore, bestLine
}
