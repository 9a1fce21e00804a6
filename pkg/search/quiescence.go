package search

import (
	"context"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence extends the search past the nominal frontier over capture moves only, to avoid
// misjudging a position that merely sits on top of a pending capture. It follows the standard
// recipe: evaluate a stand-pat score, cut off immediately if it already beats the window, and
// otherwise only ever recurse into capture moves, each ply retaining the same signed alpha-beta
// discipline as the main search.
func (r *runner) quiescence(ctx context.Context, turnSign eval.Score, alpha, beta eval.Score, ply int) (eval.Score, []board.Move) {
	r.nodes++

	if score, ok := outcomeScore(r.b.Result(), 0); ok {
		return score, nil
	}

	score := eval.Score(r.eval.Evaluate(ctx, r.b))

	if turnSign > 0 {
		if score >= beta {
			return beta, nil
		}
		alpha = eval.Max(alpha, score)
	} else {
		if score <= alpha {
			return alpha, nil
		}
		beta = eval.Min(beta, score)
	}

	moves := r.b.Position().PseudoLegalMoves(r.b.Turn())
	captures := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			if r.b.PushMove(m) {
				r.b.PopMove()
				captures = append(captures, m)
			}
		}
	}
	if len(captures) == 0 {
		return score, nil
	}

	orderMoves(r.b.Position(), captures, ply, nil, r.rand)

	bestScore := score
	var bestLine []board.Move

	for _, m := range captures {
		if contextx.IsCancelled(ctx) {
			break
		}

		r.b.PushMove(m)
		childScore, childLine := r.quiescence(ctx, -turnSign, alpha, beta, ply+1)
		r.b.PopMove()

		improved := false
		if turnSign > 0 {
			improved = childScore > bestScore
		} else {
			improved = childScore < bestScore
		}

		if improved {
			bestScore = childScore
			bestLine = append([]board.Move{m}, childLine...)

			if turnSign > 0 {
				alpha = eval.Max(alpha, bestScore)
				if bestScore >= beta {
					return bestScore, bestLine
				}
			} else {
				beta = eval.Min(beta, bestScore)
				if bestScore <= alpha {
					return bestScore, bestLine
				}
			}
		}
	}

	return bestScore, bestLine
}
