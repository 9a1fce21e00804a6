package search

import (
	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/eval"
)

// mateBase is the baseline score magnitude for a forced win; remaining depth is added so the
// search prefers a shorter mate and defers being mated as long as possible.
const mateBase = 10000

// outcomeScore returns the score for a decided result and true, or (0, false) if the result is
// not yet decided. depth is the remaining search depth at the node the outcome was observed.
func outcomeScore(result board.Result, depth int) (eval.Score, bool) {
	switch result.Outcome {
	case board.Draw:
		return eval.ZeroScore, true
	case board.WhiteWins:
		return eval.Score(mateBase + depth), true
	case board.BlackWins:
		return -eval.Score(mateBase + depth), true
	default:
		return 0, false
	}
}
