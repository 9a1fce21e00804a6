// Package search implements alpha-beta negamax with iterative deepening, move ordering, a
// depth-keyed transposition table and a capture-only quiescence extension, over a
// github.com/mvpineda/negamax/pkg/board position.
package search

import (
	"context"
	"math/rand"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/eval"
)

// Searcher drives one or more negamax passes to a fixed maximum depth, optionally deepening
// iteratively from depth 2 so that each pass's principal variation seeds move ordering for the
// next. It holds no board state of its own: Search is handed a *board.Board it may freely
// PushMove/PopMove on, provided it leaves it exactly as found.
type Searcher struct {
	Eval eval.Evaluator

	// MaxDepth is the deepest ply searched.
	MaxDepth int

	// IterativeDeepening, if true, runs passes at depth 2, 3, ..., MaxDepth, reusing the
	// previous pass's PV to order moves. If false, a single pass is run at MaxDepth.
	IterativeDeepening bool

	// Rand is the PRNG used for move-order tie-breaking shuffles. Supply a seeded instance for
	// reproducible tests.
	Rand *rand.Rand
}

// Search runs the configured search against b and returns the resulting principal variation.
// b is left unmodified on return: every PushMove during the search is paired with a PopMove.
// The one exception is a b with no legal moves, which is adjudicated as checkmate or stalemate.
func (s Searcher) Search(ctx context.Context, b *board.Board) PV {
	r := s.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	maxDepth := s.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}

	start := 2
	if !s.IterativeDeepening || maxDepth < 2 {
		start = maxDepth
	}

	tt := NewTranspositionTable(maxDepth)

	var pv PV
	for d := start; d <= maxDepth; d++ {
		tt.Clear()

		run := &runner{
			b:    b,
			eval: s.Eval,
			tt:   tt,
			pv:   pv.Moves,
			rand: r,
		}

		turnSign := eval.Unit(b.Turn())
		score, line := run.negamax(ctx, d, turnSign, eval.NegInfScore, eval.InfScore, 0)

		pv = PV{
			Moves: line,
			Score: score,
			Depth: d,
			Nodes: run.nodes,
			Skips: tt.Skips(),
		}
	}
	return pv
}
