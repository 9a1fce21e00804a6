// Package engine ties the search and evaluator to a single mutable position, exposing the
// synchronous choose_move contract the core is built around.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/board/fen"
	"github.com/mvpineda/negamax/pkg/eval"
	"github.com/mvpineda/negamax/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

// Version identifies this build of the engine, surfaced to callers that care (e.g. a protocol
// handshake), though this core speaks no protocol itself.
var Version = build.NewVersion(0, 1, 0)

// Engine owns a single working position and answers choose_move against it. Calls are
// serialized by a mutex: a single call exclusively owns the mutable state for its duration,
// per the core's single-threaded, synchronous model.
type Engine struct {
	mu sync.Mutex

	name, author string

	zt     *board.ZobristTable
	b      *board.Board
	search search.Searcher
	debug  bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithMaxDepth sets the deepest ply searched in a single choose_move call.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) { e.search.MaxDepth = depth }
}

// WithIterativeDeepening toggles iterative deepening from depth 2.
func WithIterativeDeepening(enabled bool) Option {
	return func(e *Engine) { e.search.IterativeDeepening = enabled }
}

// WithEvaluator overrides the default evaluator.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) { e.search.Eval = ev }
}

// WithSeed seeds both the Zobrist table and the move-order shuffle PRNG.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.zt = board.NewZobristTable(seed)
		e.search.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithDebug enables debug-mode invariant checking: every choose_move call that continues from
// the prior position (no FEN supplied) recomputes the Zobrist key and material balance from
// scratch, logs any discrepancy against the incrementally-maintained values and then
// resynchronises. Without debug mode no such check is made.
func WithDebug(enabled bool) Option {
	return func(e *Engine) { e.debug = enabled }
}

// New constructs an engine at the standard starting position, with default depth 4, iterative
// deepening enabled and the Default evaluator. The Zobrist tables are seeded once here and
// never mutated afterward; they may be shared read-only with other instances, though New does
// not do so itself.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		zt:     board.NewZobristTable(1),
		search: search.Searcher{
			Eval:               eval.Default{},
			MaxDepth:           4,
			IterativeDeepening: true,
			Rand:               rand.New(rand.NewSource(1)),
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.reset()
	logw.Infof(ctx, "%v %v by %v: ready", e.name, Version, e.author)
	return e
}

func (e *Engine) reset() {
	pos, turn, noprogress, fullmoves, err := fen.Decode(fen.Initial)
	if err != nil {
		panic(err) // fen.Initial is a constant; a parse failure here is a bug in this package.
	}
	e.b = board.NewBoard(e.zt, pos, turn, noprogress, fullmoves)
}

// Reset returns the engine to the standard starting position.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset()
	logw.Infof(ctx, "%v: reset to initial position", e.name)
}

// Position returns the FEN of the current working position.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position(), e.b.Turn(), e.b.NoProgress(), e.b.FullMoves())
}

// ChooseMove is the core's single entry point. If position is non-empty, it is parsed as a
// FEN string and replaces the working position outright — a fresh board built this way carries
// no incremental state to drift, so it needs no invariant check. If position is empty, the
// call searches from the existing working position and, in debug mode, that position's
// incrementally-maintained Zobrist key and material balance are checked against values rebuilt
// from scratch. Either way, the chosen move is pushed onto the working position before
// ChooseMove returns, so the next call with an empty position continues from the result of
// this one rather than searching the same position twice.
//
// The returned move is legal in the position that was searched. ChooseMove returns an error if position
// fails to parse, or if the position (supplied or current) has no legal moves.
func (e *Engine) ChooseMove(ctx context.Context, position string) (board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if position != "" {
		pos, turn, noprogress, fullmoves, err := fen.Decode(position)
		if err != nil {
			return board.Move{}, fmt.Errorf("invalid position %q: %w", position, err)
		}
		e.b = board.NewBoard(e.zt, pos, turn, noprogress, fullmoves)
	} else if e.debug {
		e.checkInvariants(ctx)
	}

	if e.b.Result().Outcome != board.Undecided {
		return board.Move{}, fmt.Errorf("choose_move called on a terminal position: %v", e.b.Result())
	}

	pv := e.search.Search(ctx, e.b)
	m, ok := pv.Best()
	if !ok {
		return board.Move{}, fmt.Errorf("no legal move found for position %v", e.b)
	}

	logw.Infof(ctx, "%v: %v", e.name, pv)

	e.b.PushMove(m)
	return m, nil
}

// checkInvariants recomputes the Zobrist key and material balance from scratch and compares
// them against the incrementally-maintained values, logging any discrepancy before
// resynchronising. It is only ever worth calling when the working position was carried forward
// from a prior call rather than freshly parsed from a FEN, since a freshly parsed board has no
// incremental history to have drifted from.
func (e *Engine) checkInvariants(ctx context.Context) {
	resync := false

	if full := e.zt.Hash(e.b.Position(), e.b.Turn()); full != e.b.Hash() {
		logw.Errorf(ctx, "%v: zobrist hash mismatch: incremental=%x full=%x, resynchronizing", e.name, e.b.Hash(), full)
		resync = true
	}
	if full := board.MaterialOf(e.b.Position()); full != e.b.Material() {
		logw.Errorf(ctx, "%v: material mismatch: incremental=%v full=%v, resynchronizing", e.name, e.b.Material(), full)
		resync = true
	}

	if resync {
		e.b = board.NewBoard(e.zt, e.b.Position(), e.b.Turn(), e.b.NoProgress(), e.b.FullMoves())
	}
}
