package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/board/fen"
	"github.com/mvpineda/negamax/pkg/eval"
	"github.com/mvpineda/negamax/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, turn, np, fm, err := fen.Decode(f)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos, turn, np, fm)
}

func newSearcher(depth int, iterative bool) search.Searcher {
	return search.Searcher{
		Eval:               eval.Default{},
		MaxDepth:           depth,
		IterativeDeepening: iterative,
		Rand:               rand.New(rand.NewSource(1)),
	}
}

// S1: mate in one is found and preferred.
func TestSearchFindsMateInOne(t *testing.T) {
	// Black king boxed in by its own pawns; Rd1-d8 is back-rank mate.
	b := newTestBoard(t, "6k1/5ppp/8/8/8/8/8/3RK3 w - - 0 1")

	pv := newSearcher(3, true).Search(context.Background(), b)
	m, ok := pv.Best()
	require.True(t, ok)

	assert.Equal(t, board.D1, m.From)
	assert.Equal(t, board.D8, m.To)
}

// S2: a free rook capture is taken over a quiet move.
func TestSearchTakesFreeRook(t *testing.T) {
	// White bishop can take the black rook on g7, which is checking the white king; the rook is
	// defended only by the black king, so even after Kxg7 the exchange wins material.
	b := newTestBoard(t, "6k1/6r1/8/4B3/8/8/8/6K1 w - - 0 1")

	pv := newSearcher(2, false).Search(context.Background(), b)
	m, ok := pv.Best()
	require.True(t, ok)

	assert.Equal(t, board.E5, m.From)
	assert.Equal(t, board.G7, m.To)
	assert.True(t, m.IsCapture())
}

// Invariant: checkmate beats every non-mating alternative.
func TestSearchPrefersMateOverAnyAlternative(t *testing.T) {
	// Textbook king-and-rook mate: White king g6 boxes in h7/g7, rook a1-a8 checks along the
	// rank the king itself covers, so no square on or off the rank is left.
	b := newTestBoard(t, "7k/8/6K1/8/8/8/8/R7 w - - 0 1")

	pv := newSearcher(2, false).Search(context.Background(), b)
	m, ok := pv.Best()
	require.True(t, ok)

	assert.Equal(t, board.A1, m.From)
	assert.Equal(t, board.A8, m.To)
}

// S3: a stalemating move is not preferred over a different move that wins material instead.
func TestSearchPrefersMaterialOverStalemate(t *testing.T) {
	// Black's only mobile unit is the king on h8: Qd7-f7 stalemates it (the queen covers g8,
	// g7 and h7, and the b7 pawn is frozen behind White's own pawn on b6 with no captures
	// available), while Qd7xb7 instead wins a pawn along the same rank. The white king sits far
	// away on a1, so no mate is on offer.
	b := newTestBoard(t, "7k/1p1Q4/1P6/8/8/8/8/K7 w - - 0 1")

	pv := newSearcher(2, false).Search(context.Background(), b)
	m, ok := pv.Best()
	require.True(t, ok)

	assert.Equal(t, board.D7, m.From)
	assert.Equal(t, board.B7, m.To)
	assert.True(t, m.IsCapture())
}

// S4: the transposition table records hits once a position recurs within one search call.
func TestSearchRecordsTranspositionHits(t *testing.T) {
	b := newTestBoard(t, fen.Initial)

	// Depth 4 lets knight-development move orders (1.Nf3 ... 2.Nc3 vs 1.Nc3 ... 2.Nf3) reach the
	// same position at the same remaining depth from different root branches.
	pv := newSearcher(4, false).Search(context.Background(), b)
	assert.Greater(t, pv.Skips, uint64(0))
}

// S5: repeated make/unmake across a full search leaves the board exactly as found.
func TestSearchLeavesBoardUnmodified(t *testing.T) {
	b := newTestBoard(t, fen.Initial)
	before := b.String()

	newSearcher(3, true).Search(context.Background(), b)

	assert.Equal(t, before, b.String())
}

// S6: a position with exactly one legal move returns it without crashing, at any depth.
func TestSearchForcedMove(t *testing.T) {
	// Black king on a8 has exactly one legal move, Kb8, under check from the rook on a1.
	b := newTestBoard(t, "k7/8/1K6/8/8/8/8/R7 b - - 0 1")

	pv := newSearcher(4, true).Search(context.Background(), b)
	m, ok := pv.Best()
	require.True(t, ok)
	assert.Equal(t, board.A8, m.From)
	assert.Equal(t, board.B8, m.To)
}

// Invariant: depth monotonicity. A deeper iterative-deepening pass does not regress to a
// strictly worse outcome than a shallower one already found a forced win at.
func TestSearchDepthMonotonicityOnForcedMate(t *testing.T) {
	b := newTestBoard(t, "6k1/6pp/8/7Q/8/8/8/6K1 w - - 0 1")

	shallow := newSearcher(2, false).Search(context.Background(), b)
	pv := newSearcher(4, true).Search(context.Background(), b)
	assert.GreaterOrEqual(t, float64(pv.Score), 0.0)
	assert.GreaterOrEqual(t, float64(pv.Score), float64(shallow.Score))
}
