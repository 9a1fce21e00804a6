package search

import (
	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/eval"
)

// TranspositionTable is a depth-keyed cache of prior evaluations, reused within a single
// search call. A cached score at remaining depth d is only sound for another visit at the
// same remaining depth, since a deeper search produces a stronger result: hence one map per
// depth rather than one shared map.
//
// No aging, replacement policy or bound tag (exact/lower/upper) is recorded, so a raw score
// can in rare cases be reused across a window it was not actually valid for. This mirrors a
// known unsoundness of alpha-beta caching without bound tags; a sound table would store
// (score, bound, depth) triples and consult both the bound and the search window, which this
// table deliberately does not do.
type TranspositionTable struct {
	slots []map[board.ZobristHash]eval.Score
	skips uint64
}

// NewTranspositionTable returns an empty table with one slot per remaining depth in
// [0, maxDepth].
func NewTranspositionTable(maxDepth int) *TranspositionTable {
	tt := &TranspositionTable{slots: make([]map[board.ZobristHash]eval.Score, maxDepth+1)}
	tt.Clear()
	return tt
}

// Clear empties every depth slot. Called at the start of each choose_move call and again at
// the start of each iterative-deepening pass.
func (tt *TranspositionTable) Clear() {
	for d := range tt.slots {
		tt.slots[d] = make(map[board.ZobristHash]eval.Score)
	}
	tt.skips = 0
}

// Get looks up the cached score for key at the given remaining depth.
func (tt *TranspositionTable) Get(depth int, key board.ZobristHash) (eval.Score, bool) {
	if depth < 0 || depth >= len(tt.slots) {
		return 0, false
	}
	score, ok := tt.slots[depth][key]
	if ok {
		tt.skips++
	}
	return score, ok
}

// Put stores the score for key at the given remaining depth.
func (tt *TranspositionTable) Put(depth int, key board.ZobristHash, score eval.Score) {
	if depth < 0 || depth >= len(tt.slots) {
		return
	}
	tt.slots[depth][key] = score
}

// Skips returns the number of cache hits recorded since the last Clear.
func (tt *TranspositionTable) Skips() uint64 {
	return tt.skips
}
