package search

import (
	"math/rand"
	"sort"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/eval"
)

// pvBonus forces the previous iteration's principal-variation move to the front of the list
// at the ply it occurred.
const pvBonus = 50000

// orderMoves shuffles moves for tie-breaking, scores them, and sorts descending by score. The
// PV move for this ply, if present among moves, always sorts first.
//
// Capture moves are scored by the value of whatever piece currently occupies the destination
// square. For an en passant capture the destination square is empty before the move — the
// captured pawn sits beside it, not on it — so this naive lookup scores it as a quiet move.
// That is a known inherited quirk, not a bug to fix here: en passant captures are silently
// under-prioritized in the move order.
func orderMoves(pos *board.Position, moves []board.Move, ply int, pv []board.Move, r *rand.Rand) {
	board.ShuffleMoves(moves, r)

	var pvMove board.Move
	hasPV := ply < len(pv)
	if hasPV {
		pvMove = pv[ply]
	}

	type scored struct {
		m     board.Move
		score int
	}

	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{m: m, score: moveOrderScore(pos, m, hasPV, pvMove)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	for i, s := range ranked {
		moves[i] = s.m
	}
}

func moveOrderScore(pos *board.Position, m board.Move, hasPV bool, pvMove board.Move) int {
	if hasPV && pvMove.Equals(m) {
		return pvBonus
	}
	if _, p, ok := pos.Square(m.To); ok {
		return int(eval.NominalValue(p) * 100)
	}
	return 0
}
