package search

import (
	"fmt"
	"strings"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/eval"
)

// PV is a principal variation: the line of play the search currently believes best for both
// sides, together with the score it was evaluated at and bookkeeping for diagnostics.
type PV struct {
	Moves []board.Move
	Score eval.Score
	Depth int
	Nodes uint64
	Skips uint64
}

// Best returns the first move of the line, if any.
func (pv PV) Best() (board.Move, bool) {
	if len(pv.Moves) == 0 {
		return board.Move{}, false
	}
	return pv.Moves[0], true
}

func (pv PV) String() string {
	var sb strings.Builder
	for i, m := range pv.Moves {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.String())
	}
	return fmt.Sprintf("pv{depth=%v, score=%v, nodes=%v, skips=%v, line=[%v]}", pv.Depth, pv.Score, pv.Nodes, pv.Skips, sb.String())
}
