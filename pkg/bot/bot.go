// Package bot models the judge-facing capability every player in a game possesses: given a
// position, choose a move. Rather than an open interface hierarchy, the judge only ever needs
// one of a small, closed set of kinds, per the design notes this package follows.
package bot

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/board/fen"
	"github.com/mvpineda/negamax/pkg/engine"
	"github.com/mvpineda/negamax/pkg/eval"
	"github.com/mvpineda/negamax/pkg/search"
)

// Kind tags the variant of Bot, so the judge can log or branch on it without a type switch
// over the Bot interface itself.
type Kind uint8

const (
	Random Kind = iota
	Human
	MiniMax
	PieceValue
	Engine
)

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case Human:
		return "human"
	case MiniMax:
		return "minimax"
	case PieceValue:
		return "piece-value"
	case Engine:
		return "engine"
	default:
		return "unknown"
	}
}

// Bot is the capability the judge drives: given a position, choose a legal move.
type Bot interface {
	Kind() Kind
	ChooseMove(ctx context.Context, position string) (board.Move, error)
}

func decode(position string) (*board.Board, error) {
	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	if err != nil {
		return nil, fmt.Errorf("invalid position %q: %w", position, err)
	}
	zt := board.NewZobristTable(1)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves), nil
}

func legalMoves(b *board.Board) []board.Move {
	var ret []board.Move
	for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
		if b.PushMove(m) {
			b.PopMove()
			ret = append(ret, m)
		}
	}
	return ret
}

// RandomBot picks uniformly among the legal moves. Baseline for calibrating everything else.
type RandomBot struct {
	Rand *rand.Rand
}

func (RandomBot) Kind() Kind { return Random }

func (b RandomBot) ChooseMove(ctx context.Context, position string) (board.Move, error) {
	pos, err := decode(position)
	if err != nil {
		return board.Move{}, err
	}
	moves := legalMoves(pos)
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("no legal moves in position %q", position)
	}
	r := b.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	return moves[r.Intn(len(moves))], nil
}

// PieceValueBot runs the same fixed-depth search as MiniMaxBot, but with bare material count
// as its evaluator — no piece-square or mobility terms. This is the piece-value bot the
// original harness defines as a MiniMaxBot subclass with nothing but a material sum for
// evaluate_board; here that specialization is a narrower Eval, not a different search.
type PieceValueBot struct {
	Depth int
	Rand  *rand.Rand
}

func (PieceValueBot) Kind() Kind { return PieceValue }

func (b PieceValueBot) ChooseMove(ctx context.Context, position string) (board.Move, error) {
	pos, err := decode(position)
	if err != nil {
		return board.Move{}, err
	}

	depth := b.Depth
	if depth < 1 {
		depth = 2
	}

	s := search.Searcher{Eval: eval.Material{}, MaxDepth: depth, IterativeDeepening: false, Rand: b.Rand}
	pv := s.Search(ctx, pos)
	m, ok := pv.Best()
	if !ok {
		return board.Move{}, fmt.Errorf("no legal moves in position %q", position)
	}
	return m, nil
}

// HumanBot represents a human player: the judge never calls ChooseMove on it directly, since
// the move comes from outside the program. Present only so Kind has a value for it.
type HumanBot struct{}

func (HumanBot) Kind() Kind { return Human }

func (HumanBot) ChooseMove(ctx context.Context, position string) (board.Move, error) {
	return board.Move{}, fmt.Errorf("human bot does not choose its own moves")
}

// MiniMaxBot runs a single fixed-depth alpha-beta pass with no iterative deepening: the plain
// search, without the move-ordering benefit of a prior pass's principal variation.
type MiniMaxBot struct {
	Depth int
	Eval  eval.Evaluator
	Rand  *rand.Rand
}

func (MiniMaxBot) Kind() Kind { return MiniMax }

func (b MiniMaxBot) ChooseMove(ctx context.Context, position string) (board.Move, error) {
	pos, err := decode(position)
	if err != nil {
		return board.Move{}, err
	}

	ev := b.Eval
	if ev == nil {
		ev = eval.Default{}
	}
	depth := b.Depth
	if depth < 1 {
		depth = 2
	}

	s := search.Searcher{Eval: ev, MaxDepth: depth, IterativeDeepening: false, Rand: b.Rand}
	pv := s.Search(ctx, pos)
	m, ok := pv.Best()
	if !ok {
		return board.Move{}, fmt.Errorf("no legal moves in position %q", position)
	}
	return m, nil
}

// EngineBot wraps the full iterative-deepening engine: the one actually meant to play well.
type EngineBot struct {
	Engine *engine.Engine
}

func (EngineBot) Kind() Kind { return Engine }

func (b EngineBot) ChooseMove(ctx context.Context, position string) (board.Move, error) {
	return b.Engine.ChooseMove(ctx, position)
}
