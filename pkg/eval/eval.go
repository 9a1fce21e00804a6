// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/mvpineda/negamax/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in Pawns, from White's perspective.
	Evaluate(ctx context.Context, b *board.Board) Pawns
}

// Material returns the nominal material advantage balance, White-positive, read directly from
// the board's incrementally-maintained material counter rather than rescanning every piece.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Pawns {
	return Pawns(b.Material()) / 100
}

// NominalValue is the absolute nominal value in pawns of a piece. The King has no material
// value: it can never be captured, so it never contributes to a material balance.
func NominalValue(p board.Piece) Pawns {
	switch p {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// dampening is the divisor applied to the summed piece-square bonus, so it nudges the
// evaluation without ever overwhelming the material term.
const dampening = 300

// uniformTable is the flat 100-per-square table used for every piece but the pawn: a
// deliberate baseline with no positional opinion.
var uniformTable = [8][8]int{
	{100, 100, 100, 100, 100, 100, 100, 100},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{100, 100, 100, 100, 100, 100, 100, 100},
}

// pawnTable favors central advancement and penalizes stagnation on the 7th rank, written from
// White's perspective: rank index 0 is Rank1, file index 0 is FileH.
var pawnTable = [8][8]int{
	{100, 100, 100, 100, 100, 100, 100, 100},
	{90, 90, 80, 90, 90, 90, 90, 90},
	{80, 80, 70, 80, 80, 80, 80, 80},
	{60, 70, 70, 70, 70, 70, 70, 60},
	{50, 60, 60, 60, 60, 30, 60, 50},
	{40, 30, 60, 50, 50, 20, 30, 40},
	{90, 90, 90, 30, 30, 90, 90, 90},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

func pieceSquareTable(p board.Piece) *[8][8]int {
	if p == board.Pawn {
		return &pawnTable
	}
	return &uniformTable
}

// PieceSquare sums a per-piece, per-square positional bonus over every piece on the board,
// divided by a dampening constant. The table is written from White's perspective; Black's
// lookup mirrors the file, not the rank.
type PieceSquare struct{}

func (PieceSquare) Evaluate(ctx context.Context, b *board.Board) Pawns {
	pos := b.Position()

	var sum int
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for p := board.Pawn; p < board.NumPieces; p++ {
			table := pieceSquareTable(p)
			for _, sq := range pos.Piece(c, p).ToSquares() {
				file := sq.File()
				if c == board.Black {
					file = board.NumFiles - 1 - file
				}
				bonus := table[sq.Rank()][file]
				if c == board.White {
					sum += bonus
				} else {
					sum -= bonus
				}
			}
		}
	}
	return Pawns(sum) / dampening
}

// Mobility measures the difference in legal move count between the side to move and its
// opponent, obtained via a null-move switch. Own mobility and opponent mobility are weighted
// differently; the result is expressed White-positive, like every other evaluation term.
type Mobility struct{}

func (Mobility) Evaluate(ctx context.Context, b *board.Board) Pawns {
	turn := b.Turn()

	own := Pawns(len(legalMoves(b)))

	b.PushNull()
	opp := Pawns(len(legalMoves(b)))
	b.PopNull()

	delta := own/300 - opp/500
	if turn == board.Black {
		delta = -delta
	}
	return delta
}

func legalMoves(b *board.Board) []board.Move {
	var ret []board.Move
	for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
		if !b.PushMove(m) {
			continue
		}
		b.PopMove()
		ret = append(ret, m)
	}
	return ret
}

// Default is the evaluator used by the search unless overridden: material, piece-square
// bonuses and a mobility differential, plus optional noise.
type Default struct {
	Noise Random
}

func (d Default) Evaluate(ctx context.Context, b *board.Board) Pawns {
	pawns := Material{}.Evaluate(ctx, b) + PieceSquare{}.Evaluate(ctx, b) + Mobility{}.Evaluate(ctx, b)
	return pawns + d.Noise.Evaluate(ctx, b)
}
