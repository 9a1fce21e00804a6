package board_test

import (
	"testing"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobristHashRoundTrip(t *testing.T) {
	zt := board.NewZobristTable(7)

	pos, turn, np, fm, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	b := board.NewBoard(zt, pos, turn, np, fm)
	before := b.Hash()

	for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
		if !b.PushMove(m) {
			continue
		}

		// Hash consistency: after apply, the incremental hash matches a from-scratch rebuild.
		full := zt.Hash(b.Position(), b.Turn())
		assert.Equal(t, full, b.Hash(), "move %v: incremental hash diverged from full rebuild", m)

		b.PopMove()

		// Round trip: after undo, the hash is restored exactly.
		assert.Equal(t, before, b.Hash(), "move %v: hash not restored after undo", m)
	}
}

func TestZobristTransposition(t *testing.T) {
	zt := board.NewZobristTable(7)

	pos, turn, np, fm, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	b1 := board.NewBoard(zt, pos, turn, np, fm)
	b2 := board.NewBoard(zt, pos, turn, np, fm)

	// 1.Nf3 Nf6 2.Nc3 Nc6 vs 1.Nc3 Nc6 2.Nf3 Nf6: same resulting position by different move orders.
	require.True(t, b1.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.G1, To: board.F3}))
	require.True(t, b1.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.G8, To: board.F6}))
	require.True(t, b1.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.B1, To: board.C3}))
	require.True(t, b1.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.B8, To: board.C6}))

	require.True(t, b2.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.B1, To: board.C3}))
	require.True(t, b2.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.B8, To: board.C6}))
	require.True(t, b2.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.G1, To: board.F3}))
	require.True(t, b2.PushMove(board.Move{Type: board.Normal, Piece: board.Knight, From: board.G8, To: board.F6}))

	assert.Equal(t, b1.Hash(), b2.Hash())
}

func TestZobristFullRebuildMatchesInitial(t *testing.T) {
	zt := board.NewZobristTable(7)

	pos, turn, np, fm, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	b := board.NewBoard(zt, pos, turn, np, fm)
	assert.Equal(t, zt.Hash(pos, turn), b.Hash())
}
