package engine_test

import (
	"context"
	"testing"

	"github.com/mvpineda/negamax/pkg/board/fen"
	"github.com/mvpineda/negamax/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseMoveFromInitialPositionIsLegal(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "suite", engine.WithMaxDepth(2), engine.WithIterativeDeepening(false))

	m, err := e.ChooseMove(ctx, "")
	require.NoError(t, err)
	assert.NotZero(t, m)
}

func TestChooseMoveRejectsInvalidFEN(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "suite", engine.WithMaxDepth(1))

	_, err := e.ChooseMove(ctx, "not a fen")
	assert.Error(t, err)
}

func TestChooseMoveOnTerminalPositionErrors(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "suite", engine.WithMaxDepth(1))

	// Fool's mate final position: Black has just delivered checkmate.
	_, err := e.ChooseMove(ctx, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.Error(t, err)
}

func TestChooseMoveContinuesFromPriorPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "suite", engine.WithMaxDepth(1), engine.WithIterativeDeepening(false))

	before := e.Position()
	m, err := e.ChooseMove(ctx, "")
	require.NoError(t, err)

	// The chosen move was pushed onto the working position, so the position itself has moved
	// on: a subsequent call with no FEN continues from there, not from `before` again.
	after := e.Position()
	assert.NotEqual(t, before, after, "expected the working position to advance past the chosen move %v", m)
}

func TestResetReturnsToInitialPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "suite", engine.WithMaxDepth(1))

	_, err := e.ChooseMove(ctx, "")
	require.NoError(t, err)

	e.Reset(ctx)
	assert.Equal(t, fen.Initial, e.Position())
}

func TestWithDebugDoesNotAlterChosenMoveLegality(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "suite", engine.WithMaxDepth(2), engine.WithIterativeDeepening(false), engine.WithDebug(true))

	m, err := e.ChooseMove(ctx, "")
	require.NoError(t, err)
	assert.NotZero(t, m)
}
