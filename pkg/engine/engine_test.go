package engine_test

import (
	"context"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/engine"
	"github.com/seekerror/camelot/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func sq(s string) board.Square {
	v, err := board.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return v
}

func place(placements ...board.Placement) *board.Position {
	pos, err := board.NewPosition(placements)
	if err != nil {
		panic(err)
	}
	return pos
}

func pl(square string, kind board.Kind, color board.Color) board.Placement {
	return board.Placement{Square: sq(square), Piece: board.Piece{Kind: kind, Color: color}}
}

func TestEngineNewGameIsInitialPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, engine.WithSeed(1))

	assert.Equal(t, board.White, e.Turn())
	assert.Len(t, e.LegalTurns(), len(board.GenerateTurns(board.InitialPosition(), board.White)))
}

// TestEngineTwoInCastleWin is boundary scenario 3 (§8).
func TestEngineTwoInCastleWin(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, engine.WithSeed(2))

	pos := place(
		pl("F16", board.Knight, board.White),
		pl("G16", board.Knight, board.White),
		pl("A4", board.Man, board.White),
		pl("L13", board.Man, board.Black),
	)
	e.Reset(ctx, pos, board.White)

	symbol, won := e.CheckWinCondition(board.White)
	require.True(t, won)
	assert.Equal(t, board.WinCastleOccupation, symbol)

	assert.Equal(t, eval.Checkmate, e.Evaluate())
}

// TestEngineStalemateDetection is boundary scenario 6 (§8): Black to move with no legal
// turn and White holding at least two pieces.
func TestEngineStalemateDetection(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, engine.WithSeed(3))

	// Black's lone man at F1 is boxed in on every reachable plain-move, canter and jump
	// square by White pieces: its one-step neighbors are all occupied (so no plain move),
	// and its two-step jump/canter landings are all occupied too (destination-must-be-
	// empty fails either way), so Black has no legal turn while White still holds pieces.
	pos := place(
		pl("F1", board.Man, board.Black),
		pl("F2", board.Man, board.White),
		pl("G1", board.Man, board.White),
		pl("G2", board.Man, board.White),
		pl("E2", board.Man, board.White),
		pl("F3", board.Man, board.White),
		pl("H3", board.Man, board.White),
		pl("D3", board.Man, board.White),
	)
	e.Reset(ctx, pos, board.Black)

	symbol, won := e.CheckWinCondition(board.White)
	require.True(t, won)
	assert.Equal(t, board.WinStalemate, symbol)

	e.SetOptions(engine.Options{MaxDepth: 2, TimeLimitMS: 500, TTSizeMB: 8})
	a := e.Analyze(ctx)
	assert.False(t, a.HasMove)
	assert.Equal(t, -100000, a.EvaluationCP)
}

func TestEnginePlayRejectsIllegalNotation(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, engine.WithSeed(4))

	err := e.Play(ctx, "Z1-Z2")
	assert.Error(t, err)
}

func TestEnginePlayAdvancesTurn(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, engine.WithSeed(5))

	turns := e.LegalTurns()
	require.NotEmpty(t, turns)

	err := e.Play(ctx, turns[0].Notation())
	require.NoError(t, err)
	assert.Equal(t, board.Black, e.Turn())
}

func TestEngineAnalyzeReturnsMoveForInitialPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, engine.WithSeed(6), engine.WithOptions(engine.Easy))

	a := e.Analyze(ctx)
	require.True(t, a.HasMove)
	assert.NotEmpty(t, a.BestMove)
	assert.GreaterOrEqual(t, a.DepthReached, 1)
}

func TestDifficultyPresetsMatchSpec(t *testing.T) {
	assert.Equal(t, engine.Options{MaxDepth: 3, TimeLimitMS: 500, TTSizeMB: 32}, engine.Easy)
	assert.Equal(t, engine.Options{MaxDepth: 5, TimeLimitMS: 2000, TTSizeMB: 64}, engine.Medium)
	assert.Equal(t, engine.Options{MaxDepth: 8, TimeLimitMS: 5000, TTSizeMB: 128}, engine.Hard)
	assert.Equal(t, engine.Options{MaxDepth: 12, TimeLimitMS: 10000, TTSizeMB: 256}, engine.Expert)
}
