package board_test

import (
	"github.com/seekerror/camelot/pkg/board"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCaptureAllWinCondition(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("F6"), Piece: board.Piece{Kind: board.Man, Color: board.White}},
		{Square: sq("G6"), Piece: board.Piece{Kind: board.Man, Color: board.White}},
	})
	assert.NoError(t, err)

	symbol, ok := board.CheckWinCondition(pos, board.White)
	assert.True(t, ok)
	assert.Equal(t, board.WinCaptureAll, symbol)
}

func TestNoWinConditionWithFewerThanTwoPieces(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("F6"), Piece: board.Piece{Kind: board.Man, Color: board.White}},
	})
	assert.NoError(t, err)

	_, ok := board.CheckWinCondition(pos, board.White)
	assert.False(t, ok)
}

func TestNoWinConditionWithLegalOpponentTurn(t *testing.T) {
	pos := board.InitialPosition()
	_, ok := board.CheckWinCondition(pos, board.White)
	assert.False(t, ok)
}
