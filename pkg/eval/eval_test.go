package eval_test

import (
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/eval"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEvaluateInitialPositionIsNearZero(t *testing.T) {
	pos := board.InitialPosition()
	s := eval.Evaluate(pos, eval.DefaultWeights, nil)
	assert.True(t, s > -1 && s < 1, "expected a symmetric opening position near zero, got %v", s)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sqAt("F6"), Piece: board.Piece{Kind: board.Knight, Color: board.White}},
		{Square: sqAt("H11"), Piece: board.Piece{Kind: board.Man, Color: board.Black}},
	})
	assert.NoError(t, err)

	s := eval.Evaluate(pos, eval.DefaultWeights, nil)
	assert.True(t, s > 0, "expected White's extra knight value to dominate, got %v", s)
}

func TestEvaluateSymmetryUnderColorAndRankMirror(t *testing.T) {
	// A rank-mirrored, color-swapped position should evaluate to the negation of the
	// original (jitter disabled via a nil Random, §8).
	a, err := board.NewPosition([]board.Placement{
		{Square: sqAt("F6"), Piece: board.Piece{Kind: board.Man, Color: board.White}},
		{Square: sqAt("G7"), Piece: board.Piece{Kind: board.Knight, Color: board.Black}},
	})
	assert.NoError(t, err)

	b, err := board.NewPosition([]board.Placement{
		{Square: mirrorRank(sqAt("F6")), Piece: board.Piece{Kind: board.Man, Color: board.Black}},
		{Square: mirrorRank(sqAt("G7")), Piece: board.Piece{Kind: board.Knight, Color: board.White}},
	})
	assert.NoError(t, err)

	sa := eval.Evaluate(a, eval.DefaultWeights, nil)
	sb := eval.Evaluate(b, eval.DefaultWeights, nil)
	assert.Equal(t, sa, -sb)
}

func TestEvaluateCheckmateTerminal(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sqAt("F16"), Piece: board.Piece{Kind: board.Man, Color: board.White}},
		{Square: sqAt("G16"), Piece: board.Piece{Kind: board.Man, Color: board.White}},
	})
	assert.NoError(t, err)

	assert.Equal(t, eval.Checkmate, eval.Evaluate(pos, eval.DefaultWeights, nil))
}

func sqAt(s string) board.Square {
	v, err := board.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return v
}

// mirrorRank reflects a square across the board's horizontal midline (rank r <-> rank
// 15-r), matching the rank-mirror symmetry used by the evaluator's definition (§8).
func mirrorRank(s board.Square) board.Square {
	return board.NewSquare(s.File(), 15-s.Rank())
}
