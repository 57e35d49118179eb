package eval_test

import (
	"github.com/seekerror/camelot/pkg/eval"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestScoreMateDistance(t *testing.T) {
	s := eval.Checkmate - 4 // mate in 2
	md, ok := s.MateIn()
	assert.True(t, ok)
	assert.Equal(t, 2, md)

	assert.False(t, eval.Score(500).IsMate())
}

func TestScoreNegate(t *testing.T) {
	assert.Equal(t, eval.Score(-150), eval.Score(150).Negate())
	assert.True(t, eval.InvalidScore.Negate().IsInvalid())
}

func TestScoreStringFormatting(t *testing.T) {
	assert.Equal(t, "+1.50", eval.Score(150).String())
	assert.Equal(t, "-1.50", eval.Score(-150).String())
	assert.Equal(t, "+M2", (eval.Checkmate - 4).String())
}

func TestRandomJitterRange(t *testing.T) {
	r := eval.NewRandom(1)
	for i := 0; i < 100; i++ {
		j := r.Jitter()
		assert.True(t, j >= -10 && j < 10)
	}

	var nilRnd *eval.Random
	assert.Equal(t, eval.Score(0), nilRnd.Jitter())
	assert.Equal(t, float64(1), nilRnd.Float64())
	assert.Equal(t, 0, nilRnd.Intn(5))
}
