package search

import (
	"context"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/eval"
)

// quiescence searches capture turns only, to avoid the horizon effect specific to
// Camelot's chained jumps (§4.6). A stand-pat bound using the static evaluation is taken
// before searching.
func (r *run) quiescence(ctx context.Context, pos *board.Position, side board.Color, alpha, beta eval.Score) eval.Score {
	if r.timeUp(ctx) {
		return eval.InvalidScore
	}

	r.nodes++

	standPat := r.staticEval(pos, side)
	if standPat.IsMate() {
		return standPat // terminal recognition short-circuits quiescence (§4.4).
	}
	if standPat >= beta {
		return standPat
	}
	alpha = eval.Max(alpha, standPat)

	turns := CaptureTurnsOnly(board.GenerateTurns(pos, side))
	turns = OrderTurns(turns, side, "")

	for _, t := range turns {
		next := board.Apply(pos, side, t)
		score := r.quiescence(ctx, next, side.Opponent(), beta.Negate(), alpha.Negate())
		if r.aborted {
			return eval.InvalidScore
		}
		score = score.Negate()

		alpha = eval.Max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return alpha
}
