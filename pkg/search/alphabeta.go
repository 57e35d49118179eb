package search

import (
	"context"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/eval"
)

// AlphaBeta implements negamax with alpha-beta pruning, transposition-table probing and a
// quiescence leaf (§4.6). Pseudo-code:
//
//	function negamax(node, depth, alpha, beta, side) is
//	    if depth = 0 then return quiesce(node, alpha, beta, side)
//	    if node is terminal then return -CHECKMATE + depth
//	    value := -inf
//	    for each turn of node do
//	        value := max(value, -negamax(child, depth-1, -beta, -alpha, -side))
//	        alpha := max(alpha, value)
//	        if alpha >= beta then break (* beta cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
func (r *run) negamax(ctx context.Context, pos *board.Position, side board.Color, remaining int, alpha, beta eval.Score) eval.Score {
	if r.timeUp(ctx) {
		return eval.InvalidScore
	}

	hash := r.hash(pos, side)
	preferred := ""
	if entry, ok := r.tt.Read(hash); ok && entry.Depth >= remaining {
		switch entry.Flag {
		case ExactBound:
			return entry.Score
		case LowerBound:
			alpha = eval.Max(alpha, entry.Score)
		case UpperBound:
			beta = eval.Min(beta, entry.Score)
		}
		if alpha >= beta {
			return entry.Score
		}
		preferred = entry.BestMove
	} else if ok {
		preferred = entry.BestMove
	}

	if remaining == 0 {
		return r.quiescence(ctx, pos, side, alpha, beta)
	}

	r.nodes++

	turns := board.GenerateTurns(pos, side)
	if len(turns) == 0 {
		return -eval.Checkmate + eval.Score(remaining)
	}
	turns = OrderTurns(turns, side, preferred)

	best := eval.MinScore
	bestNotation := ""
	flag := UpperBound
	for _, t := range turns {
		next := board.Apply(pos, side, t)
		score := r.negamax(ctx, next, side.Opponent(), remaining-1, beta.Negate(), alpha.Negate())
		if r.aborted {
			return eval.InvalidScore
		}
		score = score.Negate()

		if score > best {
			best = score
			bestNotation = t.Notation()
		}
		if best > alpha {
			alpha = best
			flag = ExactBound
		}
		if alpha >= beta {
			flag = LowerBound
			break
		}
	}

	r.tt.Write(hash, remaining, best, flag, bestNotation)
	return best
}

// hash returns the Zobrist hash of pos with side to move, using the search's key table.
func (r *run) hash(pos *board.Position, side board.Color) board.ZobristHash {
	return r.zobrist.Hash(pos, side)
}
