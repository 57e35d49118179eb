package eval

import "github.com/seekerror/camelot/pkg/board"

// Weights are the tunable evaluation constants (§4.4 defaults).
type Weights struct {
	Man, Knight           Score
	CastleOccupation      Score
	CenterCore, CenterMid Score // files E-H, files D/I
	ForwardProgress       Score
	MobilityBonus         Score // per legal initial move, before the 0.5 scale
}

// DefaultWeights are the tuned constants listed in §4.4.
var DefaultWeights = Weights{
	Man:              100,
	Knight:           150,
	CastleOccupation: 80,
	CenterCore:       3,
	CenterMid:        1, // approximates 1.5 on the Score's integer centipawn scale below
	ForwardProgress:  12,
	MobilityBonus:    3,
}

// proximityStages implements the staged Manhattan-distance castle-proximity bonus (§4.4).
var proximityStages = []struct {
	maxDist int
	bonus   Score
}{
	{2, 40}, {4, 26}, {6, 13}, {8, 6},
}

// Evaluate returns the position's signed score from White's perspective (§4.4). Callers
// negate for Black. Evaluate is a pure function of pos except for the jitter term, whose
// randomness is drawn from rnd (nil disables jitter, e.g. for deterministic tests).
func Evaluate(pos *board.Position, w Weights, rnd *Random) Score {
	if _, ok := board.CheckWinCondition(pos, board.White); ok {
		return Checkmate
	}
	if _, ok := board.CheckWinCondition(pos, board.Black); ok {
		return -Checkmate
	}

	var s Score
	s += material(pos, w)
	s += castleOccupation(pos, w)
	s += castleProximity(pos)
	s += centerControl(pos, w)
	s += forwardProgress(pos, w)
	s += mobility(pos, w)
	s += rnd.Jitter()
	return s
}

func pieceValue(w Weights, k board.Kind) Score {
	if k == board.Knight {
		return w.Knight
	}
	return w.Man
}

func material(pos *board.Position, w Weights) Score {
	var s Score
	for _, sq := range board.AllSquares() {
		pc, ok := pos.Piece(sq)
		if !ok {
			continue
		}
		v := pieceValue(w, pc.Kind)
		if pc.Color == board.Black {
			v = -v
		}
		s += v
	}
	return s
}

func castleOccupation(pos *board.Position, w Weights) Score {
	var s Score
	for _, c := range []board.Color{board.White, board.Black} {
		cs := board.OpponentCastleSquares(c)
		for _, sq := range cs {
			if pc, ok := pos.Piece(sq); ok && pc.Color == c {
				if c == board.White {
					s += w.CastleOccupation
				} else {
					s -= w.CastleOccupation
				}
			}
		}
	}
	return s
}

func castleProximity(pos *board.Position) Score {
	var s Score
	for _, c := range []board.Color{board.White, board.Black} {
		cs := board.OpponentCastleSquares(c)
		for _, pl := range pos.Pieces(c) {
			best := -1
			for _, target := range cs {
				d := board.ManhattanDistance(pl.Square, target)
				if best == -1 || d < best {
					best = d
				}
			}
			bonus := proximityBonus(best)
			if c == board.Black {
				bonus = -bonus
			}
			s += bonus
		}
	}
	return s
}

func proximityBonus(dist int) Score {
	for _, stage := range proximityStages {
		if dist <= stage.maxDist {
			return stage.bonus
		}
	}
	return 0
}

func centerControl(pos *board.Position, w Weights) Score {
	var s Score
	for _, sq := range board.AllSquares() {
		pc, ok := pos.Piece(sq)
		if !ok {
			continue
		}
		var v Score
		switch sq.File() {
		case board.FileE, board.FileF, board.FileG, board.FileH:
			v = w.CenterCore
		case board.FileD, board.FileI:
			v = w.CenterMid
		}
		if pc.Color == board.Black {
			v = -v
		}
		s += v
	}
	return s
}

func forwardProgress(pos *board.Position, w Weights) Score {
	var s Score
	for _, sq := range board.AllSquares() {
		pc, ok := pos.Piece(sq)
		if !ok {
			continue
		}
		rank := Score(sq.Rank().V())
		var v Score
		if pc.Color == board.White {
			v = (rank - 5) * w.ForwardProgress // rank index 5 == Rank6, the white home rank
		} else {
			v = (10 - rank) * w.ForwardProgress // rank index 10 == Rank11, the black home rank
			v = -v
		}
		s += v
	}
	return s
}

func mobility(pos *board.Position, w Weights) Score {
	white := Score(len(board.GenerateTurns(pos, board.White)))
	black := Score(len(board.GenerateTurns(pos, board.Black)))
	return (white - black) * w.MobilityBonus / 2 // "0.5 x bonus_per_move(3)"
}
