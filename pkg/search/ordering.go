package search

import (
	"github.com/seekerror/camelot/pkg/board"
	"sort"
)

// OrderTurns sorts turns for side by the move-ordering priority of §4.3: larger capture
// count first (dominant), then turns ending on the opponent's castle square, then
// greater forward progress in side's advancing direction. preferred, if non-empty, is
// moved to the front (the transposition table's advisory best-move notation, §4.5/§7).
func OrderTurns(turns []board.Turn, side board.Color, preferred string) []board.Turn {
	ordered := append([]board.Turn(nil), turns...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if preferred != "" {
			ap, bp := a.Notation() == preferred, b.Notation() == preferred
			if ap != bp {
				return ap
			}
		}
		if len(a.Captured) != len(b.Captured) {
			return len(a.Captured) > len(b.Captured)
		}
		ac, bc := board.IsCastleSquare(side.Opponent(), a.Terminal()), board.IsCastleSquare(side.Opponent(), b.Terminal())
		if ac != bc {
			return ac
		}
		return forwardProgress(a, side) > forwardProgress(b, side)
	})
	return ordered
}

func forwardProgress(t board.Turn, side board.Color) int {
	d := int(t.Terminal().Rank().V()) - int(t.Origin.Rank().V())
	if side == board.Black {
		d = -d
	}
	return d
}

// CaptureTurnsOnly filters turns down to those with a non-empty capture set, for
// quiescence search (§4.6).
func CaptureTurnsOnly(turns []board.Turn) []board.Turn {
	var ret []board.Turn
	for _, t := range turns {
		if t.IsCapture() {
			ret = append(ret, t)
		}
	}
	return ret
}
