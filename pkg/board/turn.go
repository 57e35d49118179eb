package board

import "strings"

// Turn is the result of the generator (CompleteTurn in §3): the origin, the full ordered
// path of visited squares, and the set of squares cleared by capture during the turn. The
// terminal square is Path[len(Path)-1].
type Turn struct {
	Origin    Square
	Path      []Square // Path[0] == Origin
	Captured  []Square // squares whose piece was removed, in capture order
	Kinds     []StepKind
}

// Terminal returns the square the turn ends on.
func (t Turn) Terminal() Square {
	return t.Path[len(t.Path)-1]
}

// IsCapture returns true iff the turn captured at least one piece.
func (t Turn) IsCapture() bool {
	return len(t.Captured) > 0
}

// Notation formats the turn per §6: consecutive squares are joined by 'x' for the legs
// that captured (jumps) and '-' for the legs that didn't (plain moves, canters) -- e.g.
// "F6-F8-H8xH10xJ12" for a knight's charge that canters twice then jumps twice.
func (t Turn) Notation() string {
	var sb strings.Builder
	sb.WriteString(t.Path[0].String())
	for i := 1; i < len(t.Path); i++ {
		sep := "-"
		if t.Kinds[i-1] == JumpStep {
			sep = "x"
		}
		sb.WriteString(sep)
		sb.WriteString(t.Path[i].String())
	}
	return sb.String()
}

func (t Turn) String() string {
	return t.Notation()
}
