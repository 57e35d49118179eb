package board

import "fmt"

// Builder lets a caller construct a turn one step at a time, e.g. to validate a UI-driven
// sequence of square clicks, with human-readable rejection reasons per §7. It applies the
// same legality rules as GenerateTurns but does not explore alternatives: each call either
// commits the step or leaves the builder untouched.
//
// The turn generator (GenerateTurns) does not use Builder -- it is a DFS over the same
// primitives for performance. Builder exists for the interactive/incremental surface §7
// describes ("Invalid move", "Must continue jumping", ...).
type Builder struct {
	side Color
	d    *dfs
	done bool
}

// NewBuilder starts constructing a turn for side's piece at origin.
func NewBuilder(pos *Position, side Color, origin Square) (*Builder, error) {
	pc, ok := pos.Piece(origin)
	if !ok || pc.Color != side {
		return nil, fmt.Errorf("invalid move")
	}
	return &Builder{
		side: side,
		d: &dfs{
			side: side, isKnight: pc.Kind == Knight, origin: origin,
			path: []Square{origin}, pos: pos.Clone(), out: map[string]Turn{},
		},
	}, nil
}

// Step attempts to extend the turn-in-progress to square 'to'. It returns a
// human-readable error and leaves the builder unchanged on rejection (§7).
func (b *Builder) Step(to Square) error {
	if b.done {
		return fmt.Errorf("invalid move")
	}

	last := b.d.terminal()
	first := len(b.d.path) == 1
	anyJump := first && AnyJumpAvailable(b.d.pos, b.side) // mandatory jump binds the first step only

	switch {
	case first && !anyJump && IsPlainMove(b.d.pos, last, to):
		np := b.d.pos.clear(last).set(to, b.d.movingPiece())
		b.d.path = append(b.d.path, to)
		b.d.kinds = append(b.d.kinds, PlainStep)
		b.d.pos = np
		b.done = true // Rule 2: a plain move is always the single, complete step.
		return nil

	case !b.hasCaptured() && !anyJump && b.d.canVisit(to) && IsCanter(b.d.pos, b.side, last, to) && !IsCastleSquare(b.side, to):
		return b.commitCanter(to)

	case IsJump(b.d.pos, b.side, last, to) && b.d.canVisit(to):
		if !b.hasCaptured() && !b.d.isKnight && !first {
			return fmt.Errorf("only knights can jump after cantering")
		}
		return b.commitJump(to)

	case b.hasCaptured():
		return fmt.Errorf("must continue jumping")

	case !first:
		return fmt.Errorf("can only make a plain move on the first step")

	default:
		return fmt.Errorf("invalid move")
	}
}

func (b *Builder) hasCaptured() bool {
	return len(b.d.captured) > 0
}

func (b *Builder) commitCanter(to Square) error {
	last := b.d.terminal()
	np := b.d.pos.clear(last).set(to, b.d.movingPiece())
	if b.d.visited == nil {
		b.d.visited = map[Square]bool{}
	}
	b.d.path = append(b.d.path, to)
	b.d.kinds = append(b.d.kinds, CanterStep)
	b.d.pos = np
	if to != b.d.origin {
		b.d.visited[to] = true
	}
	return nil
}

func (b *Builder) commitJump(to Square) error {
	last := b.d.terminal()
	mid, _ := Middle(last, to)
	np := b.d.pos.clear(last).clear(mid).set(to, b.d.movingPiece())
	if b.d.visited == nil {
		b.d.visited = map[Square]bool{}
	}
	b.d.path = append(b.d.path, to)
	b.d.kinds = append(b.d.kinds, JumpStep)
	b.d.captured = append(b.d.captured, mid)
	b.d.pos = np
	if to != b.d.origin {
		b.d.visited[to] = true
	}
	if IsCastleSquare(b.side.Opponent(), to) {
		b.done = true // Rule 5 exception: landing in the opponent's castle always ends the turn.
	}
	return nil
}

// CanStop returns true iff the turn-in-progress may legally end here: a plain move is
// already final, a canter may always stop, and a jump chain may stop only if no further
// jump is legal from the current square or it just landed in the opponent's castle.
func (b *Builder) CanStop() bool {
	if b.done {
		return true
	}
	if len(b.d.path) == 1 {
		return false
	}
	if b.d.kinds[len(b.d.kinds)-1] != JumpStep {
		return true
	}
	if IsCastleSquare(b.side.Opponent(), b.d.terminal()) {
		return true
	}
	return !hasLegalJump(b.d.pos, b.side, b.d.terminal(), b.d.visited, b.d.origin)
}

func hasLegalJump(pos *Position, side Color, from Square, visited map[Square]bool, origin Square) bool {
	for _, dir := range Directions {
		to, ok := Offset(from, dir, 2)
		if !ok {
			continue
		}
		if to != origin && visited[to] {
			continue
		}
		if IsJump(pos, side, from, to) {
			return true
		}
	}
	return false
}

// Finish completes the turn-in-progress. It fails with "must continue jumping" if a
// mandatory jump continuation remains.
func (b *Builder) Finish() (Turn, error) {
	if !b.CanStop() {
		return Turn{}, fmt.Errorf("must continue jumping")
	}
	if b.d.terminal() == b.d.origin {
		return Turn{}, fmt.Errorf("invalid move")
	}
	return Turn{
		Origin:   b.d.origin,
		Path:     append([]Square(nil), b.d.path...),
		Captured: append([]Square(nil), b.d.captured...),
		Kinds:    append([]StepKind(nil), b.d.kinds...),
	}, nil
}
