package board

// StepKind distinguishes the three atomic step types a turn may be built from (§3, §4.2).
type StepKind uint8

const (
	PlainStep StepKind = iota
	CanterStep
	JumpStep
)

func (k StepKind) String() string {
	switch k {
	case PlainStep:
		return "plain"
	case CanterStep:
		return "canter"
	case JumpStep:
		return "jump"
	default:
		return "?"
	}
}

// IsPlainMove returns true iff moving side's piece at from may make a plain move to to:
// Chebyshev distance 1, destination empty (§4.2).
func IsPlainMove(pos *Position, from, to Square) bool {
	return to.IsValid() && IsOneStep(from, to) && pos.IsEmpty(to)
}

// IsCanter returns true iff the piece at from may canter to to: Chebyshev distance 2
// along a single direction, the middle square holds a friendly piece, destination empty
// (§4.2). The middle piece is not removed.
func IsCanter(pos *Position, side Color, from, to Square) bool {
	if !to.IsValid() || !IsTwoStep(from, to) {
		return false
	}
	mid, ok := Middle(from, to)
	if !ok || !mid.IsValid() {
		return false
	}
	midPiece, present := pos.Piece(mid)
	if !present || midPiece.Color != side {
		return false
	}
	return pos.IsEmpty(to)
}

// IsJump returns true iff the piece at from may jump to to: same geometry as a canter,
// but the middle square holds an enemy piece (§4.2). The caller is responsible for
// removing the captured piece.
func IsJump(pos *Position, side Color, from, to Square) bool {
	if !to.IsValid() || !IsTwoStep(from, to) {
		return false
	}
	mid, ok := Middle(from, to)
	if !ok || !mid.IsValid() {
		return false
	}
	midPiece, present := pos.Piece(mid)
	if !present || midPiece.Color == side {
		return false
	}
	return pos.IsEmpty(to)
}

// AnyJumpAvailable scans every friendly piece and every direction and returns true iff
// at least one single-step jump is legal for side (§4.2). Mandatory-capture (§4.3.1)
// hinges on this.
func AnyJumpAvailable(pos *Position, side Color) bool {
	for _, pl := range pos.Pieces(side) {
		for _, d := range Directions {
			to, ok := Offset(pl.Square, d, 2)
			if !ok {
				continue
			}
			if IsJump(pos, side, pl.Square, to) {
				return true
			}
		}
	}
	return false
}
