package board

// MaxTurnSteps bounds the depth-first recursion during generation. Reaching it emits
// the turn as-is (§4.3, "a hard recursion-depth cap (>= 15 steps) guards against
// pathological loops").
const MaxTurnSteps = 15

// dfs carries the mutable exploration state for a single turn-in-progress (TurnState in
// §3). pos is already updated for every step taken so far: canter middles are left in
// place, jump middles are cleared.
type dfs struct {
	side     Color
	isKnight bool

	origin   Square
	path     []Square
	captured []Square
	kinds    []StepKind
	pos      *Position

	// visited excludes origin: the origin is exempt from the no-revisit rule (§4.3.6)
	// and is tracked separately via the terminal-square check in emit.
	visited map[Square]bool

	out map[string]Turn
}

// GenerateTurns enumerates every distinct complete Turn available to side from pos
// (§4.3). Turns are deduplicated by notation.
func GenerateTurns(pos *Position, side Color) []Turn {
	out := map[string]Turn{}
	anyJump := AnyJumpAvailable(pos, side)

	for _, pl := range pos.Pieces(side) {
		from := pl.Square
		isKnight := pl.Piece.Kind == Knight

		if anyJump {
			// Rule 1: mandatory jump. Only jump-starting turns are legal for anybody.
			for _, d := range Directions {
				to, ok := Offset(from, d, 2)
				if !ok || !IsJump(pos, side, from, to) {
					continue
				}
				mid, _ := Middle(from, to)
				run := &dfs{
					side: side, isKnight: isKnight, origin: from,
					path: []Square{from, to}, captured: []Square{mid}, kinds: []StepKind{JumpStep},
					pos:     pos.clear(from).clear(mid).set(to, pl.Piece),
					visited: map[Square]bool{to: true},
					out:     out,
				}
				run.continueJump()
			}
			continue
		}

		// Rule 2: no jump mandatory -- plain moves and canters may start a turn.
		for _, d := range Directions {
			if to, ok := Offset(from, d, 1); ok && IsPlainMove(pos, from, to) {
				run := &dfs{
					side: side, isKnight: isKnight, origin: from,
					path: []Square{from, to}, kinds: []StepKind{PlainStep},
					pos: pos.clear(from).set(to, pl.Piece),
					out: out,
				}
				run.emit() // Rule 2: a plain move is always the single, complete step.
			}
		}
		for _, d := range Directions {
			to, ok := Offset(from, d, 2)
			if !ok || !IsCanter(pos, side, from, to) || IsCastleSquare(side, to) {
				continue
			}
			run := &dfs{
				side: side, isKnight: isKnight, origin: from,
				path: []Square{from, to}, kinds: []StepKind{CanterStep},
				pos:     pos.clear(from).set(to, pl.Piece),
				visited: map[Square]bool{to: true},
				out:     out,
			}
			run.continueCanter()
		}
	}

	ret := make([]Turn, 0, len(out))
	for _, t := range out {
		ret = append(ret, t)
	}
	return ret
}

func (d *dfs) terminal() Square {
	return d.path[len(d.path)-1]
}

// emit records the turn-in-progress as complete, unless it would terminate on the
// origin (§4.3.6, forbidden) -- such a branch is a dead end and silently drops (§7).
func (d *dfs) emit() {
	if d.terminal() == d.origin {
		return
	}
	t := Turn{
		Origin:   d.origin,
		Path:     append([]Square(nil), d.path...),
		Captured: append([]Square(nil), d.captured...),
		Kinds:    append([]StepKind(nil), d.kinds...),
	}
	d.out[t.Notation()] = t
}

// canVisit returns true iff stepping onto sq is legal under the no-revisit rule: sq must
// not already be on the path, except the origin which is always exempt (§4.3.6).
func (d *dfs) canVisit(sq Square) bool {
	if sq == d.origin {
		return true
	}
	return !d.visited[sq]
}

// fork returns a copy of d with one more visited square recorded, extending path/captured/kinds.
func (d *dfs) fork(to Square, capture *Square, kind StepKind, pos *Position) *dfs {
	nd := &dfs{
		side: d.side, isKnight: d.isKnight, origin: d.origin,
		path:  append(append([]Square(nil), d.path...), to),
		kinds: append(append([]StepKind(nil), d.kinds...), kind),
		pos:   pos, out: d.out,
	}
	nd.captured = append([]Square(nil), d.captured...)
	if capture != nil {
		nd.captured = append(nd.captured, *capture)
	}
	nd.visited = map[Square]bool{}
	for sq := range d.visited {
		nd.visited[sq] = true
	}
	if to != d.origin {
		nd.visited[to] = true
	}
	return nd
}

// continueCanter implements the canter-chain + knight's-charge continuation policy
// (§4.3): emit a stop-here turn, then recurse into every legal canter continuation
// (any piece) and every legal jump continuation (knights only -- the charge).
func (d *dfs) continueCanter() {
	if len(d.kinds) >= MaxTurnSteps {
		d.emit()
		return
	}

	d.emit() // "stop here" variant

	last := d.terminal()
	for _, dir := range Directions {
		if to, ok := Offset(last, dir, 2); ok && d.canVisit(to) && IsCanter(d.pos, d.side, last, to) && !IsCastleSquare(d.side, to) {
			np := d.pos.clear(last).set(to, d.movingPiece())
			d.fork(to, nil, CanterStep, np).continueCanter()
		}
	}
	if d.isKnight {
		for _, dir := range Directions {
			to, ok := Offset(last, dir, 2)
			if !ok || !d.canVisit(to) || !IsJump(d.pos, d.side, last, to) {
				continue
			}
			mid, _ := Middle(last, to)
			np := d.pos.clear(last).clear(mid).set(to, d.movingPiece())
			d.fork(to, &mid, JumpStep, np).continueJump()
		}
	}
}

// continueJump implements the mandatory jump-chain continuation policy (§4.3): if the
// turn just landed on a square of the opponent's castle, it ends immediately regardless
// of further jumps (rule 5 exception). Otherwise, if any further jump is legal it must
// be taken (do not emit yet); if none is legal, the turn is complete.
func (d *dfs) continueJump() {
	last := d.terminal()
	if IsCastleSquare(d.side.Opponent(), last) {
		d.emit()
		return
	}
	if len(d.kinds) >= MaxTurnSteps {
		d.emit()
		return
	}

	hasMore := false
	for _, dir := range Directions {
		to, ok := Offset(last, dir, 2)
		if !ok || !d.canVisit(to) || !IsJump(d.pos, d.side, last, to) {
			continue
		}
		hasMore = true
		mid, _ := Middle(last, to)
		np := d.pos.clear(last).clear(mid).set(to, d.movingPiece())
		d.fork(to, &mid, JumpStep, np).continueJump()
	}
	if !hasMore {
		d.emit()
	}
}

func (d *dfs) movingPiece() Piece {
	kind := Man
	if d.isKnight {
		kind = Knight
	}
	return Piece{Kind: kind, Color: d.side}
}
