package board

// Apply returns the position reached after side plays turn from pos, recomputed from
// scratch: the moving piece is relocated from Origin to Terminal, every captured square
// is cleared, and the opponent-castle-move counter is updated (§3). It does not reuse the
// position the generator builds internally while exploring a turn; a Turn carries no
// resulting position, so Apply is how the engine and search obtain the next position.
func Apply(pos *Position, side Color, t Turn) *Position {
	moving, ok := pos.Piece(t.Origin)
	if !ok {
		return pos.Clone() // programmer error (§7): origin must hold a piece.
	}

	np := pos.Clone()
	for _, sq := range t.Captured {
		np = np.clear(sq)
	}
	np = np.clear(t.Origin)
	np = np.set(t.Terminal(), moving)

	if enteredAndLeftOpponentCastle(side, t) {
		n := np.CastleMoves(side) + 1
		np = np.WithCastleMoves(side, n)
	}
	return np
}

// enteredAndLeftOpponentCastle returns true iff the turn's origin and terminal square are
// exactly the two squares of the opponent's castle (in either order): a piece already
// resident in the enemy castle shuffled between its two squares (§3).
func enteredAndLeftOpponentCastle(side Color, t Turn) bool {
	cs := OpponentCastleSquares(side)
	o, term := t.Origin, t.Terminal()
	return (o == cs[0] && term == cs[1]) || (o == cs[1] && term == cs[0])
}
