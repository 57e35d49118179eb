package board

// Win-condition symbols returned by CheckWinCondition (§6).
const (
	WinCastleOccupation = "castle_occupation"
	WinCaptureAll       = "capture_all"
	WinStalemate        = "stalemate"
)

// CheckWinCondition returns the win-condition symbol satisfied by side, and false if none
// is. side is the candidate winner; the opponent is assumed to be (or about to be) on
// move for the stalemate check (§4.4 terminal recognition):
//
//   - castle_occupation: side has two pieces on the opponent's two castle squares.
//   - capture_all: the opponent has no pieces left and side has at least two remaining.
//   - stalemate: side has at least two pieces remaining and the opponent has no legal turn.
func CheckWinCondition(pos *Position, side Color) (string, bool) {
	cs := OpponentCastleSquares(side)
	occupied := 0
	for _, sq := range cs {
		if pc, ok := pos.Piece(sq); ok && pc.Color == side {
			occupied++
		}
	}
	if occupied >= 2 {
		return WinCastleOccupation, true
	}

	opp := side.Opponent()
	if pos.Count(side) < 2 {
		return "", false
	}
	if pos.Count(opp) == 0 {
		return WinCaptureAll, true
	}
	if len(GenerateTurns(pos, opp)) == 0 {
		return WinStalemate, true
	}
	return "", false
}
