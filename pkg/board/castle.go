package board

// Castle squares, fixed by the board layout in §3: White's castle is F1/G1, Black's is
// F16/G16.
var (
	WhiteCastle = [2]Square{NewSquare(FileF, 0), NewSquare(FileG, 0)}
	BlackCastle = [2]Square{NewSquare(FileF, NumRanks-1), NewSquare(FileG, NumRanks-1)}
)

// CastleSquares returns the two castle squares belonging to the given color.
func CastleSquares(c Color) [2]Square {
	if c == White {
		return WhiteCastle
	}
	return BlackCastle
}

// IsCastleSquare returns true iff sq is one of the two castle squares of color c.
func IsCastleSquare(c Color, sq Square) bool {
	cs := CastleSquares(c)
	return sq == cs[0] || sq == cs[1]
}

// OpponentCastleSquares returns the castle squares color c is trying to enter.
func OpponentCastleSquares(c Color) [2]Square {
	return CastleSquares(c.Opponent())
}

// MaxCastleMoves is the cap on castle_moves[color] enforced by the rules layer (§3); the
// engine itself only hashes the counter, it does not enforce the cap (§3, §4.5).
const MaxCastleMoves = 2

// NumCastleCounterValues is the number of distinct castle-move counter values (0..2) that
// participate in the Zobrist hash (§4.5).
const NumCastleCounterValues = MaxCastleMoves + 1
