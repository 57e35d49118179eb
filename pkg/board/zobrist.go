package board

import "math/rand"

// ZobristHash is a 64-bit position fingerprint (§4.5). See also:
// https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// ZobristTable is a pseudo-randomized table for computing position hashes. Generated once
// per engine instance and immutable thereafter (§5).
type ZobristTable struct {
	pieces  [NumColors][NumKinds][NumSquares]ZobristHash
	turn    ZobristHash // xor'd in iff Black to move
	castles [NumColors][NumCastleCounterValues]ZobristHash
}

// NewZobristTable builds a table from the given seed. The same seed always yields the
// same table, which is what makes hash(P,s) reproducible across independent computations
// (§8).
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))
	t := &ZobristTable{}

	for c := ZeroColor; c < NumColors; c++ {
		for k := ZeroKind; k < NumKinds; k++ {
			for sq := ZeroSquare; sq < NumSquares; sq++ {
				t.pieces[c][k][sq] = ZobristHash(r.Uint64())
			}
		}
		for i := 0; i < NumCastleCounterValues; i++ {
			t.castles[c][i] = ZobristHash(r.Uint64())
		}
	}
	t.turn = ZobristHash(r.Uint64())
	return t
}

// Hash computes the Zobrist hash of pos with side to move. It is the XOR of the keys of
// all present pieces, XOR'd with the turn key iff Black to move, XOR'd with the castle-
// counter keys for any non-zero counter (§4.5).
func (t *ZobristTable) Hash(pos *Position, turn Color) ZobristHash {
	var h ZobristHash
	for _, sq := range AllSquares() {
		if pc, ok := pos.Piece(sq); ok {
			h ^= t.pieces[pc.Color][pc.Kind][sq]
		}
	}
	for c := ZeroColor; c < NumColors; c++ {
		if n := pos.CastleMoves(c); n != 0 {
			// The rules layer caps castle_moves at MaxCastleMoves, but Apply itself does
			// not (§3, §4.5) -- clamp the hash-table index so an uncapped counter from an
			// externally constructed Position can never index out of bounds.
			idx := n
			if idx >= NumCastleCounterValues {
				idx = NumCastleCounterValues - 1
			}
			h ^= t.castles[c][idx]
		}
	}
	if turn == Black {
		h ^= t.turn
	}
	return h
}
