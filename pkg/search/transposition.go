// Package search implements iterative-deepening negamax with alpha-beta pruning,
// quiescence search and a depth-preferring transposition table (§4.5, §4.6).
package search

import (
	"context"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/eval"
	"github.com/seekerror/logw"
)

// Bound records the precision of a stored score relative to the search window it was
// found in (§4.5).
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// Entry is a transposition table record (§4.5).
type Entry struct {
	Hash      board.ZobristHash
	Depth     int
	Score     eval.Score
	Flag      Bound
	BestMove  string // notation, advisory only (§7)
	hasMove   bool
	insertion uint64 // FIFO insertion order, for eviction
}

// TranspositionTable maps a Zobrist hash to a stored search result. Replacement is
// depth-preferring: a write only overwrites an existing entry if the new depth is at
// least as deep. Size is bounded by entry count, derived from a megabyte budget; once
// full, the oldest inserted entry is evicted (FIFO) to make room (§4.5).
type TranspositionTable struct {
	entries  map[board.ZobristHash]Entry
	order    []board.ZobristHash // insertion order, for FIFO eviction
	capacity int
	clock    uint64
}

// entrySizeBytes approximates an entry's footprint for the size->capacity conversion.
const entrySizeBytes = 48

// NewTranspositionTable allocates a table bounded by sizeMB megabytes.
func NewTranspositionTable(ctx context.Context, sizeMB int) *TranspositionTable {
	capacity := (sizeMB << 20) / entrySizeBytes
	if capacity < 1 {
		capacity = 1
	}
	logw.Infof(ctx, "Allocating %vMB TT with %v entries", sizeMB, capacity)
	return &TranspositionTable{
		entries:  make(map[board.ZobristHash]Entry, capacity),
		capacity: capacity,
	}
}

// Read returns the entry for hash, if present. Per §7, a caller must still treat the flag
// and depth as advisory: the table does not defend against Zobrist collisions.
func (t *TranspositionTable) Read(hash board.ZobristHash) (Entry, bool) {
	e, ok := t.entries[hash]
	return e, ok
}

// Write stores an entry, applying the depth-preferring replacement policy and FIFO
// eviction when the table is full (§4.5).
func (t *TranspositionTable) Write(hash board.ZobristHash, depth int, score eval.Score, flag Bound, bestMove string) {
	if existing, ok := t.entries[hash]; ok {
		if existing.Depth > depth {
			return // keep the deeper entry
		}
	} else if len(t.entries) >= t.capacity {
		t.evictOldest()
	}

	t.clock++
	e := Entry{
		Hash: hash, Depth: depth, Score: score, Flag: flag,
		BestMove: bestMove, hasMove: bestMove != "", insertion: t.clock,
	}
	if _, existed := t.entries[hash]; !existed {
		t.order = append(t.order, hash)
	}
	t.entries[hash] = e
}

func (t *TranspositionTable) evictOldest() {
	for len(t.order) > 0 {
		oldest := t.order[0]
		t.order = t.order[1:]
		if _, ok := t.entries[oldest]; ok {
			delete(t.entries, oldest)
			return
		}
	}
}

// Clear empties the table. Required "on a new game" (§4.5).
func (t *TranspositionTable) Clear() {
	t.entries = make(map[board.ZobristHash]Entry, t.capacity)
	t.order = nil
	t.clock = 0
}

// Len returns the number of entries currently stored.
func (t *TranspositionTable) Len() int {
	return len(t.entries)
}

// Used returns the table utilization as a fraction in [0;1].
func (t *TranspositionTable) Used() float64 {
	if t.capacity == 0 {
		return 0
	}
	return float64(len(t.entries)) / float64(t.capacity)
}
