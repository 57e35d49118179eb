package search

import (
	"context"
	"fmt"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"time"
)

// Options configure a single search invocation (§6 engine configuration).
type Options struct {
	DepthLimit lang.Optional[uint] // unset == no limit other than the deadline
	Deadline   time.Time           // zero Time == no wall-clock bound
	Weights    eval.Weights        // evaluator weights
	Rnd        *eval.Random        // shared source for jitter + root randomization (§4.4, §4.6)
}

// PV is the result of a completed (or aborted-and-recovered) search at one depth (§6).
type PV struct {
	Depth     int
	HasMove   bool
	Move      board.Turn
	Score     eval.Score
	Nodes     uint64
	Time      time.Duration
	Principal []string // notations; at minimum the chosen move (GLOSSARY: principal variation)
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v move=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Move)
}

// Search holds the mutable state of one engine instance's search machinery: the
// transposition table (persists across calls until explicitly cleared, §4.5/§5) and the
// shared random source (§5 "owned by the engine and reused for evaluator jitter and root
// randomization").
type Search struct {
	TT      *TranspositionTable
	Rnd     *eval.Random
	Zobrist *board.ZobristTable
}

// NewSearch builds a Search with a fresh transposition table of the given size.
func NewSearch(ctx context.Context, ttSizeMB int, seed int64) *Search {
	return &Search{
		TT:      NewTranspositionTable(ctx, ttSizeMB),
		Rnd:     eval.NewRandom(seed),
		Zobrist: board.NewZobristTable(seed),
	}
}

// run carries the per-invocation state threaded through the recursive search.
type run struct {
	weights  eval.Weights
	rnd      *eval.Random
	tt       *TranspositionTable
	zobrist  *board.ZobristTable
	deadline time.Time
	nodes    uint64
	aborted  bool
}

func (r *run) timeUp(ctx context.Context) bool {
	if r.aborted {
		return true
	}
	if contextx.IsCancelled(ctx) {
		r.aborted = true
		return true
	}
	if !r.deadline.IsZero() && !time.Now().Before(r.deadline) {
		r.aborted = true
		return true
	}
	return false
}

func (r *run) staticEval(pos *board.Position, side board.Color) eval.Score {
	v := eval.Evaluate(pos, r.weights, r.rnd)
	if side == board.Black {
		v = v.Negate()
	}
	return v
}
