// Package engine provides the playing-engine façade: configuration, difficulty presets
// and formatted analysis output over the board/eval/search packages (§4.6/§6).
package engine

import (
	"context"
	"fmt"
	"github.com/seekerror/build"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/eval"
	"github.com/seekerror/camelot/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"sync"
	"time"
)

var version = build.NewVersion(0, 1, 0)

// Options are the recognized engine configuration values (§6).
type Options struct {
	MaxDepth    int // default 10
	TimeLimitMS int // default 5000
	TTSizeMB    int // default 128
}

func (o Options) String() string {
	return fmt.Sprintf("{max_depth=%v, time_limit_ms=%v, tt_size_mb=%v}", o.MaxDepth, o.TimeLimitMS, o.TTSizeMB)
}

// DefaultOptions match §6's defaults.
var DefaultOptions = Options{MaxDepth: 10, TimeLimitMS: 5000, TTSizeMB: 128}

// Difficulty presets (§6).
var (
	Easy   = Options{MaxDepth: 3, TimeLimitMS: 500, TTSizeMB: 32}
	Medium = Options{MaxDepth: 5, TimeLimitMS: 2000, TTSizeMB: 64}
	Hard   = Options{MaxDepth: 8, TimeLimitMS: 5000, TTSizeMB: 128}
	Expert = Options{MaxDepth: 12, TimeLimitMS: 10000, TTSizeMB: 256}
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOptions sets the engine's default runtime options (e.g. one of the presets above).
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithSeed fixes the random seed driving evaluator jitter and root randomization (§4.4,
// §4.6), and the Zobrist table (§4.5). Needed for the reproducible boundary scenarios of
// §8 ("fix the random seed to a constant before each").
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// Engine encapsulates position state, search and evaluation (§4.6).
type Engine struct {
	opts Options
	seed int64

	mu   sync.Mutex
	pos  *board.Position
	turn board.Color
	s    *search.Search
}

// New constructs an Engine, initialized to the standard starting position.
func New(ctx context.Context, opts ...Option) *Engine {
	e := &Engine{opts: DefaultOptions}
	for _, o := range opts {
		o(e)
	}
	e.s = search.NewSearch(ctx, e.opts.TTSizeMB, e.seed)
	e.NewGame(ctx)

	logw.Infof(ctx, "Initialized %v, options=%v", Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func Name() string {
	return fmt.Sprintf("Camelot Engine %v", version)
}

// Options returns the engine's current runtime options.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SetOptions updates the engine's runtime options for subsequent Analyze calls.
func (e *Engine) SetOptions(opts Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts = opts
}

// NewGame resets the engine to the initial position and clears the transposition table
// (§4.5: "The TT must be clearable on a new game").
func (e *Engine) NewGame(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = board.InitialPosition()
	e.turn = board.White
	e.s.TT.Clear()

	logw.Infof(ctx, "New game: %v", e.pos)
}

// ClearTranspositionTable empties the TT without otherwise resetting engine state.
func (e *Engine) ClearTranspositionTable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.TT.Clear()
}

// Reset loads an arbitrary position snapshot and side to move. The core trusts the
// caller: it does not validate pos against every game invariant (§7).
func (e *Engine) Reset(ctx context.Context, pos *board.Position, turn board.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = pos
	e.turn = turn
	e.s.TT.Clear()

	logw.Infof(ctx, "Reset %v to move: %v", turn, pos)
}

// Position returns the current position snapshot.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos
}

// Turn returns the side to move.
func (e *Engine) Turn() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.turn
}

// LegalTurns returns every legal turn in the current position (§4.3).
func (e *Engine) LegalTurns() []board.Turn {
	e.mu.Lock()
	defer e.mu.Unlock()
	return board.GenerateTurns(e.pos, e.turn)
}

// Evaluate returns the static evaluation of the current position, from White's
// perspective (§4.4).
func (e *Engine) Evaluate() eval.Score {
	e.mu.Lock()
	defer e.mu.Unlock()
	return eval.Evaluate(e.pos, e.opts.evalWeights(), e.s.Rnd)
}

// evalWeights returns the default evaluation weights; exposed as a method so future
// per-Options weight overrides have a single seam.
func (o Options) evalWeights() eval.Weights {
	return eval.DefaultWeights
}

// Play applies the turn matching notation to the current position and advances the side
// to move. It fails if no legal turn matches (§7).
func (e *Engine) Play(ctx context.Context, notation string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, t := range board.GenerateTurns(e.pos, e.turn) {
		if t.Notation() != notation {
			continue
		}
		e.pos = board.Apply(e.pos, e.turn, t)
		e.turn = e.turn.Opponent()
		logw.Infof(ctx, "Play %v: %v", t, e.pos)
		return nil
	}
	return fmt.Errorf("invalid move: %v", notation)
}

// CheckWinCondition reports whether the current position is won for the given color
// (§4.4, §6).
func (e *Engine) CheckWinCondition(c board.Color) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return board.CheckWinCondition(e.pos, c)
}

// Analyze runs the search from the current position and side to move, bounded by the
// engine's configured depth and time limit, and returns a formatted Analysis (§6).
//
// A single call monopolizes the caller's goroutine until it returns (§5); there is no
// background/async variant, by design (§1 non-goals: no pondering).
func (e *Engine) Analyze(ctx context.Context) Analysis {
	e.mu.Lock()
	pos, turn, opts := e.pos, e.turn, e.opts
	s := e.s
	e.mu.Unlock()

	deadline := time.Time{}
	if opts.TimeLimitMS > 0 {
		deadline = time.Now().Add(time.Duration(opts.TimeLimitMS) * time.Millisecond)
	}

	logw.Infof(ctx, "Analyze %v to move, opts=%v", turn, opts)

	sopts := search.Options{
		Deadline: deadline,
		Weights:  opts.evalWeights(),
		Rnd:      s.Rnd,
	}
	if opts.MaxDepth > 0 {
		sopts.DepthLimit = lang.Some(uint(opts.MaxDepth))
	}
	pv := s.Run(ctx, pos, turn, sopts)

	return newAnalysis(pv)
}
