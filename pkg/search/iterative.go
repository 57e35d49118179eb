package search

import (
	"context"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/eval"
	"github.com/seekerror/logw"
	"sort"
	"time"
)

// Run drives iterative-deepening negamax from depth 1 up to opts.DepthLimit (unset == no
// limit other than the deadline), per §4.6. The core is synchronous: a single Run call
// monopolizes the caller's goroutine until it returns (§5) -- the only cooperative
// interruption is the deadline/context check polled at every node.
//
// On abort, the in-progress depth's results are discarded and the most recently
// completed depth's PV is returned (§4.6, §7). If not even depth 1 completes (e.g. a
// deadline in the past), the zero PV is returned with HasMove false, which the engine
// façade interprets as "no legal move / out of time".
func (s *Search) Run(ctx context.Context, pos *board.Position, side board.Color, opts Options) PV {
	r := &run{
		weights:  opts.Weights,
		rnd:      opts.Rnd,
		tt:       s.TT,
		zobrist:  s.Zobrist,
		deadline: opts.Deadline,
	}
	if r.rnd == nil {
		r.rnd = s.Rnd
	}

	maxDepth := 1000 // bounded in practice by the deadline, not this ceiling
	if d, ok := opts.DepthLimit.V(); ok && d > 0 {
		maxDepth = int(d)
	}

	var last PV
	for depth := 1; depth <= maxDepth; depth++ {
		if r.timeUp(ctx) {
			break
		}
		pv, ok := s.searchRoot(ctx, r, pos, side, depth)
		if !ok {
			break // aborted mid-depth: keep the previous depth's result
		}
		last = pv
		logw.Debugf(ctx, "Searched %v: %v", pos, pv)

		if pv.Score.IsMate() {
			break // §4.6 early termination: forced mate found, deeper iterations moot
		}
	}
	return last
}

type scoredTurn struct {
	turn  board.Turn
	score eval.Score
}

// searchRoot behaves like a normal negamax node but retains the best Turn object (not
// just its score/notation), and applies the root's stochastic move pick (§4.6).
func (s *Search) searchRoot(ctx context.Context, r *run, pos *board.Position, side board.Color, depth int) (PV, bool) {
	start := time.Now()

	turns := board.GenerateTurns(pos, side)
	if len(turns) == 0 {
		return PV{Depth: depth, Score: -eval.Checkmate, Nodes: r.nodes, Time: time.Since(start)}, true
	}

	hash := r.hash(pos, side)
	preferred := ""
	if e, ok := r.tt.Read(hash); ok {
		preferred = e.BestMove
	}
	turns = OrderTurns(turns, side, preferred)

	alpha, beta := eval.MinScore, eval.MaxScore
	results := make([]scoredTurn, 0, len(turns))
	for _, t := range turns {
		next := board.Apply(pos, side, t)
		score := r.negamax(ctx, next, side.Opponent(), depth-1, beta.Negate(), alpha.Negate())
		if r.aborted {
			return PV{}, false
		}
		score = score.Negate()

		results = append(results, scoredTurn{t, score})
		if score > alpha {
			alpha = score
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	best := results[0]
	chosen, chosenScore := best.turn, best.score

	if len(results) > 1 && r.rnd.Float64() < 0.20 {
		top := results
		if len(top) > 3 {
			top = top[:3]
		}
		pick := top[r.rnd.Intn(len(top))]
		chosen, chosenScore = pick.turn, pick.score
	}

	r.tt.Write(hash, depth, best.score, ExactBound, best.turn.Notation())

	return PV{
		Depth: depth, HasMove: true, Move: chosen, Score: chosenScore,
		Nodes: r.nodes, Time: time.Since(start), Principal: []string{chosen.Notation()},
	}, true
}
