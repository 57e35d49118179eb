package engine

import (
	"fmt"
	"github.com/seekerror/camelot/pkg/search"
)

// Analysis is the engine's formatted search output (§6 "Analysis output format").
type Analysis struct {
	BestMove           string
	HasMove            bool
	EvaluationCP       int // centipawns, side-to-move's perspective
	DepthReached       int
	PrincipalVariation []string
	NodesSearched      uint64
	NodesPerSecond     float64
	TimeMS             int64
	IsMate             bool
	MateInMoves        int
}

func newAnalysis(pv search.PV) Analysis {
	a := Analysis{
		HasMove:            pv.HasMove,
		DepthReached:       pv.Depth,
		PrincipalVariation: pv.Principal,
		NodesSearched:      pv.Nodes,
		TimeMS:             pv.Time.Milliseconds(),
	}
	if pv.HasMove {
		a.BestMove = pv.Move.Notation()
	}
	if !pv.Score.IsInvalid() {
		a.EvaluationCP = int(pv.Score)
	}
	if md, ok := pv.Score.MateIn(); ok {
		a.IsMate = true
		a.MateInMoves = md
	}
	if pv.Time > 0 {
		a.NodesPerSecond = float64(pv.Nodes) / pv.Time.Seconds()
	}
	return a
}

// String renders the analysis the way a CLI driver would print it (§6).
func (a Analysis) String() string {
	if !a.HasMove {
		return "no legal move"
	}

	eval := fmt.Sprintf("%+.2f", float64(a.EvaluationCP)/100)
	if a.IsMate {
		sign := "+"
		if a.EvaluationCP < 0 {
			sign = "-"
		}
		eval = fmt.Sprintf("%vM%v", sign, a.MateInMoves)
	}

	return fmt.Sprintf("best=%v eval=%v depth=%v nodes=%v (%.0f/s) time=%vms pv=%v",
		a.BestMove, eval, a.DepthReached, a.NodesSearched, a.NodesPerSecond, a.TimeMS, a.PrincipalVariation)
}
