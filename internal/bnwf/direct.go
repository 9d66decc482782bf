package bnwf

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gopile/internal/curve"
	"github.com/alexiusacademia/gopile/internal/logging"
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/go-logr/logr"
)

// Solver runs a complete pile analysis. Implementations never fail: domain
// problems are reported through the result state and notes.
type Solver interface {
	Solve(profile *soil.Profile, sec section.Pile, embedment float64, loads Loads, opts Options) *Result
}

// Recorder observes solve outcomes
type Recorder interface {
	ObserveSolve(outcome string, iterations int)
}

// depths (ft) at which spring curves are reported
var displayDepths = []float64{1, 3, 5, 8, 10}

// Direct is the direct-stiffness solver. It holds no per-analysis state and
// is safe for concurrent use.
type Direct struct {
	Log      logr.Logger
	Recorder Recorder
}

// NewDirect returns a direct solver with a discarding logger
func NewDirect() *Direct {
	return &Direct{Log: logr.Discard()}
}

// analysis is the state of one Solve call
type analysis struct {
	solver    *Direct
	profile   *soil.Profile
	section   section.Pile
	embedment float64
	opts      Options
	cache     *curve.Cache
	notes     []string
}

func (s *Direct) newAnalysis(profile *soil.Profile, sec section.Pile, embedment float64, opts Options) *analysis {
	a := &analysis{
		solver:    s,
		profile:   profile,
		section:   sec,
		embedment: embedment,
		opts:      opts.normalized(),
		cache:     curve.NewCache(),
	}
	if embedment < minEmbedment {
		a.embedment = minEmbedment
		a.notes = append(a.notes, fmt.Sprintf("Embedment %.2f ft raised to %.2f ft", embedment, minEmbedment))
	}
	return a
}

// Solve runs a static or pushover analysis according to the load type
func (s *Direct) Solve(profile *soil.Profile, sec section.Pile, embedment float64, loads Loads, opts Options) *Result {
	a := s.newAnalysis(profile, sec, embedment, opts)
	var r *Result
	if loads.Type.IsPushover() {
		r = a.pushover(loads)
	} else {
		r = a.static(loads)
	}
	if !a.opts.skipPost {
		a.postProcess(r)
	}
	r.Notes = append(a.notes, r.Notes...)
	if !a.opts.skipPost {
		s.Log.Info("analysis finished", "type", string(r.AnalysisType), "state", r.State.String(),
			"iterations", r.Iterations, "yGround", r.YGroundLateral, "mMax", r.MMax)
	}
	return r
}

// static runs one secant solve. Inner solves skip post-processing.
func (a *analysis) static(loads Loads) *Result {
	gen := generator(a)
	m := buildModel(gen, a.section, a.embedment, a.opts)
	sol := solveModel(m, loads, a.solver.Log)

	if a.solver.Recorder != nil {
		a.solver.Recorder.ObserveSolve(sol.state.String(), sol.iterations)
	}
	a.solver.Log.V(logging.DEBUG).Info("static solve finished",
		"state", sol.state.String(), "iterations", sol.iterations, "elements", m.elements())

	r := m.result(sol)
	r.QZCurve = m.tip
	return r
}

// postProcess adds head stiffness, buckling, display curves, capacity ratio
// and solver notes to a finished result
func (a *analysis) postProcess(r *Result) {
	k := a.headStiffness()
	r.HeadStiffness = &k
	r.PCritical = a.buckling()

	gen := generator(a)
	for _, d := range displayDepths {
		if d >= a.embedment || a.profile.LayerAt(d) == nil {
			continue
		}
		r.PYCurves = append(r.PYCurves, gen.PY(d))
		r.TZCurves = append(r.TZCurves, gen.TZ(d))
	}

	if my := a.section.YieldMoment(a.opts.BendingAxis); my > 0 {
		ratio := math.Abs(r.MMax) * 12 / 1000 / my
		r.YieldRatio = &ratio
	}

	r.Notes = append(r.Notes,
		fmt.Sprintf("Solver: direct stiffness (%d elements)", a.opts.NElements),
		fmt.Sprintf("P-delta: %s", enabled(a.opts.PDelta)))
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
