package bnwf

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/logging"
	"gonum.org/v1/gonum/floats"
)

// pushover scales the head loads by a linear multiplier schedule. Every step
// is solved from a zero displacement state. Only converged steps enter the
// trace and the schedule stops at the first step that does not converge.
func (a *analysis) pushover(loads Loads) *Result {
	steps := loads.PushoverSteps
	if steps <= 0 {
		steps = DefaultPushoverSteps
	}
	maxMult := loads.PushoverMaxMult
	if maxMult <= 0 {
		maxMult = DefaultPushoverMult
	}
	multipliers := floats.Span(make([]float64, steps+1), 0, maxMult)[1:]

	trace := &Pushover{Axis: "lateral"}
	if loads.Type == PushoverAxial {
		trace.Axis = "axial"
	}

	var last *Result
	var stopped string
	for i, mult := range multipliers {
		step := loads.Scaled(mult)
		r := a.static(step)
		if !r.Converged {
			stopped = fmt.Sprintf("Pushover stopped at step %d of %d (x%.3g): %s", i+1, steps, mult, r.State)
			break
		}
		last = r
		if loads.Type == PushoverAxial {
			trace.Load = append(trace.Load, step.Axial)
			trace.Disp = append(trace.Disp, -r.YGroundAxial)
		} else {
			trace.Load = append(trace.Load, step.Lateral)
			trace.Disp = append(trace.Disp, r.YGroundLateral)
		}
		a.solver.Log.V(logging.DEBUG).Info("pushover step", "step", i+1, "multiplier", mult, "iterations", r.Iterations)
	}

	if last == nil {
		last = a.static(loads.Scaled(1))
		last.Notes = append(last.Notes, "No pushover step converged; reporting the static solve at x1")
	}
	if stopped != "" {
		last.Notes = append(last.Notes, stopped)
	}
	last.AnalysisType = loads.Type
	last.Pushover = trace
	return last
}
