package bnwf

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/logging"
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/go-logr/logr"
)

// Facade selects a backend for each analysis. Direct handles everything the
// direct-stiffness model supports; Alternate, when configured, is a
// higher-fidelity backend sharing the same contract (fiber sections, modal
// analysis).
type Facade struct {
	Direct    Solver
	Alternate Solver
	Log       logr.Logger
}

// NewFacade wraps a direct solver with no alternate backend
func NewFacade(direct Solver) *Facade {
	return &Facade{Direct: direct, Log: logr.Discard()}
}

// Solve dispatches on opts.Backend. "auto" uses the alternate backend only
// when a capability it alone provides is requested; an unavailable alternate
// falls back to the direct solver with a note.
func (f *Facade) Solve(profile *soil.Profile, sec section.Pile, embedment float64, loads Loads, opts Options) *Result {
	wantAlternate := false
	switch opts.Backend {
	case BackendExternal:
		wantAlternate = true
	case BackendDirect:
	default:
		wantAlternate = opts.UseFiberSection || opts.RunEigenvalue
	}

	if wantAlternate && f.Alternate != nil {
		f.Log.V(logging.DEBUG).Info("dispatching to alternate backend", "backend", string(opts.Backend))
		return f.Alternate.Solve(profile, sec, embedment, loads, opts)
	}

	direct := f.Direct
	if direct == nil {
		direct = NewDirect()
	}
	r := direct.Solve(profile, sec, embedment, loads, opts)
	if wantAlternate {
		r.Notes = append(r.Notes, fmt.Sprintf("Alternate backend unavailable (backend %q); used direct stiffness solver", opts.Backend))
	}
	if opts.UseFiberSection || opts.RunEigenvalue {
		r.Notes = append(r.Notes, "Fiber section and eigenvalue analysis are not supported by the direct solver; ignored")
	}
	return r
}
