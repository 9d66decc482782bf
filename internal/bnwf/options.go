// Package bnwf analyses a single vertical pile as a beam on nonlinear Winkler
// foundation: a beam-column chain restrained by p-y, t-z and q-z springs.
package bnwf

import "github.com/alexiusacademia/gopile/internal/section"

// HeadCondition is the rotational restraint at the pile head
type HeadCondition string

const (
	Free  HeadCondition = "free"
	Fixed HeadCondition = "fixed"
)

// LoadType selects a single static solve or a pushover
type LoadType string

const (
	Static          LoadType = "static"
	PushoverLateral LoadType = "pushover_lateral"
	PushoverAxial   LoadType = "pushover_axial"
)

// IsPushover reports whether the load type runs an incremental schedule
func (t LoadType) IsPushover() bool {
	return t == PushoverLateral || t == PushoverAxial
}

// Backend names a solver implementation
type Backend string

const (
	BackendAuto     Backend = "auto"
	BackendDirect   Backend = "direct"
	BackendExternal Backend = "external"
)

// Defaults
const (
	DefaultElements      = 50
	DefaultMaxIterations = 300
	DefaultTolerance     = 1e-5
	DefaultPushoverSteps = 20
	DefaultPushoverMult  = 3.0
)

// Options configures an analysis
type Options struct {
	NElements    int           `json:"n_elements" yaml:"n_elements"`
	BendingAxis  section.Axis  `json:"bending_axis" yaml:"bending_axis"`
	Head         HeadCondition `json:"head_condition" yaml:"head_condition"`
	Cyclic       bool          `json:"cyclic" yaml:"cyclic"`
	PDelta       bool          `json:"p_delta" yaml:"p_delta"`
	MaxIter      int           `json:"max_iter" yaml:"max_iter"`
	Tol          float64       `json:"tol" yaml:"tol"`
	Installation string        `json:"pile_type" yaml:"pile_type"` // driven, drilled or helical
	Backend      Backend       `json:"backend" yaml:"backend"`

	// Capabilities only an external backend provides
	UseFiberSection bool `json:"use_fiber_section,omitempty" yaml:"use_fiber_section,omitempty"`
	RunEigenvalue   bool `json:"run_eigenvalue,omitempty" yaml:"run_eigenvalue,omitempty"`
	Modes           int  `json:"n_modes,omitempty" yaml:"n_modes,omitempty"`

	// skipPost disables head stiffness, buckling and display curves for the
	// inner unit-load solves
	skipPost bool
}

// DefaultOptions returns the standard analysis configuration
func DefaultOptions() Options {
	return Options{
		NElements:    DefaultElements,
		BendingAxis:  section.Strong,
		Head:         Free,
		PDelta:       true,
		MaxIter:      DefaultMaxIterations,
		Tol:          DefaultTolerance,
		Installation: "driven",
		Backend:      BackendAuto,
		Modes:        3,
	}
}

func (o Options) normalized() Options {
	if o.NElements <= 0 {
		o.NElements = DefaultElements
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIterations
	}
	if o.Tol <= 0 {
		o.Tol = DefaultTolerance
	}
	if o.BendingAxis == "" {
		o.BendingAxis = section.Strong
	}
	if o.Head == "" {
		o.Head = Free
	}
	if o.Installation == "" {
		o.Installation = "driven"
	}
	return o
}

// Loads applied at the pile head (ground line)
type Loads struct {
	Axial   float64  `json:"axial" yaml:"axial"`     // lbs, compression positive
	Lateral float64  `json:"lateral" yaml:"lateral"` // lbs
	Moment  float64  `json:"moment" yaml:"moment"`   // ft-lbs
	Type    LoadType `json:"load_type" yaml:"load_type"`

	PushoverSteps   int     `json:"pushover_steps,omitempty" yaml:"pushover_steps,omitempty"`
	PushoverMaxMult float64 `json:"pushover_max_mult,omitempty" yaml:"pushover_max_mult,omitempty"`
}

// Scaled returns a static load case multiplied by m
func (l Loads) Scaled(m float64) Loads {
	return Loads{Axial: l.Axial * m, Lateral: l.Lateral * m, Moment: l.Moment * m, Type: Static}
}
