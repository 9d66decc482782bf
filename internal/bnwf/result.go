package bnwf

import "github.com/alexiusacademia/gopile/internal/curve"

// State of the nonlinear static solve
type State int

const (
	Assembling State = iota
	Solved
	Converged
	Failed
	Exhausted
)

var stateNames = [...]string{"assembling", "solved", "converged", "failed", "exhausted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pushover is the load-displacement trace of an incremental analysis.
// Axial displacements are settlements (positive down).
type Pushover struct {
	Axis string    `json:"axis"`
	Load []float64 `json:"load"`
	Disp []float64 `json:"disp_in"`
}

// Result of an analysis. Profiles are indexed by node from the head down.
// Lateral displacement is along the applied lateral load, axial displacement
// is positive upward.
type Result struct {
	Solver       string   `json:"solver"`
	AnalysisType LoadType `json:"analysis_type"`
	State        State    `json:"state"`
	Converged    bool     `json:"converged"`
	Iterations   int      `json:"iterations"`
	Notes        []string `json:"notes"`

	Depth             []float64 `json:"depth_ft"`
	DeflectionLateral []float64 `json:"deflection_lateral_in"`
	DeflectionAxial   []float64 `json:"deflection_axial_in"`
	Rotation          []float64 `json:"rotation_rad"`
	Moment            []float64 `json:"moment_ft_lbs"`
	Shear             []float64 `json:"shear_lbs"`
	AxialForce        []float64 `json:"axial_force_lbs"` // compression positive
	SoilP             []float64 `json:"soil_reaction_p_lb_in"`
	SoilT             []float64 `json:"soil_reaction_t_lb_in"`
	TipQ              float64   `json:"soil_reaction_q_lbs"`

	YGroundLateral float64  `json:"y_ground_lateral_in"`
	YGroundAxial   float64  `json:"y_ground_axial_in"`
	MMax           float64  `json:"m_max_ft_lbs"`
	DepthMMax      float64  `json:"depth_m_max_ft"`
	YieldRatio     *float64 `json:"yield_ratio,omitempty"` // |M_max| / M_y

	// HeadStiffness relates [axial (compression), lateral, moment] head loads
	// to [settlement, lateral deflection, rotation]: lb/in, lb/rad and in-lb/rad.
	HeadStiffness *[3][3]float64 `json:"k_head,omitempty"`
	PCritical     *float64       `json:"p_critical_lbs,omitempty"`

	Pushover *Pushover `json:"pushover,omitempty"`

	PYCurves []*curve.Curve `json:"py_curves,omitempty"`
	TZCurves []*curve.Curve `json:"tz_curves,omitempty"`
	QZCurve  *curve.Curve   `json:"qz_curve,omitempty"`

	// Filled by backends with modal analysis
	Eigenvalues []float64 `json:"eigenvalues,omitempty"`
	Frequencies []float64 `json:"frequencies_hz,omitempty"`
}
