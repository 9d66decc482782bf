package section

import "fmt"

// DefaultModulus is Young's modulus of structural steel (psi)
const DefaultModulus = 29000.0 * 1000.0

// Axis selects the bending axis of a section
type Axis string

const (
	Strong Axis = "strong"
	Weak   Axis = "weak"
)

// Pile holds the cross-section properties used by the pile solver.
// Dimensions are inches, E in psi, Fy in ksi.
type Pile struct {
	Name  string `json:"name" yaml:"name"`
	Shape string `json:"shape,omitempty" yaml:"shape,omitempty"` // "W", "C", "pipe", "polygon" or "custom"

	// Geometry (in)
	Depth     float64 `json:"depth" yaml:"depth"`         // dimension resisting strong-axis bending
	Width     float64 `json:"width" yaml:"width"`         // flange width / outer dimension
	Area      float64 `json:"area" yaml:"area"`           // steel area (in²)
	Perimeter float64 `json:"perimeter" yaml:"perimeter"` // perimeter mobilising skin friction
	TipArea   float64 `json:"tip_area" yaml:"tip_area"`   // plugged area for end bearing (in²)

	// Second moments and section moduli
	Ix float64 `json:"ix" yaml:"ix"` // in⁴, strong axis
	Iy float64 `json:"iy" yaml:"iy"` // in⁴, weak axis
	Sx float64 `json:"sx,omitempty" yaml:"sx,omitempty"`
	Sy float64 `json:"sy,omitempty" yaml:"sy,omitempty"`
	Zx float64 `json:"zx,omitempty" yaml:"zx,omitempty"`
	Zy float64 `json:"zy,omitempty" yaml:"zy,omitempty"`

	// Material
	E  float64 `json:"e,omitempty" yaml:"e,omitempty"`   // psi, defaults to DefaultModulus
	Fy float64 `json:"fy,omitempty" yaml:"fy,omitempty"` // ksi
}

// Modulus returns E (psi), falling back to steel.
func (p Pile) Modulus() float64 {
	if p.E > 0 {
		return p.E
	}
	return DefaultModulus
}

// EI returns the flexural rigidity about an axis (lb-in²)
func (p Pile) EI(axis Axis) float64 {
	if axis == Weak {
		return p.Modulus() * p.Iy
	}
	return p.Modulus() * p.Ix
}

// EA returns the axial rigidity (lb)
func (p Pile) EA() float64 {
	return p.Modulus() * p.Area
}

// BendingWidth is the width facing the soil for lateral load about an axis:
// the section depth for strong-axis bending, the width otherwise.
func (p Pile) BendingWidth(axis Axis) float64 {
	if axis == Weak {
		return p.Width
	}
	return p.Depth
}

// YieldMoment returns Fy·S about an axis (kip-in)
func (p Pile) YieldMoment(axis Axis) float64 {
	if axis == Weak {
		return p.Fy * p.Sy
	}
	return p.Fy * p.Sx
}

// PlasticMoment returns Fy·Z about an axis (kip-in)
func (p Pile) PlasticMoment(axis Axis) float64 {
	if axis == Weak {
		return p.Fy * p.Zy
	}
	return p.Fy * p.Zx
}

// Validate checks that the section can be analysed
func (p Pile) Validate() error {
	if p.Depth <= 0 || p.Width <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q: depth and width must be positive", p.Name)}
	}
	if p.Area <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q: area must be positive", p.Name)}
	}
	if p.Ix <= 0 || p.Iy <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q: moments of inertia must be positive", p.Name)}
	}
	if p.Perimeter < 0 || p.TipArea < 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q: perimeter and tip area cannot be negative", p.Name)}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
