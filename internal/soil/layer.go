package soil

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gopile/internal/apirp"
)

// Type is the soil classification of a layer
type Type string

const (
	Sand    Type = "Sand"
	Silt    Type = "Silt"
	Clay    Type = "Clay"
	Gravel  Type = "Gravel"
	Organic Type = "Organic"
)

// ParseType accepts a classification name in any letter case.
func ParseType(s string) (Type, error) {
	for _, t := range []Type{Sand, Silt, Clay, Gravel, Organic} {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown soil type %q", s)
}

// UnmarshalText decodes a classification name in any letter case.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Cohesive reports whether the layer is analysed with undrained strength
// (clay, silt and organic soils).
func (t Type) Cohesive() bool {
	return t == Clay || t == Silt || t == Organic
}

// Granular reports whether the layer is analysed with a friction angle.
func (t Type) Granular() bool {
	return t == Sand || t == Gravel
}

// Layer is a single soil stratum. Depths are feet below ground surface.
// Optional parameters left nil are derived from the SPT blow count.
type Layer struct {
	TopDepth    float64 `json:"top_depth" yaml:"top_depth"`
	Thickness   float64 `json:"thickness" yaml:"thickness"`
	Type        Type    `json:"soil_type" yaml:"soil_type"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`

	// Field data
	NSPT *float64 `json:"n_spt,omitempty" yaml:"n_spt,omitempty"` // raw SPT blow count

	// Direct parameters
	Gamma     *float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`           // total unit weight (pcf)
	Phi       *float64 `json:"phi,omitempty" yaml:"phi,omitempty"`               // friction angle (deg)
	Cu        *float64 `json:"c_u,omitempty" yaml:"c_u,omitempty"`               // undrained shear strength (psf)
	Epsilon50 *float64 `json:"epsilon_50,omitempty" yaml:"epsilon_50,omitempty"` // strain at 50% of ultimate
	J         *float64 `json:"j,omitempty" yaml:"j,omitempty"`                   // Matlock J factor
	Kpy       *float64 `json:"k_py,omitempty" yaml:"k_py,omitempty"`             // subgrade modulus (lb/in³)

	// SPT corrections
	EnergyRatio float64 `json:"energy_ratio,omitempty" yaml:"energy_ratio,omitempty"` // hammer energy ratio (%), default 60
	CB          float64 `json:"c_b,omitempty" yaml:"c_b,omitempty"`                   // borehole diameter correction
	CR          float64 `json:"c_r,omitempty" yaml:"c_r,omitempty"`                   // rod length correction
	CS          float64 `json:"c_s,omitempty" yaml:"c_s,omitempty"`                   // sampler correction

	// Set by the owning Profile from the water table
	Submerged bool `json:"-" yaml:"-"`
}

// BottomDepth is the depth of the layer base (ft)
func (l *Layer) BottomDepth() float64 { return l.TopDepth + l.Thickness }

// MidDepth is the depth of the layer centre (ft)
func (l *Layer) MidDepth() float64 { return l.TopDepth + l.Thickness/2 }

// N60 returns the energy corrected blow count, or nil without SPT data.
func (l *Layer) N60() *float64 {
	if l.NSPT == nil {
		return nil
	}
	n := *l.NSPT * orOne(l.EnergyRatio/60.0) * orOne(l.CB) * orOne(l.CR) * orOne(l.CS)
	return &n
}

func (l *Layer) n60Or(def float64) float64 {
	if n := l.N60(); n != nil && *n > 0 {
		return *n
	}
	return def
}

// UnitWeight returns the total unit weight (pcf), estimated from N60 when absent.
func (l *Layer) UnitWeight() float64 {
	if l.Gamma != nil && *l.Gamma > 0 {
		return *l.Gamma
	}
	n := l.n60Or(10)
	if l.Type.Granular() {
		wet := l.Submerged
		switch {
		case n < 4:
			return pick(wet, 105, 95)
		case n < 10:
			return pick(wet, 115, 105)
		case n < 30:
			return pick(wet, 125, 110)
		case n < 50:
			return pick(wet, 135, 120)
		default:
			return pick(wet, 140, 130)
		}
	}
	switch {
	case n < 2:
		return 100
	case n < 4:
		return 110
	case n < 8:
		return 115
	case n < 15:
		return 120
	case n < 30:
		return 125
	default:
		return 130
	}
}

// EffectiveUnitWeight is the buoyant unit weight below the water table (pcf).
func (l *Layer) EffectiveUnitWeight() float64 {
	g := l.UnitWeight()
	if l.Submerged {
		return g - apirp.GammaWater
	}
	return g
}

// FrictionAngle returns φ (deg). Granular soils use Hatanaka & Uchida (1996),
// silts a linear fit capped at 34°, clays are undrained (φ = 0).
func (l *Layer) FrictionAngle() float64 {
	if l.Phi != nil {
		return *l.Phi
	}
	n := l.n60Or(10)
	switch {
	case l.Type.Granular():
		return PhiHatanaka(n)
	case l.Type == Silt:
		return math.Min(34, 24+0.25*n)
	}
	return 0
}

// UndrainedStrength returns c_u (psf); Terzaghi & Peck 125·N60 when absent.
func (l *Layer) UndrainedStrength() float64 {
	if l.Cu != nil {
		return *l.Cu
	}
	if l.Type.Granular() {
		return 0
	}
	return NToCu(l.n60Or(5))
}

// StrainAt50 returns ε50 for p-y curves from the c_u consistency bands.
func (l *Layer) StrainAt50() float64 {
	if l.Epsilon50 != nil {
		return *l.Epsilon50
	}
	cu := l.UndrainedStrength()
	switch {
	case cu < 500:
		return 0.020
	case cu < 1000:
		return 0.010
	case cu < 2000:
		return 0.007
	case cu < 4000:
		return 0.005
	}
	return 0.004
}

// MatlockJ returns the Matlock J factor: 0.25 for soft clay, 0.5 otherwise.
func (l *Layer) MatlockJ() float64 {
	if l.J != nil {
		return *l.J
	}
	if l.UndrainedStrength() < 500 {
		return 0.25
	}
	return 0.5
}

// SubgradeModulus returns the horizontal subgrade reaction modulus k_h (lb/in³).
func (l *Layer) SubgradeModulus() float64 {
	if l.Kpy != nil {
		return *l.Kpy
	}
	if l.Type.Granular() {
		phi := l.FrictionAngle()
		wet := l.Submerged
		switch {
		case phi <= 25:
			return pick(wet, 5, 25)
		case phi <= 28:
			return pick(wet, 10, 28)
		case phi <= 30:
			return pick(wet, 25, 60)
		case phi <= 32:
			return pick(wet, 35, 90)
		case phi <= 34:
			return pick(wet, 45, 115)
		case phi <= 36:
			return pick(wet, 60, 150)
		case phi <= 38:
			return pick(wet, 80, 200)
		default:
			return pick(wet, 100, 300)
		}
	}
	cu := l.UndrainedStrength()
	switch {
	case cu < 500:
		return 7
	case cu < 1000:
		return 20
	case cu < 2000:
		return 65
	case cu < 4000:
		return 200
	}
	return 500
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
