package soil

import (
	"math"

	"github.com/alexiusacademia/gopile/internal/apirp"
)

// CorrectOverburden applies the Liao & Whitman correction, returning (N1)60
// for an effective stress sigmaV (psf). C_N is capped at 2.0.
func CorrectOverburden(n60, sigmaV float64) float64 {
	cn := 2.0
	if sigmaV > 0 {
		cn = math.Min(2.0, math.Sqrt(apirp.Atmosphere/sigmaV))
	}
	return cn * n60
}

// PhiHatanaka is the Hatanaka & Uchida (1996) friction angle from (N1)60.
func PhiHatanaka(n160 float64) float64 {
	return math.Min(45, math.Sqrt(20*math.Max(n160, 1))+20)
}

// PhiPeck is the Peck, Hanson & Thornburn (1974) friction angle from (N1)60.
func PhiPeck(n160 float64) float64 {
	return 27.1 + 0.3*n160 - 0.00054*n160*n160
}

// NToCu is Terzaghi & Peck: c_u (psf) ≈ 125·N60.
func NToCu(n60 float64) float64 {
	return 125 * n60
}

// SandModulus returns the sand Young's modulus E_s (tsf) from N60.
func SandModulus(n60 float64, preloaded bool) float64 {
	if preloaded {
		return 10 * (n60 + 5)
	}
	return 5 * (n60 + 15)
}

// Correlation is the SPT interpretation of one layer at its mid-depth
type Correlation struct {
	Layer       int     // index in Profile.Layers
	Depth       float64 // ft
	N60         float64
	N160        float64 // overburden corrected
	PhiHatanaka float64 // deg
	PhiPeck     float64 // deg
	Cu          float64 // psf
	Es          float64 // tsf, sand modulus (normally consolidated)
}

// Correlations evaluates the SPT correlations for every layer with a blow
// count. Stresses are taken at each layer's mid-depth.
func (p *Profile) Correlations() []Correlation {
	var out []Correlation
	for i, l := range p.layersOrNil() {
		n := l.N60()
		if n == nil {
			continue
		}
		z := l.MidDepth()
		n160 := CorrectOverburden(*n, p.EffectiveStressAt(z))
		out = append(out, Correlation{
			Layer:       i,
			Depth:       z,
			N60:         *n,
			N160:        n160,
			PhiHatanaka: PhiHatanaka(n160),
			PhiPeck:     PhiPeck(n160),
			Cu:          NToCu(*n),
			Es:          SandModulus(*n, false),
		})
	}
	return out
}
