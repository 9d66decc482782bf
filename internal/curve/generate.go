package curve

import (
	"math"

	"github.com/alexiusacademia/gopile/internal/apirp"
	"github.com/alexiusacademia/gopile/internal/soil"
	"gonum.org/v1/gonum/floats"
)

// shallowest depth carrying a spring (ft)
const minDepth = 0.001

var (
	tzClay = newShape(apirp.TZClayShape)
	qzTip  = newShape(apirp.QZShape)
)

// Site describes the soil and pile geometry at one depth
type Site struct {
	Depth        float64     // ft below ground
	Layer        *soil.Layer // nil when no layer exists at the depth
	SigmaV       float64     // effective vertical stress (psf)
	Width        float64     // pile width facing the soil (in)
	Perimeter    float64     // in
	TipArea      float64     // in²
	Installation string      // "driven", "drilled" or "helical"
	Cyclic       bool
}

func (s Site) ok() bool {
	return s.Layer != nil && s.Depth > minDepth
}

func effectiveUnitWeight(l *soil.Layer) float64 {
	g := l.EffectiveUnitWeight()
	if g <= 0 {
		return 1
	}
	return g
}

func frictionAngle(l *soil.Layer) float64 {
	return math.Max(l.FrictionAngle(), apirp.MinFrictionAngle)
}

// PYCurve generates the lateral spring: Matlock for cohesive layers, API sand
// otherwise.
func PYCurve(s Site) *Curve {
	if !s.ok() || s.Width <= 0 {
		return Null(PY, s.Depth, "none")
	}
	gamma := effectiveUnitWeight(s.Layer)
	if s.Layer.Type.Cohesive() {
		return Matlock(s.Depth, s.Layer.UndrainedStrength(), gamma, s.Width,
			s.Layer.MatlockJ(), s.Layer.StrainAt50(), s.Cyclic)
	}
	k := apirp.SandSubgradeModulus(frictionAngle(s.Layer), s.Layer.Submerged)
	if s.Layer.Kpy != nil && *s.Layer.Kpy > 0 {
		k = *s.Layer.Kpy
	}
	return APISand(s.Depth, frictionAngle(s.Layer), gamma, s.Width, k, s.Cyclic)
}

// Matlock (1970) soft clay p-y curve. cu in psf, gamma in pcf, b in inches.
// Ultimate p is the lesser of the wedge and flow-around resistances; cyclic
// loading caps the curve at 0.72·p_ult, reduced linearly above the transition
// depth.
func Matlock(depth, cu, gamma, b, j, eps50 float64, cyclic bool) *Curve {
	const method = "Matlock Soft Clay"
	if cu <= 0 || b <= 0 || depth <= minDepth || eps50 <= 0 {
		return Null(PY, depth, method)
	}
	bft := b / 12
	shallow := (3 + gamma*depth/cu + j*depth/bft) * cu * bft
	deep := 9 * cu * bft
	pult := math.Min(shallow, deep) / 12

	plateau := pult
	if cyclic {
		zr := 6 * bft / (gamma*bft/cu + j)
		plateau = 0.72 * pult
		if depth < zr {
			plateau *= depth / zr
		}
	}

	y50 := 2.5 * eps50 * b
	y := floats.Span(make([]float64, numPoints), 0, 16*y50)
	p := make([]float64, numPoints)
	for i := 1; i < numPoints; i++ {
		p[i] = math.Min(0.5*pult*math.Cbrt(y[i]/y50), plateau)
	}
	return New(PY, depth, method, y, p, plateau)
}

// APISand is the API RP 2A hyperbolic tangent p-y curve. phi in degrees,
// gamma in pcf, b in inches, k in lb/in³.
func APISand(depth, phi, gamma, b, k float64, cyclic bool) *Curve {
	const method = "API Sand"
	if b <= 0 || depth <= minDepth {
		return Null(PY, depth, method)
	}
	bft := b / 12
	c1, c2, c3 := apirp.SandCoefficients(phi)
	shallow := (c1*depth + c2*bft) * gamma * depth
	deep := c3 * bft * gamma * depth
	pu := math.Min(shallow, deep) / 12

	a := 0.9
	if !cyclic {
		a = math.Max(0.9, 3-0.8*depth/bft)
	}
	ult := a * pu
	if ult <= 0 {
		return Null(PY, depth, method)
	}

	y := floats.Span(make([]float64, numPoints), 0, math.Max(0.1*b, 2))
	p := make([]float64, numPoints)
	for i := 1; i < numPoints; i++ {
		p[i] = ult * math.Tanh(k*depth*12*y[i]/ult)
	}
	return New(PY, depth, method, y, p, ult)
}

// TZCurve generates the skin friction spring for the layer type
func TZCurve(s Site) *Curve {
	if !s.ok() || s.Perimeter <= 0 {
		return Null(TZ, s.Depth, "none")
	}
	if s.Layer.Type.Cohesive() {
		return TZClay(s.Depth, s.Layer.UndrainedStrength(), s.SigmaV, s.Perimeter, s.Width)
	}
	ks, delta := apirp.SkinFrictionRatios(s.Installation)
	return TZSand(s.Depth, frictionAngle(s.Layer), s.SigmaV, s.Perimeter, ks, delta)
}

// TZClay follows the API RP 2GEO clay table with its peak at 1% of the pile
// width. Post-peak residual softening is not followed; the curve holds at
// t_max beyond the peak.
func TZClay(depth, cu, sigmaV, perimeter, width float64) *Curve {
	const method = "API Clay"
	if cu <= 0 || perimeter <= 0 || width <= 0 {
		return Null(TZ, depth, method)
	}
	tult := apirp.AdhesionFactor(cu, sigmaV) * cu / apirp.SqInPerSqFt * perimeter
	zpeak := 0.01 * width

	z := floats.Span(make([]float64, numPoints), 0, math.Max(0.2, 20*zpeak))
	t := make([]float64, numPoints)
	for i := 1; i < numPoints; i++ {
		t[i] = tult * tzClay.at(math.Min(z[i]/zpeak, 1))
	}
	return New(TZ, depth, method, z, t, tult)
}

// TZSand is the hyperbolic sand t-z curve t = t_ult·r/(1+r), r = z/0.1 in.
func TZSand(depth, phi, sigmaV, perimeter, ksRatio, deltaRatio float64) *Curve {
	const (
		method = "API Sand"
		zpeak  = 0.1
	)
	if perimeter <= 0 || sigmaV <= 0 {
		return Null(TZ, depth, method)
	}
	tult := apirp.Beta(phi, ksRatio, deltaRatio, 1) * sigmaV / apirp.SqInPerSqFt * perimeter

	z := floats.Span(make([]float64, numPoints), 0, math.Max(0.5, 20*zpeak))
	t := make([]float64, numPoints)
	for i := 1; i < numPoints; i++ {
		r := z[i] / zpeak
		t[i] = tult * r / (1 + r)
	}
	return New(TZ, depth, method, z, t, tult)
}

// QZCurve generates the tip spring: N_c = 9 for cohesive layers, Meyerhof
// N_q·σ'v capped at the limiting end bearing for granular layers.
func QZCurve(s Site) *Curve {
	if !s.ok() || s.TipArea <= 0 {
		return Null(QZ, s.Depth, "none")
	}
	var qb float64
	method := "API Sand Tip"
	if s.Layer.Type.Cohesive() {
		qb = apirp.BearingFactorClay * s.Layer.UndrainedStrength()
		method = "API Clay Tip"
	} else {
		phi := frictionAngle(s.Layer)
		qb = math.Min(s.SigmaV*apirp.MeyerhofNq(phi), apirp.MeyerhofBearingLimit(phi)*apirp.PsfPerTsf)
	}
	return TipCurve(s.Depth, qb/apirp.SqInPerSqFt*s.TipArea, s.Width, method)
}

// TipCurve scales the API q-z table to an ultimate tip load (lbs), with the
// peak at 10% of the pile width.
func TipCurve(depth, qult, width float64, method string) *Curve {
	if qult <= 0 || width <= 0 {
		return Null(QZ, depth, method)
	}
	zpeak := 0.1 * width

	z := floats.Span(make([]float64, numPoints), 0, math.Max(1, 10*zpeak))
	q := make([]float64, numPoints)
	for i := 1; i < numPoints; i++ {
		q[i] = qult * qzTip.at(z[i]/zpeak)
	}
	return New(QZ, depth, method, z, q, qult)
}
