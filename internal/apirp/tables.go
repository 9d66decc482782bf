package apirp

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Unit and code constants (US customary: lb, in, ft, psf)
const (
	GammaWater  = 62.4   // pcf
	Atmosphere  = 2116.0 // psf
	PsfPerTsf   = 2000.0
	SqInPerSqFt = 144.0

	// Bearing capacity factor for clay tips (API RP 2GEO 7.3)
	BearingFactorClay = 9.0

	// Lowest friction angle tabulated by the API sand tables (degrees)
	MinFrictionAngle = 25.0
)

// API RP 2A Fig. 6.8.6-1: C1, C2, C3 vs friction angle
var sandCoefficients = newTable([][]float64{
	{25, 1.22, 2.88, 12.7},
	{28, 1.78, 3.29, 20.8},
	{30, 2.46, 3.81, 31.4},
	{32, 3.39, 4.47, 47.9},
	{34, 4.68, 5.30, 73.9},
	{36, 6.50, 6.37, 115.4},
	{38, 9.10, 7.78, 182.5},
	{40, 12.85, 9.64, 292.0},
})

// API RP 2A Fig. 6.8.7-1: initial modulus of subgrade reaction (lb/in³)
var sandModulusDry = newTable([][]float64{
	{25, 25}, {28, 28}, {30, 60}, {32, 90}, {34, 115}, {36, 150}, {38, 200}, {40, 300},
})

var sandModulusSubmerged = newTable([][]float64{
	{25, 5}, {28, 10}, {30, 25}, {32, 35}, {34, 45}, {36, 60}, {38, 80}, {40, 100},
})

// Meyerhof bearing capacity factor N_q for driven piles
var meyerhofNq = newTable([][]float64{
	{25, 12.5}, {26, 14.5}, {28, 21}, {30, 30}, {32, 44}, {34, 65}, {36, 100}, {38, 150}, {40, 225},
})

// Meyerhof limiting unit end bearing (tsf)
var meyerhofLimit = newTable([][]float64{
	{25, 50}, {28, 75}, {30, 100}, {32, 125}, {34, 175}, {36, 250}, {38, 350}, {40, 500},
})

// TZClayShape is the pre-peak branch of API RP 2GEO Table 7.2-1: z/z_peak
// (z_peak = 0.01·D) against t/t_max. Beyond the peak t stays at t_max.
var TZClayShape = [][2]float64{
	{0.00, 0.00},
	{0.16, 0.30},
	{0.31, 0.50},
	{0.57, 0.75},
	{0.80, 0.90},
	{1.00, 1.00},
}

// QZShape is API RP 2GEO Table 7.3-1 normalized by the peak displacement
// 0.10·D: z/z_peak against Q/Q_p.
var QZShape = [][2]float64{
	{0.00, 0.00},
	{0.02, 0.25},
	{0.13, 0.50},
	{0.42, 0.75},
	{0.73, 0.90},
	{1.00, 1.00},
	{10.0, 1.00},
}

// SandCoefficients interpolates the API C1, C2, C3 factors for a friction angle.
func SandCoefficients(phi float64) (c1, c2, c3 float64) {
	v := sandCoefficients.at(phi)
	return v[0], v[1], v[2]
}

// SandSubgradeModulus returns the API initial modulus k (lb/in³).
func SandSubgradeModulus(phi float64, submerged bool) float64 {
	if submerged {
		return sandModulusSubmerged.at(phi)[0]
	}
	return sandModulusDry.at(phi)[0]
}

// MeyerhofNq interpolates the end bearing factor N_q.
func MeyerhofNq(phi float64) float64 {
	return meyerhofNq.at(phi)[0]
}

// MeyerhofBearingLimit interpolates the limiting unit end bearing (tsf).
func MeyerhofBearingLimit(phi float64) float64 {
	return meyerhofLimit.at(phi)[0]
}

// AdhesionFactor calculates the API RP 2A adhesion factor α for clay.
// With a positive overburden the ψ = c_u/σ'v ratio method is used, otherwise
// Tomlinson's tabulated values. Result is clamped to [0.25, 1.0].
func AdhesionFactor(cu, sigmaV float64) float64 {
	var alpha float64
	switch {
	case sigmaV > 0 && cu > 0:
		psi := cu / sigmaV
		if psi <= 1.0 {
			alpha = 0.5 * math.Pow(psi, -0.5)
		} else {
			alpha = 0.5 * math.Pow(psi, -0.25)
		}
	case cu <= 500:
		alpha = 1.0
	case cu <= 1000:
		alpha = 1.0 - 0.2*(cu-500)/500
	case cu <= 2000:
		alpha = 0.8 - 0.3*(cu-1000)/1000
	case cu <= 4000:
		alpha = 0.5 - 0.15*(cu-2000)/2000
	default:
		alpha = 0.30
	}
	return math.Max(0.25, math.Min(1.0, alpha))
}

// Beta computes β = K_s·tan(δ) for the effective stress skin friction method.
// K_s = ksRatio·K_0 with K_0 = (1 − sin φ)·OCR^sin φ and δ = deltaRatio·φ.
func Beta(phi, ksRatio, deltaRatio, ocr float64) float64 {
	if ocr <= 0 {
		ocr = 1
	}
	phiRad := phi * math.Pi / 180
	k0 := (1 - math.Sin(phiRad)) * math.Pow(ocr, math.Sin(phiRad))
	delta := deltaRatio * phi * math.Pi / 180
	return ksRatio * k0 * math.Tan(delta)
}

// SkinFrictionRatios returns the K_s/K_0 and δ/φ ratios for an installation
// method. Driven displacement piles use 1.0 and 0.7; drilled and helical
// piles use 0.7 and 0.8.
func SkinFrictionRatios(installation string) (ksRatio, deltaRatio float64) {
	if installation == "" || installation == "driven" {
		return 1.0, 0.7
	}
	return 0.7, 0.8
}

// table interpolates the value columns of rows keyed by their first column,
// clamping outside the tabulated range.
type table struct {
	first, last []float64
	cols        []interp.PiecewiseLinear
}

func newTable(rows [][]float64) *table {
	xs := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = r[0]
	}
	t := &table{
		first: rows[0],
		last:  rows[len(rows)-1],
		cols:  make([]interp.PiecewiseLinear, len(rows[0])-1),
	}
	for j := range t.cols {
		ys := make([]float64, len(rows))
		for i, r := range rows {
			ys[i] = r[j+1]
		}
		if err := t.cols[j].Fit(xs, ys); err != nil {
			panic(err)
		}
	}
	return t
}

func (t *table) at(x float64) []float64 {
	if x <= t.first[0] {
		return t.first[1:]
	}
	if x >= t.last[0] {
		return t.last[1:]
	}
	out := make([]float64, len(t.cols))
	for j := range t.cols {
		out[j] = t.cols[j].Predict(x)
	}
	return out
}
