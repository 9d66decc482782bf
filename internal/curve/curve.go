// Package curve generates the nonlinear soil springs (p-y, t-z, q-z) that
// support a pile in a beam on nonlinear Winkler foundation model.
package curve

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Kind identifies the spring a curve describes
type Kind string

const (
	PY Kind = "p-y" // lateral resistance p (lb/in) vs deflection y (in)
	TZ Kind = "t-z" // skin friction t (lb/in) vs axial displacement z (in)
	QZ Kind = "q-z" // tip resistance q (lbs) vs tip displacement z (in)
)

// number of samples on generated curves
const numPoints = 50

// Curve is a monotone spring curve. Disp starts at 0 and increases strictly;
// Resist starts at 0, never decreases and never exceeds Ultimate.
// A curve is read-only once built.
type Curve struct {
	Kind     Kind      `json:"kind"`
	Depth    float64   `json:"depth_ft"`
	Method   string    `json:"method"`
	Disp     []float64 `json:"disp_in"`
	Resist   []float64 `json:"resist"`
	Ultimate float64   `json:"ultimate"`

	fn *interp.PiecewiseLinear
}

// New builds a curve from sampled points. Inputs that cannot describe a
// resisting spring (fewer than two points, unordered displacements or a
// non-positive ultimate) produce a null curve.
func New(kind Kind, depth float64, method string, disp, resist []float64, ultimate float64) *Curve {
	if len(disp) < 2 || len(disp) != len(resist) || !(ultimate > 0) {
		return Null(kind, depth, method)
	}
	fn := &interp.PiecewiseLinear{}
	if err := fn.Fit(disp, resist); err != nil {
		return Null(kind, depth, method)
	}
	return &Curve{
		Kind:     kind,
		Depth:    depth,
		Method:   method,
		Disp:     disp,
		Resist:   resist,
		Ultimate: ultimate,
		fn:       fn,
	}
}

// Null returns a spring with no stiffness or resistance
func Null(kind Kind, depth float64, method string) *Curve {
	return &Curve{Kind: kind, Depth: depth, Method: method}
}

// IsNull reports whether the curve carries no resistance
func (c *Curve) IsNull() bool {
	return c == nil || c.fn == nil
}

// Resistance interpolates the curve at |y|. Beyond the sampled range the
// ultimate value is returned.
func (c *Curve) Resistance(y float64) float64 {
	if c.IsNull() {
		return 0
	}
	a := math.Abs(y)
	if a >= c.Disp[len(c.Disp)-1] {
		return c.Ultimate
	}
	return math.Min(c.fn.Predict(a), c.Ultimate)
}

// InitialStiffness is the slope of the first curve segment
func (c *Curve) InitialStiffness() float64 {
	if c.IsNull() || c.Disp[1] <= 0 {
		return 0
	}
	return c.Resist[1] / c.Disp[1]
}

// Secant returns resistance / |y|, or the initial stiffness near the origin
func (c *Curve) Secant(y float64) float64 {
	if c.IsNull() {
		return 0
	}
	a := math.Abs(y)
	if a <= 1e-12 {
		return c.InitialStiffness()
	}
	return c.Resistance(a) / a
}

// shape is a normalized table of (x/x_ref, r/r_ult) rows
type shape struct {
	fn   interp.PiecewiseLinear
	xMax float64
	rMax float64
}

func newShape(rows [][2]float64) *shape {
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i], ys[i] = r[0], r[1]
	}
	s := &shape{xMax: xs[len(xs)-1], rMax: ys[len(ys)-1]}
	if err := s.fn.Fit(xs, ys); err != nil {
		panic(err)
	}
	return s
}

func (s *shape) at(ratio float64) float64 {
	if ratio >= s.xMax {
		return s.rMax
	}
	return s.fn.Predict(ratio)
}
