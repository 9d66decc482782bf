// Package fem assembles and solves the beam-column stiffness system of a
// vertical pile. Each node carries three degrees of freedom: axial
// displacement u, lateral displacement v and rotation θ.
package fem

import "gonum.org/v1/gonum/mat"

// DOFs per node and their local ordering
const (
	DofPerNode = 3

	U     = 0 // axial
	V     = 1 // lateral
	Theta = 2 // rotation
)

// Element is a two-node Euler-Bernoulli beam-column with an axial bar
type Element struct {
	EA float64 // lb
	EI float64 // lb-in²
	L  float64 // in
}

// Stiffness returns the 6×6 element matrix ordered [u_i v_i θ_i u_j v_j θ_j]
func (e Element) Stiffness() *mat.Dense {
	ka := e.EA / e.L
	kb := e.EI / (e.L * e.L * e.L)
	l := e.L

	return mat.NewDense(6, 6, []float64{
		ka, 0, 0, -ka, 0, 0,
		0, 12 * kb, 6 * kb * l, 0, -12 * kb, 6 * kb * l,
		0, 6 * kb * l, 4 * kb * l * l, 0, -6 * kb * l, 2 * kb * l * l,
		-ka, 0, 0, ka, 0, 0,
		0, -12 * kb, -6 * kb * l, 0, 12 * kb, -6 * kb * l,
		0, 6 * kb * l, 2 * kb * l * l, 0, -6 * kb * l, 4 * kb * l * l,
	})
}

// Geometric returns the consistent geometric stiffness for an axial force n
// (lb, compression positive). It acts on the lateral DOFs only and is
// subtracted from the element stiffness, softening the element in compression.
func (e Element) Geometric(n float64) *mat.Dense {
	c := n / e.L
	l := e.L
	a := 6.0 / 5.0 * c
	b := l / 10.0 * c
	d := 2.0 * l * l / 15.0 * c
	f := -l * l / 30.0 * c

	return mat.NewDense(6, 6, []float64{
		0, 0, 0, 0, 0, 0,
		0, a, b, 0, -a, b,
		0, b, d, 0, -b, f,
		0, 0, 0, 0, 0, 0,
		0, -a, -b, 0, a, -b,
		0, b, f, 0, -b, d,
	})
}

// AxialForce returns the compression (positive) carried by the element for
// end displacements u_i (top) and u_j (bottom), positive upward.
func (e Element) AxialForce(ui, uj float64) float64 {
	return e.EA * (uj - ui) / e.L
}

// EndForces returns (ke − kg)·de for the element's six end displacements
// under axial compression n. Pass n = 0 for first-order forces.
func (e Element) EndForces(de []float64, n float64) []float64 {
	k := e.Stiffness()
	if n != 0 {
		k.Sub(k, e.Geometric(n))
	}
	var fe mat.VecDense
	fe.MulVec(k, mat.NewVecDense(6, de))
	return fe.RawVector().Data
}
