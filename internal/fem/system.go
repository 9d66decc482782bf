package fem

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when the assembled system cannot be solved reliably
var ErrSingular = errors.New("stiffness matrix is singular or ill-conditioned")

// condition number above which a factorization is rejected
const maxCondition = 1e20

// System is the global stiffness matrix and load vector of a chain of
// elements. Element e joins nodes e and e+1.
type System struct {
	nodes int
	k     *mat.Dense
	f     *mat.VecDense
}

// NewSystem allocates a system for the given number of nodes
func NewSystem(nodes int) *System {
	n := nodes * DofPerNode
	return &System{
		nodes: nodes,
		k:     mat.NewDense(n, n, nil),
		f:     mat.NewVecDense(n, nil),
	}
}

// Dof maps a node and a local DOF (U, V, Theta) to the global index
func Dof(node, local int) int {
	return node*DofPerNode + local
}

// Size returns the number of equations
func (s *System) Size() int { return s.nodes * DofPerNode }

// Reset zeroes the matrix and load vector for reassembly
func (s *System) Reset() {
	s.k.Zero()
	s.f.Zero()
}

// AddElement assembles element e between nodes e and e+1
func (s *System) AddElement(e int, el Element) {
	s.scatter(e, el.Stiffness(), 1)
}

// AddGeometric subtracts the geometric stiffness of element e under axial
// compression n
func (s *System) AddGeometric(e int, el Element, n float64) {
	s.scatter(e, el.Geometric(n), -1)
}

func (s *System) scatter(e int, ke *mat.Dense, sign float64) {
	base := e * DofPerNode
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if v := ke.At(i, j); v != 0 {
				s.k.Set(base+i, base+j, s.k.At(base+i, base+j)+sign*v)
			}
		}
	}
}

// AddSpring adds a grounded spring on a global DOF
func (s *System) AddSpring(dof int, k float64) {
	s.k.Set(dof, dof, s.k.At(dof, dof)+k)
}

// AddLoad adds a nodal force on a global DOF
func (s *System) AddLoad(dof int, f float64) {
	s.f.SetVec(dof, s.f.AtVec(dof)+f)
}

// Penalty restrains a DOF to zero with a stiff spring; its load is cleared
func (s *System) Penalty(dof int, k float64) {
	s.AddSpring(dof, k)
	s.f.SetVec(dof, 0)
}

// At returns a matrix entry
func (s *System) At(i, j int) float64 { return s.k.At(i, j) }

// Solve factorizes the matrix with LU and returns the displacement vector
func (s *System) Solve() ([]float64, error) {
	var lu mat.LU
	lu.Factorize(s.k)
	if c := lu.Cond(); math.IsInf(c, 0) || math.IsNaN(c) || c > maxCondition {
		return nil, ErrSingular
	}

	x := mat.NewVecDense(s.Size(), nil)
	if err := lu.SolveVecTo(x, false, s.f); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || float64(cond) > maxCondition {
			return nil, ErrSingular
		}
	}

	d := x.RawVector().Data
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingular
		}
	}
	return d, nil
}
