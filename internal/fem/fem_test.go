package fem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	testEA = 29e6 * 20
	testEI = 29e6 * 300
)

func cantilever(t *testing.T, n int, length float64) (*System, Element) {
	t.Helper()
	el := Element{EA: testEA, EI: testEI, L: length / float64(n)}
	s := NewSystem(n + 1)
	for e := 0; e < n; e++ {
		s.AddElement(e, el)
	}
	pen := 1e6 * 4 * el.EI / el.L
	for _, d := range []int{U, V, Theta} {
		s.Penalty(Dof(0, d), pen)
	}
	return s, el
}

func TestElementMatricesSymmetric(t *testing.T) {
	el := Element{EA: testEA, EI: testEI, L: 12}
	for name, m := range map[string]*mat.Dense{"stiffness": el.Stiffness(), "geometric": el.Geometric(5000)} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, mat.EqualApprox(m, m.T(), 1e-9))
		})
	}
}

func TestRigidTranslationIsForceFree(t *testing.T) {
	el := Element{EA: testEA, EI: testEI, L: 24}
	rigid := []float64{0.3, 1, 0, 0.3, 1, 0}

	for _, f := range el.EndForces(rigid, 0) {
		assert.InDelta(t, 0, f, 1e-6)
	}

	for _, f := range el.EndForces(rigid, 1e4) {
		assert.InDelta(t, 0, f, 1e-6)
	}
}

func TestEndForcesEquilibrium(t *testing.T) {
	el := Element{EA: testEA, EI: testEI, L: 24}
	fe := el.EndForces([]float64{0.01, 0.2, 0.003, -0.02, -0.1, 0.001}, 0)

	assert.InDelta(t, 0, fe[0]+fe[3], 1e-6)
	assert.InDelta(t, 0, fe[1]+fe[4], 1e-6)
	// moment balance about node j
	assert.InDelta(t, fe[1]*el.L, fe[2]+fe[5], 1e-9*math.Abs(fe[1]*el.L)+1e-9)
}

func TestAxialForceSign(t *testing.T) {
	el := Element{EA: testEA, EI: testEI, L: 10}
	// head pushed down more than the lower node: compression
	assert.Greater(t, el.AxialForce(-0.01, -0.005), 0.0)
	assert.Less(t, el.AxialForce(0.01, 0.005), 0.0)
}

func TestCantileverTipLoad(t *testing.T) {
	const (
		length = 240.0
		p      = 1000.0
	)
	s, _ := cantilever(t, 10, length)
	s.AddLoad(Dof(10, V), p)
	s.AddLoad(Dof(10, U), p)

	d, err := s.Solve()
	require.NoError(t, err)

	assert.InEpsilon(t, p*length*length*length/(3*testEI), d[Dof(10, V)], 1e-5)
	assert.InEpsilon(t, p*length*length/(2*testEI), d[Dof(10, Theta)], 1e-5)
	assert.InEpsilon(t, p*length/testEA, d[Dof(10, U)], 1e-5)
}

func TestGeometricStiffnessSoftensCompression(t *testing.T) {
	const (
		n      = 10
		length = 240.0
	)
	linear, el := cantilever(t, n, length)
	linear.AddLoad(Dof(n, V), 100)
	dLin, err := linear.Solve()
	require.NoError(t, err)

	pdelta, _ := cantilever(t, n, length)
	for e := 0; e < n; e++ {
		pdelta.AddGeometric(e, el, 2e5)
	}
	pdelta.AddLoad(Dof(n, V), 100)
	dPD, err := pdelta.Solve()
	require.NoError(t, err)

	assert.Greater(t, dPD[Dof(n, V)], dLin[Dof(n, V)])
}

func TestPenaltyClearsLoad(t *testing.T) {
	s := NewSystem(2)
	s.AddLoad(Dof(0, Theta), 50)
	s.Penalty(Dof(0, Theta), 1e9)
	assert.Equal(t, 1e9, s.At(Dof(0, Theta), Dof(0, Theta)))

	s.Reset()
	assert.Equal(t, 0.0, s.At(Dof(0, Theta), Dof(0, Theta)))
}

func TestSolveSingular(t *testing.T) {
	s := NewSystem(3)
	_, err := s.Solve()
	assert.ErrorIs(t, err, ErrSingular)
}
