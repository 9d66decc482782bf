package bnwf

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gopile/internal/fem"
	"github.com/alexiusacademia/gopile/internal/logging"
	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/floats"
)

// penalty factor on 4EI/L restraining the head rotation of a fixed head
const headPenalty = 1e6

// axial forces at or below this magnitude (lb) carry no geometric stiffness
const minGeometricForce = 1.0

// solution is the outcome of the secant iteration
type solution struct {
	state      State
	iterations int
	d          []float64 // last displacement estimate
	note       string
}

// solveModel iterates secant spring stiffnesses to equilibrium. Each pass
// reassembles the global matrix; the last displacement estimate is kept on
// every exit path.
func solveModel(m *model, loads Loads, log logr.Logger) *solution {
	nn := len(m.nodes)
	sys := fem.NewSystem(nn)
	sol := &solution{state: Assembling, d: make([]float64, sys.Size())}

	kpy := make([]float64, nn)
	ktz := make([]float64, nn)
	var lateral, axial float64
	for i, nd := range m.nodes {
		kpy[i] = nd.py.InitialStiffness()
		ktz[i] = nd.tz.InitialStiffness()
		lateral += kpy[i] * nd.trib
		axial += ktz[i] * nd.trib
	}
	kqz := m.tip.InitialStiffness()
	axial += kqz

	if lateral <= 0 || axial <= 0 {
		sol.state = Failed
		sol.note = "No soil support: lateral or axial spring stiffness is zero along the pile"
		return sol
	}

	tipU := fem.Dof(nn-1, fem.U)
	for it := 0; it < m.maxIter; it++ {
		sol.state = Assembling
		sys.Reset()

		for e := 0; e < m.elements(); e++ {
			sys.AddElement(e, m.element)
			if m.pdelta && it > 0 {
				n := m.element.AxialForce(sol.d[fem.Dof(e, fem.U)], sol.d[fem.Dof(e+1, fem.U)])
				if math.Abs(n) > minGeometricForce {
					sys.AddGeometric(e, m.element, n)
				}
			}
		}
		for i, nd := range m.nodes {
			sys.AddSpring(fem.Dof(i, fem.V), kpy[i]*nd.trib)
			sys.AddSpring(fem.Dof(i, fem.U), ktz[i]*nd.trib)
		}
		sys.AddSpring(tipU, kqz)

		sys.AddLoad(fem.Dof(0, fem.U), -loads.Axial)
		sys.AddLoad(fem.Dof(0, fem.V), loads.Lateral)
		sys.AddLoad(fem.Dof(0, fem.Theta), loads.Moment*12)
		if m.head == Fixed {
			sys.Penalty(fem.Dof(0, fem.Theta), headPenalty*4*m.element.EI/m.element.L)
		}

		dNew, err := sys.Solve()
		sol.iterations = it + 1
		if err != nil {
			sol.state = Failed
			sol.note = fmt.Sprintf("Matrix solve failed at iteration %d: %v", it+1, err)
			return sol
		}
		sol.state = Solved

		change := floats.Distance(dNew, sol.d, math.Inf(1)) / math.Max(floats.Norm(dNew, math.Inf(1)), 1e-12)
		sol.d = dNew
		log.V(logging.DEBUG).Info("secant iteration", "iteration", it+1, "change", change)
		if change < m.tol {
			sol.state = Converged
			return sol
		}

		for i, nd := range m.nodes {
			kpy[i] = nd.py.Secant(sol.d[fem.Dof(i, fem.V)])
			ktz[i] = nd.tz.Secant(sol.d[fem.Dof(i, fem.U)])
		}
		kqz = m.tip.Secant(sol.d[tipU])
		log.V(logging.TRACE).Info("secant update", "iteration", it+1, "kpyHead", kpy[0], "kqz", kqz)
	}

	sol.state = Exhausted
	sol.note = fmt.Sprintf("Did not converge in %d iterations", m.maxIter)
	return sol
}
