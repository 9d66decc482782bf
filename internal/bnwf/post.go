package bnwf

import (
	"math"

	"github.com/alexiusacademia/gopile/internal/fem"
)

// result turns a model solution into depth profiles and summaries. Moments
// and shears come from element end forces, so the head values equal the
// applied loads less the head spring reaction.
func (m *model) result(sol *solution) *Result {
	nn := len(m.nodes)
	r := &Result{
		Solver:            "direct",
		AnalysisType:      Static,
		State:             sol.state,
		Converged:         sol.state == Converged,
		Iterations:        sol.iterations,
		Depth:             make([]float64, nn),
		DeflectionLateral: make([]float64, nn),
		DeflectionAxial:   make([]float64, nn),
		Rotation:          make([]float64, nn),
		Moment:            make([]float64, nn),
		Shear:             make([]float64, nn),
		AxialForce:        make([]float64, nn),
		SoilP:             make([]float64, nn),
		SoilT:             make([]float64, nn),
	}
	if sol.note != "" {
		r.Notes = append(r.Notes, sol.note)
	}

	d := sol.d
	for i, nd := range m.nodes {
		u, v := d[fem.Dof(i, fem.U)], d[fem.Dof(i, fem.V)]
		r.Depth[i] = nd.depth
		r.DeflectionAxial[i] = u
		r.DeflectionLateral[i] = v
		r.Rotation[i] = d[fem.Dof(i, fem.Theta)]
		r.SoilP[i] = math.Copysign(nd.py.Resistance(v), v)
		r.SoilT[i] = math.Copysign(nd.tz.Resistance(u), u)
	}

	last := m.elements() - 1
	for e := 0; e <= last; e++ {
		base := fem.Dof(e, fem.U)
		de := d[base : base+2*fem.DofPerNode]
		var n float64
		if m.pdelta {
			if n = m.element.AxialForce(de[0], de[3]); math.Abs(n) <= minGeometricForce {
				n = 0
			}
		}
		fe := m.element.EndForces(de, n)

		r.Moment[e] = fe[2] / 12
		r.Shear[e] = fe[1]
		r.AxialForce[e] = -fe[0]
		if e == last {
			r.Moment[e+1] = -fe[5] / 12
			r.Shear[e+1] = -fe[4]
			r.AxialForce[e+1] = fe[3]
		}
	}
	r.TipQ = m.tip.Resistance(d[fem.Dof(nn-1, fem.U)])

	r.YGroundLateral = r.DeflectionLateral[0]
	r.YGroundAxial = r.DeflectionAxial[0]
	imax := 0
	for i, mo := range r.Moment {
		if math.Abs(mo) > math.Abs(r.Moment[imax]) {
			imax = i
		}
	}
	r.MMax = r.Moment[imax]
	r.DepthMMax = r.Depth[imax]
	return r
}
