package bnwf

import "math"

// buckling estimates the Euler load of the pile above an equivalent depth of
// fixity. Granular soils use the relative stiffness factor T = (EI/n_h)^(1/5)
// with L_f = 1.8T, cohesive soils R = (EI/k_h)^(1/4) with L_f = 1.4R. Returns
// nil without soil layers or with a non-positive effective length.
func (a *analysis) buckling() *float64 {
	if a.profile.Len() == 0 {
		return nil
	}
	ei := a.section.EI(a.opts.BendingAxis)

	top := a.profile.LayerAt(1.0)
	if top == nil {
		layers := a.profile.Layers()
		top = &layers[0]
	}

	lfix := a.embedment * 12
	kh := top.SubgradeModulus()
	if top.Type.Granular() {
		if kh > 0 {
			lfix = 1.8 * math.Pow(ei/(kh*12), 0.2)
		}
	} else if kh > 0 {
		lfix = 1.4 * math.Pow(ei/kh, 0.25)
	}

	keff := 2.0
	if a.opts.Head == Fixed {
		keff = 1.0
	}
	leff := keff * lfix
	if !(leff > 0) {
		return nil
	}
	pcr := math.Pi * math.Pi * ei / (leff * leff)
	return &pcr
}
