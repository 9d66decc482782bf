package bnwf

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// unit head load magnitudes: lbs, lbs and ft-lbs
const unitLoad = 1000.0

// headStiffness runs three independent unit-load solves (axial, lateral,
// moment) on a coarser linear model, assembles the flexibility matrix
// column by column and inverts it. Any failed solve or a singular flexibility
// yields a zero matrix. The unit solves always use a free head, whatever the
// analysis head condition, so the rotation column is defined.
func (a *analysis) headStiffness() [3][3]float64 {
	var k [3][3]float64

	opts := a.opts
	opts.NElements = min(opts.NElements, 30)
	opts.PDelta = false
	opts.MaxIter = 50
	opts.Tol = 1e-4
	opts.Head = Free
	opts.skipPost = true

	cases := []Loads{
		{Axial: unitLoad, Type: Static},
		{Lateral: unitLoad, Type: Static},
		{Moment: unitLoad, Type: Static},
	}
	// work-conjugate magnitudes: moment in in-lbs
	mags := []float64{unitLoad, unitLoad, unitLoad * 12}

	flex := mat.NewDense(3, 3, nil)
	var g errgroup.Group
	for col, loads := range cases {
		g.Go(func() error {
			inner := &analysis{
				solver:    a.solver,
				profile:   a.profile,
				section:   a.section,
				embedment: a.embedment,
				opts:      opts,
				cache:     a.cache,
			}
			r := inner.static(loads)
			if !r.Converged {
				return fmt.Errorf("unit load %d: %s", col+1, r.State)
			}
			flex.Set(0, col, -r.YGroundAxial/mags[col])
			flex.Set(1, col, r.YGroundLateral/mags[col])
			flex.Set(2, col, r.Rotation[0]/mags[col])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.notes = append(a.notes, fmt.Sprintf("Head stiffness unavailable: %v", err))
		return k
	}
	return a.invertFlexibility(flex)
}

// invertFlexibility symmetrizes and inverts a flexibility matrix. Zero
// entries are stored as +0.
func (a *analysis) invertFlexibility(flex *mat.Dense) [3][3]float64 {
	var k [3][3]float64

	var sym mat.Dense
	sym.Add(flex, flex.T())
	sym.Scale(0.5, &sym)

	var inv mat.Dense
	if err := inv.Inverse(&sym); err != nil {
		a.notes = append(a.notes, "Head stiffness unavailable: flexibility matrix is singular")
		return k
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if v := inv.At(i, j); v != 0 {
				k[i][j] = v
			}
		}
	}
	return k
}
