package bnwf

import (
	"github.com/alexiusacademia/gopile/internal/curve"
	"github.com/alexiusacademia/gopile/internal/fem"
	"github.com/alexiusacademia/gopile/internal/section"
)

// shortest embedment analysed (ft)
const minEmbedment = 1.0

// node of the discretized pile
type node struct {
	depth float64 // ft
	trib  float64 // tributary length (in)
	py    *curve.Curve
	tz    *curve.Curve
}

// model is a uniformly meshed pile. Nodes run from the head (0) to the tip.
type model struct {
	nodes   []node
	element fem.Element
	tip     *curve.Curve

	head    HeadCondition
	pdelta  bool
	maxIter int
	tol     float64
}

func (m *model) elements() int { return len(m.nodes) - 1 }

// buildModel meshes the embedded length into n equal elements and attaches
// the springs of each node
func buildModel(gen *curve.Generator, sec section.Pile, embedment float64, opts Options) *model {
	n := opts.NElements
	dz := embedment * 12 / float64(n)

	m := &model{
		nodes:   make([]node, n+1),
		element: fem.Element{EA: sec.EA(), EI: sec.EI(opts.BendingAxis), L: dz},
		tip:     gen.QZ(embedment),
		head:    opts.Head,
		pdelta:  opts.PDelta,
		maxIter: opts.MaxIter,
		tol:     opts.Tol,
	}
	for i := range m.nodes {
		depth := float64(i) * dz / 12
		trib := dz
		if i == 0 || i == n {
			trib = dz / 2
		}
		m.nodes[i] = node{depth: depth, trib: trib, py: gen.PY(depth), tz: gen.TZ(depth)}
	}
	return m
}

// generator returns the curve generator for an analysis
func generator(a *analysis) *curve.Generator {
	return &curve.Generator{
		Profile:      a.profile,
		Width:        a.section.BendingWidth(a.opts.BendingAxis),
		Perimeter:    a.section.Perimeter,
		TipArea:      a.section.TipArea,
		Installation: a.opts.Installation,
		Cyclic:       a.opts.Cyclic,
		Cache:        a.cache,
	}
}
