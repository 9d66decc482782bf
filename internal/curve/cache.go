package curve

import (
	"math"
	"sync"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// Generator produces the springs of one analysis: a profile, a pile geometry
// and a loading type. Curves are memoized in its Cache.
type Generator struct {
	Profile      *soil.Profile
	Width        float64 // in
	Perimeter    float64 // in
	TipArea      float64 // in²
	Installation string
	Cyclic       bool

	Cache *Cache
}

func (g *Generator) site(depth float64) Site {
	return Site{
		Depth:        depth,
		Layer:        g.Profile.LayerAt(depth),
		SigmaV:       g.Profile.EffectiveStressAt(depth),
		Width:        g.Width,
		Perimeter:    g.Perimeter,
		TipArea:      g.TipArea,
		Installation: g.Installation,
		Cyclic:       g.Cyclic,
	}
}

// PY returns the p-y curve at a depth (ft)
func (g *Generator) PY(depth float64) *Curve {
	return g.Cache.Get(PY, depth, func() *Curve { return PYCurve(g.site(depth)) })
}

// TZ returns the t-z curve at a depth (ft)
func (g *Generator) TZ(depth float64) *Curve {
	return g.Cache.Get(TZ, depth, func() *Curve { return TZCurve(g.site(depth)) })
}

// QZ returns the tip curve for a pile embedded to the given depth (ft). The
// tip layer is the one just above the tip.
func (g *Generator) QZ(embedment float64) *Curve {
	return g.Cache.Get(QZ, embedment, func() *Curve {
		s := g.site(embedment)
		s.Layer = g.Profile.LayerAt(embedment - 0.01)
		return QZCurve(s)
	})
}

type cacheKey struct {
	kind  Kind
	depth int64
}

// Cache memoizes curves by kind and depth. It belongs to a single analysis
// and is safe for concurrent use. A nil Cache disables memoization.
type Cache struct {
	mu     sync.Mutex
	curves map[cacheKey]*Curve
}

// NewCache returns an empty cache
func NewCache() *Cache {
	return &Cache{curves: make(map[cacheKey]*Curve)}
}

// Get returns the cached curve or builds and stores it
func (c *Cache) Get(kind Kind, depth float64, build func() *Curve) *Curve {
	if c == nil {
		return build()
	}
	key := cacheKey{kind: kind, depth: int64(math.Round(depth * 1e6))}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cv, ok := c.curves[key]; ok {
		return cv
	}
	cv := build()
	c.curves[key] = cv
	return cv
}

// Len returns the number of cached curves
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.curves)
}
