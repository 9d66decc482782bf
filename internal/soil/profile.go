package soil

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gopile/internal/apirp"
)

// Profile is an ordered stack of layers with an optional water table.
// A Profile is immutable once built; the solver only queries it.
type Profile struct {
	layers     []Layer
	waterTable *float64
}

// NewProfile copies and sorts the layers by top depth and marks the ones whose
// centre lies below the water table (ft) as submerged.
func NewProfile(layers []Layer, waterTable *float64) *Profile {
	p := &Profile{layers: make([]Layer, len(layers))}
	copy(p.layers, layers)
	sort.SliceStable(p.layers, func(i, j int) bool {
		return p.layers[i].TopDepth < p.layers[j].TopDepth
	})
	if waterTable != nil {
		wt := *waterTable
		p.waterTable = &wt
	}
	for i := range p.layers {
		p.layers[i].Submerged = p.waterTable != nil && p.layers[i].MidDepth() >= *p.waterTable
	}
	return p
}

// Len returns the number of layers.
func (p *Profile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.layers)
}

// Layers returns a copy of the layers in depth order.
func (p *Profile) Layers() []Layer {
	if p == nil {
		return nil
	}
	out := make([]Layer, len(p.layers))
	copy(out, p.layers)
	return out
}

// WaterTable returns the water table depth (ft) and whether one is defined.
func (p *Profile) WaterTable() (float64, bool) {
	if p == nil || p.waterTable == nil {
		return 0, false
	}
	return *p.waterTable, true
}

// TotalDepth is the base of the deepest layer (ft).
func (p *Profile) TotalDepth() float64 {
	var d float64
	for i := range p.layersOrNil() {
		d = max(d, p.layers[i].BottomDepth())
	}
	return d
}

// LayerAt returns a copy of the layer containing depth (ft), or nil. The base
// of the last layer belongs to that layer.
func (p *Profile) LayerAt(depth float64) *Layer {
	ls := p.layersOrNil()
	for i := range ls {
		if ls[i].TopDepth <= depth && depth < ls[i].BottomDepth() {
			l := ls[i]
			return &l
		}
	}
	if n := len(ls); n > 0 && abs(depth-ls[n-1].BottomDepth()) < 0.01 {
		l := ls[n-1]
		return &l
	}
	return nil
}

// EffectiveStressAt computes the vertical effective stress (psf) at depth (ft).
func (p *Profile) EffectiveStressAt(depth float64) float64 {
	return p.stressAt(depth, true)
}

// TotalStressAt computes the vertical total stress (psf) at depth (ft).
func (p *Profile) TotalStressAt(depth float64) float64 {
	return p.stressAt(depth, false)
}

func (p *Profile) stressAt(depth float64, effective bool) float64 {
	var sigma, current float64
	for _, l := range p.layersOrNil() {
		if current >= depth {
			break
		}
		top := max(current, l.TopDepth)
		bot := min(depth, l.BottomDepth())
		if bot <= top {
			continue
		}
		dz := bot - top
		gamma := l.UnitWeight()

		if effective && p.waterTable != nil {
			wt := *p.waterTable
			if top < wt {
				dry := min(dz, wt-top)
				sigma += gamma * dry
				dz -= dry
			}
			if dz > 0 {
				sigma += (gamma - apirp.GammaWater) * dz
			}
		} else {
			sigma += gamma * dz
		}
		current = bot
	}
	return sigma
}

// Validate reports the first structural problem with the profile: non-positive
// thickness, negative depth or overlapping layers.
func (p *Profile) Validate() error {
	ls := p.layersOrNil()
	for i := range ls {
		l := &ls[i]
		if l.Thickness <= 0 {
			return &ValidationError{msg: fmt.Sprintf("layer %d must have positive thickness", i+1)}
		}
		if l.TopDepth < 0 {
			return &ValidationError{msg: fmt.Sprintf("layer %d has negative top depth", i+1)}
		}
		if i > 0 && l.TopDepth < ls[i-1].BottomDepth()-1e-9 {
			return &ValidationError{msg: fmt.Sprintf("layer %d overlaps layer %d", i+1, i)}
		}
	}
	return nil
}

func (p *Profile) layersOrNil() []Layer {
	if p == nil {
		return nil
	}
	return p.layers
}

// ValidationError represents a soil profile validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
