package section

import (
	"fmt"
	"math"
	"sort"
)

// Point represents a 2D coordinate of an outline vertex (in)
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Outline is a solid pile cross-section defined by its vertices.
// Vertices should be counter-clockwise; the polygon must be simple (no holes).
// Strong-axis bending is about the horizontal centroidal axis.
type Outline struct {
	Name     string  `json:"name" yaml:"name"`
	Vertices []Point `json:"vertices" yaml:"vertices"`
	E        float64 `json:"e,omitempty" yaml:"e,omitempty"`   // psi
	Fy       float64 `json:"fy,omitempty" yaml:"fy,omitempty"` // ksi
}

// integration strips for the plastic modulus
const numSteps = 200

// Pile computes the section properties of the outline
func (o Outline) Pile() (Pile, error) {
	if len(o.Vertices) < 3 {
		return Pile{}, &ValidationError{msg: fmt.Sprintf("outline %q: at least 3 vertices required", o.Name)}
	}

	minX, maxX, minY, maxY := o.bounds()
	area, cx, cy := o.areaAndCentroid()
	if area <= 0 {
		return Pile{}, &ValidationError{msg: fmt.Sprintf("outline %q: zero area", o.Name)}
	}
	ix, iy := o.secondMoments(area, cx, cy)

	p := Pile{
		Name:      o.Name,
		Shape:     "polygon",
		Depth:     maxY - minY,
		Width:     maxX - minX,
		Area:      area,
		Perimeter: o.perimeter(),
		TipArea:   area,
		Ix:        ix,
		Iy:        iy,
		Sx:        ix / math.Max(maxY-cy, cy-minY),
		Sy:        iy / math.Max(maxX-cx, cx-minX),
		Zx:        o.plasticModulus(false, minY, maxY, area),
		Zy:        o.plasticModulus(true, minX, maxX, area),
		E:         o.E,
		Fy:        o.Fy,
	}
	return p, p.Validate()
}

func (o Outline) bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = o.Vertices[0].X, o.Vertices[0].X
	minY, maxY = o.Vertices[0].Y, o.Vertices[0].Y
	for _, v := range o.Vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, maxX, minY, maxY
}

// areaAndCentroid uses the shoelace formula
func (o Outline) areaAndCentroid() (area, cx, cy float64) {
	n := len(o.Vertices)
	var signedArea, sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := o.Vertices[i].X*o.Vertices[j].Y - o.Vertices[j].X*o.Vertices[i].Y
		signedArea += cross
		sumX += (o.Vertices[i].X + o.Vertices[j].X) * cross
		sumY += (o.Vertices[i].Y + o.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)
	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}
	return area, cx, cy
}

// secondMoments returns centroidal Ix (about the horizontal axis) and Iy
func (o Outline) secondMoments(area, cx, cy float64) (ix, iy float64) {
	n := len(o.Vertices)
	var sxx, syy, signed float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := o.Vertices[i].X, o.Vertices[i].Y
		xj, yj := o.Vertices[j].X, o.Vertices[j].Y
		cross := xi*yj - xj*yi
		signed += cross
		sxx += (yi*yi + yi*yj + yj*yj) * cross
		syy += (xi*xi + xi*xj + xj*xj) * cross
	}
	// orientation-independent
	sign := 1.0
	if signed < 0 {
		sign = -1
	}
	ix = sign*sxx/12 - area*cy*cy
	iy = sign*syy/12 - area*cx*cx
	return ix, iy
}

func (o Outline) perimeter() float64 {
	var total float64
	n := len(o.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += math.Hypot(o.Vertices[j].X-o.Vertices[i].X, o.Vertices[j].Y-o.Vertices[i].Y)
	}
	return total
}

// plasticModulus integrates chord widths across the section. The plastic
// neutral axis splits the area in half; Z is the first moment of both halves
// about it.
func (o Outline) plasticModulus(vertical bool, lo, hi, area float64) float64 {
	h := (hi - lo) / float64(numSteps)
	if h <= 0 {
		return 0
	}

	strips := make([]float64, numSteps)
	levels := make([]float64, numSteps)
	for i := 0; i < numSteps; i++ {
		levels[i] = lo + (float64(i)+0.5)*h
		strips[i] = o.chordAt(levels[i], vertical) * h
	}

	// locate the plastic neutral axis
	pna := lo
	var acc float64
	for i, dA := range strips {
		if acc+dA >= area/2 {
			frac := 0.0
			if dA > 0 {
				frac = (area/2 - acc) / dA
			}
			pna = lo + (float64(i)+frac)*h
			break
		}
		acc += dA
	}

	var z float64
	for i, dA := range strips {
		z += dA * math.Abs(levels[i]-pna)
	}
	return z
}

// chordAt returns the total width of the outline cut at a level. A horizontal
// cut (y = level) is used unless vertical is set (x = level).
func (o Outline) chordAt(level float64, vertical bool) float64 {
	cuts := o.intersections(level, vertical)
	if len(cuts) < 2 {
		return 0
	}
	sort.Float64s(cuts)

	var total float64
	for i := 0; i+1 < len(cuts); i += 2 {
		total += cuts[i+1] - cuts[i]
	}
	return total
}

// intersections finds where a cut line crosses the polygon edges
func (o Outline) intersections(level float64, vertical bool) []float64 {
	var out []float64
	n := len(o.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a1, b1 := o.Vertices[i].Y, o.Vertices[i].X
		a2, b2 := o.Vertices[j].Y, o.Vertices[j].X
		if vertical {
			a1, b1 = o.Vertices[i].X, o.Vertices[i].Y
			a2, b2 = o.Vertices[j].X, o.Vertices[j].Y
		}
		if (a1 <= level && a2 > level) || (a2 <= level && a1 > level) {
			t := (level - a1) / (a2 - a1)
			out = append(out, b1+t*(b2-b1))
		}
	}
	return out
}
