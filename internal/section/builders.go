package section

import "math"

// Pipe builds a round pipe pile from its outer diameter and wall thickness (in).
// Skin friction acts on the outer perimeter and end bearing on the plugged tip.
func Pipe(name string, od, wall, fy float64) Pile {
	id := math.Max(od-2*wall, 0)
	area := math.Pi / 4 * (od*od - id*id)
	i := math.Pi / 64 * (math.Pow(od, 4) - math.Pow(id, 4))
	var s float64
	if od > 0 {
		s = i / (od / 2)
	}
	z := (math.Pow(od, 3) - math.Pow(id, 3)) / 6

	return Pile{
		Name:      name,
		Shape:     "pipe",
		Depth:     od,
		Width:     od,
		Area:      area,
		Perimeter: math.Pi * od,
		TipArea:   math.Pi / 4 * od * od,
		Ix:        i,
		Iy:        i,
		Sx:        s,
		Sy:        s,
		Zx:        z,
		Zy:        z,
		Fy:        fy,
	}
}

// WideFlangeDims are the tabulated properties of a rolled W or C shape
type WideFlangeDims struct {
	Depth, Width float64 // d, bf (in)
	Tf, Tw       float64 // flange and web thickness (in)
	Area         float64 // in²
	Ix, Iy       float64 // in⁴
	Sx, Sy       float64 // in³
	Zx, Zy       float64 // in³
}

// WideFlange builds a W shape (channel when channel is true). The exposed
// perimeter of a W is 2d + 4bf − 2tw, a channel 2d + 2bf; the tip is taken
// as plugged (d·bf).
func WideFlange(name string, dims WideFlangeDims, fy float64, channel bool) Pile {
	shape := "W"
	perimeter := 2*dims.Depth + 4*dims.Width - 2*dims.Tw
	if channel {
		shape = "C"
		perimeter = 2*dims.Depth + 2*dims.Width
	}
	return Pile{
		Name:      name,
		Shape:     shape,
		Depth:     dims.Depth,
		Width:     dims.Width,
		Area:      dims.Area,
		Perimeter: perimeter,
		TipArea:   dims.Depth * dims.Width,
		Ix:        dims.Ix,
		Iy:        dims.Iy,
		Sx:        dims.Sx,
		Sy:        dims.Sy,
		Zx:        dims.Zx,
		Zy:        dims.Zy,
		Fy:        fy,
	}
}
