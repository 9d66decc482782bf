package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipe(t *testing.T) {
	p := Pipe("PP12x0.5", 12.75, 0.5, 50)

	assert.InDelta(t, math.Pi/4*(12.75*12.75-11.75*11.75), p.Area, 1e-9)
	assert.InDelta(t, math.Pi*12.75, p.Perimeter, 1e-9)
	assert.InDelta(t, math.Pi/4*12.75*12.75, p.TipArea, 1e-9)
	assert.Equal(t, p.Ix, p.Iy)
	assert.InDelta(t, p.Ix/(12.75/2), p.Sx, 1e-9)
	assert.Greater(t, p.Zx, p.Sx)
	assert.InDelta(t, 50*p.Sx, p.YieldMoment(Strong), 1e-9)
	assert.InDelta(t, 50*p.Zy, p.PlasticMoment(Weak), 1e-9)
	require.NoError(t, p.Validate())
}

func TestWideFlange(t *testing.T) {
	dims := WideFlangeDims{Depth: 6, Width: 6, Tf: 0.4, Tw: 0.25, Area: 5.9, Ix: 41.4, Iy: 13.3, Sx: 13.4, Sy: 4.41, Zx: 14.9, Zy: 6.72}

	w := WideFlange("W6x20", dims, 50, false)
	assert.Equal(t, "W", w.Shape)
	assert.InDelta(t, 2*6+4*6-2*0.25, w.Perimeter, 1e-12)
	assert.InDelta(t, 36, w.TipArea, 1e-12)

	c := WideFlange("C6x13", dims, 36, true)
	assert.Equal(t, "C", c.Shape)
	assert.InDelta(t, 24, c.Perimeter, 1e-12)
}

func TestAxisQueries(t *testing.T) {
	p := Pile{Name: "x", Depth: 10, Width: 4, Area: 10, Ix: 200, Iy: 20}

	assert.InDelta(t, DefaultModulus*200, p.EI(Strong), 1e-3)
	assert.InDelta(t, DefaultModulus*20, p.EI(Weak), 1e-3)
	assert.Equal(t, 10.0, p.BendingWidth(Strong))
	assert.Equal(t, 4.0, p.BendingWidth(Weak))
	assert.InDelta(t, DefaultModulus*10, p.EA(), 1e-3)

	p.E = 1000
	assert.Equal(t, 200000.0, p.EI(Strong))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		pile Pile
	}{
		{"zero depth", Pile{Width: 1, Area: 1, Ix: 1, Iy: 1}},
		{"zero area", Pile{Depth: 1, Width: 1, Ix: 1, Iy: 1}},
		{"zero inertia", Pile{Depth: 1, Width: 1, Area: 1, Iy: 1}},
		{"negative perimeter", Pile{Depth: 1, Width: 1, Area: 1, Ix: 1, Iy: 1, Perimeter: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pile.Validate()
			require.Error(t, err)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestOutlineRectangle(t *testing.T) {
	// 12 x 18 rectangle, clockwise to exercise orientation handling
	o := Outline{Name: "rect", Vertices: []Point{{0, 0}, {0, 18}, {12, 18}, {12, 0}}, E: 4e6, Fy: 5}

	p, err := o.Pile()
	require.NoError(t, err)

	assert.InDelta(t, 216, p.Area, 1e-9)
	assert.InDelta(t, 18, p.Depth, 1e-12)
	assert.InDelta(t, 12, p.Width, 1e-12)
	assert.InDelta(t, 60, p.Perimeter, 1e-9)
	assert.InDelta(t, 12*math.Pow(18, 3)/12, p.Ix, 1e-6)
	assert.InDelta(t, 18*math.Pow(12, 3)/12, p.Iy, 1e-6)
	assert.InDelta(t, 12*18*18/6.0, p.Sx, 1e-6)
	assert.InDelta(t, 12*18*18/4.0, p.Zx, 1.0)
	assert.InDelta(t, 18*12*12/4.0, p.Zy, 1.0)
	assert.Equal(t, 4e6, p.Modulus())
}

func TestOutlineDegenerate(t *testing.T) {
	_, err := Outline{Name: "line", Vertices: []Point{{0, 0}, {1, 1}}}.Pile()
	assert.Error(t, err)

	_, err = Outline{Name: "flat", Vertices: []Point{{0, 0}, {1, 0}, {2, 0}}}.Pile()
	assert.Error(t, err)
}
