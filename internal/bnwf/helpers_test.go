package bnwf

import (
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/alexiusacademia/gopile/internal/soil"
)

func ptr(v float64) *float64 { return &v }

func sandProfile() *soil.Profile {
	return soil.NewProfile([]soil.Layer{
		{TopDepth: 0, Thickness: 40, Type: soil.Sand, Phi: ptr(32), Gamma: ptr(120)},
	}, nil)
}

func clayProfile() *soil.Profile {
	return soil.NewProfile([]soil.Layer{
		{TopDepth: 0, Thickness: 40, Type: soil.Clay, Cu: ptr(1200), Gamma: ptr(115)},
	}, nil)
}

// testPile has EI = 1e10 lb-in² about both axes
func testPile() section.Pile {
	i := 1e10 / section.DefaultModulus
	return section.Pile{
		Name:      "EI1e10",
		Depth:     12,
		Width:     12,
		Area:      20,
		Perimeter: 48,
		TipArea:   144,
		Ix:        i,
		Iy:        i,
		Sx:        i / 6,
		Sy:        i / 6,
		Fy:        50,
	}
}

func scenarioOptions() Options {
	opts := DefaultOptions()
	opts.NElements = 40
	opts.Tol = 1e-4
	return opts
}
