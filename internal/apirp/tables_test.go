package apirp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSandCoefficients(t *testing.T) {
	c1, c2, c3 := SandCoefficients(30)
	assert.InDelta(t, 2.46, c1, 1e-12)
	assert.InDelta(t, 3.81, c2, 1e-12)
	assert.InDelta(t, 31.4, c3, 1e-12)

	// halfway between 30 and 32
	c1, _, _ = SandCoefficients(31)
	assert.InDelta(t, (2.46+3.39)/2, c1, 1e-12)

	// clamped at both ends
	c1, _, _ = SandCoefficients(0)
	assert.InDelta(t, 1.22, c1, 1e-12)
	_, _, c3 = SandCoefficients(50)
	assert.InDelta(t, 292.0, c3, 1e-12)
}

func TestSandSubgradeModulus(t *testing.T) {
	assert.InDelta(t, 90.0, SandSubgradeModulus(32, false), 1e-12)
	assert.InDelta(t, 35.0, SandSubgradeModulus(32, true), 1e-12)
	assert.Less(t, SandSubgradeModulus(36, true), SandSubgradeModulus(36, false))
}

func TestAdhesionFactor(t *testing.T) {
	tcs := []struct {
		name       string
		cu, sigmaV float64
		want       float64
	}{
		{"normally consolidated", 400, 1600, 1.0},
		{"ratio one", 1000, 1000, 0.5},
		{"stiff", 4000, 1000, 0.5 * 0.7071067811865476},
		{"tomlinson soft", 300, 0, 1.0},
		{"tomlinson mid", 750, 0, 0.9},
		{"tomlinson very stiff", 6000, 0, 0.30},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, AdhesionFactor(tc.cu, tc.sigmaV), 1e-9)
		})
	}
}

func TestBeta(t *testing.T) {
	assert.InDelta(t, 0.0, Beta(0, 1, 0.7, 1), 1e-12)
	b := Beta(30, 1, 0.7, 1)
	assert.InDelta(t, 0.5*0.383864, b, 1e-5)
	assert.Greater(t, Beta(36, 1, 0.7, 1), b)
}

func TestSkinFrictionRatios(t *testing.T) {
	ks, d := SkinFrictionRatios("driven")
	assert.Equal(t, 1.0, ks)
	assert.Equal(t, 0.7, d)
	ks, d = SkinFrictionRatios("drilled")
	assert.Equal(t, 0.7, ks)
	assert.Equal(t, 0.8, d)
}

func TestMeyerhof(t *testing.T) {
	assert.InDelta(t, 30.0, MeyerhofNq(30), 1e-12)
	assert.InDelta(t, 37.0, MeyerhofNq(31), 1e-12)
	assert.InDelta(t, 100.0, MeyerhofBearingLimit(30), 1e-12)
	assert.InDelta(t, 500.0, MeyerhofBearingLimit(45), 1e-12)
}

func TestTableInterpolatesEachColumn(t *testing.T) {
	tb := newTable([][]float64{{0, 0, 10}, {10, 5, 30}})

	v := tb.at(4)
	assert.InDelta(t, 2.0, v[0], 1e-12)
	assert.InDelta(t, 18.0, v[1], 1e-12)
	assert.Equal(t, []float64{0, 10}, tb.at(-3))
	assert.Equal(t, []float64{5, 30}, tb.at(11))
}

func TestTZClayShapeEndsAtPeak(t *testing.T) {
	last := TZClayShape[len(TZClayShape)-1]
	assert.Equal(t, [2]float64{1, 1}, last)
	for i := 1; i < len(TZClayShape); i++ {
		assert.Greater(t, TZClayShape[i][1], TZClayShape[i-1][1])
	}
}
