package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipeYAML = `
name: Pier 3
embedment: 30
water_table: 10
section:
  pipe:
    name: PP16x0.5
    diameter: 16
    wall: 0.5
    fy: 50
soil:
  - top_depth: 10
    thickness: 30
    soil_type: clay
    c_u: 1500
  - top_depth: 0
    thickness: 10
    soil_type: SAND
    n_spt: 15
loads:
  axial: 40000
  lateral: 10000
  moment: 5000
options:
  elements: 60
  head: Fixed
  p_delta: false
`

func TestParseYAML(t *testing.T) {
	p, err := Parse([]byte(pipeYAML), YAML)
	require.NoError(t, err)

	assert.Equal(t, "Pier 3", p.Name)
	assert.Equal(t, 30.0, p.Embedment)
	assert.Equal(t, "pipe", p.Section.Shape)
	assert.InDelta(t, 16.0, p.Section.Depth, 1e-12)
	assert.Equal(t, bnwf.Static, p.Loads.Type)

	layers := p.Profile.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, soil.Sand, layers[0].Type)
	assert.Equal(t, soil.Clay, layers[1].Type)
	wt, ok := p.Profile.WaterTable()
	require.True(t, ok)
	assert.Equal(t, 10.0, wt)
	assert.True(t, layers[1].Submerged)

	o := p.Options(bnwf.DefaultOptions())
	assert.Equal(t, 60, o.NElements)
	assert.Equal(t, bnwf.Fixed, o.Head)
	assert.False(t, o.PDelta)
	assert.Equal(t, bnwf.DefaultMaxIterations, o.MaxIter)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "name": "W pile",
  "embedment": 25,
  "section": {"wide_flange": {"name": "W12x53", "d": 12.1, "bf": 10.0, "tf": 0.575, "tw": 0.345,
    "area": 15.6, "ix": 425, "iy": 95.8, "sx": 70.6, "zx": 77.9, "fy": 50}},
  "soil": [{"top_depth": 0, "thickness": 40, "soil_type": "Sand", "phi": 33, "gamma": 120}],
  "loads": {"lateral": 5000, "load_type": "pushover_lateral", "pushover_steps": 10},
  "options": {"axis": "weak", "pile_type": "drilled"}
}`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, p.Path)
	assert.Equal(t, "W", p.Section.Shape)
	assert.Equal(t, bnwf.PushoverLateral, p.Loads.Type)
	assert.Equal(t, 10, p.Loads.PushoverSteps)

	o := p.Options(bnwf.DefaultOptions())
	assert.Equal(t, section.Weak, o.BendingAxis)
	assert.Equal(t, "drilled", o.Installation)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "reading project")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown field",
			doc:  "embedment: 10\nsurprise: 1\n",
			want: "parsing YAML",
		},
		{
			name: "no embedment",
			doc:  "section: {pipe: {diameter: 12, wall: 0.5}}\nsoil: [{top_depth: 0, thickness: 10, soil_type: sand}]\n",
			want: "embedment must be positive",
		},
		{
			name: "no soil",
			doc:  "embedment: 10\nsection: {pipe: {diameter: 12, wall: 0.5}}\n",
			want: "soil layer",
		},
		{
			name: "two sections",
			doc: "embedment: 10\nsection: {pipe: {diameter: 12, wall: 0.5}, custom: {depth: 1}}\n" +
				"soil: [{top_depth: 0, thickness: 10, soil_type: sand}]\n",
			want: "exactly one of",
		},
		{
			name: "invalid section",
			doc:  "embedment: 10\nsection: {custom: {name: bad, depth: 0}}\nsoil: [{top_depth: 0, thickness: 10, soil_type: sand}]\n",
			want: "depth and width must be positive",
		},
		{
			name: "bad soil type",
			doc:  "embedment: 10\nsection: {pipe: {diameter: 12, wall: 0.5}}\nsoil: [{top_depth: 0, thickness: 10, soil_type: peat}]\n",
			want: "parsing YAML",
		},
		{
			name: "overlapping layers",
			doc: "embedment: 10\nsection: {pipe: {diameter: 12, wall: 0.5}}\n" +
				"soil: [{top_depth: 0, thickness: 10, soil_type: sand}, {top_depth: 5, thickness: 10, soil_type: clay}]\n",
			want: "overlaps",
		},
		{
			name: "bad load type",
			doc: "embedment: 10\nsection: {pipe: {diameter: 12, wall: 0.5}}\n" +
				"soil: [{top_depth: 0, thickness: 10, soil_type: sand}]\nloads: {load_type: cyclic}\n",
			want: "loads.load_type",
		},
		{
			name: "bad override",
			doc: "embedment: 10\nsection: {pipe: {diameter: 12, wall: 0.5}}\n" +
				"soil: [{top_depth: 0, thickness: 10, soil_type: sand}]\noptions: {head: pinned}\n",
			want: "options.head",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), YAML)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestOverridesApplyOnlySetFields(t *testing.T) {
	tol := 1e-3
	cyclic := true
	base := bnwf.DefaultOptions()

	got := Overrides{Tolerance: &tol, Cyclic: &cyclic}.Apply(base)

	want := base
	want.Tol = tol
	want.Cyclic = true
	assert.Equal(t, want, got)
}

func TestLoadSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
outline:
  name: box
  fy: 36
  vertices: [{x: 0, y: 0}, {x: 12, y: 0}, {x: 12, y: 18}, {x: 0, y: 18}]
`), 0o644))

	sec, err := LoadSection(path)
	require.NoError(t, err)
	assert.Equal(t, "polygon", sec.Shape)
	assert.InDelta(t, 216.0, sec.Area, 1e-9)
	assert.InDelta(t, 12.0*18*18*18/12, sec.Ix, 1e-6)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"pipe": {"diameter": 0, "wall": 0}}`), 0o644))
	_, err = LoadSection(bad)
	assert.ErrorContains(t, err, "depth and width must be positive")
}
