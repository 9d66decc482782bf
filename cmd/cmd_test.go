package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gopile/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectYAML = `
name: test pile
embedment: 40
section:
  pipe: {name: PP16x0.5, diameter: 16, wall: 0.5, fy: 50}
soil:
  - {top_depth: 0, thickness: 10, soil_type: sand, phi: 34, gamma: 120, n_spt: 18}
  - {top_depth: 10, thickness: 50, soil_type: sand, phi: 34, gamma: 120}
loads:
  axial: 10000
  lateral: 2000
`

func writeProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(projectYAML), 0o644))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	settings = config.New()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestBindFlagsOnlyChanged(t *testing.T) {
	v := config.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("elements", 0, "")
	fs.String("head", "", "")
	require.NoError(t, fs.Parse([]string{"--elements", "25"}))

	require.NoError(t, bindFlags(v, fs))

	assert.Equal(t, 25, v.GetInt("solver.elements"))
	assert.Equal(t, "free", v.GetString("solver.head"))
}

func TestCommands(t *testing.T) {
	path := writeProject(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"analyze", []string{"analyze", "-f", path, "--elements", "30", "--diagram"}},
		{"analyze json", []string{"analyze", "-f", path, "--json"}},
		{"pushover", []string{"pushover", "-f", path, "--steps", "4", "--max-mult", "1.5", "-o", filepath.Join(dir, "po.png")}},
		{"stiffness", []string{"stiffness", "-f", path, "--json"}},
		{"buckling", []string{"buckling", "-f", path}},
		{"curves", []string{"curves", "-f", path, "--kind", "t-z", "--depths", "2,10"}},
		{"version", []string{"version"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, execute(t, tt.args...))
		})
	}
	assert.FileExists(t, filepath.Join(dir, "po.png"))
}

func TestCommandErrors(t *testing.T) {
	path := writeProject(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing project", []string{"analyze", "-f", filepath.Join(t.TempDir(), "nope.yaml")}, "reading project"},
		{"bad direction", []string{"pushover", "-f", path, "--direction", "up"}, "--direction"},
		{"bad kind", []string{"curves", "-f", path, "--kind", "m-theta"}, "--kind"},
		{"bad config value", []string{"analyze", "-f", path, "--head", "pinned"}, "solver.head"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, execute(t, tt.args...), tt.want)
		})
	}
}
