package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, bnwf.DefaultOptions(), c.Options())
	assert.Equal(t, "info", c.Log.Level)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("GOPILE_SOLVER_ELEMENTS", "80")
	t.Setenv("GOPILE_SOLVER_HEAD", "fixed")
	t.Setenv("GOPILE_LOG_LEVEL", "debug")

	c, err := Load(New(), "")
	require.NoError(t, err)

	o := c.Options()
	assert.Equal(t, 80, o.NElements)
	assert.Equal(t, bnwf.Fixed, o.Head)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gopile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
solver:
  elements: 30
  tolerance: 1.0e-4
  p_delta: false
  axis: weak
  installation: drilled
log:
  development: true
`), 0o644))

	c, err := Load(New(), path)
	require.NoError(t, err)

	o := c.Options()
	assert.Equal(t, 30, o.NElements)
	assert.Equal(t, 1e-4, o.Tol)
	assert.False(t, o.PDelta)
	assert.Equal(t, section.Weak, o.BendingAxis)
	assert.Equal(t, "drilled", o.Installation)
	assert.Equal(t, bnwf.DefaultMaxIterations, o.MaxIter)
	assert.True(t, c.Log.Development)
}

func TestMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"elements", func(c *Config) { c.Solver.Elements = 0 }, "solver.elements"},
		{"iterations", func(c *Config) { c.Solver.MaxIterations = 0 }, "solver.max_iterations"},
		{"tolerance", func(c *Config) { c.Solver.Tolerance = -1 }, "solver.tolerance"},
		{"head", func(c *Config) { c.Solver.Head = "pinned" }, "solver.head"},
		{"axis", func(c *Config) { c.Solver.Axis = "diagonal" }, "solver.axis"},
		{"backend", func(c *Config) { c.Solver.Backend = "opensees" }, "solver.backend"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(New(), "")
			require.NoError(t, err)
			tt.mutate(c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}
