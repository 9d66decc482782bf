// Package config loads tool settings from defaults, an optional config file,
// GOPILE_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/logging"
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. GOPILE_SOLVER_ELEMENTS
const EnvPrefix = "GOPILE"

// Config holds the effective settings
type Config struct {
	Solver Solver `mapstructure:"solver"`
	Log    Log    `mapstructure:"log"`
}

// Solver holds the analysis defaults applied before project overrides
type Solver struct {
	Elements      int     `mapstructure:"elements"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Tolerance     float64 `mapstructure:"tolerance"`
	PDelta        bool    `mapstructure:"p_delta"`
	Cyclic        bool    `mapstructure:"cyclic"`
	Head          string  `mapstructure:"head"`
	Axis          string  `mapstructure:"axis"`
	Installation  string  `mapstructure:"installation"`
	Backend       string  `mapstructure:"backend"`
}

// Log holds logger settings
type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	d := bnwf.DefaultOptions()
	v.SetDefault("solver.elements", d.NElements)
	v.SetDefault("solver.max_iterations", d.MaxIter)
	v.SetDefault("solver.tolerance", d.Tol)
	v.SetDefault("solver.p_delta", d.PDelta)
	v.SetDefault("solver.cyclic", d.Cyclic)
	v.SetDefault("solver.head", string(d.Head))
	v.SetDefault("solver.axis", string(d.BendingAxis))
	v.SetDefault("solver.installation", d.Installation)
	v.SetDefault("solver.backend", string(d.Backend))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and decodes the result
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks for invalid configuration values
func (c *Config) Validate() error {
	s := c.Solver
	var errs []error
	if s.Elements < 1 || s.Elements > 2000 {
		errs = append(errs, fmt.Errorf("solver.elements must be between 1 and 2000, got %d", s.Elements))
	}
	if s.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("solver.max_iterations must be >= 1, got %d", s.MaxIterations))
	}
	if !(s.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("solver.tolerance must be positive, got %g", s.Tolerance))
	}
	if err := oneOf("solver.head", s.Head, string(bnwf.Free), string(bnwf.Fixed)); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("solver.axis", s.Axis, string(section.Strong), string(section.Weak)); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("solver.installation", s.Installation, "driven", "drilled", "helical"); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("solver.backend", s.Backend,
		string(bnwf.BackendAuto), string(bnwf.BackendDirect), string(bnwf.BackendExternal)); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
}

// Options converts the solver settings to analysis options
func (c *Config) Options() bnwf.Options {
	o := bnwf.DefaultOptions()
	o.NElements = c.Solver.Elements
	o.MaxIter = c.Solver.MaxIterations
	o.Tol = c.Solver.Tolerance
	o.PDelta = c.Solver.PDelta
	o.Cyclic = c.Solver.Cyclic
	o.Head = bnwf.HeadCondition(c.Solver.Head)
	o.BendingAxis = section.Axis(c.Solver.Axis)
	o.Installation = c.Solver.Installation
	o.Backend = bnwf.Backend(c.Solver.Backend)
	return o
}
