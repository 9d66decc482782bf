// Package logging builds the logr.Logger used by the CLI and the solver.
// Verbosity follows logr conventions: V(0) is always shown, higher levels
// need a larger configured verbosity.
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logger.V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// ParseLevel converts a level name ("info", "debug", "trace") to a verbosity.
func ParseLevel(name string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	}
	return INFO, fmt.Errorf("unknown log level %q (want info, debug or trace)", name)
}

// NewLogger returns a zap-backed logger writing to stderr. Development mode
// switches to the human readable console encoder with caller information.
func NewLogger(verbosity int, development bool) (logr.Logger, error) {
	if verbosity < 0 {
		verbosity = 0
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Sampling = nil
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("building logger: %w", err)
	}
	return zapr.NewLogger(z), nil
}
