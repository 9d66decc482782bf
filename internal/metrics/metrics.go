// Package metrics exposes solver outcome metrics with prometheus.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "gopile"

// Recorder counts solves by outcome and tracks iteration counts. It owns a
// private registry so several recorders can coexist in one process.
type Recorder struct {
	registry   *prometheus.Registry
	solves     *prometheus.CounterVec
	iterations prometheus.Histogram
}

// NewRecorder creates a recorder with its metrics registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Static pile solves by terminal state.",
		}, []string{"outcome"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_iterations",
			Help:      "Secant iterations per static solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	r.registry.MustRegister(r.solves, r.iterations)
	return r
}

// ObserveSolve records one finished static solve
func (r *Recorder) ObserveSolve(outcome string, iterations int) {
	r.solves.WithLabelValues(outcome).Inc()
	r.iterations.Observe(float64(iterations))
}

// Registry returns the recorder's registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Families gathers the current metric families
func (r *Recorder) Families() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// WriteText writes the metrics in the prometheus text exposition format
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.Families()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
