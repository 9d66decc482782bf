package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSolve(t *testing.T) {
	r := NewRecorder()
	r.ObserveSolve("converged", 12)
	r.ObserveSolve("converged", 7)
	r.ObserveSolve("failed", 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.solves.WithLabelValues("converged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.solves.WithLabelValues("failed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.solves.WithLabelValues("exhausted")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.iterations))

	families, err := r.Families()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "gopile_solver_iterations" {
			h := mf.GetMetric()[0].GetHistogram()
			assert.Equal(t, uint64(3), h.GetSampleCount())
			assert.Equal(t, 20.0, h.GetSampleSum())
		}
	}
}

func TestWriteText(t *testing.T) {
	r := NewRecorder()
	r.ObserveSolve("exhausted", 300)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `gopile_solves_total{outcome="exhausted"} 1`)
	assert.Contains(t, out, "# TYPE gopile_solver_iterations histogram")
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.ObserveSolve("converged", 3)

	assert.Equal(t, 1, testutil.CollectAndCount(a.solves))
	assert.Equal(t, 0, testutil.CollectAndCount(b.solves))
}

func TestRegistryGathersBothMetrics(t *testing.T) {
	r := NewRecorder()
	r.ObserveSolve("converged", 4)
	r.ObserveSolve("failed", 1)

	n, err := testutil.GatherAndCount(r.Registry(), "gopile_solves_total", "gopile_solver_iterations")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
