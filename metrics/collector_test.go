package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/cluster"
	"github.com/katalvlaran/maxcut/metrics"
	"github.com/katalvlaran/maxcut/qaoa"
)

func TestCollector_RecordOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg, "test")

	c.RecordOperation(qaoa.OpExpectation, 8, time.Millisecond, nil)
	c.RecordOperation(qaoa.OpExpectation, 8, time.Millisecond, errors.New("x"))

	n, err := testutil.GatherAndCount(reg, "test_qaoa_operations_total", "test_qaoa_elements_total", "test_qaoa_operation_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if mf.GetName() == "test_qaoa_operations_total" {
				status := ""
				for _, l := range m.GetLabel() {
					if l.GetName() == "status" {
						status = l.GetValue()
					}
				}
				values[status] = m.GetCounter().GetValue()
			}
			if mf.GetName() == "test_qaoa_elements_total" {
				values["elements"] = m.GetCounter().GetValue()
			}
		}
	}
	require.Equal(t, 1.0, values[metrics.StatusOK])
	require.Equal(t, 1.0, values[metrics.StatusError])
	require.Equal(t, 16.0, values["elements"])
}

func TestCollector_WiredIntoQAOA(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg, "maxcut")

	a, err := builder.BuildAdjacency(nil, builder.Cycle(4))
	require.NoError(t, err)
	cost, err := cluster.NewVector[complex128](cluster.Solo(), a.N())
	require.NoError(t, err)
	_, err = qaoa.BuildCostOperator(context.Background(), cost, a.Flat(), qaoa.WithMetrics(c))
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "maxcut_qaoa_operations_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg, "dup")
	require.Panics(t, func() { metrics.NewCollector(reg, "dup") })
}
