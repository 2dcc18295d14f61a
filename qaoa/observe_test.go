package qaoa_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/cluster"
	"github.com/katalvlaran/maxcut/qaoa"
	"github.com/stretchr/testify/require"
)

func TestMetricsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := &qaoa.BasicMetricsCollector{}
	opts := []qaoa.Option{qaoa.WithLogger(logger), qaoa.WithMetrics(m), qaoa.WithWorkers(2)}
	ctx := context.Background()

	a := mustAdjacency(t, nil, builder.Cycle(4))
	cost, err := cluster.NewVector[complex128](cluster.Solo(), 4)
	require.NoError(t, err)
	amp, err := cluster.NewVector[complex128](cluster.Solo(), 4)
	require.NoError(t, err)
	qaoa.UniformSuperposition(amp)

	maxCut, err := qaoa.BuildCostOperator(ctx, cost, a.Flat(), opts...)
	require.NoError(t, err)
	require.NoError(t, qaoa.ApplyPhaseLayer(ctx, amp, cost, 0.2, opts...))
	_, err = qaoa.Expectation[complex128, float64](ctx, amp, cost, opts...)
	require.NoError(t, err)
	_, err = qaoa.Histogram[complex128, float64](ctx, amp, cost, maxCut, opts...)
	require.NoError(t, err)
	_, err = qaoa.Histogram[complex128, float64](ctx, amp, cost, 1, opts...)
	require.ErrorIs(t, err, qaoa.ErrCostOutOfRange)

	snap := m.Snapshot()
	require.Equal(t, int64(1), snap[qaoa.OpBuildCostOperator].Calls)
	require.Equal(t, int64(16), snap[qaoa.OpBuildCostOperator].Elements)
	require.Equal(t, int64(1), snap[qaoa.OpApplyPhaseLayer].Calls)
	require.Equal(t, int64(1), snap[qaoa.OpExpectation].Calls)
	require.Equal(t, int64(2), snap[qaoa.OpHistogram].Calls)
	require.Equal(t, int64(1), snap[qaoa.OpHistogram].Errors)

	out := buf.String()
	require.Contains(t, out, "cost operator built")
	require.Contains(t, out, "max_cut=4")
	require.Contains(t, out, "phase layer applied")
	require.Contains(t, out, "expectation reduced")
	require.Contains(t, out, "histogram reduced")
}
