package qaoa_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/maxcut/bitenc"
	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/cluster"
	"github.com/katalvlaran/maxcut/qaoa"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// mustAdjacency builds a matrix from constructors or fails the test.
func mustAdjacency(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *builder.Adjacency {
	t.Helper()
	a, err := builder.BuildAdjacency(bopts, cons...)
	require.NoError(t, err)
	return a
}

// bruteForceCuts returns CutValue for every coloring of n vertices.
func bruteForceCuts(t *testing.T, adjacency []int, n int) []int {
	t.Helper()
	cuts := make([]int, 1<<n)
	for k := range cuts {
		bits, err := bitenc.ToBits(uint64(k), n)
		require.NoError(t, err)
		cuts[k], err = qaoa.CutValue(bits, adjacency)
		require.NoError(t, err)
	}
	return cuts
}

// testState returns a normalized, non-uniform state with distinct phases.
func testState(n int) []complex128 {
	state := make([]complex128, 1<<n)
	norm := 0.0
	for k := range state {
		re := 1 + float64(k%3)
		im := 0.5 * float64(k%2)
		state[k] = complex(re, im)
		norm += re*re + im*im
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for k := range state {
		state[k] *= scale
	}
	return state
}

// pipelineResult is what one rank observed running the full cost pipeline.
type pipelineResult struct {
	maxCut      int
	expectation float64
	histogram   []float64
}

// runPipeline runs build → phase(gamma) → expectation → histogram on procs
// ranks and returns every rank's result plus the gathered global cost vector.
func runPipeline(t *testing.T, procs, workers int, adjacency []int, n int, state []complex128, gamma float64) ([]pipelineResult, []float64) {
	t.Helper()
	var mu sync.Mutex
	results := make([]pipelineResult, procs)
	costs := make([]float64, 1<<n)
	opts := []qaoa.Option{qaoa.WithWorkers(workers)}

	err := cluster.Run(context.Background(), procs, func(ctx context.Context, comm cluster.Comm) error {
		cost, err := cluster.NewVector[complex128](comm, n)
		if err != nil {
			return err
		}
		amp, err := cluster.NewVector[complex128](comm, n)
		if err != nil {
			return err
		}
		maxCut, err := qaoa.BuildCostOperator(ctx, cost, adjacency, opts...)
		if err != nil {
			return err
		}
		amp.Fill(func(k uint64) complex128 { return state[k] })
		if err := qaoa.ApplyPhaseLayer(ctx, amp, cost, gamma, opts...); err != nil {
			return err
		}
		exp, err := qaoa.Expectation[complex128, float64](ctx, amp, cost, opts...)
		if err != nil {
			return err
		}
		hist, err := qaoa.Histogram[complex128, float64](ctx, amp, cost, maxCut, opts...)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		results[comm.Rank()] = pipelineResult{maxCut: maxCut, expectation: exp, histogram: hist}
		for i, c := range cost.Local() {
			costs[cost.Start()+uint64(i)] = real(c)
		}
		return nil
	})
	require.NoError(t, err)
	return results, costs
}
