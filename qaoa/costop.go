// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// costop.go - BuildCostOperator: the diagonal Max-Cut cost vector.
//
// Contract:
//   • cost.NumQubits() is the vertex count n; adjacency is n×n, checked by the
//     matrix validators (see adjacency.go).
//   • For every local index i, global k = Start()+i colors vertex j with bit j
//     of k; bit 0 -> spin -1, bit 1 -> spin +1.
//   • q = sᵀ·A·s must be even and E - q/2 must be even (ErrInexactCut otherwise).
//   • cost[i] = cut + 0i. Returns the maximum cut over the whole group.
//
// Complexity: O(L·n²) time for local size L, O(workers·n) extra space.
// Collectives: one AllReduceMaxInt for failure agreement and one for the
// maximum, both skipped on a single-rank group.

package qaoa

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/maxcut/bitenc"
	"github.com/katalvlaran/maxcut/cluster"
	"github.com/katalvlaran/maxcut/matrix"
)

const methodBuildCostOperator = "BuildCostOperator"

// BuildCostOperator fills cost with the cut value of every basis state and
// returns the global maximum cut.
func BuildCostOperator[C cluster.Amplitude](ctx context.Context, cost *cluster.Vector[C], adjacency []int, opts ...Option) (maxCut int, err error) {
	cfg := newConfig(opts...)
	start := time.Now()
	if cost == nil {
		return 0, fmt.Errorf("%s: %w", methodBuildCostOperator, ErrNilVector)
	}
	defer func() {
		cfg.metrics.RecordOperation(OpBuildCostOperator, cost.LocalSize(), time.Since(start), err)
	}()

	n := cost.NumQubits()
	adj, edges, err := validateAdjacency(methodBuildCostOperator, adjacency, n)
	if err != nil {
		return 0, err
	}

	data := cost.Local()
	base := cost.Start()
	spans := partition(len(data), cfg.workers)
	localMax := 0
	loopErr := reduceLocked(ctx, spans, func(s span) (int, error) {
		bits := make([]int, n)
		spins := make([]int, n)
		spanMax := 0
		for i := s.lo; i < s.hi; i++ {
			k := base + uint64(i)
			if err := bitenc.ToBitsInto(k, bits); err != nil {
				return 0, fmt.Errorf("%s: %w", methodBuildCostOperator, err)
			}
			for v, b := range bits {
				spins[v] = 2*b - 1
			}
			cut, err := cutFromSpins(spins, adj, edges)
			if err != nil {
				return 0, fmt.Errorf("%s: index %d: %w", methodBuildCostOperator, k, err)
			}
			data[i] = C(complex(float64(cut), 0))
			if cut > spanMax {
				spanMax = cut
			}
		}
		return spanMax, nil
	}, func(spanMax int) {
		if spanMax > localMax {
			localMax = spanMax
		}
	})

	comm := cost.Comm()
	if err = agree(ctx, comm, methodBuildCostOperator, loopErr); err != nil {
		return 0, err
	}
	maxCut = localMax
	if comm.Size() > 1 {
		if maxCut, err = comm.AllReduceMaxInt(ctx, localMax); err != nil {
			return 0, fmt.Errorf("%s: %w", methodBuildCostOperator, err)
		}
	}
	cfg.logger.Debug("cost operator built",
		"rank", comm.Rank(),
		"vertices", n,
		"edges", edges,
		"local_size", len(data),
		"workers", len(spans),
		"local_max_cut", localMax,
		"max_cut", maxCut,
		"elapsed", time.Since(start))

	return maxCut, nil
}

// cutFromSpins evaluates cut = (E - sᵀ·A·s / 2) / 2 with exactness checks.
func cutFromSpins(spins []int, adj *matrix.Dense, edges int) (int, error) {
	q, err := adj.QuadraticForm(spins)
	if err != nil {
		return 0, err
	}
	if q%2 != 0 {
		return 0, fmt.Errorf("quadratic form %d is odd: %w", q, ErrInexactCut)
	}
	t := edges - q/2
	if t%2 != 0 {
		return 0, fmt.Errorf("E - q/2 = %d is odd: %w", t, ErrInexactCut)
	}

	return t / 2, nil
}
