// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// expectation.go - Expectation: Σ cost[i]·|amp[i]|² over the group.
//
// Per-span partial sums are written to disjoint slots and added in span
// order, then summed across ranks with one AllReduceSum (skipped on a
// single-rank group). Summation order differs from a sequential loop, so
// results agree with it within floating-point tolerance.

package qaoa

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/maxcut/cluster"
)

const methodExpectation = "Expectation"

// Expectation returns the expected cut value of the state amp.
func Expectation[C cluster.Amplitude, F Real](ctx context.Context, amp, cost *cluster.Vector[C], opts ...Option) (value F, err error) {
	cfg := newConfig(opts...)
	start := time.Now()
	if err = checkPair(methodExpectation, amp, cost); err != nil {
		return 0, err
	}
	defer func() {
		cfg.metrics.RecordOperation(OpExpectation, amp.LocalSize(), time.Since(start), err)
	}()

	psi, diag := amp.Local(), cost.Local()
	spans := partition(len(psi), cfg.workers)
	partial := make([]float64, len(spans))
	err = forEach(ctx, spans, func(w int, s span) error {
		acc := 0.0
		for i := s.lo; i < s.hi; i++ {
			acc += costValue(diag[i]) * probability(psi[i])
		}
		partial[w] = acc
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodExpectation, err)
	}
	local := 0.0
	for _, p := range partial {
		local += p
	}

	total := local
	comm := amp.Comm()
	if comm.Size() > 1 {
		sum, err := comm.AllReduceSum(ctx, []float64{local})
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodExpectation, err)
		}
		total = sum[0]
	}
	cfg.logger.Debug("expectation reduced",
		"rank", comm.Rank(),
		"local", local,
		"global", total,
		"workers", len(spans),
		"elapsed", time.Since(start))

	return F(total), nil
}
