// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// histogram.go - Histogram: probability mass per integer cut value.
//
// Contract:
//   • 0 < maxValue and maxValue+1 ≤ bin cap (WithMaxBins), checked before
//     anything is allocated (ErrMaxValue).
//   • int(cost[i]) must lie in [0, maxValue] (ErrCostOutOfRange).
//   • Bin width is one cost unit: bin[v] = Σ |amp[i]|² over int(cost[i]) == v.
//     Non-integer costs are truncated toward zero, so -0.5 lands in bin 0 and
//     1.9 in bin 1. Costs from BuildCostOperator are always integers.
//
// Reduction: each span fills private bins; private bins are added into the
// rank's bins under a mutex, once per span; rank bins are summed across the
// group with one AllReduceSum. A failure-agreement AllReduceMaxInt precedes
// it on multi-rank groups.
//
// Complexity: O(L + workers·maxValue) time, O(workers·maxValue) space.

package qaoa

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/maxcut/cluster"
)

const methodHistogram = "Histogram"

// Histogram returns maxValue+1 bins of probability mass indexed by cut value.
func Histogram[C cluster.Amplitude, F Real](ctx context.Context, amp, cost *cluster.Vector[C], maxValue int, opts ...Option) (bins []F, err error) {
	cfg := newConfig(opts...)
	start := time.Now()
	if err = checkPair(methodHistogram, amp, cost); err != nil {
		return nil, err
	}
	defer func() {
		cfg.metrics.RecordOperation(OpHistogram, amp.LocalSize(), time.Since(start), err)
	}()
	if maxValue <= 0 || maxValue > cfg.maxBins-1 {
		return nil, fmt.Errorf("%s: maxValue=%d not in [1,%d]: %w", methodHistogram, maxValue, cfg.maxBins-1, ErrMaxValue)
	}

	width := maxValue + 1
	psi, diag := amp.Local(), cost.Local()
	spans := partition(len(psi), cfg.workers)
	rankBins := make([]float64, width)
	loopErr := reduceLocked(ctx, spans, func(s span) ([]float64, error) {
		private := make([]float64, width)
		for i := s.lo; i < s.hi; i++ {
			c := costValue(diag[i])
			// Guard before the int conversion: NaN and huge values have no
			// defined truncation.
			if math.IsNaN(c) || c <= -1 || c >= float64(width) {
				return nil, fmt.Errorf("%s: cost[%d]=%g not in [0,%d]: %w",
					methodHistogram, amp.Start()+uint64(i), c, maxValue, ErrCostOutOfRange)
			}
			private[int(c)] += probability(psi[i])
		}
		return private, nil
	}, func(private []float64) {
		for v, p := range private {
			rankBins[v] += p
		}
	})

	comm := amp.Comm()
	if err = agree(ctx, comm, methodHistogram, loopErr); err != nil {
		return nil, err
	}
	global := rankBins
	if comm.Size() > 1 {
		if global, err = comm.AllReduceSum(ctx, rankBins); err != nil {
			return nil, fmt.Errorf("%s: %w", methodHistogram, err)
		}
	}

	bins = make([]F, width)
	for v, p := range global {
		bins[v] = F(p)
	}
	cfg.logger.Debug("histogram reduced",
		"rank", comm.Rank(),
		"bins", width,
		"workers", len(spans),
		"elapsed", time.Since(start))

	return bins, nil
}
