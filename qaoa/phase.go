// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// phase.go - ApplyPhaseLayer: amp[i] *= exp(-i·γ·cost[i]).
//
// Elementwise over disjoint spans; no collective, no ordering between
// indexes. |amp[i]| is unchanged up to rounding of the unit factor.

package qaoa

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/maxcut/cluster"
)

const methodApplyPhaseLayer = "ApplyPhaseLayer"

// ApplyPhaseLayer applies one cost layer with angle gamma to amp in place.
// cost is only read.
func ApplyPhaseLayer[C cluster.Amplitude, F Real](ctx context.Context, amp, cost *cluster.Vector[C], gamma F, opts ...Option) (err error) {
	cfg := newConfig(opts...)
	start := time.Now()
	if err = checkPair(methodApplyPhaseLayer, amp, cost); err != nil {
		return err
	}
	defer func() {
		cfg.metrics.RecordOperation(OpApplyPhaseLayer, amp.LocalSize(), time.Since(start), err)
	}()

	g := float64(gamma)
	psi, diag := amp.Local(), cost.Local()
	spans := partition(len(psi), cfg.workers)
	err = forEach(ctx, spans, func(_ int, s span) error {
		for i := s.lo; i < s.hi; i++ {
			sin, cos := math.Sincos(g * costValue(diag[i]))
			psi[i] *= C(complex(cos, -sin))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", methodApplyPhaseLayer, err)
	}
	cfg.logger.Debug("phase layer applied",
		"rank", amp.Comm().Rank(),
		"gamma", g,
		"local_size", len(psi),
		"workers", len(spans),
		"elapsed", time.Since(start))

	return nil
}
