// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model: Erdős–Rényi G(n,p); each unordered pair {i,j}, i<j, is
// included independently with probability p.
//
// Contract:
//   • 1 ≤ n ≤ MaxVertices (else ErrTooFewVertices / ErrTooManyVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   • Stable trial order: i asc, then j asc with j > i; one Float64 draw per
//     pair, so a fixed seed yields a fixed matrix.

package builder

import "fmt"

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(a *Adjacency, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := ensure(MethodRandomSparse, a, n, minRandomSparseVertices); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == MinProbability:
					keep = false
				case p == MaxProbability:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := link(MethodRandomSparse, a, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
