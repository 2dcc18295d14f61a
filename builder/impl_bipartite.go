// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices); n1+n2 ≤ MaxVertices.
//   • Left partition is vertices 0..n1-1, right partition n1..n1+n2-1.
//   • Emits every cross pair, i asc over left, inner j asc over right.
//
// Max-Cut: all n1·n2 edges (the bipartition itself).

package builder

import "fmt"

const minPartitionSize = 1

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: partitions %d,%d < min=%d: %w",
				MethodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if err := ensure(MethodCompleteBipartite, a, n1+n2, 2*minPartitionSize); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := link(MethodCompleteBipartite, a, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
