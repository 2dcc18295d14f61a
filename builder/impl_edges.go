// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_edges.go - implementation of FromEdges(n, edges) constructor.
//
// Contract:
//   • 1 ≤ n ≤ MaxVertices.
//   • Every pair must satisfy 0 ≤ u,v < n (ErrVertexRange) and u ≠ v
//     (ErrSelfLoop). Duplicates, in either orientation, collapse to one edge.
//   • Pairs are added in slice order; the first invalid pair aborts.

package builder

import "fmt"

const minEdgeListNodes = 1

// FromEdges returns a Constructor that adds an explicit undirected edge list
// over n vertices.
func FromEdges(n int, edges [][2]int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if err := ensure(MethodFromEdges, a, n, minEdgeListNodes); err != nil {
			return err
		}
		for k, e := range edges {
			if e[0] >= n || e[1] >= n {
				return fmt.Errorf("%s: edge %d (%d,%d) with n=%d: %w",
					MethodFromEdges, k, e[0], e[1], n, ErrVertexRange)
			}
			if err := link(MethodFromEdges, a, e[0], e[1]); err != nil {
				return fmt.Errorf("edge %d: %w", k, err)
			}
		}

		return nil
	}
}
