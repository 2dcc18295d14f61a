// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • MinStarNodes ≤ n ≤ MaxVertices.
//   • Vertex 0 is the center; spokes 0 - i for i=1..n-1 in ascending order.
//
// Max-Cut: all n-1 spokes (center alone on one side).

package builder

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if err := ensure(MethodStar, a, n, MinStarNodes); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := link(MethodStar, a, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
