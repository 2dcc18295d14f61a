// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • MinPathNodes ≤ n ≤ MaxVertices.
//   • Emits edges i - i+1 for i=0..n-2.
//
// Max-Cut: a path is bipartite, so every one of its n-1 edges can be cut.

package builder

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if err := ensure(MethodPath, a, n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(MethodPath, a, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
