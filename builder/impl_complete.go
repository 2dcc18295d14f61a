// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • 1 ≤ n ≤ MaxVertices.
//   • Emits each unordered pair {i,j}, i<j, once, in lexicographic order.
//
// Complexity: O(n²).
//
// Max-Cut: ⌊n/2⌋·⌈n/2⌉ (balanced split).

package builder

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if err := ensure(MethodComplete, a, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(MethodComplete, a, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
