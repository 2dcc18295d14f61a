// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • MinCycleNodes ≤ n ≤ MaxVertices (else ErrTooFewVertices / ErrTooManyVertices).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity: O(n) edges after an O(n²) grow.
//
// Max-Cut: C_n has max cut n for even n and n-1 for odd n.

package builder

// Cycle returns a Constructor that builds the n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if err := ensure(MethodCycle, a, n, MinCycleNodes); err != nil {
			return err
		}
		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := link(MethodCycle, a, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
