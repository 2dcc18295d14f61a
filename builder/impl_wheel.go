// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition: Wₙ = Cₙ₋₁ + hub, i.e. a cycle over vertices 0..n-2
// plus hub vertex n-1 joined to every ring vertex.
//
// Contract:
//   • MinWheelNodes ≤ n ≤ MaxVertices (outer ring must be a valid cycle).
//   • Builds the ring with Cycle(n-1), then spokes in ring-index order.

package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel Wₙ.
func Wheel(n int) Constructor {
	return func(a *Adjacency, cfg builderConfig) error {
		if err := ensure(MethodWheel, a, n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(a, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := link(MethodWheel, a, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
