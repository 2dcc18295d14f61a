package qaoa_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/cluster"
	"github.com/katalvlaran/maxcut/qaoa"
)

// Example runs one cost layer on the 4-cycle over two simulated ranks.
func Example() {
	a, _ := builder.BuildAdjacency(nil, builder.Cycle(4))

	_ = cluster.Run(context.Background(), 2, func(ctx context.Context, comm cluster.Comm) error {
		cost, err := cluster.NewVector[complex128](comm, a.N())
		if err != nil {
			return err
		}
		amp, err := cluster.NewVector[complex128](comm, a.N())
		if err != nil {
			return err
		}
		maxCut, err := qaoa.BuildCostOperator(ctx, cost, a.Flat())
		if err != nil {
			return err
		}
		qaoa.UniformSuperposition(amp)
		if err := qaoa.ApplyPhaseLayer(ctx, amp, cost, 0.5); err != nil {
			return err
		}
		exp, err := qaoa.Expectation[complex128, float64](ctx, amp, cost)
		if err != nil {
			return err
		}
		hist, err := qaoa.Histogram[complex128, float64](ctx, amp, cost, maxCut)
		if err != nil {
			return err
		}
		if comm.Rank() == 0 {
			fmt.Printf("max cut %d, <C> = %.2f\n", maxCut, exp)
			fmt.Printf("histogram %.4f\n", hist)
		}
		return nil
	})
	// Output:
	// max cut 4, <C> = 2.00
	// histogram [0.1250 0.0000 0.7500 0.0000 0.1250]
}
