// Package qaoa implements the problem-dependent half of a Max-Cut QAOA loop
// over a distributed amplitude vector:
//
//   - BuildCostOperator fills the diagonal cost vector with the cut value of
//     every vertex coloring and returns the global maximum cut.
//   - ApplyPhaseLayer rotates every amplitude by exp(-i·γ·cost).
//   - Expectation reduces Σ cost·|amp|² over the whole group.
//   - Histogram bins |amp|² by integer cut value over the whole group.
//
// Both vectors are *cluster.Vector shards. Each call splits the local shard
// into disjoint contiguous spans, one goroutine per span (see WithWorkers),
// combines the per-span partial results, and then combines the per-rank
// results with one blocking collective. Every rank of the group must make the
// same calls in the same order.
//
// Basis state k colors vertex j with bit j of k (bit 0 least significant);
// bit 0 maps to spin -1 and bit 1 to spin +1. With spins s and adjacency A,
//
//	sᵀ·A·s = 2·(uncut - cut)   ⇒   cut = (E - sᵀ·A·s / 2) / 2
//
// where E is the number of edges.
//
// Precision is chosen by instantiation: complex128 amplitudes with float64
// results, or complex64 with float32.
//
// Errors: every malformed input (adjacency shape, diagonal, symmetry, parity,
// vector sizes, cost values outside the histogram range) fails fast with a
// sentinel from errors.go; nothing is retried. Data-dependent failures are
// agreed on across the group before the data collective, so a failure on one
// rank surfaces as ErrPeerFailed on the others instead of a hang.
package qaoa
