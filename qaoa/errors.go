// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// errors.go - sentinel errors for the cost-operator routines.
//
// Policy:
//   • Return only these sentinels (wrapped with method context via %w).
//   • Callers and tests branch with errors.Is, never on message text.
//   • Runtime routines never panic; option constructors do on nonsense values.
//
// Priority when several checks fail: nil/size -> adjacency shape -> entries
// -> diagonal -> parity -> symmetry -> data-dependent (inexact, range).

package qaoa

import "errors"

var (
	// ErrNilVector indicates a nil amplitude or cost vector.
	ErrNilVector = errors.New("qaoa: nil vector")

	// ErrSizeMismatch indicates amplitude and cost vectors with different
	// local or global sizes.
	ErrSizeMismatch = errors.New("qaoa: vector size mismatch")

	// ErrAdjacencyShape indicates len(adjacency) != n·n for n vertices.
	ErrAdjacencyShape = errors.New("qaoa: adjacency is not n×n")

	// ErrNotBinary indicates an adjacency entry other than 0 or 1.
	ErrNotBinary = errors.New("qaoa: adjacency entry is not 0/1")

	// ErrNonZeroDiagonal indicates a self-loop in the adjacency matrix.
	ErrNonZeroDiagonal = errors.New("qaoa: adjacency diagonal not zero")

	// ErrAsymmetric indicates A[u][v] != A[v][u] for some pair.
	ErrAsymmetric = errors.New("qaoa: adjacency is not symmetric")

	// ErrOddEdgeCount indicates the adjacency entries sum to an odd number,
	// i.e. some edge is not counted twice.
	ErrOddEdgeCount = errors.New("qaoa: adjacency entry sum is odd")

	// ErrInexactCut indicates a non-exact intermediate division while
	// deriving a cut value; the adjacency matrix is inconsistent.
	ErrInexactCut = errors.New("qaoa: cut value is not an integer")

	// ErrMaxValue indicates a histogram upper bound ≤ 0 or above the bin cap.
	ErrMaxValue = errors.New("qaoa: histogram max value out of range")

	// ErrCostOutOfRange indicates a cost entry outside [0, maxValue].
	ErrCostOutOfRange = errors.New("qaoa: cost value outside histogram range")

	// ErrPeerFailed indicates another rank of the group failed the same call.
	ErrPeerFailed = errors.New("qaoa: peer rank failed")
)
