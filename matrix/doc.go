// SPDX-License-Identifier: MIT

// Package matrix holds the integer adjacency matrices of unweighted graphs
// and the validators that guard them.
//
// The package provides:
//
//   - Dense, a row-major int matrix with O(1) At/Set and a zero-copy view
//     over an existing flat slice (FromFlat).
//   - Validators (ValidateSquare, ValidateBinary, ValidateZeroDiagonal,
//     ValidateSymmetric and the composite ValidateAdjacency) that return
//     tagged sentinel errors.
//   - QuadraticForm xᵀ·A·x in exact integer arithmetic, the kernel behind the
//     Max-Cut spin identity.
//
// Matrices here are small (n ≤ 30 vertices) and dense; every routine is
// deterministic and allocation-free unless it says otherwise.
package matrix
