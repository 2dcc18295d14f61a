// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// adjacency.go - validation of flattened adjacency matrices and the
// direct cut count of a single coloring.
//
// Layout: row-major, A[u][v] = adjacency[u*n+v], entries in {0,1},
// symmetric, zero diagonal. Each undirected edge contributes two entries.

package qaoa

import (
	"fmt"

	"github.com/katalvlaran/maxcut/matrix"
)

const methodCutValue = "CutValue"

// validateAdjacency wraps the flat matrix for n vertices, checks it and
// returns it with the number of edges (half the entry sum). Each failure
// carries both the qaoa sentinel and the matrix one.
func validateAdjacency(method string, adjacency []int, n int) (*matrix.Dense, int, error) {
	if n < 1 {
		return nil, 0, fmt.Errorf("%s: n=%d: %w", method, n, ErrAdjacencyShape)
	}
	m, err := matrix.FromFlat(n, n, adjacency)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w: %w", method, ErrAdjacencyShape, err)
	}
	if err = matrix.ValidateBinary(m); err != nil {
		return nil, 0, fmt.Errorf("%s: %w: %w", method, ErrNotBinary, err)
	}
	if err = matrix.ValidateZeroDiagonal(m); err != nil {
		return nil, 0, fmt.Errorf("%s: %w: %w", method, ErrNonZeroDiagonal, err)
	}
	total := m.Sum()
	if total%2 != 0 {
		return nil, 0, fmt.Errorf("%s: sum=%d: %w", method, total, ErrOddEdgeCount)
	}
	if err = matrix.ValidateSymmetric(m); err != nil {
		return nil, 0, fmt.Errorf("%s: %w: %w", method, ErrAsymmetric, err)
	}

	return m, total / 2, nil
}

// CutValue counts the edges whose endpoints get different bits in the
// coloring bits (len(bits) vertices). It walks the upper triangle and does
// not use the spin identity, so it can cross-check BuildCostOperator.
func CutValue(bits []int, adjacency []int) (int, error) {
	n := len(bits)
	if n < 1 {
		return 0, fmt.Errorf("%s: n=0: %w", methodCutValue, ErrAdjacencyShape)
	}
	m, err := matrix.FromFlat(n, n, adjacency)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", methodCutValue, ErrAdjacencyShape, err)
	}
	cut := 0
	for u := 0; u < n; u++ {
		row := m.Row(u)
		for v := u + 1; v < n; v++ {
			if row[v] != 0 && bits[u] != bits[v] {
				cut++
			}
		}
	}

	return cut, nil
}
