// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// adjacency.go - the symmetric {0,1} matrix every constructor writes into.
//
// Invariants:
//   • mat is n×n, row-major: A[u][v] = Flat()[u*n+v].
//   • A[u][v] == A[v][u] ∈ {0,1}; A[v][v] == 0.
//   • edges == number of unordered pairs with A[u][v] == 1.
//
// Storage is a matrix.Dense; matrix.ValidateAdjacency holds for every
// matrix a constructor returns.
//
// Complexity: AddEdge/HasEdge O(1); grow O(n²); Flat O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxcut/matrix"
)

// Adjacency is an undirected, unweighted adjacency matrix.
type Adjacency struct {
	n     int
	mat   *matrix.Dense
	edges int
}

// NewAdjacency returns an edgeless matrix over n vertices (0 ≤ n ≤ MaxVertices).
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency: n=%d: %w", n, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("NewAdjacency: n=%d > %d: %w", n, MaxVertices, ErrTooManyVertices)
	}
	mat, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewAdjacency: %w", err)
	}

	return &Adjacency{n: n, mat: mat}, nil
}

// N returns the number of vertices.
func (a *Adjacency) N() int { return a.n }

// EdgeCount returns the number of undirected edges.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Matrix returns the backing matrix. Callers must not mutate it.
func (a *Adjacency) Matrix() *matrix.Dense { return a.mat }

// AddEdge connects u and v in both directions. Re-adding an edge is a no-op.
func (a *Adjacency) AddEdge(u, v int) error {
	if u < 0 || u >= a.n || v < 0 || v >= a.n {
		return fmt.Errorf("AddEdge(%d,%d) with n=%d: %w", u, v, a.n, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if a.HasEdge(u, v) {
		return nil
	}
	if err := a.mat.Set(u, v, 1); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	if err := a.mat.Set(v, u, 1); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	a.edges++

	return nil
}

// HasEdge reports whether u and v are adjacent; out-of-range vertices are not.
func (a *Adjacency) HasEdge(u, v int) bool {
	x, err := a.mat.At(u, v)

	return err == nil && x == 1
}

// Degree returns the number of neighbors of v (0 when out of range).
func (a *Adjacency) Degree(v int) int {
	d, err := a.mat.RowSum(v)
	if err != nil {
		return 0
	}

	return d
}

// Flat returns a row-major copy of the matrix, the input format of
// qaoa.BuildCostOperator.
func (a *Adjacency) Flat() []int {
	return a.mat.Flat()
}

// grow widens the matrix to n vertices, keeping existing edges.
func (a *Adjacency) grow(n int) error {
	if n <= a.n {
		return nil
	}
	if n > MaxVertices {
		return fmt.Errorf("grow: n=%d > %d: %w", n, MaxVertices, ErrTooManyVertices)
	}
	mat, err := matrix.NewDense(n, n)
	if err != nil {
		return fmt.Errorf("grow: %w", err)
	}
	for u := 0; u < a.n; u++ {
		copy(mat.Row(u), a.mat.Row(u))
	}
	a.n, a.mat = n, mat

	return nil
}
