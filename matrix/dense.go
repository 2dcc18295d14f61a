// SPDX-License-Identifier: MIT
// Package: maxcut/matrix
//
// dense.go - Dense: row-major integer matrix.
//
// Contract:
//   • data has rows*cols entries; A[i,j] = data[i*cols+j].
//   • FromFlat shares the caller's slice; NewDense owns a fresh one.
//   • Accessors return ErrOutOfRange instead of panicking.

package matrix

import "fmt"

// Matrix is the read-only view the validators work on.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (int, error)
}

// Dense is a row-major integer matrix.
type Dense struct {
	rows, cols int
	data       []int
}

var _ Matrix = (*Dense)(nil)

// NewDense returns a zero rows×cols matrix. 0×0 is allowed.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// FromFlat wraps data as a rows×cols matrix without copying. Writes through
// Set are visible in data and the other way round.
func FromFlat(rows, cols int, data []int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromFlat(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromFlat(%d,%d): len=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}

	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns A[i,j].
func (m *Dense) At(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return m.data[i*m.cols+j], nil
}

// Set stores A[i,j] = v.
func (m *Dense) Set(i, j, v int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d) on %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	m.data[i*m.cols+j] = v

	return nil
}

// Row returns row i as a view into the backing slice, or nil when i is out
// of range.
func (m *Dense) Row(i int) []int {
	if i < 0 || i >= m.rows {
		return nil
	}

	return m.data[i*m.cols : (i+1)*m.cols]
}

// RowSum returns Σ_j A[i,j]; the degree of vertex i for an adjacency matrix.
func (m *Dense) RowSum(i int) (int, error) {
	row := m.Row(i)
	if row == nil {
		return 0, fmt.Errorf("RowSum(%d) on %dx%d: %w", i, m.rows, m.cols, ErrOutOfRange)
	}
	s := 0
	for _, v := range row {
		s += v
	}

	return s, nil
}

// Sum returns the sum of all entries; twice the edge count for a valid
// adjacency matrix.
func (m *Dense) Sum() int {
	s := 0
	for _, v := range m.data {
		s += v
	}

	return s
}

// Flat returns a row-major copy of the entries.
func (m *Dense) Flat() []int {
	out := make([]int, len(m.data))
	copy(out, m.data)

	return out
}

// QuadraticForm returns xᵀ·A·x for a square A and len(x) == Rows().
//
// Complexity: O(n²) time, no allocation. Safe for concurrent use while no
// one calls Set.
func (m *Dense) QuadraticForm(x []int) (int, error) {
	if m.rows != m.cols || len(x) != m.rows {
		return 0, fmt.Errorf("QuadraticForm: %dx%d with len(x)=%d: %w", m.rows, m.cols, len(x), ErrDimensionMismatch)
	}
	n := m.rows
	q := 0
	for i := 0; i < n; i++ {
		row := m.data[i*n : (i+1)*n]
		acc := 0
		for j, a := range row {
			acc += a * x[j]
		}
		q += x[i] * acc
	}

	return q, nil
}
