// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood; cell (r,c) is vertex r*cols+c.
//
// Contract:
//   • rows, cols ≥ MinGridDim; rows*cols ≤ MaxVertices.
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Max-Cut: grids are bipartite (checkerboard), so every edge can be cut:
// rows*(cols-1) + cols*(rows-1).

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if rows > MaxVertices || cols > MaxVertices {
			return fmt.Errorf("%s: %dx%d exceeds %d vertices: %w", MethodGrid, rows, cols, MaxVertices, ErrTooManyVertices)
		}
		if err := ensure(MethodGrid, a, rows*cols, MinGridDim); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := link(MethodGrid, a, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(MethodGrid, a, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
