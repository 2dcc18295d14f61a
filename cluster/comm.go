// SPDX-License-Identifier: MIT
// Package: maxcut/cluster
//
// comm.go - the Comm contract and the single-process implementation.

package cluster

import "context"

// Comm is one process's handle on its group.
//
// Collectives block until every rank of the group has entered the same call
// and return an identical result to all of them.
type Comm interface {
	// Rank returns this process's rank in [0, Size()).
	Rank() int

	// Size returns the number of processes in the group.
	Size() int

	// AllReduceMaxInt returns the maximum of v over all ranks.
	AllReduceMaxInt(ctx context.Context, v int) (int, error)

	// AllReduceSum returns the elementwise sum of v over all ranks.
	// All ranks must pass slices of equal length; v is not modified.
	AllReduceSum(ctx context.Context, v []float64) ([]float64, error)
}

// solo is the Comm of a group with one process.
type solo struct{}

// Solo returns the Comm of a single-process group.
func Solo() Comm { return solo{} }

func (solo) Rank() int { return 0 }
func (solo) Size() int { return 1 }

func (solo) AllReduceMaxInt(ctx context.Context, v int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return v, nil
}

func (solo) AllReduceSum(ctx context.Context, v []float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out, nil
}
