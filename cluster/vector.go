// SPDX-License-Identifier: MIT
// Package: maxcut/cluster
//
// vector.go - per-rank shard of a distributed 2^n-element complex vector.
//
// Layout: equal partition; rank r owns global indexes
// [r·LocalSize(), (r+1)·LocalSize()). Local index i maps to Start()+i.

package cluster

import "fmt"

// MaxQubits bounds the vector width so a shard always fits an int index.
const MaxQubits = 30

// Amplitude is the element type of a distributed vector, one type per precision.
type Amplitude interface {
	~complex64 | ~complex128
}

// Vector is the local shard of a distributed vector of 2^NumQubits() entries.
// Reads may be concurrent; concurrent writes must target disjoint indexes.
type Vector[C Amplitude] struct {
	comm      Comm
	numQubits int
	global    uint64
	start     uint64
	data      []C
}

// NewVector allocates this rank's zeroed shard of a 2^numQubits vector.
func NewVector[C Amplitude](comm Comm, numQubits int) (*Vector[C], error) {
	if comm == nil {
		return nil, fmt.Errorf("NewVector: %w", ErrNilComm)
	}
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, fmt.Errorf("NewVector: numQubits=%d not in [1,%d]: %w", numQubits, MaxQubits, ErrQubits)
	}
	size := comm.Size()
	if size < 1 || size&(size-1) != 0 {
		return nil, fmt.Errorf("NewVector: size=%d: %w", size, ErrBadGroupSize)
	}
	global := uint64(1) << uint(numQubits)
	if uint64(size) > global {
		return nil, fmt.Errorf("NewVector: %d ranks for %d entries: %w", size, global, ErrTooManyShards)
	}
	local := global / uint64(size)

	return &Vector[C]{
		comm:      comm,
		numQubits: numQubits,
		global:    global,
		start:     uint64(comm.Rank()) * local,
		data:      make([]C, local),
	}, nil
}

// Comm returns the group handle the vector is distributed over.
func (v *Vector[C]) Comm() Comm { return v.comm }

// NumQubits returns n for a vector of 2^n entries.
func (v *Vector[C]) NumQubits() int { return v.numQubits }

// GlobalSize returns the number of entries across all ranks.
func (v *Vector[C]) GlobalSize() uint64 { return v.global }

// LocalSize returns the number of entries held by this rank.
func (v *Vector[C]) LocalSize() int { return len(v.data) }

// Start returns the global index of local entry 0.
func (v *Vector[C]) Start() uint64 { return v.start }

// Local exposes the shard's backing slice; writes are visible to the vector.
func (v *Vector[C]) Local() []C { return v.data }

// At returns local entry i.
func (v *Vector[C]) At(i int) (C, error) {
	if i < 0 || i >= len(v.data) {
		var zero C
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns local entry i.
func (v *Vector[C]) Set(i int, x C) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Fill assigns every local entry from its global index.
func (v *Vector[C]) Fill(fn func(global uint64) C) {
	for i := range v.data {
		v.data[i] = fn(v.start + uint64(i))
	}
}

// Clone returns an independent copy of the shard on the same comm.
func (v *Vector[C]) Clone() *Vector[C] {
	data := make([]C, len(v.data))
	copy(data, v.data)
	out := *v
	out.data = data

	return &out
}
