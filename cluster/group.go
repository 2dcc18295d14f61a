// SPDX-License-Identifier: MIT
// Package: maxcut/cluster
//
// group.go - in-process group of P ranks with rendezvous collectives.
//
// Contract:
//   • One collective round is open at a time; every rank contributes exactly
//     once, the last arrival combines the contributions in rank order and
//     releases the round.
//   • Different kinds or payload widths within one round poison the group
//     with ErrCollectiveMismatch.
//   • A rank whose ctx ends while waiting poisons the group; every later
//     collective fails with ErrGroupAborted.
//
// Complexity: O(P·w) per round for payload width w; the critical section
// only copies a rank's contribution.

package cluster

import (
	"context"
	"fmt"
	"math/bits"
	"sync"

	"golang.org/x/sync/errgroup"
)

type opKind int

const (
	opMaxInt opKind = iota + 1
	opSum
)

func (k opKind) String() string {
	switch k {
	case opMaxInt:
		return "AllReduceMaxInt"
	case opSum:
		return "AllReduceSum"
	default:
		return "unknown"
	}
}

// round is one open collective call.
type round struct {
	kind    opKind
	width   int
	ints    []int       // per-rank contributions (opMaxInt)
	floats  [][]float64 // per-rank contributions (opSum)
	arrived int
	done    chan struct{}

	// Results, valid once done is closed.
	maxInt int
	sum    []float64
	err    error
}

// Group is a set of Size() in-process ranks sharing collective rounds.
type Group struct {
	size int

	mu  sync.Mutex
	cur *round
	err error // non-nil once the group is poisoned
}

// NewGroup returns a group of size ranks; size must be a positive power of two.
func NewGroup(size int) (*Group, error) {
	if size < 1 || bits.OnesCount(uint(size)) != 1 {
		return nil, fmt.Errorf("NewGroup: size=%d: %w", size, ErrBadGroupSize)
	}

	return &Group{size: size}, nil
}

// Size returns the number of ranks in the group.
func (g *Group) Size() int { return g.size }

// Comm returns the handle of the given rank.
func (g *Group) Comm(rank int) (Comm, error) {
	if rank < 0 || rank >= g.size {
		return nil, fmt.Errorf("Group.Comm: rank=%d size=%d: %w", rank, g.size, ErrBadRank)
	}

	return &member{g: g, rank: rank}, nil
}

// Run starts size ranks, one goroutine each, and waits for all of them.
// The first rank error cancels the shared context, which releases ranks
// blocked in collectives; that first error is returned.
func Run(ctx context.Context, size int, fn func(ctx context.Context, comm Comm) error) error {
	g, err := NewGroup(size)
	if err != nil {
		return err
	}
	eg, gctx := errgroup.WithContext(ctx)
	for r := 0; r < size; r++ {
		comm, _ := g.Comm(r)
		eg.Go(func() error {
			return fn(gctx, comm)
		})
	}

	return eg.Wait()
}

// member is the Comm of one rank.
type member struct {
	g    *Group
	rank int
}

func (m *member) Rank() int { return m.rank }
func (m *member) Size() int { return m.g.size }

func (m *member) AllReduceMaxInt(ctx context.Context, v int) (int, error) {
	r, err := m.g.enter(ctx, m.rank, opMaxInt, 1, func(r *round) { r.ints[m.rank] = v })
	if err != nil {
		return 0, err
	}

	return r.maxInt, nil
}

func (m *member) AllReduceSum(ctx context.Context, v []float64) ([]float64, error) {
	contrib := make([]float64, len(v))
	copy(contrib, v)
	r, err := m.g.enter(ctx, m.rank, opSum, len(v), func(r *round) { r.floats[m.rank] = contrib })
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(r.sum))
	copy(out, r.sum)

	return out, nil
}

// enter contributes to the open round (opening one if needed) and blocks
// until the round completes, fails, or ctx is done.
func (g *Group) enter(ctx context.Context, rank int, kind opKind, width int, put func(*round)) (*round, error) {
	g.mu.Lock()
	if g.err != nil {
		err := g.err
		g.mu.Unlock()
		return nil, fmt.Errorf("%s(rank=%d): %w", kind, rank, err)
	}
	r := g.cur
	if r == nil {
		r = &round{
			kind:   kind,
			width:  width,
			ints:   make([]int, g.size),
			floats: make([][]float64, g.size),
			done:   make(chan struct{}),
		}
		g.cur = r
	}
	if r.kind != kind || r.width != width {
		err := fmt.Errorf("%s(rank=%d, width=%d) joined %s(width=%d): %w",
			kind, rank, width, r.kind, r.width, ErrCollectiveMismatch)
		g.abortLocked(r, err)
		g.mu.Unlock()
		return nil, err
	}
	put(r)
	r.arrived++
	if r.arrived == g.size {
		r.combine()
		g.cur = nil
		close(r.done)
	}
	g.mu.Unlock()

	select {
	case <-r.done:
	case <-ctx.Done():
		g.mu.Lock()
		select {
		case <-r.done:
			// Completed while we were acquiring the lock.
		default:
			g.abortLocked(r, fmt.Errorf("%w: %w", ErrGroupAborted, ctx.Err()))
		}
		g.mu.Unlock()
	}
	if r.err != nil {
		return nil, fmt.Errorf("%s(rank=%d): %w", kind, rank, r.err)
	}

	return r, nil
}

// abortLocked fails the round and poisons the group. g.mu must be held.
func (g *Group) abortLocked(r *round, err error) {
	if g.err == nil {
		g.err = ErrGroupAborted
	}
	r.err = err
	if g.cur == r {
		g.cur = nil
	}
	close(r.done)
}

// combine reduces the contributions in rank order.
func (r *round) combine() {
	switch r.kind {
	case opMaxInt:
		r.maxInt = r.ints[0]
		for _, v := range r.ints[1:] {
			if v > r.maxInt {
				r.maxInt = v
			}
		}
	case opSum:
		r.sum = make([]float64, r.width)
		for _, part := range r.floats {
			for j, v := range part {
				r.sum[j] += v
			}
		}
	}
}
