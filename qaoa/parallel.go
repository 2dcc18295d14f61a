// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// parallel.go - fork-join over a shard.
//
// The shard [0,n) is split into at most `workers` contiguous, disjoint spans
// of near-equal length. Each span runs in its own goroutine and writes only
// its own indexes, so loop bodies need no locking. Goroutines do not outlive
// the call.

package qaoa

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// span is a half-open local index range [lo, hi).
type span struct {
	lo, hi int
}

// partition splits [0,n) into min(workers,n) contiguous spans; the first
// n%k spans are one element longer.
func partition(n, workers int) []span {
	if n <= 0 {
		return nil
	}
	k := workers
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}
	spans := make([]span, k)
	base, extra := n/k, n%k
	lo := 0
	for w := 0; w < k; w++ {
		hi := lo + base
		if w < extra {
			hi++
		}
		spans[w] = span{lo: lo, hi: hi}
		lo = hi
	}

	return spans
}

// forEach runs body(w, spans[w]) for every span concurrently, at most
// len(spans) at a time, and returns the first error.
func forEach(ctx context.Context, spans []span, body func(w int, s span) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(len(spans), 1))
	for w, s := range spans {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return body(w, s)
		})
	}

	return eg.Wait()
}

// reduceLocked runs body on every span concurrently and folds each partial
// result into the caller's accumulator with merge, once per span, under a
// mutex. merge must be associative and commutative.
func reduceLocked[T any](ctx context.Context, spans []span, body func(s span) (T, error), merge func(part T)) error {
	var mu sync.Mutex

	return forEach(ctx, spans, func(_ int, s span) error {
		part, err := body(s)
		if err != nil {
			return err
		}
		mu.Lock()
		merge(part)
		mu.Unlock()
		return nil
	})
}
