package qaoa

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/maxcut/cluster"
	"github.com/katalvlaran/maxcut/matrix"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		n, workers int
		wantSpans  int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{10, 3, 3},
		{16, 4, 4},
		{5, 0, 1},
		{7, 100, 7},
	}
	for _, tc := range tests {
		spans := partition(tc.n, tc.workers)
		require.Len(t, spans, tc.wantSpans, "n=%d workers=%d", tc.n, tc.workers)
		next := 0
		for _, s := range spans {
			require.Equal(t, next, s.lo, "spans must be contiguous")
			require.Greater(t, s.hi, s.lo, "spans must be non-empty")
			next = s.hi
		}
		if tc.n > 0 {
			require.Equal(t, tc.n, next, "spans must cover [0,n)")
			// Near-equal: lengths differ by at most one.
			require.LessOrEqual(t, (spans[0].hi-spans[0].lo)-(spans[len(spans)-1].hi-spans[len(spans)-1].lo), 1)
		}
	}
}

func TestReduceLocked(t *testing.T) {
	spans := partition(1000, 7)
	total := 0
	err := reduceLocked(context.Background(), spans, func(s span) (int, error) {
		acc := 0
		for i := s.lo; i < s.hi; i++ {
			acc += i
		}
		return acc, nil
	}, func(part int) { total += part })
	require.NoError(t, err)
	require.Equal(t, 999*1000/2, total)

	boom := errors.New("boom")
	var merged atomic.Int32
	err = reduceLocked(context.Background(), spans, func(s span) (int, error) {
		if s.lo == 0 {
			return 0, boom
		}
		return 1, nil
	}, func(int) { merged.Add(1) })
	require.ErrorIs(t, err, boom)
	// The failing span never merges; the others may or may not run.
	require.Less(t, merged.Load(), int32(len(spans)))
}

func TestCutFromSpins_Inexact(t *testing.T) {
	// A one-sided entry makes the quadratic form odd.
	oneSided, err := matrix.FromFlat(2, 2, []int{0, 1, 0, 0})
	require.NoError(t, err)
	_, err = cutFromSpins([]int{1, -1}, oneSided, 1)
	require.ErrorIs(t, err, ErrInexactCut)

	// Symmetric matrix with a wrong edge count makes E - q/2 odd.
	edge, err := matrix.FromFlat(2, 2, []int{0, 1, 1, 0})
	require.NoError(t, err)
	_, err = cutFromSpins([]int{1, 1}, edge, 2)
	require.ErrorIs(t, err, ErrInexactCut)

	cut, err := cutFromSpins([]int{1, -1}, edge, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cut)

	_, err = cutFromSpins([]int{1}, edge, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAgree_Solo(t *testing.T) {
	boom := errors.New("boom")
	require.ErrorIs(t, agree(context.Background(), cluster.Solo(), "m", boom), boom)
	require.NoError(t, agree(context.Background(), cluster.Solo(), "m", nil))
}

func TestOptions(t *testing.T) {
	cfg := newConfig(WithWorkers(3), WithMaxBins(10))
	require.Equal(t, 3, cfg.workers)
	require.Equal(t, 10, cfg.maxBins)
	require.NotNil(t, cfg.logger)
	require.NotNil(t, cfg.metrics)

	require.Panics(t, func() { WithWorkers(0) })
	require.Panics(t, func() { WithLogger(nil) })
	require.Panics(t, func() { WithMetrics(nil) })
	require.Panics(t, func() { WithMaxBins(1) })
}

func TestForEach_ConcurrencyBoundedBySpans(t *testing.T) {
	require.NoError(t, forEach(context.Background(), nil, func(int, span) error { return nil }))

	spans := partition(64, 4)
	var running, peak atomic.Int32
	err := forEach(context.Background(), spans, func(_ int, _ span) error {
		now := running.Add(1)
		for {
			p := peak.Load()
			if now <= p || peak.CompareAndSwap(p, now) {
				break
			}
		}
		running.Add(-1)
		return nil
	})
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int32(len(spans)))
	require.GreaterOrEqual(t, peak.Load(), int32(1))
}
