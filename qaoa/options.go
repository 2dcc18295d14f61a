// SPDX-License-Identifier: MIT
// Package: maxcut/qaoa
//
// options.go - functional options shared by all routines.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input.
//   • Routines themselves never panic; they return sentinel errors.
//   • Defaults: workers = GOMAXPROCS, logs discarded, metrics dropped,
//     histogram bins capped at DefaultMaxBins.

package qaoa

import (
	"log/slog"
	"runtime"
)

// DefaultMaxBins caps the histogram length when WithMaxBins is not given.
const DefaultMaxBins = 1 << 20

// Option customizes a single call.
type Option func(*config)

type config struct {
	workers int
	logger  *slog.Logger
	metrics MetricsCollector
	maxBins int
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.DiscardHandler),
		metrics: NoopMetricsCollector{},
		maxBins: DefaultMaxBins,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets the number of goroutines a call splits its shard across.
// The effective count never exceeds the local size.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("qaoa: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger routes debug logs of each call to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("qaoa: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics reports every call to m.
func WithMetrics(m MetricsCollector) Option {
	if m == nil {
		panic("qaoa: WithMetrics(nil)")
	}
	return func(c *config) { c.metrics = m }
}

// WithMaxBins bounds maxValue+1 in Histogram before any bin is allocated.
func WithMaxBins(n int) Option {
	if n < 2 {
		panic("qaoa: WithMaxBins(n<2)")
	}
	return func(c *config) { c.maxBins = n }
}
