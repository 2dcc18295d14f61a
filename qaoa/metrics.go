package qaoa

import (
	"sync"
	"time"
)

// Operation names reported to MetricsCollector.
const (
	OpBuildCostOperator = "build_cost_operator"
	OpApplyPhaseLayer   = "apply_phase_layer"
	OpExpectation       = "expectation"
	OpHistogram         = "histogram"
)

// MetricsCollector receives one record per call.
// Implement it to integrate with a monitoring system (see package metrics
// for Prometheus).
type MetricsCollector interface {
	// RecordOperation is called when op returns. elements is the local
	// shard size processed, err is nil on success.
	RecordOperation(op string, elements int, duration time.Duration, err error)
}

// NoopMetricsCollector drops every record.
type NoopMetricsCollector struct{}

// RecordOperation implements MetricsCollector.
func (NoopMetricsCollector) RecordOperation(string, int, time.Duration, error) {}

// OpStats aggregates the records of one operation.
type OpStats struct {
	Calls    int64
	Errors   int64
	Elements int64
	Total    time.Duration
}

// BasicMetricsCollector keeps per-operation totals in memory.
type BasicMetricsCollector struct {
	mu    sync.Mutex
	stats map[string]OpStats
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(op string, elements int, d time.Duration, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stats == nil {
		b.stats = make(map[string]OpStats)
	}
	s := b.stats[op]
	s.Calls++
	s.Elements += int64(elements)
	s.Total += d
	if err != nil {
		s.Errors++
	}
	b.stats[op] = s
}

// Snapshot returns a copy of the current totals keyed by operation.
func (b *BasicMetricsCollector) Snapshot() map[string]OpStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]OpStats, len(b.stats))
	for k, v := range b.stats {
		out[k] = v
	}

	return out
}
