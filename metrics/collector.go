// SPDX-License-Identifier: MIT
// Package: maxcut/metrics
//
// collector.go - Prometheus implementation of qaoa.MetricsCollector.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/maxcut/qaoa"
)

const subsystem = "qaoa"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Collector implements qaoa.MetricsCollector with Prometheus vectors.
type Collector struct {
	operations *prometheus.CounterVec
	elements   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ qaoa.MetricsCollector = (*Collector)(nil)

// NewCollector registers the qaoa series with reg under namespace.
// It panics if the series are already registered with reg.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Cost-operator calls by operation and outcome.",
		}, []string{"op", "status"}),
		elements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elements_total",
			Help:      "Local vector entries processed by operation.",
		}, []string{"op"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Wall time of cost-operator calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"op"}),
	}
}

// RecordOperation implements qaoa.MetricsCollector.
func (c *Collector) RecordOperation(op string, elements int, d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	c.operations.WithLabelValues(op, status).Inc()
	c.elements.WithLabelValues(op).Add(float64(elements))
	c.duration.WithLabelValues(op).Observe(d.Seconds())
}
