// SPDX-License-Identifier: MIT

// Package metrics exports qaoa call records to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	opts := []qaoa.Option{qaoa.WithMetrics(metrics.NewCollector(reg, "maxcut"))}
//
// Series (namespace prefix omitted):
//
//	qaoa_operations_total{op,status}     calls per operation and outcome
//	qaoa_elements_total{op}              local amplitudes processed
//	qaoa_operation_duration_seconds{op}  wall time per call
package metrics
