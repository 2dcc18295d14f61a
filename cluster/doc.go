// Package cluster models the process group that owns a distributed amplitude
// vector: ranks, equal-size shards and blocking collective reductions.
//
// Two Comm implementations are provided:
//
//   - Solo: a single process; collectives return their input.
//   - Group: P in-process ranks (one goroutine each, see Run) whose
//     collectives rendezvous under a mutex and combine contributions in rank
//     order, so the result does not depend on arrival order.
//
// A Vector[C] is the per-rank shard of a 2^n-element complex vector. With P
// ranks every shard holds 2^n / P entries and rank r owns the half-open global
// range [r·2^n/P, (r+1)·2^n/P).
//
// Collectives must be entered the same number of times, in the same order, by
// every rank. A mismatch is reported as ErrCollectiveMismatch when detectable
// (different kinds or widths in one round); otherwise the group blocks until
// the caller's context is done, after which the group is unusable.
package cluster
