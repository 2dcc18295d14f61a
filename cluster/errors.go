// SPDX-License-Identifier: MIT
// Package: maxcut/cluster
//
// errors.go - sentinel errors for the process-group collaborator.

package cluster

import "errors"

var (
	// ErrBadGroupSize indicates a process count that is not a positive power of two.
	ErrBadGroupSize = errors.New("cluster: group size must be a positive power of two")

	// ErrBadRank indicates a rank outside [0, size).
	ErrBadRank = errors.New("cluster: rank out of range")

	// ErrNilComm indicates that a nil Comm was supplied.
	ErrNilComm = errors.New("cluster: nil comm")

	// ErrQubits indicates a qubit count outside [1, MaxQubits].
	ErrQubits = errors.New("cluster: qubit count out of range")

	// ErrTooManyShards indicates more ranks than vector entries.
	ErrTooManyShards = errors.New("cluster: more ranks than vector entries")

	// ErrOutOfRange indicates a local index outside [0, LocalSize()).
	ErrOutOfRange = errors.New("cluster: local index out of range")

	// ErrCollectiveMismatch indicates ranks entered the same collective round
	// with different operations or payload widths.
	ErrCollectiveMismatch = errors.New("cluster: mismatched collective call")

	// ErrGroupAborted indicates the group was poisoned by an earlier failed or
	// abandoned collective; no further collectives can complete.
	ErrGroupAborted = errors.New("cluster: group aborted")
)
