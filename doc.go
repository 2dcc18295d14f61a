// Package maxcut is the distributed Max-Cut cost layer of a QAOA simulator.
//
// A graph on n vertices maps to a state vector of 2^n amplitudes split
// across a power-of-two group of processes. Each process owns a contiguous
// shard and runs a pool of workers over it; the group meets only in two
// collectives (integer max, float sum).
//
// Packages:
//
//	bitenc/   integer <-> LSB-first bit assignments
//	matrix/   integer adjacency matrices, validators, quadratic form
//	builder/  graph topologies as flat adjacency matrices
//	cluster/  process group, collectives, sharded vectors
//	qaoa/     cost operator, phase layer, expectation, cut histogram
//	metrics/  Prometheus collector for qaoa calls
//	logging/  slog construction for binaries
//	cmd/maxcut  the command-line front end
//
// Quick start:
//
//	adj, _ := builder.BuildAdjacency(nil, builder.Cycle(8))
//	_ = cluster.Run(ctx, 4, func(ctx context.Context, comm cluster.Comm) error {
//		cost, _ := cluster.NewVector[complex128](comm, adj.N())
//		maxCut, err := qaoa.BuildCostOperator(ctx, cost, adj.Flat())
//		...
//	})
//
// Every operation that touches a shard is collective: all ranks must call it
// in the same order. A failure on one rank is agreed on by the group, so no
// rank is left waiting in a collective its peers skipped.
package maxcut
