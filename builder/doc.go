// Package builder provides deterministic, functional-options constructors for
// Max-Cut problem instances. Every constructor writes undirected, unweighted
// edges into an Adjacency: an n×n row-major {0,1} matrix with a zero diagonal
// in which each edge appears twice (A[u][v] = A[v][u] = 1).
//
// The package offers:
//
//   - Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse, FromEdges.
//   - Orchestration: BuildAdjacency(bopts, cons...) applies constructors in
//     order on one matrix that grows to the largest vertex count requested.
//   - Options: WithSeed / WithRand for the stochastic constructors.
//
// Guarantees:
//
//   - Idempotent edges: adding an existing edge again is a no-op.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (errors.go) wrapped with the constructor name for
//     invalid build parameters; constructors never panic.
//   - Same inputs, options and seed ⇒ identical matrices.
//
// Vertex v of the matrix is vertex v of the Max-Cut instance, i.e. it is
// colored by bit v of a basis-state index.
package builder
