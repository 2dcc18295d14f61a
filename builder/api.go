// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildAdjacency(bopts, cons...). Creates the matrix,
//     resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import "fmt"

// Constructor writes a topology into a. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Grow a to the vertex count they need before adding edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(a *Adjacency, cfg builderConfig) error

// BuildAdjacency resolves bopts and applies every constructor, in order, to
// one initially empty matrix. Constructors overlay: the result has as many
// vertices as the largest constructor and the union of their edges.
// Any constructor error is wrapped as "BuildAdjacency: %w".
//
// Complexity: O(len(bopts)) to resolve options plus the constructors' cost.
func BuildAdjacency(bopts []BuilderOption, cons ...Constructor) (*Adjacency, error) {
	a, _ := NewAdjacency(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildAdjacency: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: %w", err)
		}
	}

	return a, nil
}

// ensure validates n against [min, MaxVertices] and grows a to n vertices.
func ensure(method string, a *Adjacency, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, MaxVertices, ErrTooManyVertices)
	}

	return a.grow(n)
}

// link adds edge u-v with method context.
func link(method string, a *Adjacency, u, v int) error {
	if err := a.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
