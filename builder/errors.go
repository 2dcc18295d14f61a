// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; sentinels are never formatted.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices -> ErrInvalidProbability -> ErrNeedRandSource
//   -> ErrVertexRange / ErrSelfLoop -> ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates a vertex count above MaxVertices.
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrVertexRange indicates an edge endpoint outside [0, n).
var ErrVertexRange = errors.New("builder: vertex out of range")

// ErrSelfLoop indicates an edge from a vertex to itself; Max-Cut instances
// have a zero diagonal.
var ErrSelfLoop = errors.New("builder: self-loop not allowed")

// ErrConstructFailed indicates a construction that could not run at all
// (e.g. a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
