// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ...". Validators wrap these with
// their own tag ("ValidateSymmetric: ..."); callers match with errors.Is.
//
// ERROR PRIORITY (ValidateAdjacency): nil -> shape -> entries -> diagonal
// -> symmetry.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a flat slice, vector or matrix whose
	// length does not fit the required dimensions (including non-square
	// input where a square matrix is required).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that A[i,j] != A[j,i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a non-zero diagonal entry (a self-loop).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNonBinary signals an entry other than 0 or 1 in an unweighted
	// adjacency matrix.
	ErrNonBinary = errors.New("matrix: non-binary entry")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
