// SPDX-License-Identifier: MIT
// Package: maxcut/matrix
//
// validators.go - canonical checks for adjacency matrices.
//
// Each validator names what it checks and what it assumes. Violations come
// back as "<Validator>: (i,j)=v: matrix: ..." so callers can wrap once more
// with their own method tag. All checks are pure; scans run in fixed
// row-major order, so the first reported position is deterministic.

package matrix

import "fmt"

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatorAtErrorf tags a sentinel with the validator name and the
// offending position.
func validatorAtErrorf(tag string, i, j, v int, err error) error {
	return fmt.Errorf("%s: (%d,%d)=%d: %w", tag, i, j, v, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil m.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks Rows == Cols. Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary checks that every entry is 0 or 1. Assumes m is not nil.
//
// Complexity: O(rows·cols).
func ValidateBinary(m Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if v != 0 && v != 1 {
				return validatorAtErrorf("ValidateBinary", i, j, v, ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks A[i,i] == 0 for every i. Assumes m is square.
func ValidateZeroDiagonal(m Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		if v, _ := m.At(i, i); v != 0 {
			return validatorAtErrorf("ValidateZeroDiagonal", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks A[i,j] == A[j,i] exactly, scanning the strict
// upper triangle. Returns ErrNilMatrix/ErrDimensionMismatch on structural
// issues.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if aij != aji {
				return validatorAtErrorf("ValidateSymmetric", i, j, aij, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateAdjacency - Composite: NotNil → Square → Binary → ZeroDiagonal →
// Symmetric. A matrix that passes is the adjacency matrix of a simple
// undirected graph.
func ValidateAdjacency(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	checks := []func(Matrix) error{ValidateSquare, ValidateBinary, ValidateZeroDiagonal, ValidateSymmetric}
	for _, check := range checks {
		if err := check(m); err != nil {
			return validatorErrorf("ValidateAdjacency", err)
		}
	}

	return nil
}
