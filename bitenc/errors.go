// SPDX-License-Identifier: MIT
// Package: maxcut/bitenc
//
// errors.go - sentinel errors for bit encoding.
// Callers branch with errors.Is; messages are prefixed with "bitenc:".

package bitenc

import "errors"

var (
	// ErrWidth indicates a bit width outside [1, MaxWidth].
	ErrWidth = errors.New("bitenc: width out of range")

	// ErrOverflow indicates k ≥ 2^width, i.e. k does not fit into the requested width.
	ErrOverflow = errors.New("bitenc: value does not fit width")

	// ErrNotBinary indicates a bit vector entry other than 0 or 1.
	ErrNotBinary = errors.New("bitenc: entry is not a bit")
)
