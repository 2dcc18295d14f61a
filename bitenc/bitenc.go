// SPDX-License-Identifier: MIT
// Package: maxcut/bitenc
//
// bitenc.go - integer <-> LSB-first bit vector conversion.
//
// Contract:
//   • ToBits rejects k ≥ 2^width with ErrOverflow (no silent truncation).
//   • FromBits accumulates Horner-style from the most significant index down.
//   • ToBitsInto reuses caller storage so hot loops stay allocation-free.
//
// Complexity: O(width) time; ToBits allocates O(width), ToBitsInto O(1).

package bitenc

import "fmt"

// MaxWidth is the largest supported bit width (values are carried in uint64).
const MaxWidth = 63

const (
	methodToBits   = "ToBits"
	methodFromBits = "FromBits"
)

// ToBits returns the width-bit representation of k, index 0 = least significant bit.
func ToBits(k uint64, width int) ([]int, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%s: width=%d not in [1,%d]: %w", methodToBits, width, MaxWidth, ErrWidth)
	}
	bits := make([]int, width)
	if err := ToBitsInto(k, bits); err != nil {
		return nil, err
	}

	return bits, nil
}

// ToBitsInto writes the len(dst)-bit representation of k into dst.
func ToBitsInto(k uint64, dst []int) error {
	width := len(dst)
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("%s: width=%d not in [1,%d]: %w", methodToBits, width, MaxWidth, ErrWidth)
	}
	if k >= uint64(1)<<uint(width) {
		return fmt.Errorf("%s: k=%d with width=%d: %w", methodToBits, k, width, ErrOverflow)
	}
	for pos := 0; pos < width; pos++ {
		dst[pos] = int(k & 1)
		k >>= 1
	}

	return nil
}

// FromBits returns the integer whose LSB-first representation is bits.
// An empty vector decodes to 0.
func FromBits(bits []int) (uint64, error) {
	if len(bits) > MaxWidth {
		return 0, fmt.Errorf("%s: width=%d > %d: %w", methodFromBits, len(bits), MaxWidth, ErrWidth)
	}
	var k uint64
	// Horner: k = (((b[w-1])·2 + b[w-2])·2 + …)·2 + b[0].
	for pos := len(bits) - 1; pos >= 0; pos-- {
		b := bits[pos]
		if b != 0 && b != 1 {
			return 0, fmt.Errorf("%s: bits[%d]=%d: %w", methodFromBits, pos, b, ErrNotBinary)
		}
		k = k<<1 | uint64(b)
	}

	return k, nil
}
