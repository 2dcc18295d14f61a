// Package bitenc converts basis-state indexes to fixed-width bit vectors and back.
//
// Convention: component 0 of a bit vector is the least significant bit, so
// index k maps to bits b with k = Σ b[j]·2^j. Vertex j of a Max-Cut instance
// is colored by bit j of the basis-state index.
//
//	k = 6, width = 4  ->  [0 1 1 0]
//	                       ^ bit 0 (LSB)
//
// Round-trip law: FromBits(ToBits(k, w)) == k for every 0 ≤ k < 2^w.
package bitenc
