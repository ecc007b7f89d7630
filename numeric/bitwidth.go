// SPDX-License-Identifier: MIT

package numeric

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// BitWidth returns floor(log2(|v|)), the index of the most significant set
// bit of |v|, and 0 for v == 0.
//
// Implementation:
//   - Stage 1: widen to uint64 (sign-extending) and negate negatives in
//     unsigned arithmetic, so the most negative value maps to 2^(w-1).
//   - Stage 2: bits.Len64 − 1.
//
// Behavior highlights:
//   - Exact for every input: powers of two map to their exponent, 2^k − 1
//     maps to k − 1. This equals math.Logb(float64(v)) whenever |v| ≤ 2^53;
//     above that the float conversion may round up to the next power of two
//     and we intentionally do not reproduce that rounding.
//
// Complexity:
//   - Time O(1), Space O(1).
func BitWidth[T constraints.Signed](v T) uint {
	if v == 0 {
		return 0
	}
	u := uint64(v)
	if v < 0 {
		u = -u
	}

	return uint(bits.Len64(u) - 1)
}

// AbsSigned returns |v|. The most negative value of T is returned unchanged
// (two's-complement wrap), matching native negation.
func AbsSigned[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
