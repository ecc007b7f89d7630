// SPDX-License-Identifier: MIT

package numeric

// ShiftFloor scales v by 2^-b with an arithmetic shift: floor(v / 2^b).
// A negative b shifts left by -b instead.
func ShiftFloor[T any](ar Integer[T], v T, b int) T {
	if b < 0 {
		return ar.Shl(v, uint(-b))
	}

	return ar.Shr(v, uint(b))
}

// ShiftTrunc scales v by 2^-b rounding toward zero: negatives are shifted
// as -((-v) >> b), so the magnitude loses the same bits regardless of sign.
// A negative b shifts left by -b instead.
func ShiftTrunc[T any](ar Integer[T], v T, b int) T {
	if b < 0 {
		return ar.Shl(v, uint(-b))
	}
	if ar.Sign(v) < 0 {
		return ar.Neg(ar.Shr(ar.Neg(v), uint(b)))
	}

	return ar.Shr(v, uint(b))
}
