// SPDX-License-Identifier: MIT

// Package numeric defines the cell arithmetic the elimination kernels run on.
//
// What & Why:
//
//	The solver instantiates one generic kernel per cell type instead of keeping
//	a copy of every elimination routine per type. Each cell type is described
//	by a small stateless "arith" value implementing Arith[T] (floats) or
//	Integer[T] (integers, which add shifts and bit widths).
//
// Cell types:
//
//	Int64    — native int64, wrapping on overflow.
//	Int128   — two's-complement 128-bit integer built on math/bits, wrapping.
//	Float32  — single precision.
//	Float64  — double precision.
//	Extended — math/big.Float with a 113-bit mantissa (IEEE quad precision).
//
// The BitWidth estimator (BitWidth, Int128.BitWidth) and the post-shift
// helpers (ShiftFloor, ShiftTrunc) used by the fraction-free policies also
// live here.
//
// Complexity:
//
//	Every operation is O(1) except Extended, whose cost grows with precision.
package numeric
