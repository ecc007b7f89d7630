// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

// Kind identifies a cell type.
type Kind int

const (
	// KindDefault means "whatever the variant prefers"; it is never a cell type.
	KindDefault Kind = iota
	KindInt64
	KindInt128
	KindFloat32
	KindFloat64
	KindExtended
)

// String returns a short, stable name used in traces and error messages.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindInt64:
		return "int64"
	case KindInt128:
		return "int128"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindExtended:
		return "extended"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsInteger reports whether k is one of the integer cell types.
func (k Kind) IsInteger() bool { return k == KindInt64 || k == KindInt128 }

// IsFloat reports whether k is one of the floating-point cell types.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64 || k == KindExtended
}

// Arith is the arithmetic contract of one cell type.
// Implementations are stateless (or immutable) values and never mutate
// their operands, so cells may be shared freely between matrix copies.
//
// Quo truncates toward zero for integer cells and panics on a zero divisor,
// like native Go integer division; callers check IsZero first.
type Arith[T any] interface {
	Kind() Kind

	// FromInt64 widens a source coefficient into a cell.
	FromInt64(v int64) T
	Zero() T
	One() T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Abs(v T) T

	// Cmp returns -1, 0 or +1 as a <, ==, > b.
	Cmp(a, b T) int
	IsZero(v T) bool

	// Float64 converts a cell to the nearest float64.
	Float64(v T) float64
	// Rat returns the exact value of a cell, or nil for non-finite floats.
	Rat(v T) *big.Rat
	// Format renders a cell for traces.
	Format(v T) string
}

// Integer is the contract of integer cells: Arith plus the bit operations
// used by fraction-free and fixed-point elimination.
type Integer[T any] interface {
	Arith[T]

	// Bits is the storage width (64 or 128).
	Bits() uint
	// BitWidth is the index of the most significant set bit of |v|, 0 for 0.
	BitWidth(v T) uint
	Sign(v T) int
	Neg(v T) T
	// Shl shifts left, discarding high bits.
	Shl(v T, s uint) T
	// Shr shifts right arithmetically (floor division by 2^s).
	Shr(v T, s uint) T
}
