// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/big"
	"math/bits"
)

// Int128 is a signed two's-complement 128-bit integer.
// Add, Sub, Mul, Neg and Lsh wrap modulo 2^128 like native Go integers.
// The zero value is 0.
type Int128 struct {
	hi int64  // upper 64 bits, carries the sign
	lo uint64 // lower 64 bits
}

// MinInt128 and MaxInt128 bound the representable range.
var (
	MinInt128 = Int128{hi: math.MinInt64}
	MaxInt128 = Int128{hi: math.MaxInt64, lo: math.MaxUint64}
)

// NewInt128 assembles a value from its upper and lower halves.
func NewInt128(hi int64, lo uint64) Int128 { return Int128{hi: hi, lo: lo} }

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 { return Int128{hi: v >> 63, lo: uint64(v)} }

// Hi returns the upper 64 bits.
func (x Int128) Hi() int64 { return x.hi }

// Lo returns the lower 64 bits.
func (x Int128) Lo() uint64 { return x.lo }

func (x Int128) IsZero() bool { return x.hi == 0 && x.lo == 0 }

func (x Int128) Sign() int {
	switch {
	case x.hi < 0:
		return -1
	case x.IsZero():
		return 0
	default:
		return 1
	}
}

func (x Int128) Cmp(y Int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)

	return Int128{hi: x.hi + y.hi + int64(carry), lo: lo}
}

func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)

	return Int128{hi: x.hi - y.hi - int64(borrow), lo: lo}
}

func (x Int128) Neg() Int128 { return Int128{}.Sub(x) }

// Abs returns |x|; MinInt128 maps to itself.
func (x Int128) Abs() Int128 {
	if x.hi < 0 {
		return x.Neg()
	}

	return x
}

// Mul returns x*y modulo 2^128. Two's complement makes the unsigned
// product of the bit patterns the correct signed result.
func (x Int128) Mul(y Int128) Int128 {
	hi, lo := bits.Mul64(x.lo, y.lo)
	hi += uint64(x.hi)*y.lo + x.lo*uint64(y.hi)

	return Int128{hi: int64(hi), lo: lo}
}

// Lsh shifts left by n bits, discarding high bits.
func (x Int128) Lsh(n uint) Int128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return Int128{}
	case n >= 64:
		return Int128{hi: int64(x.lo << (n - 64))}
	default:
		return Int128{hi: int64(uint64(x.hi)<<n | x.lo>>(64-n)), lo: x.lo << n}
	}
}

// Rsh shifts right arithmetically by n bits (floor division by 2^n).
func (x Int128) Rsh(n uint) Int128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return Int128{hi: x.hi >> 63, lo: uint64(x.hi >> 63)}
	case n >= 64:
		return Int128{hi: x.hi >> 63, lo: uint64(x.hi >> (n - 64))}
	default:
		return Int128{hi: x.hi >> n, lo: x.lo>>n | uint64(x.hi)<<(64-n)}
	}
}

// Quo returns x/y truncated toward zero. It panics if y == 0, like native
// integer division. MinInt128 / -1 wraps to MinInt128.
func (x Int128) Quo(y Int128) Int128 {
	if y.IsZero() {
		panic("numeric: Int128 division by zero")
	}
	q, _ := magnitude(x).quoRem(magnitude(y))
	z := Int128{hi: int64(q.hi), lo: q.lo}
	if (x.hi < 0) != (y.hi < 0) {
		return z.Neg()
	}

	return z
}

// BitWidth returns the index of the most significant set bit of |x|, or 0.
func (x Int128) BitWidth() uint {
	if x.IsZero() {
		return 0
	}

	return magnitude(x).len() - 1
}

// Float64 returns the nearest float64 (rounding once, through math/big for
// values that do not fit in 64 bits).
func (x Int128) Float64() float64 {
	if (x.hi == 0 && x.lo < 1<<63) || (x.hi == -1 && x.lo >= 1<<63) {
		return float64(int64(x.lo))
	}
	f, _ := new(big.Float).SetInt(x.Big()).Float64()

	return f
}

// Big returns x as a *big.Int.
func (x Int128) Big() *big.Int {
	m := magnitude(x)
	z := new(big.Int).SetUint64(m.hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(m.lo))
	if x.hi < 0 {
		z.Neg(z)
	}

	return z
}

func (x Int128) String() string { return x.Big().String() }

// u128 is an unsigned 128-bit magnitude used by division.
type u128 struct{ hi, lo uint64 }

// magnitude returns |x| as unsigned; MinInt128 yields 2^127.
func magnitude(x Int128) u128 {
	if x.hi < 0 {
		x = x.Neg()
	}

	return u128{hi: uint64(x.hi), lo: x.lo}
}

func (u u128) len() uint {
	if u.hi != 0 {
		return 64 + uint(bits.Len64(u.hi))
	}

	return uint(bits.Len64(u.lo))
}

func (u u128) cmp(v u128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}

func (u u128) sub(v u128) u128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)

	return u128{hi: u.hi - v.hi - borrow, lo: lo}
}

func (u u128) lsh(n uint) u128 {
	switch {
	case n == 0:
		return u
	case n >= 64:
		return u128{hi: u.lo << (n - 64)}
	default:
		return u128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
	}
}

func (u u128) rsh(n uint) u128 {
	switch {
	case n == 0:
		return u
	case n >= 64:
		return u128{lo: u.hi >> (n - 64)}
	default:
		return u128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
	}
}

func (u u128) mul64(v uint64) u128 {
	hi, lo := bits.Mul64(u.lo, v)

	return u128{hi: hi + u.hi*v, lo: lo}
}

// quoRem divides u by a non-zero v.
// For a 64-bit divisor it runs two bits.Div64 steps; otherwise it derives
// a trial quotient from the normalized top words, which is at most one too
// small, and corrects it against the remainder.
func (u u128) quoRem(v u128) (q, r u128) {
	if v.hi == 0 {
		var r64 uint64
		if u.hi < v.lo {
			q.lo, r64 = bits.Div64(u.hi, u.lo, v.lo)
		} else {
			q.hi, r64 = bits.Div64(0, u.hi, v.lo)
			q.lo, r64 = bits.Div64(r64, u.lo, v.lo)
		}

		return q, u128{lo: r64}
	}

	n := uint(bits.LeadingZeros64(v.hi))
	v1 := v.lsh(n)
	u1 := u.rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = u128{lo: tq}
	r = u.sub(v.mul64(tq))
	if r.cmp(v) >= 0 {
		q.lo++
		r = r.sub(v)
	}

	return q, r
}

// I128 is the arithmetic of Int128 cells.
type I128 struct{}

var _ Integer[Int128] = I128{}

func (I128) Kind() Kind                  { return KindInt128 }
func (I128) FromInt64(v int64) Int128    { return Int128From64(v) }
func (I128) Zero() Int128                { return Int128{} }
func (I128) One() Int128                 { return Int128{lo: 1} }
func (I128) Add(a, b Int128) Int128      { return a.Add(b) }
func (I128) Sub(a, b Int128) Int128      { return a.Sub(b) }
func (I128) Mul(a, b Int128) Int128      { return a.Mul(b) }
func (I128) Quo(a, b Int128) Int128      { return a.Quo(b) }
func (I128) Abs(v Int128) Int128         { return v.Abs() }
func (I128) Cmp(a, b Int128) int         { return a.Cmp(b) }
func (I128) IsZero(v Int128) bool        { return v.IsZero() }
func (I128) Float64(v Int128) float64    { return v.Float64() }
func (I128) Rat(v Int128) *big.Rat       { return new(big.Rat).SetInt(v.Big()) }
func (I128) Format(v Int128) string      { return v.String() }
func (I128) Bits() uint                  { return 128 }
func (I128) BitWidth(v Int128) uint      { return v.BitWidth() }
func (I128) Sign(v Int128) int           { return v.Sign() }
func (I128) Neg(v Int128) Int128         { return v.Neg() }
func (I128) Shl(v Int128, s uint) Int128 { return v.Lsh(s) }
func (I128) Shr(v Int128, s uint) Int128 { return v.Rsh(s) }
