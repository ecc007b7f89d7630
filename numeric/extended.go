// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"
)

// ExtendedPrec is the mantissa precision of Extended cells (IEEE quad).
const ExtendedPrec uint = 113

// Extended is the arithmetic of extended-precision cells backed by
// *big.Float. Every operation allocates its result; operands are never
// mutated, so a *big.Float cell may be shared between matrix copies.
//
// A nil cell reads as zero.
type Extended struct {
	// Prec overrides ExtendedPrec when non-zero.
	Prec uint
}

var _ Arith[*big.Float] = Extended{}

func (e Extended) prec() uint {
	if e.Prec == 0 {
		return ExtendedPrec
	}

	return e.Prec
}

func (e Extended) alloc() *big.Float { return new(big.Float).SetPrec(e.prec()) }

func (e Extended) val(v *big.Float) *big.Float {
	if v == nil {
		return e.alloc()
	}

	return v
}

func (Extended) Kind() Kind { return KindExtended }

func (e Extended) FromInt64(v int64) *big.Float { return e.alloc().SetInt64(v) }
func (e Extended) Zero() *big.Float             { return e.alloc() }
func (e Extended) One() *big.Float              { return e.alloc().SetInt64(1) }

func (e Extended) Add(a, b *big.Float) *big.Float { return e.alloc().Add(e.val(a), e.val(b)) }
func (e Extended) Sub(a, b *big.Float) *big.Float { return e.alloc().Sub(e.val(a), e.val(b)) }
func (e Extended) Mul(a, b *big.Float) *big.Float { return e.alloc().Mul(e.val(a), e.val(b)) }

// Quo divides a by b. Unlike the fixed-width floats, big.Float panics with
// ErrNaN on 0/0 and ±Inf/±Inf; the kernels only divide by checked pivots.
func (e Extended) Quo(a, b *big.Float) *big.Float { return e.alloc().Quo(e.val(a), e.val(b)) }

func (e Extended) Abs(v *big.Float) *big.Float { return e.alloc().Abs(e.val(v)) }

func (e Extended) Cmp(a, b *big.Float) int { return e.val(a).Cmp(e.val(b)) }

func (e Extended) IsZero(v *big.Float) bool { return v == nil || v.Sign() == 0 }

func (e Extended) Float64(v *big.Float) float64 {
	f, _ := e.val(v).Float64()

	return f
}

func (e Extended) Rat(v *big.Float) *big.Rat {
	v = e.val(v)
	if v.IsInf() {
		return nil
	}
	r, _ := v.Rat(nil)

	return r
}

func (e Extended) Format(v *big.Float) string { return e.val(v).Text('f', 1) }
