// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"
	"strconv"
)

// Int64 is the arithmetic of native int64 cells. Overflow wraps silently.
type Int64 struct{}

var _ Integer[int64] = Int64{}

func (Int64) Kind() Kind              { return KindInt64 }
func (Int64) FromInt64(v int64) int64 { return v }
func (Int64) Zero() int64             { return 0 }
func (Int64) One() int64              { return 1 }
func (Int64) Add(a, b int64) int64    { return a + b }
func (Int64) Sub(a, b int64) int64    { return a - b }
func (Int64) Mul(a, b int64) int64    { return a * b }
func (Int64) Quo(a, b int64) int64    { return a / b }
func (Int64) Abs(v int64) int64       { return AbsSigned(v) }
func (Int64) IsZero(v int64) bool     { return v == 0 }
func (Int64) Float64(v int64) float64 { return float64(v) }
func (Int64) Rat(v int64) *big.Rat    { return new(big.Rat).SetInt64(v) }
func (Int64) Format(v int64) string   { return strconv.FormatInt(v, 10) }
func (Int64) Bits() uint              { return 64 }
func (Int64) BitWidth(v int64) uint   { return BitWidth(v) }
func (Int64) Neg(v int64) int64       { return -v }

func (Int64) Shl(v int64, s uint) int64 { return v << s }
func (Int64) Shr(v int64, s uint) int64 { return v >> s }

func (Int64) Cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (Int64) Sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
