// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/big"
	"strconv"
)

// Float64 is the arithmetic of double-precision cells.
type Float64 struct{}

var _ Arith[float64] = Float64{}

func (Float64) Kind() Kind                { return KindFloat64 }
func (Float64) FromInt64(v int64) float64 { return float64(v) }
func (Float64) Zero() float64             { return 0 }
func (Float64) One() float64              { return 1 }
func (Float64) Add(a, b float64) float64  { return a + b }
func (Float64) Sub(a, b float64) float64  { return a - b }
func (Float64) Mul(a, b float64) float64  { return a * b }
func (Float64) Quo(a, b float64) float64  { return a / b }
func (Float64) Abs(v float64) float64     { return math.Abs(v) }
func (Float64) IsZero(v float64) bool     { return v == 0 }
func (Float64) Float64(v float64) float64 { return v }
func (Float64) Cmp(a, b float64) int      { return cmpFloat(a, b) }
func (Float64) Rat(v float64) *big.Rat    { return ratFloat(v) }
func (Float64) Format(v float64) string   { return strconv.FormatFloat(v, 'f', 1, 64) }

// Float32 is the arithmetic of single-precision cells.
type Float32 struct{}

var _ Arith[float32] = Float32{}

func (Float32) Kind() Kind                { return KindFloat32 }
func (Float32) FromInt64(v int64) float32 { return float32(v) }
func (Float32) Zero() float32             { return 0 }
func (Float32) One() float32              { return 1 }
func (Float32) Add(a, b float32) float32  { return a + b }
func (Float32) Sub(a, b float32) float32  { return a - b }
func (Float32) Mul(a, b float32) float32  { return a * b }
func (Float32) Quo(a, b float32) float32  { return a / b }
func (Float32) Abs(v float32) float32     { return float32(math.Abs(float64(v))) }
func (Float32) IsZero(v float32) bool     { return v == 0 }
func (Float32) Float64(v float32) float64 { return float64(v) }
func (Float32) Cmp(a, b float32) int      { return cmpFloat(float64(a), float64(b)) }
func (Float32) Rat(v float32) *big.Rat    { return ratFloat(float64(v)) }
func (Float32) Format(v float32) string   { return strconv.FormatFloat(float64(v), 'f', 1, 32) }

// cmpFloat orders finite values; NaN compares equal to everything, which
// keeps pivot scans from ever selecting a NaN row over a finite one.
func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func ratFloat(v float64) *big.Rat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return new(big.Rat).SetFloat64(v)
}
