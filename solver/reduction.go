// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/eqsolver/balance"
	"github.com/katalvlaran/eqsolver/numeric"
)

// reduction is the per-cell policy of one elimination variant.
//
// For step k with pivot M = m[k][k]:
//   - begin receives M once, before any cell of the step is transformed;
//   - lead maps a pivot-row cell Cv = m[k][j];
//   - reduce maps a target cell D = m[i][j], given L = m[i][k] and Cv.
//
// All inputs are read from the matrix as it was at the start of the step.
type reduction[T any] interface {
	begin(m T)
	lead(cv T) T
	reduce(d, l, cv T) T
}

// normalize divides the pivot row by M and subtracts (L/M)·Cv elsewhere
// (Gauss-Jordan and row-echelon over float cells).
type normalize[T any] struct {
	ar numeric.Arith[T]
	m  T
}

func (r *normalize[T]) begin(m T)   { r.m = m }
func (r *normalize[T]) lead(cv T) T { return r.ar.Quo(cv, r.m) }
func (r *normalize[T]) reduce(d, l, cv T) T {
	return r.ar.Sub(d, r.ar.Mul(r.ar.Quo(l, r.m), cv))
}

// fractionFree keeps the pivot row and cross-multiplies: M·D − L·Cv.
// Magnitudes roughly double in width every step.
type fractionFree[T any] struct {
	ar numeric.Integer[T]
	m  T
}

func (r *fractionFree[T]) begin(m T)   { r.m = m }
func (r *fractionFree[T]) lead(cv T) T { return cv }
func (r *fractionFree[T]) reduce(d, l, cv T) T {
	return r.ar.Sub(r.ar.Mul(r.m, d), r.ar.Mul(l, cv))
}

// shifted is fractionFree followed by a sign-aware right shift of the
// cross product by B = bw(M), optionally rounded up (see stepShift).
type shifted[T any] struct {
	ar      numeric.Integer[T]
	rounded bool
	m       T
	b       int
}

func (r *shifted[T]) begin(m T) {
	r.m = m
	r.b = stepShift(r.ar, m, r.rounded)
}

func (r *shifted[T]) lead(cv T) T { return cv }

func (r *shifted[T]) reduce(d, l, cv T) T {
	return numeric.ShiftTrunc(r.ar, r.ar.Sub(r.ar.Mul(r.m, d), r.ar.Mul(l, cv)), r.b)
}

// balanced runs the Balancer on (M, D, L, Cv, B) before cross-multiplying.
// The rounded form shifts by the rounded B toward zero; the plain form
// shifts by bw(M) with a floor (arithmetic) shift.
type balanced[T any] struct {
	ar      numeric.Integer[T]
	bl      *balance.Balancer[T]
	rounded bool
	m       T
	b       int
}

func (r *balanced[T]) begin(m T) {
	r.m = m
	r.b = stepShift(r.ar, m, r.rounded)
}

func (r *balanced[T]) lead(cv T) T { return cv }

func (r *balanced[T]) reduce(d, l, cv T) T {
	ar := r.ar
	m, b := r.m, r.b
	r.bl.Balance(&m, &d, &l, &cv, &b)
	diff := ar.Sub(ar.Mul(m, d), ar.Mul(l, cv))
	if r.rounded {
		return numeric.ShiftTrunc(ar, diff, b)
	}

	return numeric.ShiftFloor(ar, diff, b)
}

// fixedPoint is Gauss-Jordan over integers carrying q fractional bits:
// the pivot row becomes (Cv≪q)/M, the other rows D − ((L≪q)/M · Cv)≫q.
// Cells must be pre-shifted by q before the first step.
type fixedPoint[T any] struct {
	ar numeric.Integer[T]
	q  uint
	m  T
}

func (r *fixedPoint[T]) begin(m T)   { r.m = m }
func (r *fixedPoint[T]) lead(cv T) T { return r.ar.Quo(r.ar.Shl(cv, r.q), r.m) }
func (r *fixedPoint[T]) reduce(d, l, cv T) T {
	ar := r.ar
	f := ar.Quo(ar.Shl(l, r.q), r.m)

	return ar.Sub(d, ar.Shr(ar.Mul(f, cv), r.q))
}

// stepShift returns B = bw(M). When rounded, B grows by one if bit B-1 of
// |M| is set, i.e. if |M| is at least 1.5·2^B.
func stepShift[T any](ar numeric.Integer[T], m T, rounded bool) int {
	b := ar.BitWidth(m)
	if rounded && b >= 1 {
		half := ar.Shr(ar.Abs(m), b-1)
		if !ar.IsZero(ar.Sub(half, ar.Shl(ar.Shr(half, 1), 1))) {
			b++
		}
	}

	return int(b)
}
