// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/eqsolver/matrix"
	"github.com/katalvlaran/eqsolver/numeric"
)

// terminal is a typed terminal matrix behind a type-free interface, so the
// store can hold the result of any cell type.
type terminal interface {
	kind() numeric.Kind
	extract(mode Mode, scale int, frac uint) (*Solution, error)
	format() string
}

// intTerminal extracts from integer cells.
type intTerminal[T any] struct {
	ar numeric.Integer[T]
	m  *matrix.Augmented[T]
}

func (t *intTerminal[T]) kind() numeric.Kind { return t.ar.Kind() }
func (t *intTerminal[T]) format() string     { return t.m.Format(t.ar.Format) }

// extract computes x_i = q · 2^-(frac+scale) with the integer quotient
//
//	q = (num ≪ frac) / den          when bw(num)+frac < Bits-1,
//	q = num / (den ≫ frac)          otherwise (the shift would overflow),
//
// where num = m[i][n] and den = m[i][i]. A zero divisor on any row returns
// the zero vector. Back-substitution is not defined for integer cells.
func (t *intTerminal[T]) extract(mode Mode, scale int, frac uint) (*Solution, error) {
	if mode == ModeBackSubstitution {
		return nil, ErrModeUnsupported
	}
	ar, n := t.ar, t.m.Order()
	lim := ar.Bits() - 1
	sol := newSolution(n)
	for i := 0; i < n; i++ {
		row := t.m.Row(i)
		num, den := row[n], row[i]

		var q T
		if ar.BitWidth(num)+frac >= lim {
			d := ar.Shr(den, frac)
			if ar.IsZero(d) {
				return zeroSolution(n), nil
			}
			q = ar.Quo(num, d)
		} else {
			if ar.IsZero(den) {
				return zeroSolution(n), nil
			}
			q = ar.Quo(ar.Shl(num, frac), den)
		}
		sol.values[i] = math.Ldexp(ar.Float64(q), -(int(frac) + scale))
		sol.exact[i] = scaleRat(ratQuo(ar.Rat(num), ar.Rat(den)), scale)
	}

	return sol, nil
}

// floatTerminal extracts from float cells, directly or by back-substitution.
type floatTerminal[T any] struct {
	ar numeric.Arith[T]
	m  *matrix.Augmented[T]
}

func (t *floatTerminal[T]) kind() numeric.Kind { return t.ar.Kind() }
func (t *floatTerminal[T]) format() string     { return t.m.Format(t.ar.Format) }

func (t *floatTerminal[T]) extract(mode Mode, scale int, _ uint) (*Solution, error) {
	if mode == ModeBackSubstitution {
		return t.backSubstitute(scale), nil
	}
	ar, n := t.ar, t.m.Order()
	sol := newSolution(n)
	for i := 0; i < n; i++ {
		row := t.m.Row(i)
		num, den := row[n], row[i]
		if ar.IsZero(den) {
			return zeroSolution(n), nil
		}
		sol.values[i] = math.Ldexp(ar.Float64(ar.Quo(num, den)), -scale)
		sol.exact[i] = scaleRat(ratQuo(ar.Rat(num), ar.Rat(den)), scale)
	}

	return sol, nil
}

// backSubstitute solves the upper-triangular terminal matrix bottom-up:
// x[n-1] = rhs/diag, then x[i] = (rhs[i] − Σ_{j>i} m[i][j]·x[j]) / m[i][i].
// Any zero diagonal returns the zero vector.
func (t *floatTerminal[T]) backSubstitute(scale int) *Solution {
	ar, n := t.ar, t.m.Order()
	x := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		row := t.m.Row(i)
		if ar.IsZero(row[i]) {
			return zeroSolution(n)
		}
		sum := ar.Zero()
		for j := i + 1; j < n; j++ {
			sum = ar.Add(sum, ar.Mul(row[j], x[j]))
		}
		x[i] = ar.Quo(ar.Sub(row[n], sum), row[i])
	}

	sol := newSolution(n)
	for i, v := range x {
		sol.values[i] = math.Ldexp(ar.Float64(v), -scale)
		sol.exact[i] = scaleRat(ar.Rat(v), scale)
	}

	return sol
}
