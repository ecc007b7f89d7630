// SPDX-License-Identifier: MIT

package solver_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eqsolver/numeric"
	"github.com/katalvlaran/eqsolver/solver"
	"github.com/stretchr/testify/require"
)

// randomTrials is the number of systems drawn per order.
const randomTrials = 300

// nonSingular reports det(c) ≠ 0 by exact rational elimination.
func nonSingular(c [][]int64) bool {
	n := len(c)
	a := make([][]*big.Rat, n)
	for i := range c {
		a[i] = make([]*big.Rat, n)
		for j, v := range c[i] {
			a[i][j] = new(big.Rat).SetInt64(v)
		}
	}
	for k := 0; k < n; k++ {
		p := k
		for p < n && a[p][k].Sign() == 0 {
			p++
		}
		if p == n {
			return false
		}
		a[k], a[p] = a[p], a[k]
		for i := k + 1; i < n; i++ {
			f := new(big.Rat).Quo(a[i][k], a[k][k])
			for j := k; j < n; j++ {
				a[i][j].Sub(a[i][j], new(big.Rat).Mul(f, a[k][j]))
			}
		}
	}

	return true
}

// randomFixture draws a non-singular system with entries and solution in
// [-5, 5]. Dominant systems get diagonal entries of magnitude
// 5(n-1)+1..5n, so every row is strictly diagonally dominant.
func randomFixture(rng *rand.Rand, n int, dominant bool) fixture {
	for {
		f := fixture{c: make([][]int64, n), b: make([]int64, n), x: make([]float64, n)}
		xs := make([]int64, n)
		for j := range xs {
			xs[j] = rng.Int63n(11) - 5
			f.x[j] = float64(xs[j])
		}
		for i := range f.c {
			f.c[i] = make([]int64, n)
			for j := range f.c[i] {
				f.c[i][j] = rng.Int63n(11) - 5
			}
			if dominant {
				d := int64(5*(n-1)) + 1 + rng.Int63n(5)
				if rng.Intn(2) == 0 {
					d = -d
				}
				f.c[i][i] = d
			}
			for j, v := range f.c[i] {
				f.b[i] += v * xs[j]
			}
		}
		if nonSingular(f.c) {
			return f
		}
	}
}

// TestFractionFreeExactRandom: with |c|, |x| ≤ 5 the widest dfa cell stays
// near 42 bits at n = 4 and 83 bits at n = 5, so int64 is exact up to n = 4
// and Int128 up to n = 5.
func TestFractionFreeExactRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	limits := map[numeric.Kind]int{numeric.KindInt64: 4, numeric.KindInt128: 5}

	for _, k := range []numeric.Kind{numeric.KindInt64, numeric.KindInt128} {
		for n := 1; n <= limits[k]; n++ {
			for trial := 0; trial < randomTrials; trial++ {
				f := randomFixture(rng, n, false)
				sol, st := solve(t, f, solver.FractionFree, nil, solver.WithCells(k))
				require.Equal(t, solver.StateSolved, st)
				require.Equal(t, f.x, sol.Values(), "n=%d %s c=%v b=%v", n, k, f.c, f.b)
				for i, want := range f.x {
					r, err := sol.Rat(i)
					require.NoError(t, err)
					require.Equal(t, want, ratFloat(r), "exact x[%d]", i)
				}
			}
		}
	}
}

// TestShiftingVariantsRandom bounds dfa2..dfa5 with 16 bits of headroom:
// strictly dominant systems stay within the last bit, general ones within
// 1/16 (ill-conditioned n = 5, 6 systems lose a few low bits).
func TestShiftingVariantsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	variants := []solver.Variant{solver.Shifted, solver.RoundedShift, solver.BalancedRounded, solver.Balanced}

	for _, dominant := range []bool{true, false} {
		tol := 1.0 / 16
		if dominant {
			tol = lastBit
		}
		for n := 1; n <= 6; n++ {
			for trial := 0; trial < randomTrials; trial++ {
				f := randomFixture(rng, n, dominant)
				for _, v := range variants {
					for _, k := range []numeric.Kind{numeric.KindInt64, numeric.KindInt128} {
						sol, st := solve(t, f, v, headroom, solver.WithCells(k))
						require.Equal(t, solver.StateSolved, st, "n=%d %s %s c=%v", n, v, k, f.c)
						require.InDeltaSlice(t, f.x, sol.Values(), tol,
							"n=%d %s %s dominant=%t c=%v b=%v", n, v, k, dominant, f.c, f.b)
					}
				}
			}
		}
	}
}

// TestFixedPointRandom: q = 16 holds the last bit only on dominant systems;
// general systems need q = 40 on Int128 cells.
func TestFixedPointRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < randomTrials; trial++ {
			f := randomFixture(rng, n, true)
			sol, st := solve(t, f, solver.FixedPoint, nil, solver.WithFixedShift(16))
			require.Equal(t, solver.StateSolved, st)
			require.InDeltaSlice(t, f.x, sol.Values(), 2*lastBit, "n=%d q=16 c=%v", n, f.c)

			f = randomFixture(rng, n, false)
			sol, st = solve(t, f, solver.FixedPoint, nil,
				solver.WithCells(numeric.KindInt128), solver.WithFixedShift(40))
			require.Equal(t, solver.StateSolved, st)
			require.InDeltaSlice(t, f.x, sol.Values(), lastBit, "n=%d q=40 c=%v", n, f.c)
		}
	}
}

// TestCofactorExactRandom: by Hadamard every minor of a 6×6 system with
// |c|, |x| ≤ 5 stays below 2^28, so int64 Cramer is exact for every even n.
func TestCofactorExactRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	for _, n := range []int{2, 4, 6} {
		for trial := 0; trial < randomTrials; trial++ {
			f := randomFixture(rng, n, false)
			sol, st := solve(t, f, solver.Cofactor, nil)
			require.Equal(t, solver.StateSolved, st)
			require.Equal(t, f.x, sol.Values(), "n=%d c=%v b=%v", n, f.c, f.b)
		}
	}
}
