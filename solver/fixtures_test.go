// SPDX-License-Identifier: MIT
// Package solver_test contains shared fixtures and helpers.
//
// Purpose:
//   - Provide small deterministic systems with known integer solutions for
//     every supported order, plus the singular and wide-range systems the
//     variant tests rely on.

package solver_test

import (
	"testing"

	"github.com/katalvlaran/eqsolver/solver"
	"github.com/stretchr/testify/require"
)

// fixture is a 0-based system with its exact solution.
type fixture struct {
	c [][]int64
	b []int64
	x []float64
}

// fixtures holds one non-singular system per order 1..6 with entries in
// [-5, 5] and an integer solution.
var fixtures = []fixture{
	{
		c: [][]int64{{4}},
		b: []int64{-4},
		x: []float64{-1},
	},
	{
		c: [][]int64{{-3, 5}, {4, 0}},
		b: []int64{26, -8},
		x: []float64{-2, 4},
	},
	{
		c: [][]int64{{2, -2, -4}, {4, -4, 5}, {1, 2, 0}},
		b: []int64{0, -39, 3},
		x: []float64{-3, 3, -3},
	},
	{
		c: [][]int64{{-5, -2, -2, 1}, {0, -5, -3, -5}, {-3, -4, -3, -4}, {-4, 5, 0, 0}},
		b: []int64{24, -5, 8, 11},
		x: []float64{-4, -1, 0, 2},
	},
	{
		c: [][]int64{
			{4, 0, 4, -4, -5},
			{-1, 3, 4, 0, -1},
			{-3, 0, -3, -3, -4},
			{5, 1, 0, -3, 1},
			{4, 1, 2, 2, 5},
		},
		b: []int64{-20, -5, -9, -19, 2},
		x: []float64{-1, -2, 0, 4, 0},
	},
	{
		c: [][]int64{
			{2, -5, 3, 3, 2, -5},
			{-1, -4, -2, 2, 0, 1},
			{2, 5, -1, -2, 2, -1},
			{2, 5, -3, -3, -1, 0},
			{2, 0, -4, -1, 0, 0},
			{-3, -3, 1, -4, -5, -4},
		},
		b: []int64{0, 21, -11, -13, 9, -31},
		x: []float64{1, -3, -2, 1, 3, 4},
	},
}

// demo is the four-equation demonstration system; x = [-2, 3, -1, 0].
var demo = fixture{
	c: [][]int64{{0, 1, 2, 2}, {1, 1, 1, 1}, {0, -1, -4, -2}, {3, 2, 1, -1}},
	b: []int64{1, 0, 1, -1},
	x: []float64{-2, 3, -1, 0},
}

// permuted replaces the first demo equation; x = [1/2, 0, -1, 3/2].
var permuted = fixture{
	c: [][]int64{{1, 1, 1, 1}, {0, 1, 2, 2}, {0, -1, -4, -2}, {3, 2, 1, -1}},
	b: []int64{1, 1, 1, -1},
	x: []float64{0.5, 0, -1, 1.5},
}

// dependent has rank 3 (row 2 = row 0 + row 1) with a consistent RHS.
var dependent = fixture{
	c: [][]int64{{2, -3, 1, 5}, {-3, 1, 2, -4}, {-1, -2, 3, 1}, {0, 0, 1, 1}},
	b: []int64{6, 5, 11, 2},
}

// singular2 is the 2×2 system [[1,1 | 2],[2,2 | 4]].
var singular2 = fixture{
	c: [][]int64{{1, 1}, {2, 2}},
	b: []int64{2, 4},
}

// wide has coefficients up to 2^33, beyond what unbalanced fraction-free
// elimination can hold in 64 bits.
var wide = fixture{
	c: [][]int64{
		{22011332, 387232848, 5219810, 121208776},
		{387232848, 13023152016, 507249608, -4173773200},
		{5219810, 507249608, 48421896, -575676040},
		{121208776, -4173773200, -575676040, 12016008592},
	},
	b: []int64{62134656, 1455695872, 7083392, 2715599360},
}

// solve loads f into a fresh store, runs v and extracts.
func solve(t *testing.T, f fixture, v solver.Variant, load []solver.LoadOption, opts ...solver.Option) (*solver.Solution, solver.State) {
	t.Helper()
	s := solver.New()
	require.NoError(t, s.LoadSystem(f.c, f.b, load...))
	st, err := s.Run(v, opts...)
	require.NoError(t, err, "run %s", v)
	sol, err := s.Extract()
	require.NoError(t, err)

	return sol, st
}

// headroom pre-scales coefficients and RHS by 16 bits for the shifting variants.
var headroom = []solver.LoadOption{solver.WithCoefficientScale(16), solver.WithPreScale(16)}
