// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/eqsolver/solver"
)

// ExampleSolve solves the demonstration system with fraction-free integer
// elimination.
func ExampleSolve() {
	c := [][]int64{{0, 1, 2, 2}, {1, 1, 1, 1}, {0, -1, -4, -2}, {3, 2, 1, -1}}
	b := []int64{1, 0, 1, -1}

	sol, err := solver.Solve(c, b, solver.FractionFree)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol)
	// Output: [-2, 3, -1, 0]
}

// ExampleStore runs a balanced variant with 16 bits of load headroom and
// shows the terminal matrix before extraction.
func ExampleStore() {
	c := [][]int64{{0, 1, 2, 2}, {1, 1, 1, 1}, {0, -1, -4, -2}, {3, 2, 1, -1}}
	b := []int64{1, 0, 1, -1}

	s := solver.New()
	if err := s.LoadSystem(c, b, solver.WithCoefficientScale(16), solver.WithPreScale(16)); err != nil {
		fmt.Println(err)
		return
	}
	st, err := s.Run(solver.BalancedRounded)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(st)
	fmt.Print(s.Dump())

	sol, _ := s.Extract()
	fmt.Println(sol)
	// Output:
	// solved
	// [139968, 0, 0, 0 | -279936]
	// [0, 46656, 0, 0 | 139968]
	// [0, 0, -62208, 0 | 62208]
	// [0, 0, 0, -27648 | 0]
	// [-2, 3, -1, 0]
}

// ExampleStore_Extract shows the truncation of FixedPoint at q = 12.
func ExampleStore_Extract() {
	c := [][]int64{{0, 1, 2, 2}, {1, 1, 1, 1}, {0, -1, -4, -2}, {3, 2, 1, -1}}
	b := []int64{1, 0, 1, -1}

	s := solver.New(solver.WithFixedShift(12))
	_ = s.LoadSystem(c, b)
	_, _ = s.Run(solver.FixedPoint)
	sol, _ := s.Extract()
	fmt.Println(sol)
	// Output: [-1.99609375, 3, -1, 0]
}

func ExampleParseVariant() {
	v, err := solver.ParseVariant("dfa5")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v, v.Name(), v.Cells())

	_, err = solver.ParseVariant("lu")
	fmt.Println(err)
	// Output:
	// dfa5 balanced int64
	// ParseVariant("lu"): solver: unknown variant
}
