// SPDX-License-Identifier: MIT

package solver

import "fmt"

// Solve is the one-shot facade: load the 0-based system (c, b), run v and
// extract with the default extraction options.
//
// Inputs:
//   - c: n×n coefficients, n in [1, 6]; b: n right-hand-side entries.
//   - v: the elimination variant.
//   - opts: run options (cells, pivoting, ceiling, ...).
//
// Returns:
//   - *Solution: the solution vector; Singular() reports the zero sentinel.
//
// Errors:
//   - Any error of LoadSystem, Run or Extract, wrapped with "Solve".
//
// AI-Hints:
//   - Use a Store directly when you need load scales or extraction options.
func Solve(c [][]int64, b []int64, v Variant, opts ...Option) (*Solution, error) {
	s := New(opts...)
	if err := s.LoadSystem(c, b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if _, err := s.Run(v); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	sol, err := s.Extract()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return sol, nil
}

// Result pairs a variant with its solution, or the error that stopped it.
type Result struct {
	Variant  Variant
	Solution *Solution
	Err      error
}

// Compare solves (c, b) with every variant, one fresh load each, with the
// given load scales applied to all of them. Variants that cannot run (for
// example Cofactor at an odd order) carry their error in the Result.
//
// Complexity:
//   - len(Variants()) loads and runs, each O(n³).
func Compare(c [][]int64, b []int64, load []LoadOption, opts ...Option) []Result {
	out := make([]Result, 0, len(registry))
	s := New(opts...)
	for _, v := range Variants() {
		r := Result{Variant: v}
		if err := s.LoadSystem(c, b, load...); err != nil {
			r.Err = err
		} else if _, err = s.Run(v); err != nil {
			r.Err = err
		} else {
			r.Solution, r.Err = s.Extract()
		}
		out = append(out, r)
	}

	return out
}
