// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/eqsolver/matrix"
	"github.com/katalvlaran/eqsolver/numeric"
)

// cofactorOrder reports whether the closed form covers order n.
func cofactorOrder(n int) bool { return n%2 == 0 }

// cofactor solves m by Cramer's rule with divide-free determinants.
//
// Implementation:
//   - Stage 1: det = |C| by generalized Laplace expansion along row pairs
//     (laplace), and det_i with column i replaced by the RHS.
//   - Stage 2: rewrite m as diag(det) with det_i in the RHS column, so
//     direct extraction yields det_i/det.
//   - Stage 3: det == 0 forces the singular sentinel.
//
// Behavior highlights:
//   - No pivoting and no division; overflow wraps like the other integer
//     variants.
//   - The caller has already checked cofactorOrder(n).
//
// Complexity:
//   - (n+1) determinants; n = 6 costs 15 · 6 · 2 = 180 2×2 minors each.
func cofactor[T any](ar numeric.Integer[T], m *matrix.Augmented[T], tr tracer) State {
	n := m.Order()
	cols := make([]int, n)
	for j := range cols {
		cols[j] = j
	}
	det := laplace(ar, m, 0, cols)

	nums := make([]T, n)
	sub := make([]int, n)
	for i := 0; i < n; i++ {
		copy(sub, cols)
		sub[i] = n // RHS column stands in for column i
		nums[i] = laplace(ar, m, 0, sub)
	}
	tr.event(opCofactor, "det", ar.Format(det))

	if ar.IsZero(det) {
		tr.event(opSingular, "k", -1)
		forceSentinel(ar, m)

		return StateSingular
	}
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := 0; j < n; j++ {
			if i == j {
				row[j] = det
			} else {
				row[j] = ar.Zero()
			}
		}
		row[n] = nums[i]
	}

	return StateSolved
}

// laplace returns the determinant of the square minor on rows
// row..row+len(cols)-1 and the given columns, expanding along the first two
// rows: Σ_{p<q} (-1)^(p+q+1) · |rows 0,1 × cols p,q| · |rest × other cols|.
// len(cols) must be even.
func laplace[T any](ar numeric.Arith[T], m *matrix.Augmented[T], row int, cols []int) T {
	if len(cols) == 2 {
		return minor2(ar, m, row, cols[0], cols[1])
	}

	acc := ar.Zero()
	rest := make([]int, 0, len(cols)-2)
	for p := 0; p < len(cols); p++ {
		for q := p + 1; q < len(cols); q++ {
			rest = rest[:0]
			for c, col := range cols {
				if c != p && c != q {
					rest = append(rest, col)
				}
			}
			term := ar.Mul(minor2(ar, m, row, cols[p], cols[q]), laplace(ar, m, row+2, rest))
			if (p+q)%2 == 1 {
				acc = ar.Add(acc, term)
			} else {
				acc = ar.Sub(acc, term)
			}
		}
	}

	return acc
}

// minor2 is the 2×2 determinant of rows row, row+1 and columns a, b.
func minor2[T any](ar numeric.Arith[T], m *matrix.Augmented[T], row, a, b int) T {
	r0, r1 := m.Row(row), m.Row(row+1)

	return ar.Sub(ar.Mul(r0[a], r1[b]), ar.Mul(r0[b], r1[a]))
}
