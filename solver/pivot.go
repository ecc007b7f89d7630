// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/eqsolver/matrix"
	"github.com/katalvlaran/eqsolver/numeric"
)

// pivot prepares column k of m for elimination step k.
//
// Implementation:
//   - Stage 1 (pivoting on): scan rows k..n-1 and keep the FIRST row whose
//     |m[i][k]| is strictly larger than the best so far.
//   - Stage 2: swap that row into position k.
//   - Stage 3: report whether m[k][k] is non-zero (exact test).
//
// Behavior highlights:
//   - One routine for every cell type; ties keep the upper row, so inputs
//     with equal magnitudes pivot deterministically.
//   - With pivoting off only the zero test runs.
//
// Complexity:
//   - Time O(n) comparisons plus one O(n) swap, Space O(n) (swap buffer).
func pivot[T any](ar numeric.Arith[T], m *matrix.Augmented[T], k int, enabled bool, tr tracer) bool {
	if enabled {
		n := m.Order()
		best, bestAbs := k, ar.Abs(m.Row(k)[k])
		for i := k + 1; i < n; i++ {
			if a := ar.Abs(m.Row(i)[k]); ar.Cmp(a, bestAbs) > 0 {
				best, bestAbs = i, a
			}
		}
		if best != k {
			tr.rows(opPivotSwap, k, func() string { return m.Format(ar.Format) })
			_ = m.SwapRows(k, best) // both indices are in range
			tr.event(opPivotSwap, "k", k, "m", best)
			tr.rows(opPivotSwap, k, func() string { return m.Format(ar.Format) })
		}
	}

	return !ar.IsZero(m.Row(k)[k])
}
