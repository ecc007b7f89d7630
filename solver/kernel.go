// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/eqsolver/matrix"
	"github.com/katalvlaran/eqsolver/numeric"
)

// sweep selects the cells one elimination step transforms.
type sweep int

const (
	// sweepFull transforms every row and every column (Gauss-Jordan).
	sweepFull sweep = iota
	// sweepEchelon transforms rows k..n-1, columns k..n (row-echelon).
	sweepEchelon
)

// eliminate runs the shared elimination skeleton over one reduction policy.
//
// Implementation:
//   - Stage 1: for k = 0..n-1, pivot column k; a zero pivot forces the
//     singular sentinel and stops.
//   - Stage 2: hand M = m[k][k] to the policy, then transform the swept
//     cells into a work buffer, reading only the matrix as it stood when
//     the step began.
//   - Stage 3: commit the swept cells back and trace the step.
//
// Behavior highlights:
//   - Integer overflow wraps silently; balancing is the mitigation.
//   - Columns left of k in the echelon sweep are never rewritten.
//
// Returns:
//   - StateSolved after all n steps, StateSingular on a zero pivot.
//
// Complexity:
//   - Time O(n³) policy calls, Space O(1) (fixed-size work buffer).
func eliminate[T any](ar numeric.Arith[T], m *matrix.Augmented[T], red reduction[T], pivoting bool, sw sweep, tr tracer) State {
	n := m.Order()
	work := m.Clone()

	for k := 0; k < n; k++ {
		if !pivot(ar, m, k, pivoting, tr) {
			tr.event(opSingular, "k", k)
			forceSentinel(ar, m)

			return StateSingular
		}

		first := 0
		if sw == sweepEchelon {
			first = k
		}
		pk := m.Row(k)
		red.begin(pk[k])
		for i := first; i < n; i++ {
			src, dst := m.Row(i), work.Row(i)
			l := src[k]
			for j := first; j <= n; j++ {
				if i == k {
					dst[j] = red.lead(pk[j])
				} else {
					dst[j] = red.reduce(src[j], l, pk[j])
				}
			}
		}
		for i := first; i < n; i++ {
			copy(m.Row(i)[first:], work.Row(i)[first:])
		}
		tr.rows(opStep, k, func() string { return m.Format(ar.Format) })
	}

	return StateSolved
}

// forceSentinel rewrites m into the singular sentinel: diagonal 1 and
// RHS 0 on every row, so direct extraction yields the zero vector.
func forceSentinel[T any](ar numeric.Arith[T], m *matrix.Augmented[T]) {
	n := m.Order()
	for p := 0; p < n; p++ {
		row := m.Row(p)
		row[p] = ar.One()
		row[n] = ar.Zero()
	}
}

// preShift left-shifts every active cell by q bits.
func preShift[T any](ar numeric.Integer[T], m *matrix.Augmented[T], q uint) {
	n := m.Order()
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = ar.Shl(row[j], q)
		}
	}
}

// loadCells converts raw coefficients into cells of type T, doubling the
// coefficient columns coefScale times and the RHS column preScale times.
// Doubling wraps like a left shift on integer cells and is exact on floats.
func loadCells[T any](ar numeric.Arith[T], src *matrix.Augmented[int64], lo loadOptions) *matrix.Augmented[T] {
	m, _ := matrix.Convert(src, ar.FromInt64) // src is never nil here
	n := m.Order()
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := 0; j < n; j++ {
			row[j] = doubled(ar, row[j], lo.coefScale)
		}
		row[n] = doubled(ar, row[n], lo.preScale)
	}

	return m
}

func doubled[T any](ar numeric.Arith[T], v T, s uint) T {
	for ; s > 0; s-- {
		v = ar.Add(v, v)
	}

	return v
}
