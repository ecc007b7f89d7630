// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqsolver/matrix"
)

// Solution is the immutable result of one extraction.
type Solution struct {
	variant  Variant
	values   []float64
	exact    []*big.Rat // nil entries where a float cell was not finite
	singular bool
}

func newSolution(n int) *Solution {
	return &Solution{values: make([]float64, n), exact: make([]*big.Rat, n)}
}

// zeroSolution is the sentinel returned for singular or degenerate systems.
func zeroSolution(n int) *Solution {
	s := newSolution(n)
	for i := range s.exact {
		s.exact[i] = new(big.Rat)
	}
	s.singular = true

	return s
}

// Len returns n.
func (s *Solution) Len() int { return len(s.values) }

// Values returns a copy of the solution vector.
func (s *Solution) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// At returns x_i.
func (s *Solution) At(i int) (float64, error) {
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("Solution.At(%d): %w", i, matrix.ErrOutOfRange)
	}

	return s.values[i], nil
}

// Rat returns the exact rational behind x_i: the terminal ratio
// RHS/diagonal scaled by 2^-scale in direct mode, or the exact value of the
// computed cell after back-substitution. It is nil when a float cell is not
// finite. The returned value is a copy.
func (s *Solution) Rat(i int) (*big.Rat, error) {
	if i < 0 || i >= len(s.exact) {
		return nil, fmt.Errorf("Solution.Rat(%d): %w", i, matrix.ErrOutOfRange)
	}
	if s.exact[i] == nil {
		return nil, nil
	}

	return new(big.Rat).Set(s.exact[i]), nil
}

// Singular reports whether the zero-vector sentinel was returned.
func (s *Solution) Singular() bool { return s.singular }

// Variant returns the variant that produced the terminal matrix, or 0 when
// extracted straight after Load.
func (s *Solution) Variant() Variant { return s.variant }

// MaxResidual returns max_i |Σ_j c[i][j]·x_j − b[i]| for a 0-based system.
// It returns +Inf when the shapes do not match.
func (s *Solution) MaxResidual(c [][]int64, b []int64) float64 {
	n := len(s.values)
	if len(c) != n || len(b) != n {
		return math.Inf(1)
	}
	worst := 0.0
	for i, row := range c {
		if len(row) != n {
			return math.Inf(1)
		}
		sum := -float64(b[i])
		for j, v := range row {
			sum += float64(v) * s.values[j]
		}
		worst = math.Max(worst, math.Abs(sum))
	}

	return worst
}

// String renders the vector as "[x0, x1, ...]".
func (s *Solution) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// scaleRat returns r·2^-s, or nil for a nil r.
func scaleRat(r *big.Rat, s int) *big.Rat {
	if r == nil {
		return nil
	}
	if s == 0 {
		return r
	}
	p := new(big.Int).Lsh(big.NewInt(1), uint(absInt(s)))
	f := new(big.Rat).SetInt(p)
	if s > 0 {
		return r.Quo(r, f)
	}

	return r.Mul(r, f)
}

// ratQuo returns a/b, or nil when either side is nil or b is zero.
func ratQuo(a, b *big.Rat) *big.Rat {
	if a == nil || b == nil || b.Sign() == 0 {
		return nil
	}

	return new(big.Rat).Quo(a, b)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
