// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"

	"github.com/katalvlaran/eqsolver/numeric"
)

// Strategy selects which operands absorb the excess width.
type Strategy int

const (
	// Symmetric shifts M and L, leaving D and C untouched.
	Symmetric Strategy = iota
	// Asymmetric shifts the wider operand of each product.
	Asymmetric
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Symmetric:
		return "symmetric"
	case Asymmetric:
		return "asymmetric"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Ceilings tuned for 64-bit cells. For 128-bit cells the same headroom is
// obtained by adding 64 (see DefaultCeiling).
const (
	Conservative uint = 44
	Aggressive   uint = 61
)

// DefaultCeiling returns the Conservative ceiling scaled to a cell width.
func DefaultCeiling(cellBits uint) uint {
	if cellBits <= 64 {
		return Conservative
	}

	return Conservative + cellBits - 64
}

// Balancer bounds the width of M·D and L·C for one integer cell type.
// A Balancer is immutable and safe for concurrent use.
type Balancer[T any] struct {
	ar       numeric.Integer[T]
	strategy Strategy
	ceiling  uint
}

// New validates the strategy and ceiling and returns a Balancer.
//
// Inputs:
//   - ar: integer arithmetic of the cells to balance.
//   - s: Symmetric or Asymmetric.
//   - ceiling: maximal width sum of either product, in [2, ar.Bits()-2].
//
// Errors:
//   - ErrStrategy for an unknown strategy.
//   - ErrCeiling for a ceiling outside the cell width.
func New[T any](ar numeric.Integer[T], s Strategy, ceiling uint) (*Balancer[T], error) {
	if s != Symmetric && s != Asymmetric {
		return nil, fmt.Errorf("New: %w", ErrStrategy)
	}
	if ceiling < 2 || ceiling > ar.Bits()-2 {
		return nil, fmt.Errorf("New: ceiling %d for %d-bit cells: %w", ceiling, ar.Bits(), ErrCeiling)
	}

	return &Balancer[T]{ar: ar, strategy: s, ceiling: ceiling}, nil
}

// Strategy returns the configured strategy.
func (bl *Balancer[T]) Strategy() Strategy { return bl.strategy }

// Ceiling returns the configured ceiling.
func (bl *Balancer[T]) Ceiling() uint { return bl.ceiling }

// Balance brings the wider of bw(m)+bw(d) and bw(l)+bw(c) down to the
// ceiling by arithmetic right shifts, and subtracts the applied excess
// from *b. It returns the excess (0 when both sums already fit).
//
// Implementation:
//   - Stage 1: measure the four widths and both sums; ties take the M·D sum.
//   - Stage 2: excess = max(sum) − ceiling; return early when ≤ 0.
//   - Stage 3: Symmetric shifts m and l; Asymmetric shifts the wider of
//     {m, d} (m on a tie) and the wider of {l, c} (l on a tie).
//   - Stage 4: *b -= excess. The budget may go negative; callers then shift
//     the step's result left instead of right.
//
// Behavior highlights:
//   - Each product loses exactly `excess` bits of scale, so the difference
//     M·D − L·C stays meaningful and equals the unbalanced one divided by
//     2^excess, up to the floor error of the shifted operands.
//   - After the call both sums are within the ceiling as long as every
//     shifted operand was at least `excess` bits wide; a negative operand may
//     keep one extra bit because the shift floors toward -Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (bl *Balancer[T]) Balance(m, d, l, c *T, b *int) uint {
	ar := bl.ar
	wm, wd := ar.BitWidth(*m), ar.BitWidth(*d)
	wl, wc := ar.BitWidth(*l), ar.BitWidth(*c)

	sum := wm + wd
	if lc := wl + wc; lc > sum {
		sum = lc
	}
	if sum <= bl.ceiling {
		return 0
	}
	excess := sum - bl.ceiling

	switch bl.strategy {
	case Asymmetric:
		if wd > wm {
			*d = ar.Shr(*d, excess)
		} else {
			*m = ar.Shr(*m, excess)
		}
		if wc > wl {
			*c = ar.Shr(*c, excess)
		} else {
			*l = ar.Shr(*l, excess)
		}
	default:
		*m = ar.Shr(*m, excess)
		*l = ar.Shr(*l, excess)
	}
	*b -= int(excess)

	return excess
}
