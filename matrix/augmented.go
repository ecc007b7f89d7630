// SPDX-License-Identifier: MIT

// Package matrix - Augmented storage (row-major, fixed capacity) & safe accessors.
//
// Purpose:
//   - Provide a fixed 6×7 buffer so hot loops never allocate.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer an unchecked Row fast path for kernels that already validated k < n.
//
// Complexity quicksheet:
//   - NewAugmented: O(1); At/Set: O(1); SwapRows: O(n); Clone: O(1) (fixed copy).

package matrix

import (
	"fmt"
	"strings"
)

// MaxOrder is the largest supported system order.
const MaxOrder = 6

// maxCols is the storage width: MaxOrder coefficients plus the right-hand side.
const maxCols = MaxOrder + 1

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSwapRows = "SwapRows"
	ctxCopyFrom = "CopyFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtAugSep   = " | "
)

func augErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Augmented.%s(%d,%d): %w", method, row, col, err)
}

// Augmented is an n×(n+1) augmented system over cells of type T.
//   - n is the active order; rows and columns beyond it are kept zero.
//   - cells is row-major fixed storage; column n of each row is the RHS.
//
// Cells are copied by value. For pointer cells (*big.Float) a copy shares
// the pointees, which is safe as long as cells are never mutated in place.
type Augmented[T any] struct {
	n     int
	cells [MaxOrder][maxCols]T
}

// NewAugmented creates a zero n×(n+1) system.
//
// Errors:
//   - ErrInvalidOrder when n is outside [1, MaxOrder].
func NewAugmented[T any](n int) (*Augmented[T], error) {
	if err := ValidateOrder(n); err != nil {
		return nil, err
	}

	return &Augmented[T]{n: n}, nil
}

// Order returns n.
func (a *Augmented[T]) Order() int { return a.n }

// Rows returns the number of active rows (n).
func (a *Augmented[T]) Rows() int { return a.n }

// Cols returns the number of active columns (n+1).
func (a *Augmented[T]) Cols() int { return a.n + 1 }

// RHSCol is the index of the right-hand-side column (n).
func (a *Augmented[T]) RHSCol() int { return a.n }

func (a *Augmented[T]) inRange(i, j int) bool {
	return i >= 0 && i < a.n && j >= 0 && j <= a.n
}

// At returns the cell (i, j), or ErrOutOfRange outside the active window.
func (a *Augmented[T]) At(i, j int) (T, error) {
	if !a.inRange(i, j) {
		var zero T

		return zero, augErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return a.cells[i][j], nil
}

// Set writes the cell (i, j), or returns ErrOutOfRange outside the window.
func (a *Augmented[T]) Set(i, j int, v T) error {
	if !a.inRange(i, j) {
		return augErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	a.cells[i][j] = v

	return nil
}

// Row returns row i (n+1 cells, RHS last) as a slice aliasing the storage.
// It is the kernels' fast path and performs no bounds check beyond the
// runtime's own: i must be in [0, n).
func (a *Augmented[T]) Row(i int) []T { return a.cells[i][:a.n+1] }

// SwapRows exchanges rows i and k through a local row buffer.
func (a *Augmented[T]) SwapRows(i, k int) error {
	if i < 0 || i >= a.n {
		return augErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	if k < 0 || k >= a.n {
		return augErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	tmp := a.cells[i]
	a.cells[i] = a.cells[k]
	a.cells[k] = tmp

	return nil
}

// Zero clears every cell and keeps the order.
func (a *Augmented[T]) Zero() {
	a.cells = [MaxOrder][maxCols]T{}
}

// Clone returns an independent copy.
func (a *Augmented[T]) Clone() *Augmented[T] {
	c := *a

	return &c
}

// CopyFrom overwrites a with src; both must have the same order.
func (a *Augmented[T]) CopyFrom(src *Augmented[T]) error {
	if src == nil {
		return fmt.Errorf("Augmented.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if src.n != a.n {
		return fmt.Errorf("Augmented.%s: %d vs %d: %w", ctxCopyFrom, a.n, src.n, ErrOrderMismatch)
	}
	a.cells = src.cells

	return nil
}

// Format renders the active window one row per line, with the RHS
// separated by " | ".
func (a *Augmented[T]) Format(cell func(T) string) string {
	var sb strings.Builder
	for i := 0; i < a.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(cell(a.cells[i][j]))
		}
		sb.WriteString(_fmtAugSep)
		sb.WriteString(cell(a.cells[i][a.n]))
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// FormatRow renders a single row in the same layout as Format, without the
// trailing newline. Out-of-range rows render as "[]".
func (a *Augmented[T]) FormatRow(i int, cell func(T) string) string {
	if i < 0 || i >= a.n {
		return _fmtRowOpen + "]"
	}
	parts := make([]string, a.n)
	for j := 0; j < a.n; j++ {
		parts[j] = cell(a.cells[i][j])
	}

	return _fmtRowOpen + strings.Join(parts, _fmtSep) + _fmtAugSep + cell(a.cells[i][a.n]) + "]"
}

// Convert maps every active cell of src through f into a new matrix of the
// same order.
func Convert[S, D any](src *Augmented[S], f func(S) D) (*Augmented[D], error) {
	if src == nil {
		return nil, fmt.Errorf("Convert: %w", ErrNilMatrix)
	}
	dst := &Augmented[D]{n: src.n}
	for i := 0; i < src.n; i++ {
		for j := 0; j <= src.n; j++ {
			dst.cells[i][j] = f(src.cells[i][j])
		}
	}

	return dst, nil
}
