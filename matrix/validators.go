// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for source-grid checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateOrder checks 1 ≤ n ≤ MaxOrder.
func ValidateOrder(n int) error {
	if n < 1 || n > MaxOrder {
		return validatorErrorf(fmt.Sprintf("ValidateOrder(%d)", n), ErrInvalidOrder)
	}

	return nil
}

// ValidateGrid checks that coeffs covers an order-n system in the loader
// layout: row 0 is reserved, rows 1..n are equations, and each equation row
// has at least n+1 entries (n coefficients, RHS at index n).
//
// Errors: ErrInvalidOrder, ErrGridShape.
// Complexity: O(n).
func ValidateGrid(coeffs [][]int64, n int) error {
	if err := ValidateOrder(n); err != nil {
		return err
	}
	if len(coeffs) < n+1 {
		return validatorErrorf(fmt.Sprintf("ValidateGrid: %d rows for order %d", len(coeffs), n), ErrGridShape)
	}
	for i := 1; i <= n; i++ {
		if len(coeffs[i]) < n+1 {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d cols", i, len(coeffs[i])), ErrGridShape)
		}
	}

	return nil
}

// ValidateSystem checks a 0-based square system: c is n×n and len(b) == n.
//
// Errors: ErrInvalidOrder, ErrGridShape.
// Complexity: O(n).
func ValidateSystem(c [][]int64, b []int64) error {
	n := len(c)
	if err := ValidateOrder(n); err != nil {
		return err
	}
	if len(b) != n {
		return validatorErrorf(fmt.Sprintf("ValidateSystem: rhs length %d for order %d", len(b), n), ErrGridShape)
	}
	for i, row := range c {
		if len(row) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSystem: row %d has %d cols", i, len(row)), ErrGridShape)
		}
	}

	return nil
}
