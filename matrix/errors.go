// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// If context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still match with errors.Is.

var (
	// ErrInvalidOrder is returned when a system order is outside [1, MaxOrder].
	ErrInvalidOrder = errors.New("matrix: order must be in [1, 6]")

	// ErrOutOfRange indicates that a row or column index is outside the
	// active n×(n+1) window. Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrGridShape signals that a source grid is too short (missing rows or
	// columns) for the requested order.
	ErrGridShape = errors.New("matrix: grid shape does not cover the system")

	// ErrNilMatrix indicates that a nil *Augmented (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOrderMismatch indicates two matrices of different orders.
	ErrOrderMismatch = errors.New("matrix: order mismatch")
)
