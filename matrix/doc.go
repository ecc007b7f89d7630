// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-capacity augmented matrix the
// elimination kernels operate on.
//
// An Augmented[T] holds an n×(n+1) system, n in [1, MaxOrder]: columns
// 0..n-1 are coefficients and column n is the right-hand side. Storage is a
// fixed 6×7 array, so a matrix never allocates after construction and a
// value copy is a deep copy of the cells.
//
// The package also carries the shared validators for source grids
// (ValidateOrder, ValidateGrid, ValidateSystem) and its sentinel errors.
//
// Complexity quicksheet:
//   - NewAugmented: O(1); At/Set: O(1); SwapRows: O(n); Clone/CopyFrom: O(1)
//     fixed-size copy; Convert: O(n²).
package matrix
