// Package eqsolver solves small dense linear systems Cx = b (1 ≤ n ≤ 6)
// with several numeric strategies side by side, so their precision can be
// compared on identical input.
//
// 🚀 What is inside?
//
//   - Float elimination: row-echelon with back-substitution, Gauss-Jordan
//     over float32, float64 and 113-bit extended cells
//   - Integer elimination: fraction-free (Bareiss style), bit-shifted,
//     rounded-shift and scale-balanced variants over int64 or int128
//   - Fixed-point Gauss-Jordan carrying q fractional bits
//   - Divide-free cofactor expansion (Cramer) for even n
//   - One extractor turning any terminal matrix into float64 values plus
//     exact rationals
//
// Under the hood the work is split into four packages:
//
//	numeric/ — cell arithmetic contracts, Int128, Extended, BitWidth and shifts
//	balance/ — the Scale Balancer that keeps cross products inside a bit ceiling
//	matrix/  — fixed-capacity augmented matrix storage and input validators
//	solver/  — the Store lifecycle (load → run → extract), variants and options
//
// Quick example:
//
//	sol, err := solver.Solve(c, b, solver.BalancedRounded)
//
// Trace events of stores created WithDebug go to the "eqsolver" go-log
// subsystem at debug level.
package eqsolver
