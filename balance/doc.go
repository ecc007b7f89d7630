// SPDX-License-Identifier: MIT

// Package balance keeps the cross products of fraction-free elimination
// inside the storage width of integer cells.
//
// What & Why:
//
//	One fraction-free update computes M·D − L·C, where M is the pivot, D the
//	target cell, L the target row's pivot-column entry and C the pivot row's
//	cell. The bit width of a product is roughly the sum of the operand widths,
//	so a Balancer first measures both sums and, when the wider one exceeds a
//	ceiling, right-shifts the operands just enough to bring it back under.
//	The excess is charged to the caller's bit budget, so the step's final
//	post-shift is reduced by exactly the amount already removed.
//
// Strategies:
//
//	Symmetric  — shift the pivot-side operands M and L by the excess.
//	Asymmetric — shift the wider of {M, D} and the wider of {L, C}.
//
// Both strategies keep the two products on the same scale, so M·D and L·C
// may still be subtracted after balancing.
//
// Ceilings:
//
//	Conservative (44) leaves headroom for the subtraction and for an
//	accumulating right-hand side; Aggressive (61) keeps more precision at
//	the cost of occasional wrap-around on wide systems.
package balance
