// SPDX-License-Identifier: MIT

// Package solver loads, eliminates and extracts small dense linear systems
// Cx = b (1 ≤ n ≤ 6) with interchangeable numeric strategies, so their
// precision can be compared on identical input.
//
// What & Why:
//
//	A Store holds one system through a strict lifecycle:
//
//	 Empty ──Load──▶ Loaded ──Run──▶ Solved | Singular
//	   ▲                                   │
//	   └──────────────Reset────────────────┘
//
//	Run is destructive, so every variant gets its own Load. Extract never
//	mutates and may be called any number of times.
//
// Variants (code, cells):
//
//	Echelon          gem     float64 | float32 | extended, back-substitution
//	GaussJordan      gja     float64 | float32 | extended
//	FixedPoint       gja2    int64 | int128, q fractional bits (WithFixedShift)
//	FractionFree     dfa     int64 | int128, M·D − L·C (Bareiss-style)
//	Shifted          dfa2    … then sign-aware >> bw(M)
//	RoundedShift     dfa3    … with the shift rounded up on a set half bit
//	BalancedRounded  dfa4    balance, then sign-aware >> rounded B
//	Balanced         dfa5    balance, then arithmetic >> plain B
//	Cofactor         cramer  int64 | int128, closed form, n ∈ {2, 4, 6}
//
//	Every iterative variant is the same generic kernel instantiated with a
//	cell type from package numeric and a per-cell reduction policy. The
//	balanced variants bound operand widths with package balance.
//
// Precision notes:
//
//	The shifting variants drop about bw(M) bits per step and need headroom:
//	load with WithCoefficientScale(16) and WithPreScale(16) and they reproduce
//	small integer solutions of well-conditioned systems to within 2^-7;
//	ill-conditioned n = 5, 6 systems lose a few more low bits. FixedPoint at
//	q = 16 is only that good on diagonally dominant input; prefer q = 40 on
//	Int128 cells otherwise. Plain FractionFree is exact until it wraps: with
//	entries and solutions in [-5, 5], int64 holds n ≤ 4 and Int128 n ≤ 5.
//	Cofactor stays exact in int64 for every even n on such input.
//	Overflow wraps silently in every integer variant.
//
// Singular systems:
//
//	An exactly-zero pivot (or a zero cofactor determinant) forces the
//	sentinel matrix (diagonal 1, RHS 0). Run returns StateSingular without an
//	error and Extract returns the zero vector with Singular() == true.
//
// Tracing:
//
//	WithDebug() emits go-log debug events on the "eqsolver" subsystem with
//	the opcodes load, pivot-swap, elimination-step, singular, cofactor and
//	extract, plus row dumps. SetLogLevel("debug") makes them visible.
//
// Quick start:
//
//	sol, err := solver.Solve(c, b, solver.GaussJordan)
//	if err != nil { ... }
//	fmt.Println(sol) // [-2, 3, -1, 0]
package solver
