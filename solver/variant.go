// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eqsolver/numeric"
)

// Variant names one elimination policy.
type Variant int

const (
	// Echelon is row-echelon elimination over floats, solved by back-substitution.
	Echelon Variant = iota + 1
	// GaussJordan normalizes the pivot row and clears the whole column (floats).
	GaussJordan
	// FixedPoint is Gauss-Jordan on integers carrying q fractional bits.
	FixedPoint
	// FractionFree is Bareiss-style elimination: M·D − L·C, no division.
	FractionFree
	// Shifted is FractionFree with a sign-aware right shift by bw(M) per step.
	Shifted
	// RoundedShift is Shifted with the shift rounded up on a set half bit.
	RoundedShift
	// BalancedRounded balances the operands, then truncates by the rounded shift.
	BalancedRounded
	// Balanced balances the operands, then floors by the plain shift.
	Balanced
	// Cofactor solves by divide-free cofactor expansion (Cramer), n ∈ {2, 4, 6}.
	Cofactor
)

// Mode is the extraction mode.
type Mode int

const (
	// ModeAuto uses the variant's natural mode.
	ModeAuto Mode = iota
	// ModeDirect divides each RHS entry by its diagonal.
	ModeDirect
	// ModeBackSubstitution solves an upper-triangular terminal matrix bottom-up.
	ModeBackSubstitution
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeDirect:
		return "direct"
	case ModeBackSubstitution:
		return "back-substitution"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// variantInfo is one registry row.
type variantInfo struct {
	code     string
	name     string
	cells    numeric.Kind   // default cell type
	allowed  []numeric.Kind // accepted cell types, default first
	mode     Mode           // natural extraction mode
	balanced bool           // uses a Balancer
}

var (
	floatCells   = []numeric.Kind{numeric.KindFloat64, numeric.KindFloat32, numeric.KindExtended}
	integerCells = []numeric.Kind{numeric.KindInt64, numeric.KindInt128}
)

var registry = map[Variant]variantInfo{
	Echelon:         {code: "gem", name: "echelon", cells: numeric.KindFloat64, allowed: floatCells, mode: ModeBackSubstitution},
	GaussJordan:     {code: "gja", name: "gauss-jordan", cells: numeric.KindFloat64, allowed: floatCells, mode: ModeDirect},
	FixedPoint:      {code: "gja2", name: "fixed-point", cells: numeric.KindInt64, allowed: integerCells, mode: ModeDirect},
	FractionFree:    {code: "dfa", name: "fraction-free", cells: numeric.KindInt64, allowed: integerCells, mode: ModeDirect},
	Shifted:         {code: "dfa2", name: "shifted", cells: numeric.KindInt64, allowed: integerCells, mode: ModeDirect},
	RoundedShift:    {code: "dfa3", name: "rounded-shift", cells: numeric.KindInt64, allowed: integerCells, mode: ModeDirect},
	BalancedRounded: {code: "dfa4", name: "balanced-rounded", cells: numeric.KindInt64, allowed: integerCells, mode: ModeDirect, balanced: true},
	Balanced:        {code: "dfa5", name: "balanced", cells: numeric.KindInt64, allowed: integerCells, mode: ModeDirect, balanced: true},
	Cofactor:        {code: "cramer", name: "cofactor", cells: numeric.KindInt64, allowed: integerCells, mode: ModeDirect},
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Echelon, GaussJordan, FixedPoint, FractionFree, Shifted, RoundedShift, BalancedRounded, Balanced, Cofactor}
}

// String returns the short code ("gja", "dfa4", ...).
func (v Variant) String() string {
	if info, ok := registry[v]; ok {
		return info.code
	}

	return fmt.Sprintf("variant(%d)", int(v))
}

// Name returns the descriptive name ("gauss-jordan", "balanced-rounded", ...).
func (v Variant) Name() string {
	if info, ok := registry[v]; ok {
		return info.name
	}

	return v.String()
}

// Cells returns the variant's default cell type, or KindDefault if unknown.
func (v Variant) Cells() numeric.Kind { return registry[v].cells }

// Supports reports whether the variant runs on cells of kind k.
func (v Variant) Supports(k numeric.Kind) bool {
	for _, a := range registry[v].allowed {
		if a == k {
			return true
		}
	}

	return false
}

// ParseVariant accepts a short code or a descriptive name, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants() {
		info := registry[v]
		if key == info.code || key == info.name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("ParseVariant(%q): %w", s, ErrUnknownVariant)
}
