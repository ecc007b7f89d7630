// SPDX-License-Identifier: MIT

// Package solver: functional configuration for Run, Load and Extract.
// This file defines:
//   - documented defaults (constants) as the single source of truth,
//   - Option / LoadOption / ExtractOption setters,
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gather helpers (internal) resolving setters last-writer-wins.
//
// Notes:
//   - Store-level options passed to New are the base for every Run; options
//     passed to Run override them for that call only.
//   - Values that depend on the cell width (fixed shift, ceiling) are checked
//     again at Run, where the width is known, and fail with sentinel errors.
package solver

import (
	"github.com/katalvlaran/eqsolver/balance"
	"github.com/katalvlaran/eqsolver/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting enables partial pivoting by column-maximum magnitude.
	DefaultPivoting = true

	// DefaultFixedShift is q, the fractional bits carried by FixedPoint.
	DefaultFixedShift uint = 4

	// DefaultStrategy is the Balancer strategy of the balanced variants.
	DefaultStrategy = balance.Symmetric

	// DefaultCeiling of 0 selects balance.DefaultCeiling for the cell width.
	DefaultCeiling uint = 0

	// DefaultCells of KindDefault selects the variant's own cell type.
	DefaultCells = numeric.KindDefault

	// DefaultDebug disables trace events.
	DefaultDebug = false

	// DefaultFracBits is the precision of the integer quotient at extraction.
	DefaultFracBits uint = 8

	// MaxShift bounds every user-supplied shift (pre-scale, fraction bits).
	MaxShift uint = 62

	// maxFixedShift bounds q for the widest (128-bit) cells.
	maxFixedShift uint = 126

	// maxScale bounds the magnitude of an explicit extraction scale.
	maxScale = 1024
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFixedShiftInvalid = "solver: WithFixedShift: q must be in [1, 126]"
	panicCeilingInvalid    = "solver: WithCeiling: ceiling must be >= 2"
	panicStrategyInvalid   = "solver: WithStrategy: unknown strategy"
	panicCellsInvalid      = "solver: WithCells: not a cell kind"
	panicPreScaleInvalid   = "solver: WithPreScale: shift must be <= 62"
	panicCoefScaleInvalid  = "solver: WithCoefficientScale: shift must be <= 62"
	panicScaleInvalid      = "solver: WithScale: |scale| must be <= 1024"
	panicFracBitsInvalid   = "solver: WithFracBits: bits must be <= 62"
	panicModeInvalid       = "solver: WithMode: unknown mode"
)

// ---------- Run options ----------

// Option configures a Store (New) or a single Run.
type Option func(*Options)

// Options is the effective run configuration after applying Option setters.
type Options struct {
	pivoting   bool             // DefaultPivoting
	fixedShift uint             // DefaultFixedShift
	ceiling    uint             // DefaultCeiling (0 = width default)
	strategy   balance.Strategy // DefaultStrategy
	cells      numeric.Kind     // DefaultCells
	debug      bool             // DefaultDebug
}

func defaultOptions() Options {
	return Options{
		pivoting:   DefaultPivoting,
		fixedShift: DefaultFixedShift,
		ceiling:    DefaultCeiling,
		strategy:   DefaultStrategy,
		cells:      DefaultCells,
		debug:      DefaultDebug,
	}
}

// gatherOptions applies opts on top of base; nil setters are skipped.
func gatherOptions(base Options, opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}

	return base
}

// WithPivoting enables partial pivoting (the default).
func WithPivoting() Option { return func(o *Options) { o.pivoting = true } }

// WithoutPivoting disables row swaps; only the zero-pivot test remains.
func WithoutPivoting() Option { return func(o *Options) { o.pivoting = false } }

// WithFixedShift sets q, the fractional bits of the FixedPoint variant.
//
// Errors:
//   - Panics when q is outside [1, 126]. Run further rejects a q that does
//     not fit the selected cells with ErrShiftRange.
func WithFixedShift(q uint) Option {
	if q < 1 || q > maxFixedShift {
		panic(panicFixedShiftInvalid)
	}

	return func(o *Options) { o.fixedShift = q }
}

// WithCeiling sets the Balancer ceiling of the balanced variants, e.g.
// balance.Conservative or balance.Aggressive.
// Run rejects a ceiling beyond the cell width with balance.ErrCeiling.
func WithCeiling(bits uint) Option {
	if bits < 2 {
		panic(panicCeilingInvalid)
	}

	return func(o *Options) { o.ceiling = bits }
}

// WithStrategy selects the Balancer strategy.
func WithStrategy(s balance.Strategy) Option {
	if s != balance.Symmetric && s != balance.Asymmetric {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithCells selects the cell type; it must be one the variant supports.
func WithCells(k numeric.Kind) Option {
	if !k.IsInteger() && !k.IsFloat() {
		panic(panicCellsInvalid)
	}

	return func(o *Options) { o.cells = k }
}

// WithDebug enables trace events on the "eqsolver" logger.
// Events are emitted at debug level; see SetLogLevel.
func WithDebug() Option { return func(o *Options) { o.debug = true } }

// ---------- Load options ----------

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	preScale  uint // left shift of the RHS column
	coefScale uint // left shift of the coefficient columns
}

func gatherLoadOptions(opts ...LoadOption) loadOptions {
	var lo loadOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&lo)
		}
	}

	return lo
}

// WithPreScale left-shifts the right-hand-side column by s bits at load,
// injecting s fractional bits the integer kernels can carry.
func WithPreScale(s uint) LoadOption {
	if s > MaxShift {
		panic(panicPreScaleInvalid)
	}

	return func(lo *loadOptions) { lo.preScale = s }
}

// WithCoefficientScale left-shifts every coefficient by a bits at load.
// Shifted and balanced variants lose bw(M) bits per step and need this
// headroom to stay accurate.
func WithCoefficientScale(a uint) LoadOption {
	if a > MaxShift {
		panic(panicCoefScaleInvalid)
	}

	return func(lo *loadOptions) { lo.coefScale = a }
}

// ---------- Extract options ----------

// ExtractOption configures Extract and ExtractInto.
type ExtractOption func(*extractOptions)

type extractOptions struct {
	scale    int
	scaleSet bool
	fracBits uint
	mode     Mode
}

func gatherExtractOptions(opts ...ExtractOption) extractOptions {
	eo := extractOptions{fracBits: DefaultFracBits, mode: ModeAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&eo)
		}
	}

	return eo
}

// WithScale divides every value by 2^s instead of the scale recorded at
// load (pre-scale minus coefficient scale). Negative s multiplies.
func WithScale(s int) ExtractOption {
	if s > maxScale || s < -maxScale {
		panic(panicScaleInvalid)
	}

	return func(eo *extractOptions) {
		eo.scale = s
		eo.scaleSet = true
	}
}

// WithFracBits sets the fractional bits of the integer quotient. Float
// cells ignore it.
func WithFracBits(f uint) ExtractOption {
	if f > MaxShift {
		panic(panicFracBitsInvalid)
	}

	return func(eo *extractOptions) { eo.fracBits = f }
}

// WithMode overrides the variant's extraction mode.
func WithMode(m Mode) ExtractOption {
	if m != ModeAuto && m != ModeDirect && m != ModeBackSubstitution {
		panic(panicModeInvalid)
	}

	return func(eo *extractOptions) { eo.mode = m }
}
