// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/katalvlaran/eqsolver/balance"
	"github.com/katalvlaran/eqsolver/matrix"
	"github.com/katalvlaran/eqsolver/numeric"
)

// State is the lifecycle state of a Store.
type State int

const (
	// StateEmpty holds nothing; Load is the only useful call.
	StateEmpty State = iota
	// StateLoaded holds a fresh system, ready for exactly one Run.
	StateLoaded
	// StateSolved holds the terminal matrix of a completed elimination.
	StateSolved
	// StateSingular holds the singular sentinel; Extract yields zeros.
	StateSingular
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateSolved:
		return "solved"
	case StateSingular:
		return "singular"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ---------- error context tags ----------

const (
	ctxLoad        = "Load"
	ctxLoadSystem  = "LoadSystem"
	ctxRun         = "Run"
	ctxExtract     = "Extract"
	ctxExtractInto = "ExtractInto"
)

// Store owns one augmented system through load → run → extract.
//
// Elimination is destructive: each Run consumes the loaded system, so
// comparing variants means one Load per Run. The raw coefficients are kept
// and converted to the variant's cells at Run, which lets every variant see
// identical input. A mutex serializes calls on one Store; distinct Stores
// share nothing.
type Store struct {
	mu sync.Mutex

	base  Options
	state State

	src     *matrix.Augmented[int64] // raw coefficients, unscaled
	lo      loadOptions
	variant Variant
	term    terminal
}

// New returns an empty Store. opts become the base of every Run.
func New(opts ...Option) *Store {
	return &Store{base: gatherOptions(defaultOptions(), opts...)}
}

// Load copies an order-n system from coeffs: row 0 is reserved and ignored,
// rows 1..n hold n coefficients followed by the RHS at index n. Extra
// columns are ignored.
//
// Behavior highlights:
//   - WithPreScale(s) shifts the RHS left by s bits, WithCoefficientScale(a)
//     the coefficients by a bits; Extract divides by 2^(s-a) by default.
//   - Discards any previous system or result.
//
// Errors:
//   - matrix.ErrInvalidOrder, matrix.ErrGridShape (wrapped with "Load").
func (s *Store) Load(coeffs [][]int64, n int, opts ...LoadOption) error {
	if err := matrix.ValidateGrid(coeffs, n); err != nil {
		return fmt.Errorf("%s: %w", ctxLoad, err)
	}
	src, err := matrix.NewAugmented[int64](n)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxLoad, err)
	}
	for i := 0; i < n; i++ {
		copy(src.Row(i), coeffs[i+1][:n+1])
	}
	lo := gatherLoadOptions(opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.src, s.lo = src, lo
	s.variant = 0
	s.state = StateLoaded
	ar := numeric.Int64{}
	s.term = &intTerminal[int64]{ar: ar, m: loadCells[int64](ar, src, lo)}

	tr := tracer{on: s.base.debug}
	tr.event(opLoad, "n", n, "preScale", lo.preScale, "coefScale", lo.coefScale)
	tr.rows(opLoad, 0, s.term.format)

	return nil
}

// LoadSystem is Load for a 0-based system: c is n×n and b has n entries.
func (s *Store) LoadSystem(c [][]int64, b []int64, opts ...LoadOption) error {
	if err := matrix.ValidateSystem(c, b); err != nil {
		return fmt.Errorf("%s: %w", ctxLoadSystem, err)
	}
	n := len(c)
	grid := make([][]int64, n+1)
	for i := 0; i < n; i++ {
		row := make([]int64, n+1)
		copy(row, c[i])
		row[n] = b[i]
		grid[i+1] = row
	}

	return s.Load(grid, n, opts...)
}

// Run executes one elimination variant on the loaded system.
//
// Implementation:
//   - Stage 1: resolve options (store base, then opts) and the cell type
//     (WithCells or the variant's default).
//   - Stage 2: convert the raw system to cells, applying the load scales.
//   - Stage 3: run the variant's policy through the shared kernel, or the
//     closed form for Cofactor.
//
// Returns:
//   - StateSolved or StateSingular. A singular system is not an error.
//
// Errors (wrapped with "Run"):
//   - ErrUnknownVariant, ErrNotLoaded, ErrCellMismatch, ErrUnsupportedOrder,
//     ErrShiftRange, balance.ErrCeiling.
//
// Notes:
//   - On error the store keeps its state, so a corrected Run may follow.
func (s *Store) Run(v Variant, opts ...Option) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := registry[v]
	if !ok {
		return s.state, fmt.Errorf("%s(%d): %w", ctxRun, int(v), ErrUnknownVariant)
	}
	if s.state != StateLoaded {
		return s.state, fmt.Errorf("%s(%s): state %s: %w", ctxRun, v, s.state, ErrNotLoaded)
	}

	o := gatherOptions(s.base, opts...)
	kind := o.cells
	if kind == numeric.KindDefault {
		kind = info.cells
	}
	if !v.Supports(kind) {
		return s.state, fmt.Errorf("%s(%s): %s cells: %w", ctxRun, v, kind, ErrCellMismatch)
	}
	if v == Cofactor && !cofactorOrder(s.src.Order()) {
		return s.state, fmt.Errorf("%s(%s): order %d: %w", ctxRun, v, s.src.Order(), ErrUnsupportedOrder)
	}

	tr := tracer{on: o.debug, variant: v}
	var (
		term terminal
		st   State
		err  error
	)
	switch kind {
	case numeric.KindInt64:
		term, st, err = runInteger[int64](numeric.Int64{}, v, s.src, s.lo, o, tr)
	case numeric.KindInt128:
		term, st, err = runInteger[numeric.Int128](numeric.I128{}, v, s.src, s.lo, o, tr)
	case numeric.KindFloat64:
		term, st = runFloat[float64](numeric.Float64{}, v, s.src, s.lo, o, tr)
	case numeric.KindFloat32:
		term, st = runFloat[float32](numeric.Float32{}, v, s.src, s.lo, o, tr)
	case numeric.KindExtended:
		term, st = runFloat[*big.Float](numeric.Extended{}, v, s.src, s.lo, o, tr)
	default:
		err = ErrCellMismatch
	}
	if err != nil {
		return s.state, fmt.Errorf("%s(%s): %w", ctxRun, v, err)
	}
	s.term, s.state, s.variant = term, st, v

	return st, nil
}

// RunNamed is Run with a variant code or name ("dfa4", "balanced-rounded").
func (s *Store) RunNamed(name string, opts ...Option) (State, error) {
	v, err := ParseVariant(name)
	if err != nil {
		return s.State(), fmt.Errorf("%s: %w", ctxRun, err)
	}

	return s.Run(v, opts...)
}

func runInteger[T any](ar numeric.Integer[T], v Variant, src *matrix.Augmented[int64], lo loadOptions, o Options, tr tracer) (terminal, State, error) {
	m := loadCells[T](ar, src, lo)
	term := &intTerminal[T]{ar: ar, m: m}

	var red reduction[T]
	switch v {
	case FractionFree:
		red = &fractionFree[T]{ar: ar}
	case Shifted:
		red = &shifted[T]{ar: ar}
	case RoundedShift:
		red = &shifted[T]{ar: ar, rounded: true}
	case BalancedRounded, Balanced:
		ceiling := o.ceiling
		if ceiling == DefaultCeiling {
			ceiling = balance.DefaultCeiling(ar.Bits())
		}
		bl, err := balance.New[T](ar, o.strategy, ceiling)
		if err != nil {
			return nil, 0, err
		}
		red = &balanced[T]{ar: ar, bl: bl, rounded: v == BalancedRounded}
	case FixedPoint:
		if o.fixedShift >= ar.Bits()-2 {
			return nil, 0, fmt.Errorf("q=%d for %d-bit cells: %w", o.fixedShift, ar.Bits(), ErrShiftRange)
		}
		preShift(ar, m, o.fixedShift)
		red = &fixedPoint[T]{ar: ar, q: o.fixedShift}
	case Cofactor:
		return term, cofactor(ar, m, tr), nil
	default:
		return nil, 0, ErrCellMismatch
	}

	return term, eliminate[T](ar, m, red, o.pivoting, sweepFull, tr), nil
}

func runFloat[T any](ar numeric.Arith[T], v Variant, src *matrix.Augmented[int64], lo loadOptions, o Options, tr tracer) (terminal, State) {
	m := loadCells[T](ar, src, lo)
	sw := sweepFull
	if v == Echelon {
		sw = sweepEchelon
	}
	st := eliminate[T](ar, m, &normalize[T]{ar: ar}, o.pivoting, sw, tr)

	return &floatTerminal[T]{ar: ar, m: m}, st
}

// Extract converts the current matrix into a Solution without mutating it,
// so repeated calls return identical results.
//
// Behavior highlights:
//   - After Load (no Run) it reads the loaded int64 cells directly; an
//     identity system returns its RHS.
//   - The default scale is the load pre-scale minus the coefficient scale;
//     WithScale overrides it. WithFracBits sets the integer quotient
//     precision (DefaultFracBits).
//   - ModeAuto means back-substitution for Echelon and direct otherwise.
//   - A singular state extracts to the zero vector with Singular() == true.
//
// Errors (wrapped with "Extract"):
//   - ErrNothingToExtract on an empty store.
//   - ErrModeUnsupported for back-substitution over integer cells.
func (s *Store) Extract(opts ...ExtractOption) (*Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sol, err := s.extractLocked(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxExtract, err)
	}

	return sol, nil
}

// ExtractInto is Extract writing the values into dst[:n].
//
// Errors: those of Extract, plus ErrBufferTooSmall when len(dst) < n.
func (s *Store) ExtractInto(dst []float64, opts ...ExtractOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.src != nil && len(dst) < s.src.Order() {
		return fmt.Errorf("%s: len %d < %d: %w", ctxExtractInto, len(dst), s.src.Order(), ErrBufferTooSmall)
	}
	sol, err := s.extractLocked(opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxExtractInto, err)
	}
	copy(dst, sol.values)

	return nil
}

func (s *Store) extractLocked(opts ...ExtractOption) (*Solution, error) {
	if s.state == StateEmpty || s.term == nil {
		return nil, ErrNothingToExtract
	}
	eo := gatherExtractOptions(opts...)

	mode := eo.mode
	if mode == ModeAuto {
		mode = ModeDirect
		if s.state != StateLoaded {
			mode = registry[s.variant].mode
		}
	}
	scale := int(s.lo.preScale) - int(s.lo.coefScale)
	if eo.scaleSet {
		scale = eo.scale
	}

	sol, err := s.term.extract(mode, scale, eo.fracBits)
	if err != nil {
		return nil, fmt.Errorf("%s cells, %s: %w", s.term.kind(), mode, err)
	}
	if s.state == StateSingular {
		sol.singular = true
	}
	sol.variant = s.variant

	tr := tracer{on: s.base.debug, variant: s.variant}
	tr.event(opExtract, "mode", mode.String(), "scale", scale, "frac", eo.fracBits, "singular", sol.singular)

	return sol, nil
}

// Reset discards everything and returns the store to StateEmpty.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.src, s.term = nil, nil
	s.lo = loadOptions{}
	s.variant = 0
	s.state = StateEmpty
}

// State returns the lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Order returns n of the held system, or 0 when empty.
func (s *Store) Order() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.src == nil {
		return 0
	}

	return s.src.Order()
}

// Variant returns the variant of the last successful Run since Load, or 0.
func (s *Store) Variant() Variant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.variant
}

// Dump renders the current cells, one row per line, or "" when empty.
func (s *Store) Dump() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.term == nil {
		return ""
	}

	return s.term.format()
}
