// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// Every operation returns these sentinels, either directly or wrapped with an
// operation tag ("Run: %w"), and tests match them via errors.Is.
// A singular system is NOT an error: it is a terminal state (StateSingular)
// and extracts to the zero vector.

package solver

import "errors"

var (
	// ErrNotLoaded is returned by Run when the store holds no freshly loaded
	// system. Elimination is destructive, so every Run needs its own Load.
	ErrNotLoaded = errors.New("solver: no system loaded")

	// ErrNothingToExtract is returned by Extract on an empty store.
	ErrNothingToExtract = errors.New("solver: nothing to extract")

	// ErrUnknownVariant indicates an unrecognized variant value or name.
	ErrUnknownVariant = errors.New("solver: unknown variant")

	// ErrCellMismatch indicates a cell type the selected variant cannot run on
	// (e.g. fraction-free elimination over floats).
	ErrCellMismatch = errors.New("solver: cell type not supported by variant")

	// ErrUnsupportedOrder is returned by the cofactor variant for odd n.
	ErrUnsupportedOrder = errors.New("solver: order not supported by variant")

	// ErrModeUnsupported indicates back-substitution requested on integer cells.
	ErrModeUnsupported = errors.New("solver: extraction mode not supported for cell type")

	// ErrBufferTooSmall is returned by ExtractInto when dst has fewer than n slots.
	ErrBufferTooSmall = errors.New("solver: output buffer too small")

	// ErrShiftRange indicates a fixed shift that leaves no room inside the cell width.
	ErrShiftRange = errors.New("solver: fixed shift exceeds cell width")
)
