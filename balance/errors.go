// SPDX-License-Identifier: MIT

package balance

import "errors"

var (
	// ErrCeiling is returned when a ceiling leaves no room for a product
	// inside the cell width (ceiling < 2 or ceiling > Bits-2).
	ErrCeiling = errors.New("balance: ceiling out of range")

	// ErrStrategy indicates an unknown Strategy value.
	ErrStrategy = errors.New("balance: unknown strategy")
)
