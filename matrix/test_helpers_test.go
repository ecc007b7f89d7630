// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/eqsolver/matrix"
	"github.com/stretchr/testify/require"
)

// MustAugmented ALLOCATES an order-n int64 system or fails the test.
func MustAugmented(t *testing.T, n int) *matrix.Augmented[int64] {
	t.Helper()
	a, err := matrix.NewAugmented[int64](n)
	require.NoError(t, err)

	return a
}

// filled returns an order-n system with cell (i,j) = 10*i + j.
func filled(t *testing.T, n int) *matrix.Augmented[int64] {
	t.Helper()
	a := MustAugmented(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= n; j++ {
			require.NoError(t, a.Set(i, j, int64(10*i+j)))
		}
	}

	return a
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }
