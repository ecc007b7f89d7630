// SPDX-License-Identifier: MIT

package balance_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eqsolver/balance"
	"github.com/katalvlaran/eqsolver/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randWidth returns a positive int64 whose most significant bit is at index w.
func randWidth(rng *rand.Rand, w uint) int64 {
	v := int64(1) << w
	if w > 0 {
		v |= rng.Int63n(int64(1) << w)
	}

	return v
}

func TestNewValidates(t *testing.T) {
	_, err := balance.New[int64](numeric.Int64{}, balance.Symmetric, 63)
	require.ErrorIs(t, err, balance.ErrCeiling)

	_, err = balance.New[int64](numeric.Int64{}, balance.Symmetric, 1)
	require.ErrorIs(t, err, balance.ErrCeiling)

	_, err = balance.New[int64](numeric.Int64{}, balance.Strategy(9), balance.Conservative)
	require.ErrorIs(t, err, balance.ErrStrategy)

	bl, err := balance.New[int64](numeric.Int64{}, balance.Asymmetric, balance.Aggressive)
	require.NoError(t, err)
	assert.Equal(t, balance.Asymmetric, bl.Strategy())
	assert.Equal(t, balance.Aggressive, bl.Ceiling())

	// 128-bit cells accept much wider ceilings.
	_, err = balance.New[numeric.Int128](numeric.I128{}, balance.Symmetric, 126)
	require.NoError(t, err)
	assert.Equal(t, uint(108), balance.DefaultCeiling(128))
	assert.Equal(t, balance.Conservative, balance.DefaultCeiling(64))
}

func TestBalanceWithinCeilingIsNoop(t *testing.T) {
	bl, err := balance.New[int64](numeric.Int64{}, balance.Symmetric, balance.Conservative)
	require.NoError(t, err)

	m, d, l, c := int64(1)<<20, int64(-1)<<20, int64(3), int64(1)<<40
	b := 7
	excess := bl.Balance(&m, &d, &l, &c, &b)

	assert.Equal(t, uint(0), excess)
	assert.Equal(t, 7, b)
	assert.Equal(t, int64(1)<<20, m)
	assert.Equal(t, int64(1)<<40, c)
}

func TestBalanceSymmetricShiftsPivotSide(t *testing.T) {
	bl, err := balance.New[int64](numeric.Int64{}, balance.Symmetric, balance.Conservative)
	require.NoError(t, err)

	// bw sums: M·D = 30+20 = 50, L·C = 25+21 = 46 → excess 6 from M·D.
	m, d, l, c := int64(1)<<30, int64(1)<<20, int64(1)<<25, int64(1)<<21
	b := 30
	excess := bl.Balance(&m, &d, &l, &c, &b)

	require.Equal(t, uint(6), excess)
	assert.Equal(t, 24, b)
	assert.Equal(t, int64(1)<<24, m)
	assert.Equal(t, int64(1)<<19, l)
	assert.Equal(t, int64(1)<<20, d) // untouched
	assert.Equal(t, int64(1)<<21, c) // untouched
}

func TestBalanceAsymmetricShiftsWider(t *testing.T) {
	bl, err := balance.New[int64](numeric.Int64{}, balance.Asymmetric, balance.Conservative)
	require.NoError(t, err)

	// L·C is the wider pair: 10+40 = 50 → excess 6; in M·D, D is wider.
	m, d, l, c := int64(1)<<12, int64(1)<<30, int64(1)<<10, int64(1)<<40
	b := 2
	excess := bl.Balance(&m, &d, &l, &c, &b)

	require.Equal(t, uint(6), excess)
	assert.Equal(t, -4, b) // budgets may go negative
	assert.Equal(t, int64(1)<<12, m)
	assert.Equal(t, int64(1)<<24, d)
	assert.Equal(t, int64(1)<<10, l)
	assert.Equal(t, int64(1)<<34, c)
}

func TestBalanceTiesPickPivotSide(t *testing.T) {
	bl, err := balance.New[int64](numeric.Int64{}, balance.Asymmetric, balance.Conservative)
	require.NoError(t, err)

	m, d, l, c := int64(1)<<25, int64(1)<<25, int64(1)<<25, int64(1)<<25
	b := 25
	excess := bl.Balance(&m, &d, &l, &c, &b)

	require.Equal(t, uint(6), excess)
	assert.Equal(t, int64(1)<<19, m)
	assert.Equal(t, int64(1)<<25, d)
	assert.Equal(t, int64(1)<<19, l)
	assert.Equal(t, int64(1)<<25, c)
}

// TestBalanceProperties checks on random operands that both width sums end
// within the ceiling and that M·D − L·C rescaled by 2^excess stays within
// the floor error of the shifted operands.
func TestBalanceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	ar := numeric.Int64{}

	for _, s := range []balance.Strategy{balance.Symmetric, balance.Asymmetric} {
		for _, ceiling := range []uint{balance.Conservative, balance.Aggressive} {
			bl, err := balance.New[int64](ar, s, ceiling)
			require.NoError(t, err)

			for i := 0; i < 3000; i++ {
				// Keep every width at or below ceiling/2+8 so the widest
				// operand of each pair can always absorb the excess.
				lim := ceiling/2 + 8
				m0 := randWidth(rng, uint(rng.Intn(int(lim))))
				d0 := randWidth(rng, uint(rng.Intn(int(lim))))
				l0 := randWidth(rng, uint(rng.Intn(int(lim))))
				c0 := randWidth(rng, uint(rng.Intn(int(lim))))
				if s == balance.Symmetric {
					// The pivot side carries the whole excess.
					m0 = randWidth(rng, lim-1)
					l0 = randWidth(rng, lim-1)
				}

				m, d, l, c := m0, d0, l0, c0
				b := 0
				e := bl.Balance(&m, &d, &l, &c, &b)
				require.Equal(t, -int(e), b)

				assert.LessOrEqual(t, ar.BitWidth(m)+ar.BitWidth(d), ceiling)
				assert.LessOrEqual(t, ar.BitWidth(l)+ar.BitWidth(c), ceiling)

				before := crossDiff(m0, d0, l0, c0)
				after := crossDiff(m, d, l, c)
				after.Lsh(after, e)

				// Each product loses at most 2^e times the unshifted factor.
				tol := new(big.Int)
				for _, v := range []int64{m0, d0, l0, c0} {
					tol.Add(tol, big.NewInt(v))
				}
				tol.Lsh(tol, e)

				diff := new(big.Int).Sub(before, after)
				assert.LessOrEqual(t, diff.CmpAbs(tol), 0, "strategy %s ceiling %d", s, ceiling)
			}
		}
	}
}

func TestBalanceInt128(t *testing.T) {
	ar := numeric.I128{}
	bl, err := balance.New[numeric.Int128](ar, balance.Symmetric, balance.DefaultCeiling(128))
	require.NoError(t, err)

	m := numeric.Int128From64(1).Lsh(70)
	d := numeric.Int128From64(1).Lsh(50)
	l := numeric.Int128From64(-1).Lsh(60)
	c := numeric.Int128From64(3)
	b := 70
	excess := bl.Balance(&m, &d, &l, &c, &b)

	require.Equal(t, uint(12), excess)
	assert.Equal(t, 58, b)
	assert.Equal(t, uint(58), m.BitWidth())
	assert.Equal(t, "-281474976710656", l.String()) // -2^48
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "symmetric", balance.Symmetric.String())
	assert.Equal(t, "asymmetric", balance.Asymmetric.String())
	assert.Equal(t, "strategy(5)", balance.Strategy(5).String())
}

func crossDiff(m, d, l, c int64) *big.Int {
	md := new(big.Int).Mul(big.NewInt(m), big.NewInt(d))
	lc := new(big.Int).Mul(big.NewInt(l), big.NewInt(c))

	return md.Sub(md, lc)
}
