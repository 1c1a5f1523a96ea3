// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fee

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
)

func TestSplit(t *testing.T) {
	// the canonical rates over a 100_000 profit
	assert.Equal(t, uint64(10_000), Split(100_000, 1000))
	assert.Equal(t, uint64(8_000), Split(100_000, 800))
	assert.Equal(t, uint64(4_000), Split(100_000, 400))
	assert.Equal(t, uint64(2_000), Split(100_000, 200))

	// truncation toward zero
	assert.Equal(t, uint64(0), Split(9, 1000))
	assert.Equal(t, uint64(1), Split(19, 1000))
}

func TestSplitNoOverflow(t *testing.T) {
	// profit * rate overflows 64 bits; the 256-bit intermediate must not
	profit := uint64(math.MaxUint64 / 2)
	assert.Equal(t, profit/das.RateBase*1000+profit%das.RateBase*1000/das.RateBase, Split(profit, 1000))
}

func TestAccountStorageCapacity(t *testing.T) {
	cfg := &entity.ConfigCellAccount{BasicCapacity: 200 * das.OneCKB}
	assert.Equal(t, 212*das.OneCKB, AccountStorageCapacity(cfg, 12))
	assert.Equal(t, 200*das.OneCKB, AccountStorageCapacity(cfg, 0))
}

func TestYearlyCapacity(t *testing.T) {
	yearly, err := YearlyCapacity(5, 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(500_000), yearly)

	// a 10% discount in parts per RateBase
	discounted, err := YearlyCapacity(100, 1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(9_000_000), discounted)

	_, err = YearlyCapacity(5, 0, 0)
	assert.Equal(t, das.CodeInvalidCellData, das.CodeOf(err))
	_, err = YearlyCapacity(5, 1000, uint32(das.RateBase))
	assert.Equal(t, das.CodeInvalidCellData, das.CodeOf(err))
}

func TestDurationFromPaid(t *testing.T) {
	// 100_000 paid at 500_000 per year buys a fifth of a year
	duration, err := DurationFromPaid(100_000, 5, 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, das.SecondsPerYear/5, duration)

	// zero yearly price is rejected, not divided by
	_, err = DurationFromPaid(100_000, 0, 1000, 0)
	assert.Equal(t, das.CodeInvalidCellData, das.CodeOf(err))
}

func TestProfitMap(t *testing.T) {
	m := NewProfitMap()
	lockA := das.DasLock([]byte{0x0a})
	lockB := das.DasLock([]byte{0x0b})

	m.Add(lockA, 100)
	m.Add(lockA, 50)
	m.Add(lockB, 7)

	v, ok := m.Get(lockA)
	require.True(t, ok)
	assert.Equal(t, uint64(150), v)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, uint64(157), m.Sum())

	m.Remove(lockA)
	_, ok = m.Get(lockA)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}
