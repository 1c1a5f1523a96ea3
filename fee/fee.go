// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package fee implements the deterministic fixed-point arithmetic of the
// registration economy: storage capacity, rent duration and profit splits.
// Every formula that divides multiplies first, with 256-bit intermediates so
// that multiply can never wrap.
package fee

import (
	"github.com/holiman/uint256"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
)

func mulDiv(a, b, denominator uint64) uint64 {
	var x, y uint256.Int
	x.SetUint64(a)
	y.SetUint64(b)
	x.Mul(&x, &y)
	y.SetUint64(denominator)
	x.Div(&x, &y)
	if !x.IsUint64() {
		// saturate rather than wrap; downstream equality checks then fail loudly
		return ^uint64(0)
	}
	return x.Uint64()
}

// Split returns profit * rate / RateBase, truncated toward zero.
func Split(profit uint64, rate uint32) uint64 {
	return mulDiv(profit, uint64(rate), das.RateBase)
}

// AccountStorageCapacity derives the minimum capacity an AccountCell must
// hold from the byte length of its stored account string.
func AccountStorageCapacity(cfg *entity.ConfigCellAccount, accountBytes uint64) uint64 {
	return cfg.BasicCapacity + accountBytes*das.OneCKB
}

// YearlyCapacity converts the yearly USD price into capacity, applying the
// invited discount in parts per RateBase.
func YearlyCapacity(price, quote uint64, discount uint32) (uint64, error) {
	if quote == 0 {
		return 0, das.NewError(das.CodeInvalidCellData, "quote can not be zero")
	}
	if uint64(discount) >= das.RateBase {
		return 0, das.Errorf(das.CodeInvalidCellData, "discount out of range: %d", discount)
	}
	discounted := price - Split(price, discount)
	return mulDiv(discounted, das.OneCKB, quote), nil
}

// DurationFromPaid returns the rent duration in seconds bought by the paid
// capacity at the given yearly price, quote and discount.
func DurationFromPaid(paid, price, quote uint64, discount uint32) (uint64, error) {
	yearly, err := YearlyCapacity(price, quote, discount)
	if err != nil {
		return 0, err
	}
	if yearly == 0 {
		return 0, das.NewError(das.CodeInvalidCellData, "yearly capacity can not be zero")
	}
	return mulDiv(paid, das.SecondsPerYear, yearly), nil
}
