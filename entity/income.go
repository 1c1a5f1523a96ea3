// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package entity

import (
	"github.com/dasnames/dascore/das"
)

// IncomeRecord one beneficiary entry of an IncomeCell.
type IncomeRecord struct {
	BelongTo das.Script
	Capacity uint64
}

// IncomeCellData the witness entity of an IncomeCell, a capacity accumulator
// splitting protocol fees among beneficiaries.
type IncomeCellData struct {
	Creator das.Script
	Records []IncomeRecord
}

// DecodeIncomeCellData decodes the canonical encoding of IncomeCellData.
func DecodeIncomeCellData(b []byte) (*IncomeCellData, error) {
	var i IncomeCellData
	if err := decode(b, &i); err != nil {
		return nil, err
	}
	return &i, nil
}
