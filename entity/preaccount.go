// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package entity

import (
	"github.com/dasnames/dascore/das"
)

// Price the yearly registration price of an account length, in USD cents
// scaled by the oracle quote.
type Price struct {
	Length uint8
	New    uint64
	Renew  uint64
}

// PreAccountCellData the witness entity of a PreAccountCell, the
// intermediate reservation created by pre_register.
type PreAccountCellData struct {
	Account         AccountChars
	OwnerLockArgs   []byte
	InviterLock     *das.Script `rlp:"nil"`
	ChannelLock     *das.Script `rlp:"nil"`
	Price           Price
	Quote           uint64
	InvitedDiscount uint32
	CreatedAtHeight uint64
}

// DecodePreAccountCellData decodes the canonical encoding of PreAccountCellData.
func DecodePreAccountCellData(b []byte) (*PreAccountCellData, error) {
	var p PreAccountCellData
	if err := decode(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
