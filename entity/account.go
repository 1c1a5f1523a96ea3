// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package entity

import (
	"github.com/dasnames/dascore/das"
)

// AccountStatus the lifecycle status of an account.
type AccountStatus uint8

// Account statuses.
const (
	AccountStatusNormal  AccountStatus = 0
	AccountStatusSelling AccountStatus = 1
	AccountStatusAuction AccountStatus = 2
)

// AccountChar one character item of a decomposed account name. CharsetID
// selects the character set the bytes are drawn from; the validator treats
// the pair as opaque and only joins the bytes back together.
type AccountChar struct {
	CharsetID uint32
	Bytes     []byte
}

// AccountChars a decomposed account name, without the protocol suffix.
type AccountChars []AccountChar

// Text joins the characters back into the plain account name.
func (ac AccountChars) Text() []byte {
	var out []byte
	for _, c := range ac {
		out = append(out, c.Bytes...)
	}
	return out
}

// AccountCellData the witness entity of an AccountCell.
type AccountCellData struct {
	ID           das.AccountID
	Account      AccountChars
	RegisteredAt uint64
	Status       AccountStatus
}

// DecodeAccountCellData decodes the canonical encoding of AccountCellData.
func DecodeAccountCellData(b []byte) (*AccountCellData, error) {
	var a AccountCellData
	if err := decode(b, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
