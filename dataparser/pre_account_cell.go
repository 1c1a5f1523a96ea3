// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package dataparser

import (
	"github.com/dasnames/dascore/das"
)

// PreAccountCell data begins with hash(32) || id(20); the remaining layout
// belongs to the PreAccountCell type script and is not read here.

// PreAccountCellID reads the account id of a PreAccountCell's data.
func PreAccountCellID(data []byte) (das.AccountID, error) {
	if len(data) < das.HashLength+das.AccountIDLength {
		return das.AccountID{}, errTooShort("PreAccountCell", len(data))
	}
	return das.BytesToAccountID(data[das.HashLength : das.HashLength+das.AccountIDLength]), nil
}

// JoinPreAccountCellData assembles the prefix of PreAccountCell data read by
// this validator.
func JoinPreAccountCellData(entityHash das.Hash, id das.AccountID) []byte {
	data := make([]byte, 0, das.HashLength+das.AccountIDLength)
	data = append(data, entityHash.Bytes()...)
	return append(data, id.Bytes()...)
}
