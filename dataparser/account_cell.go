// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package dataparser reads the fixed binary layouts of DAS cell data.
// AccountCell data is laid out as
// hash(32) || id(20) || next(20) || expired_at(8, u64 LE) || account(var).
package dataparser

import (
	"encoding/binary"

	"github.com/dasnames/dascore/das"
)

const (
	accountCellIDOffset        = das.HashLength
	accountCellNextOffset      = accountCellIDOffset + das.AccountIDLength
	accountCellExpiredAtOffset = accountCellNextOffset + das.AccountIDLength
	accountCellAccountOffset   = accountCellExpiredAtOffset + 8
)

func errTooShort(kind string, length int) error {
	return das.Errorf(das.CodeInvalidCellData, "%s data too short (len: %d)", kind, length)
}

// EntityHashOf reads the witness anchor of any witness-bearing cell's data.
func EntityHashOf(data []byte) (das.Hash, error) {
	if len(data) < das.HashLength {
		return das.Hash{}, errTooShort("cell", len(data))
	}
	return das.BytesToHash(data[:das.HashLength]), nil
}

// AccountCellID reads the account id of an AccountCell's data.
func AccountCellID(data []byte) (das.AccountID, error) {
	if len(data) < accountCellNextOffset {
		return das.AccountID{}, errTooShort("AccountCell", len(data))
	}
	return das.BytesToAccountID(data[accountCellIDOffset:accountCellNextOffset]), nil
}

// AccountCellNext reads the next pointer of an AccountCell's data.
func AccountCellNext(data []byte) (das.AccountID, error) {
	if len(data) < accountCellExpiredAtOffset {
		return das.AccountID{}, errTooShort("AccountCell", len(data))
	}
	return das.BytesToAccountID(data[accountCellNextOffset:accountCellExpiredAtOffset]), nil
}

// AccountCellExpiredAt reads the expiration timestamp of an AccountCell's data.
func AccountCellExpiredAt(data []byte) (uint64, error) {
	if len(data) < accountCellAccountOffset {
		return 0, errTooShort("AccountCell", len(data))
	}
	return binary.LittleEndian.Uint64(data[accountCellExpiredAtOffset:accountCellAccountOffset]), nil
}

// AccountCellAccount reads the account string of an AccountCell's data,
// suffix included.
func AccountCellAccount(data []byte) ([]byte, error) {
	if len(data) < accountCellAccountOffset {
		return nil, errTooShort("AccountCell", len(data))
	}
	return data[accountCellAccountOffset:], nil
}

// JoinAccountCellData assembles AccountCell data from its fields.
func JoinAccountCellData(entityHash das.Hash, id, next das.AccountID, expiredAt uint64, account []byte) []byte {
	data := make([]byte, 0, accountCellAccountOffset+len(account))
	data = append(data, entityHash.Bytes()...)
	data = append(data, id.Bytes()...)
	data = append(data, next.Bytes()...)
	data = binary.LittleEndian.AppendUint64(data, expiredAt)
	return append(data, account...)
}
