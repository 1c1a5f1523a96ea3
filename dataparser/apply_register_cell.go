// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package dataparser

import (
	"encoding/binary"

	"github.com/dasnames/dascore/das"
)

// ApplyRegisterCell data is exactly hash(32) || height_at_apply(8, u64 LE).
// The hash is an opaque commitment; only its presence is checked here.

// ApplyRegisterCellHash reads the commitment hash of an ApplyRegisterCell's data.
func ApplyRegisterCellHash(data []byte) (das.Hash, error) {
	if len(data) < das.HashLength {
		return das.Hash{}, errTooShort("ApplyRegisterCell", len(data))
	}
	return das.BytesToHash(data[:das.HashLength]), nil
}

// ApplyRegisterCellHeight reads the commit height of an ApplyRegisterCell's data.
func ApplyRegisterCellHeight(data []byte) (uint64, error) {
	if len(data) != das.ApplyRegisterCellDataLength {
		return 0, das.Errorf(das.CodeInvalidCellData, "ApplyRegisterCell data must be exactly %d bytes (len: %d)",
			das.ApplyRegisterCellDataLength, len(data))
	}
	return binary.LittleEndian.Uint64(data[das.HashLength:]), nil
}

// JoinApplyRegisterCellData assembles ApplyRegisterCell data from its fields.
func JoinApplyRegisterCellData(commitment das.Hash, height uint64) []byte {
	data := make([]byte, 0, das.ApplyRegisterCellDataLength)
	data = append(data, commitment.Bytes()...)
	return binary.LittleEndian.AppendUint64(data, height)
}
