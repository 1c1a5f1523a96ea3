// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package witness

import (
	"bytes"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/tx"
)

// Every DAS witness is enveloped as magic(3) || data_type(u32 LE) || payload.
// Witnesses without the magic belong to other scripts and are skipped.
var magic = []byte("das")

const envelopeHeaderLen = 3 + 4

// cellEnvelope binds an entity payload to the cell it anchors to.
type cellEnvelope struct {
	Source uint32
	Index  uint32
	Entity []byte
}

func decodeEnvelope(w []byte) (entity.DataType, []byte, bool) {
	if len(w) < envelopeHeaderLen || !bytes.Equal(w[:3], magic) {
		return 0, nil, false
	}
	dataType := entity.DataType(binary.LittleEndian.Uint32(w[3:envelopeHeaderLen]))
	return dataType, w[envelopeHeaderLen:], true
}

func encodeEnvelope(dataType entity.DataType, payload []byte) []byte {
	w := make([]byte, 0, envelopeHeaderLen+len(payload))
	w = append(w, magic...)
	w = binary.LittleEndian.AppendUint32(w, uint32(dataType))
	return append(w, payload...)
}

// NewActionWitness envelopes an action witness.
func NewActionWitness(action, params []byte) []byte {
	payload := entity.MustEncode(&entity.ActionData{Action: action, Params: params})
	return encodeEnvelope(entity.DataTypeActionData, payload)
}

// NewCellWitness envelopes an entity witness bound to the cell at
// source/index. The entity bytes must be the canonical encoding whose
// blake2b-256 the cell's data anchors.
func NewCellWitness(dataType entity.DataType, source tx.Source, index int, entityBytes []byte) []byte {
	payload, err := rlp.EncodeToBytes(&cellEnvelope{
		Source: uint32(source),
		Index:  uint32(index),
		Entity: entityBytes,
	})
	if err != nil {
		panic(err)
	}
	return encodeEnvelope(dataType, payload)
}

// NewConfigWitness envelopes a config entity witness. Config witnesses carry
// the entity bytes directly; they bind to the ConfigCell whose type args
// name the same data type.
func NewConfigWitness(dataType entity.DataType, entityBytes []byte) []byte {
	return encodeEnvelope(dataType, entityBytes)
}

// ConfigCellArgs returns the type script args naming a config data type.
func ConfigCellArgs(dataType entity.DataType) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(dataType))
}

// ConfigCellTypeScript returns the type script of the ConfigCell carrying the
// given config data type.
func ConfigCellTypeScript(dataType entity.DataType) das.Script {
	return das.Script{
		CodeHash: das.ConfigCellCodeHash,
		HashType: das.HashTypeType,
		Args:     ConfigCellArgs(dataType),
	}
}
