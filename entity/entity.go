// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package entity defines the typed witness entities of the DAS protocol.
// Every entity has a canonical RLP encoding whose blake2b-256 digest is
// anchored in the first 32 bytes of the owning cell's data.
package entity

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dasnames/dascore/das"
)

// Encode returns the canonical RLP encoding of an entity.
func Encode(v interface{}) ([]byte, error) {
	return rlp.EncodeToBytes(v)
}

// MustEncode returns the canonical RLP encoding of an entity, panic on error.
// Intended for fixtures and transaction builders, where the entity is known
// to be encodable.
func MustEncode(v interface{}) []byte {
	b, err := rlp.EncodeToBytes(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Hash computes blake2b-256 of the canonical encoding of an entity.
func Hash(v interface{}) das.Hash {
	return das.Blake2b(MustEncode(v))
}

func decode(b []byte, v interface{}) error {
	if err := rlp.DecodeBytes(b, v); err != nil {
		return das.WrapError(das.CodeWitnessEntityDecodingError, err, "witness entity decoding failed")
	}
	return nil
}
