// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// HashType the interpretation of a script's code hash.
type HashType uint8

// Hash types.
const (
	HashTypeData HashType = 0
	HashTypeType HashType = 1
)

// Script an on-chain predicate reference: lock script or type script.
type Script struct {
	CodeHash Hash
	HashType HashType
	Args     []byte
}

// Equal returns if two scripts are identical.
func (s Script) Equal(other Script) bool {
	return s.CodeHash == other.CodeHash &&
		s.HashType == other.HashType &&
		bytes.Equal(s.Args, other.Args)
}

// Bytes returns the canonical RLP encoding of the script.
func (s Script) Bytes() []byte {
	b, err := rlp.EncodeToBytes(&s)
	if err != nil {
		// a script is a plain struct of encodable fields
		panic(err)
	}
	return b
}

// Key returns a string form of the canonical encoding, usable as a map key.
func (s Script) Key() string {
	return string(s.Bytes())
}

// Hash computes blake2b-256 of the canonical encoding.
func (s Script) Hash() Hash {
	return Blake2b(s.Bytes())
}

// String implements stringer.
func (s Script) String() string {
	return fmt.Sprintf("Script{code_hash: %v, hash_type: %d, args: 0x%x}", s.CodeHash, s.HashType, s.Args)
}
