// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// AccountID the first 20 bytes of blake2b-256 of the canonical account string.
type AccountID [20]byte

// String implements stringer.
func (id AccountID) String() string {
	return fmt.Sprintf("0x%x", id[:])
}

// Bytes returns byte slice form of account id.
func (id AccountID) Bytes() []byte {
	return id[:]
}

// IsZero returns if account id has all zero bytes.
func (id AccountID) IsZero() bool {
	return id == AccountID{}
}

// Compare compares two ids under big-endian octet order.
// The result will be 0 if id == other, -1 if id < other, and +1 if id > other.
func (id AccountID) Compare(other AccountID) int {
	return bytes.Compare(id[:], other[:])
}

// MarshalJSON implements json.Marshaler.
func (id AccountID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *AccountID) UnmarshalJSON(data []byte) error {
	parsed, err := ParseAccountID(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseAccountID convert string presented account id into AccountID type.
func ParseAccountID(s string) (AccountID, error) {
	if len(s) == 20*2 {
	} else if len(s) == 20*2+2 {
		if !strings.HasPrefix(s, "0x") {
			return AccountID{}, errInvalidPrefix
		}
		s = s[2:]
	} else {
		return AccountID{}, errInvalidLength
	}

	var id AccountID
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return AccountID{}, err
	}
	return id, nil
}

// MustParseAccountID convert string presented account id into AccountID type, panic on error.
func MustParseAccountID(s string) AccountID {
	id, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// BytesToAccountID converts bytes slice into account id.
// If b is larger than id length, b will be cropped (from the left).
// If b is smaller than id length, b will be aligned (to the right).
func BytesToAccountID(b []byte) AccountID {
	var id AccountID
	if len(b) > len(id) {
		b = b[len(b)-len(id):]
	}
	copy(id[len(id)-len(b):], b)
	return id
}

// AccountToID derives the account id from the canonical account string,
// e.g. "alice.bit".
func AccountToID(account []byte) AccountID {
	hash := Blake2b(account)
	var id AccountID
	copy(id[:], hash[:AccountIDLength])
	return id
}
