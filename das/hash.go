// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	errInvalidPrefix = errors.New("invalid prefix of hex string")
	errInvalidLength = errors.New("invalid length of hex string")
)

// Hash blake2b-256 digest.
type Hash [32]byte

// String implements stringer.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// AbbrevString returns abbrev string presentation.
func (h Hash) AbbrevString() string {
	return fmt.Sprintf("0x%x…%x", h[:4], h[28:])
}

// Bytes returns byte slice form of hash.
func (h Hash) Bytes() []byte {
	return h[:]
}

// IsZero returns if hash has all zero bytes.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalJSON implements json.Marshaler.
func (h Hash) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hash) UnmarshalJSON(data []byte) error {
	parsed, err := ParseHash(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHash convert string presented hash into Hash type.
func ParseHash(s string) (Hash, error) {
	if len(s) == 32*2 {
	} else if len(s) == 32*2+2 {
		if !strings.HasPrefix(s, "0x") {
			return Hash{}, errInvalidPrefix
		}
		s = s[2:]
	} else {
		return Hash{}, errInvalidLength
	}

	var h Hash
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return Hash{}, err
	}
	return h, nil
}

// MustParseHash convert string presented hash into Hash type, panic on error.
func MustParseHash(s string) Hash {
	h, err := ParseHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

// BytesToHash converts bytes slice into hash.
// If b is larger than hash legth, b will be cropped (from the left).
// If b is smaller than hash length, b will be aligned (to the right).
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > len(h) {
		b = b[len(b)-len(h):]
	}
	copy(h[len(h)-len(b):], b)
	return h
}
