// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHash(t *testing.T) {
	expected := Hash{0x01, 0x02}
	parsed, err := ParseHash("0x0102000000000000000000000000000000000000000000000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, expected, parsed)

	// without prefix
	parsed, err = ParseHash("0102000000000000000000000000000000000000000000000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, expected, parsed)

	_, err = ParseHash("0x0102")
	assert.Equal(t, errInvalidLength, err)

	_, err = ParseHash("zz0102000000000000000000000000000000000000000000000000000000000000"[:64])
	assert.Error(t, err)
}

func TestHashJSON(t *testing.T) {
	h := Blake2b([]byte("hello"))
	data, err := json.Marshal(h)
	assert.NoError(t, err)

	var decoded Hash
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, h, decoded)
}

func TestBytesToHash(t *testing.T) {
	assert.Equal(t, Hash{31: 0x01}, BytesToHash([]byte{0x01}))

	long := make([]byte, 40)
	long[39] = 0xee
	assert.Equal(t, Hash{31: 0xee}, BytesToHash(long))
}

func TestBlake2b(t *testing.T) {
	h := Blake2b([]byte("ab"), []byte("c"))
	assert.Equal(t, Blake2b([]byte("abc")), h)
	assert.False(t, h.IsZero())
	assert.Len(t, h.Bytes(), HashLength)

	fn := Blake2bFn(func(w io.Writer) {
		w.Write([]byte("abc"))
	})
	assert.Equal(t, h, fn)
}
