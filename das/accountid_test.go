// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountToID(t *testing.T) {
	account := []byte("alice" + AccountSuffix)
	id := AccountToID(account)

	hash := Blake2b(account)
	assert.Equal(t, hash.Bytes()[:AccountIDLength], id.Bytes())
	assert.NotEqual(t, id, AccountToID([]byte("bob"+AccountSuffix)))
}

func TestAccountIDCompare(t *testing.T) {
	low := AccountID{0x00, 0x01}
	high := AccountID{0x00, 0x02}

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
}

func TestParseAccountID(t *testing.T) {
	parsed, err := ParseAccountID("0x0102000000000000000000000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, AccountID{0x01, 0x02}, parsed)

	_, err = ParseAccountID("0x01")
	assert.Equal(t, errInvalidLength, err)
}

func TestBytesToAccountID(t *testing.T) {
	assert.Equal(t, AccountID{19: 0x05}, BytesToAccountID([]byte{0x05}))
	assert.True(t, AccountID{}.IsZero())
}
