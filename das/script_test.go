// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptEqual(t *testing.T) {
	a := DasLock([]byte{0x01})
	b := DasLock([]byte{0x01})
	c := DasLock([]byte{0x02})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(AlwaysSuccessLock()))
}

func TestScriptKey(t *testing.T) {
	a := DasLock([]byte{0x01})
	b := DasLock([]byte{0x01})

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), DasWalletLock().Key())

	// the key round-trips through the canonical encoding
	assert.Equal(t, a.Bytes(), []byte(a.Key()))
}

func TestScriptHash(t *testing.T) {
	assert.Equal(t, Blake2b(DasWalletLock().Bytes()), DasWalletLock().Hash())
}
