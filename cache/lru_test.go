// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrLoad(t *testing.T) {
	lru := NewLRU(16)

	loads := 0
	loader := func(interface{}) (interface{}, error) {
		loads++
		return "value", nil
	}

	v, err := lru.GetOrLoad("key", loader)
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	// second lookup must not load again
	v, err = lru.GetOrLoad("key", loader)
	assert.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, loads)
}

func TestGetOrLoadError(t *testing.T) {
	lru := NewLRU(16)
	boom := errors.New("boom")

	_, err := lru.GetOrLoad("key", func(interface{}) (interface{}, error) {
		return nil, boom
	})
	assert.Equal(t, boom, err)

	// failed loads are not cached
	_, ok := lru.Get("key")
	assert.False(t, ok)
}
