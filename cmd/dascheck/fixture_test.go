// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasnames/dascore/das"
)

const jsonFixture = `{
  "script": {"code_hash": "0x3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356", "hash_type": 1, "args": ""},
  "outputs": [
    {"capacity": 100, "lock": {"code_hash": "0x3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356", "hash_type": 1, "args": "0x01"}, "data": "0x0102"}
  ],
  "witnesses": ["0x646173"]
}`

const yamlFixture = `
script:
  code_hash: "0x3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356"
  hash_type: 1
  args: ""
outputs:
  - capacity: 100
    lock:
      code_hash: "0x3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356"
      hash_type: 1
      args: "0x01"
    data: "0x0102"
witnesses:
  - "0x646173"
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFixtureJSON(t *testing.T) {
	transaction, self, err := loadFixture(writeFixture(t, "tx.json", jsonFixture))
	require.NoError(t, err)

	assert.Equal(t, das.AlwaysSuccessCodeHash, self.CodeHash)
	require.Len(t, transaction.Outputs, 1)
	assert.Equal(t, uint64(100), transaction.Outputs[0].Capacity)
	assert.Equal(t, []byte{0x01}, transaction.Outputs[0].Lock.Args)
	assert.Equal(t, []byte{0x01, 0x02}, transaction.Outputs[0].Data)
	require.Len(t, transaction.Witnesses, 1)
	assert.Equal(t, []byte("das"), transaction.Witnesses[0])
}

func TestLoadFixtureYAML(t *testing.T) {
	fromJSON, _, err := loadFixture(writeFixture(t, "tx.json", jsonFixture))
	require.NoError(t, err)
	fromYAML, _, err := loadFixture(writeFixture(t, "tx.yaml", yamlFixture))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestLoadFixtureBadHex(t *testing.T) {
	_, _, err := loadFixture(writeFixture(t, "tx.json", `{"script": {"code_hash": "nope"}}`))
	assert.Error(t, err)
}
