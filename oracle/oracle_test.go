// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/fortest"
	"github.com/dasnames/dascore/oracle"
)

func TestOracleReads(t *testing.T) {
	transaction := fortest.NewTx().Oracles(1000, 1700000000, 2000).Build()

	height, err := oracle.Height(transaction)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), height)

	timestamp, err := oracle.Timestamp(transaction)
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000), timestamp)

	quote, err := oracle.Quote(transaction)
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), quote)
}

func TestOracleMissing(t *testing.T) {
	transaction := fortest.NewTx().Build()

	_, err := oracle.Height(transaction)
	assert.Equal(t, das.CodeOracleCellNotFound, das.CodeOf(err))
}

func TestOracleBadPayload(t *testing.T) {
	transaction := fortest.NewTx().Oracles(1000, 1700000000, 2000).Build()
	transaction.CellDeps[0].Data = transaction.CellDeps[0].Data[:4]

	_, err := oracle.Height(transaction)
	assert.Equal(t, das.CodeInvalidCellData, das.CodeOf(err))
}
