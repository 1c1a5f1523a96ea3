// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package oracle reads the block-header oracle cells carried in cell-deps:
// current height, current timestamp, and the CKB/USD quote. Each oracle cell
// carries a single u64 LE payload.
package oracle

import (
	"encoding/binary"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/tx"
)

func readU64(t *tx.Transaction, codeHash das.Hash, kind string) (uint64, error) {
	cells := t.FindCellsByTypeID(codeHash, tx.SourceCellDep)
	if len(cells) != 1 {
		return 0, das.Errorf(das.CodeOracleCellNotFound,
			"expected exactly one %s cell in cell_deps, found %d", kind, len(cells))
	}
	cell, err := t.Cell(tx.SourceCellDep, cells[0])
	if err != nil {
		return 0, err
	}
	if len(cell.Data) != 8 {
		return 0, das.Errorf(das.CodeInvalidCellData, "%s cell data must be 8 bytes (len: %d)", kind, len(cell.Data))
	}
	return binary.LittleEndian.Uint64(cell.Data), nil
}

// Height reads the current block height.
func Height(t *tx.Transaction) (uint64, error) {
	return readU64(t, das.HeightCellCodeHash, "height")
}

// Timestamp reads the current timestamp.
func Timestamp(t *tx.Transaction) (uint64, error) {
	return readU64(t, das.TimeCellCodeHash, "time")
}

// Quote reads the current CKB/USD quote.
func Quote(t *tx.Transaction) (uint64, error) {
	return readU64(t, das.QuoteCellCodeHash, "quote")
}
