// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package proposal

import (
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/log"
	"github.com/dasnames/dascore/tx"
)

// findRelatedCells enumerates every AccountCell and PreAccountCell of the
// source and merges the two index vectors into one ascending list with a
// stable two-pointer merge. The i-th entry binds to the i-th slice item.
func findRelatedCells(t *tx.Transaction, main *entity.ConfigCellMain, source tx.Source) ([]int, error) {
	accountCells := t.FindCellsByTypeID(main.TypeIDTable.AccountCell, source)
	preAccountCells := t.FindCellsByTypeID(main.TypeIDTable.PreAccountCell, source)

	if len(preAccountCells) == 0 {
		return nil, das.Errorf(das.CodeProposalFoundInvalidTransaction,
			"there should be some PreAccountCells in %v", source)
	}

	sorted := mergeSortedIndexes(accountCells, preAccountCells)
	log.Debug("related cells sorted index list", "source", source, "indexes", sorted)
	return sorted, nil
}

// findOutputAccountCells enumerates the AccountCells of the outputs.
func findOutputAccountCells(t *tx.Transaction, main *entity.ConfigCellMain) ([]int, error) {
	accountCells := t.FindCellsByTypeID(main.TypeIDTable.AccountCell, tx.SourceOutput)
	if len(accountCells) == 0 {
		return nil, das.NewError(das.CodeProposalFoundInvalidTransaction,
			"there should be some AccountCells in the outputs")
	}
	log.Debug("output AccountCell sorted index list", "indexes", accountCells)
	return accountCells, nil
}

// mergeSortedIndexes merges two ascending index vectors, keeping the order
// stable.
func mergeSortedIndexes(a, b []int) []int {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	merged := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	return append(merged, b[j:]...)
}
