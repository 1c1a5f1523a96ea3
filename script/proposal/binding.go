// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package proposal

import (
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/dataparser"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/log"
	"github.com/dasnames/dascore/tx"
)

// verifyRelevantCells walks the slices and the merged relevant-cell vector
// in lockstep, binding each item to its cell: the cell must carry the
// expected type id and the item's account id. The first item of each slice
// yields the tracked next, which must have been passed down to the last
// item's next; that closes the linked-list splice.
//
// prevProposal is the parent proposal of an extend_proposal, nil otherwise.
func verifyRelevantCells(t *tx.Transaction, main *entity.ConfigCellMain, slices []entity.Slice,
	source tx.Source, relevantCells []int, prevProposal *entity.ProposalCellData) error {
	log.Debug("check the proposal slices relevant cells exist in correct status")

	i := 0
	for slIndex, slice := range slices {
		var trackedNext das.AccountID
		for itemIndex, item := range slice {
			cellIndex := relevantCells[i]

			expectedTypeID := main.TypeIDTable.PreAccountCell
			if item.ItemType == entity.ProposalItemTypeExist {
				expectedTypeID = main.TypeIDTable.AccountCell
			}
			if err := verifyCellTypeID(t, itemIndex, cellIndex, source, expectedTypeID); err != nil {
				return err
			}

			cell, err := t.Cell(source, cellIndex)
			if err != nil {
				return err
			}
			if err := verifyCellAccountID(item.ItemType, itemIndex, cell.Data, cellIndex, source, item.AccountID); err != nil {
				return err
			}

			// The first item's "next" must be correct so that the
			// AccountCells keep forming a linked list.
			if itemIndex == 0 {
				trackedNext, err = resolveTrackedNext(item, cell.Data, prevProposal)
				if err != nil {
					return err
				}
			}

			i++
		}

		nextOfLastItem := slice[len(slice)-1].Next
		if trackedNext != nextOfLastItem {
			return das.Errorf(das.CodeProposalSliceNotEndCorrectly,
				"the next of the first item of slice[%d] should pass to the last item (expected: %v, current: %v)",
				slIndex, trackedNext, nextOfLastItem)
		}
	}

	return nil
}

// resolveTrackedNext finds the authoritative next of a slice's first cell.
// In the first proposal of a chain the cell's own data is authoritative; in
// an extended proposal the parent's promised next takes precedence.
func resolveTrackedNext(item entity.ProposalItem, cellData []byte, prevProposal *entity.ProposalCellData) (das.AccountID, error) {
	if prevProposal == nil {
		if item.ItemType != entity.ProposalItemTypeExist {
			return das.AccountID{}, das.NewError(das.CodeProposalSliceMustStartWithAccountCell,
				"in the first proposal of a chain, every slice should start with an AccountCell")
		}
		return dataparser.AccountCellNext(cellData)
	}

	if item.ItemType != entity.ProposalItemTypeExist && item.ItemType != entity.ProposalItemTypeProposed {
		return das.AccountID{}, das.NewError(das.CodeProposalSliceMustStartWithAccountCell,
			"in an extended proposal, every slice should start with an AccountCell or a cell of the previous proposal")
	}

	if prevItem, ok := prevProposal.FindItem(item.AccountID); ok {
		// Included in the previous proposal: its latest next lives there.
		return prevItem.Next, nil
	}
	// Not included in the previous proposal: fall back to the cell's data.
	log.Debug("previous proposal item not found, fall back to cell data", "account_id", item.AccountID)
	return dataparser.AccountCellNext(cellData)
}

func verifyCellTypeID(t *tx.Transaction, itemIndex, cellIndex int, source tx.Source, expected das.Hash) error {
	cell, err := t.Cell(source, cellIndex)
	if err != nil {
		return err
	}
	if cell.Type == nil {
		return das.Errorf(das.CodeProposalSliceRelatedCellNotFound,
			"the related cell %v[%d] has no type script", source, cellIndex)
	}
	if cell.Type.CodeHash != expected {
		return das.Errorf(das.CodeProposalCellTypeError,
			"the type id of item[%d] should be %v (related cell: %v[%d])",
			itemIndex, expected, source, cellIndex)
	}
	return nil
}

func verifyCellAccountID(itemType entity.ProposalItemType, itemIndex int, cellData []byte,
	cellIndex int, source tx.Source, expected das.AccountID) error {
	var (
		id  das.AccountID
		err error
	)
	if itemType == entity.ProposalItemTypeNew {
		id, err = dataparser.PreAccountCellID(cellData)
	} else {
		id, err = dataparser.AccountCellID(cellData)
	}
	if err != nil {
		return err
	}
	if id != expected {
		return das.Errorf(das.CodeProposalCellAccountIdError,
			"the account id of item[%d] should be %v (related cell: %v[%d])",
			itemIndex, expected, source, cellIndex)
	}
	return nil
}
