// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package proposal

import (
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/log"
)

// verifySlices runs the structural check over the proposal slices and
// returns the total item count.
//
// Within each slice the items must be continuous (item.next names the next
// item) and strictly ascending by account id; the first item resolves an
// existing cell, the rest are new registrations. No account id may be
// committed twice across the whole proposal.
func verifySlices(cfg *entity.ConfigCellProposal, slices []entity.Slice) (int, error) {
	log.Debug("check the data structure of proposal slices")

	if len(slices) == 0 {
		return 0, das.NewError(das.CodeProposalSlicesCanNotBeEmpty,
			"the slices of ProposalCell should not be empty")
	}

	requiredCells := 0
	accountCellContained := uint32(0)
	preAccountCellContained := uint32(0)
	exists := make(map[das.AccountID]bool)

	for slIndex, slice := range slices {
		if len(slice) < 2 {
			return 0, das.Errorf(das.CodeProposalSliceMustContainMoreThanOneElement,
				"slice[%d] must contain more than one element, but %d found", slIndex, len(slice))
		}

		// The "next" of the last item refers to an existing account, as does
		// the first item itself; both seed the uniqueness set.
		exists[slice[0].AccountID] = true
		exists[slice[len(slice)-1].Next] = true

		for index, item := range slice {
			if index == 0 {
				accountCellContained++
				if item.ItemType == entity.ProposalItemTypeNew {
					return 0, das.Errorf(das.CodeProposalCellTypeError,
						"the item_type of slice[%d][0] should not be new", slIndex)
				}
			} else {
				preAccountCellContained++
				if item.ItemType != entity.ProposalItemTypeNew {
					return 0, das.Errorf(das.CodeProposalCellTypeError,
						"the item_type of slice[%d][%d] should be new", slIndex, index)
				}
				if exists[item.AccountID] {
					return 0, das.Errorf(das.CodeProposalSliceItemMustBeUniqueAccount,
						"slice[%d][%d] is an existing account", slIndex, index)
				}
			}

			if index+1 < len(slice) {
				// Continuity: every item's next names the following item.
				if item.Next != slice[index+1].AccountID {
					return 0, das.Errorf(das.CodeProposalSliceIsDiscontinuity,
						"slice[%d][%d].next should be %v, but %v found",
						slIndex, index, slice[index+1].AccountID, item.Next)
				}
				// Order: account ids strictly ascend within the slice.
				if item.AccountID.Compare(slice[index+1].AccountID) >= 0 {
					return 0, das.Errorf(das.CodeProposalSliceIsNotSorted,
						"the order of items in slice[%d] is incorrect", slIndex)
				}
			}

			exists[item.AccountID] = true
			requiredCells++
		}
	}

	if accountCellContained >= cfg.ProposalMaxAccountAffect {
		return 0, das.Errorf(das.CodeProposalFoundInvalidTransaction,
			"the proposal should not contain more than %d AccountCells", cfg.ProposalMaxAccountAffect)
	}
	if preAccountCellContained >= cfg.ProposalMaxPreAccountContain {
		return 0, das.Errorf(das.CodeProposalFoundInvalidTransaction,
			"the proposal should not contain more than %d PreAccountCells", cfg.ProposalMaxPreAccountContain)
	}

	return requiredCells, nil
}
