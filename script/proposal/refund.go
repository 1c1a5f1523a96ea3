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

// verifyRefund checks that the proposer gets the ProposalCell's locked
// capacity back: the output cells under the proposer's lock must sum to at
// least the consumed ProposalCell's capacity. The proposer may consolidate
// the refund with unrelated change.
func verifyRefund(t *tx.Transaction, proposalCellIndex int, proposalData *entity.ProposalCellData) error {
	log.Debug("check the refund to proposer_lock is correct")

	refundCells := t.FindCellsByScript(tx.ScriptTypeLock, proposalData.ProposerLock, tx.SourceOutput)
	if len(refundCells) < 1 {
		return das.NewError(das.CodeProposalConfirmRefundError,
			"there should be at least 1 cell in outputs with the lock of the proposer")
	}

	var refundCapacity uint64
	for _, index := range refundCells {
		cell, err := t.Cell(tx.SourceOutput, index)
		if err != nil {
			return err
		}
		refundCapacity += cell.Capacity
	}

	proposalCell, err := t.Cell(tx.SourceInput, proposalCellIndex)
	if err != nil {
		return err
	}
	if proposalCell.Capacity > refundCapacity {
		return das.Errorf(das.CodeProposalConfirmRefundError,
			"the refund of the proposer should be at least %d, but %d found",
			proposalCell.Capacity, refundCapacity)
	}

	return nil
}
