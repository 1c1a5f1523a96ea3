// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package proposal validates the ProposalCell pipeline: batches of
// PreAccountCells proposed into the account linked list, confirmed into
// AccountCells with the protocol fee split, or recycled.
package proposal

import (
	"github.com/dasnames/dascore/config"
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/log"
	"github.com/dasnames/dascore/oracle"
	"github.com/dasnames/dascore/script"
	"github.com/dasnames/dascore/tx"
	"github.com/dasnames/dascore/witness"
)

// Run validates the transaction against the ProposalCell type script
// identified by self. It terminates at the first broken invariant with a
// coded error.
func Run(t *tx.Transaction, self das.Script) (err error) {
	log.Debug("running proposal-cell-type")

	parser := witness.NewParser(t)
	actionData, err := parser.Action()
	if err != nil {
		return err
	}
	action := string(actionData.Action)
	defer func() { script.CountOutcome(action, err) }()

	inputCells := t.FindCellsByScript(tx.ScriptTypeType, self, tx.SourceInput)
	outputCells := t.FindCellsByScript(tx.ScriptTypeType, self, tx.SourceOutput)
	depCells := t.FindCellsByScript(tx.ScriptTypeType, self, tx.SourceCellDep)

	switch action {
	case script.ActionPropose:
		return propose(t, parser, depCells, inputCells, outputCells)
	case script.ActionExtendProposal:
		return extendProposal(t, parser, depCells, inputCells, outputCells)
	case script.ActionConfirmProposal:
		return confirmProposal(t, parser, depCells, inputCells, outputCells)
	case script.ActionRecycleProposal:
		return recycleProposal(t, parser, depCells, inputCells, outputCells)
	default:
		return das.Errorf(das.CodeActionNotSupported, "action not supported: %q", action)
	}
}

func propose(t *tx.Transaction, parser *witness.Parser, depCells, inputCells, outputCells []int) error {
	log.Debug("route to propose action")

	configs, err := config.Resolve(t, parser, entity.DataTypeConfigCellProposal)
	if err != nil {
		return err
	}
	if err := script.RequireSystemOn(configs); err != nil {
		return err
	}
	main, err := configs.Main()
	if err != nil {
		return err
	}
	cfgProposal, err := configs.Proposal()
	if err != nil {
		return err
	}

	if len(depCells) != 0 || len(inputCells) != 0 || len(outputCells) != 1 {
		return das.NewError(das.CodeProposalFoundInvalidTransaction,
			"there should be only one ProposalCell found in the outputs")
	}

	proposalData, err := loadProposal(t, parser, tx.SourceOutput, outputCells[0], true)
	if err != nil {
		return err
	}

	requiredCells, err := verifySlices(cfgProposal, proposalData.Slices)
	if err != nil {
		return err
	}
	relatedCells, err := findRelatedCells(t, main, tx.SourceCellDep)
	if err != nil {
		return err
	}

	script.InspectSlices(proposalData.Slices)
	script.InspectRelatedCells(t, tx.SourceCellDep, relatedCells)

	if requiredCells != len(relatedCells) {
		return das.Errorf(das.CodeProposalSliceRelatedCellMissing,
			"some of the proposal relevant cells are missing (expected: %d, current: %d)",
			requiredCells, len(relatedCells))
	}

	return verifyRelevantCells(t, main, proposalData.Slices, tx.SourceCellDep, relatedCells, nil)
}

func extendProposal(t *tx.Transaction, parser *witness.Parser, depCells, inputCells, outputCells []int) error {
	log.Debug("route to extend_proposal action")

	configs, err := config.Resolve(t, parser, entity.DataTypeConfigCellProposal)
	if err != nil {
		return err
	}
	if err := script.RequireSystemOn(configs); err != nil {
		return err
	}
	main, err := configs.Main()
	if err != nil {
		return err
	}
	cfgProposal, err := configs.Proposal()
	if err != nil {
		return err
	}

	if len(depCells) != 1 || len(inputCells) != 0 || len(outputCells) != 1 {
		return das.NewError(das.CodeProposalFoundInvalidTransaction,
			"there should be one ProposalCell found in the cell_deps and one in the outputs")
	}

	prevProposalData, err := loadProposal(t, parser, tx.SourceCellDep, depCells[0], false)
	if err != nil {
		return err
	}
	proposalData, err := loadProposal(t, parser, tx.SourceOutput, outputCells[0], true)
	if err != nil {
		return err
	}

	requiredCells, err := verifySlices(cfgProposal, proposalData.Slices)
	if err != nil {
		return err
	}
	relatedCells, err := findRelatedCells(t, main, tx.SourceCellDep)
	if err != nil {
		return err
	}

	script.InspectSlices(proposalData.Slices)
	script.InspectRelatedCells(t, tx.SourceCellDep, relatedCells)

	if requiredCells != len(relatedCells) {
		return das.Errorf(das.CodeProposalSliceRelatedCellMissing,
			"some of the proposal relevant cells are missing (expected: %d, current: %d)",
			requiredCells, len(relatedCells))
	}

	return verifyRelevantCells(t, main, proposalData.Slices, tx.SourceCellDep, relatedCells, prevProposalData)
}

func confirmProposal(t *tx.Transaction, parser *witness.Parser, depCells, inputCells, outputCells []int) error {
	log.Debug("route to confirm_proposal action")

	timestamp, err := oracle.Timestamp(t)
	if err != nil {
		return err
	}

	configs, err := config.Resolve(t, parser,
		entity.DataTypeConfigCellAccount, entity.DataTypeConfigCellProfitRate)
	if err != nil {
		return err
	}
	if err := script.RequireSystemOn(configs); err != nil {
		return err
	}
	main, err := configs.Main()
	if err != nil {
		return err
	}
	cfgAccount, err := configs.Account()
	if err != nil {
		return err
	}
	cfgProfitRate, err := configs.ProfitRate()
	if err != nil {
		return err
	}

	if len(depCells) != 0 || len(inputCells) != 1 || len(outputCells) != 0 {
		return das.NewError(das.CodeProposalFoundInvalidTransaction,
			"there should be only one ProposalCell found in the inputs")
	}

	proposalData, err := loadProposal(t, parser, tx.SourceInput, inputCells[0], false)
	if err != nil {
		return err
	}

	inputRelatedCells, err := findRelatedCells(t, main, tx.SourceInput)
	if err != nil {
		return err
	}
	outputAccountCells, err := findOutputAccountCells(t, main)
	if err != nil {
		return err
	}

	script.InspectSlices(proposalData.Slices)
	script.InspectRelatedCells(t, tx.SourceInput, inputRelatedCells)
	script.InspectRelatedCells(t, tx.SourceOutput, outputAccountCells)

	itemCount := proposalData.ItemCount()
	if len(inputRelatedCells) != itemCount || len(outputAccountCells) != itemCount {
		return das.Errorf(das.CodeProposalSliceRelatedCellMissing,
			"proposal needs %d cells on both sides (inputs: %d, outputs: %d)",
			itemCount, len(inputRelatedCells), len(outputAccountCells))
	}

	if err := verifyExecutionResult(t, parser, cfgAccount, main, cfgProfitRate, timestamp,
		proposalData, inputRelatedCells, outputAccountCells); err != nil {
		return err
	}

	return verifyRefund(t, inputCells[0], proposalData)
}

func recycleProposal(t *tx.Transaction, parser *witness.Parser, depCells, inputCells, outputCells []int) error {
	log.Debug("route to recycle_proposal action")

	configs, err := config.Resolve(t, parser, entity.DataTypeConfigCellProposal)
	if err != nil {
		return err
	}
	if err := script.RequireSystemOn(configs); err != nil {
		return err
	}
	cfgProposal, err := configs.Proposal()
	if err != nil {
		return err
	}

	if len(depCells) != 0 || len(inputCells) != 1 || len(outputCells) != 0 {
		return das.NewError(das.CodeProposalFoundInvalidTransaction,
			"there should be only one ProposalCell found in the inputs")
	}

	proposalData, err := loadProposal(t, parser, tx.SourceInput, inputCells[0], false)
	if err != nil {
		return err
	}

	height, err := oracle.Height(t)
	if err != nil {
		return err
	}
	minRecycleInterval := uint64(cfgProposal.ProposalMinRecycleInterval)
	if height < proposalData.CreatedAtHeight ||
		height-proposalData.CreatedAtHeight < minRecycleInterval {
		return das.Errorf(das.CodeProposalRecycleNeedWaitLonger,
			"ProposalCell should be recycled later, about %d blocks to wait",
			proposalData.CreatedAtHeight+minRecycleInterval-height)
	}

	return verifyRefund(t, inputCells[0], proposalData)
}

// loadProposal reads and verifies the ProposalCell's witness entity. When
// requireAlwaysSuccess is set, the cell's lock must be the no-op lock.
func loadProposal(t *tx.Transaction, parser *witness.Parser, source tx.Source, index int, requireAlwaysSuccess bool) (*entity.ProposalCellData, error) {
	if requireAlwaysSuccess {
		cell, err := t.Cell(source, index)
		if err != nil {
			return nil, err
		}
		if err := script.RequireAlwaysSuccessLock(cell); err != nil {
			return nil, err
		}
	}
	record, err := parser.VerifyAndGet(source, index)
	if err != nil {
		return nil, err
	}
	return entity.DecodeProposalCellData(record.Entity)
}
