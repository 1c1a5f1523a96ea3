// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package proposal

import (
	"bytes"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/dataparser"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/fee"
	"github.com/dasnames/dascore/log"
	"github.com/dasnames/dascore/script"
	"github.com/dasnames/dascore/tx"
	"github.com/dasnames/dascore/witness"
)

// verifyExecutionResult checks that every AccountCell and PreAccountCell has
// been converted according to the proposal: existing cells keep everything
// but their next pointer, new cells become AccountCells with the derived id,
// capacity, lock and rent expiry, and the fee split lands in the output
// IncomeCell to the last unit of capacity.
func verifyExecutionResult(t *tx.Transaction, parser *witness.Parser,
	cfgAccount *entity.ConfigCellAccount, main *entity.ConfigCellMain,
	cfgProfitRate *entity.ConfigCellProfitRate, timestamp uint64,
	proposalData *entity.ProposalCellData, inputRelatedCells, outputAccountCells []int) error {
	log.Debug("check all cells are converted according to the proposal")

	profitMap := fee.NewProfitMap()

	i := 0
	for _, slice := range proposalData.Slices {
		for itemIndex, item := range slice {
			inputIndex := inputRelatedCells[i]
			outputIndex := outputAccountCells[i]

			var err error
			if item.ItemType == entity.ProposalItemTypeNew {
				err = verifyNewItem(t, parser, cfgAccount, main, cfgProfitRate, timestamp,
					proposalData.ProposerLock, item, itemIndex, inputIndex, outputIndex, profitMap)
			} else {
				err = verifyExistingItem(t, main, item, itemIndex, inputIndex, outputIndex)
			}
			if err != nil {
				return err
			}
			i++
		}
	}

	return verifyIncomeCells(t, parser, main, profitMap)
}

// verifyExistingItem checks an Exist|Proposed item: input and output are the
// same AccountCell, and only the next pointer of its data may change.
func verifyExistingItem(t *tx.Transaction, main *entity.ConfigCellMain,
	item entity.ProposalItem, itemIndex, inputIndex, outputIndex int) error {
	log.Debug("check existing AccountCell is updated correctly", "item", itemIndex)

	if err := verifyCellTypeID(t, itemIndex, inputIndex, tx.SourceInput, main.TypeIDTable.AccountCell); err != nil {
		return err
	}
	if err := verifyCellTypeID(t, itemIndex, outputIndex, tx.SourceOutput, main.TypeIDTable.AccountCell); err != nil {
		return err
	}

	inputCell, err := t.Cell(tx.SourceInput, inputIndex)
	if err != nil {
		return err
	}
	outputCell, err := t.Cell(tx.SourceOutput, outputIndex)
	if err != nil {
		return err
	}

	if err := verifyCellAccountID(item.ItemType, itemIndex, inputCell.Data, inputIndex, tx.SourceInput, item.AccountID); err != nil {
		return err
	}
	if err := verifyCellAccountID(item.ItemType, itemIndex, outputCell.Data, outputIndex, tx.SourceOutput, item.AccountID); err != nil {
		return err
	}
	if err := script.RequireCapacityEqual(inputCell, outputCell); err != nil {
		return err
	}
	if err := script.RequireLockEqual(inputCell, outputCell); err != nil {
		return err
	}

	// Only the next field of data may be modified. The witness needs no
	// check of its own, its hash is part of data.
	if err := verifyDataConsistent(itemIndex, outputCell.Data, inputCell.Data); err != nil {
		return err
	}
	return verifyNext(itemIndex, outputCell.Data, item.Next)
}

// verifyNewItem checks a New item: the input PreAccountCell converts into an
// AccountCell owned by the buyer, with capacity, id, account, next and
// expiry all derived by protocol law, and accrues the fee split.
func verifyNewItem(t *tx.Transaction, parser *witness.Parser,
	cfgAccount *entity.ConfigCellAccount, main *entity.ConfigCellMain,
	cfgProfitRate *entity.ConfigCellProfitRate, timestamp uint64, proposerLock das.Script,
	item entity.ProposalItem, itemIndex, inputIndex, outputIndex int, profitMap fee.ProfitMap) error {
	log.Debug("check PreAccountCell is converted correctly", "item", itemIndex)

	if err := verifyCellTypeID(t, itemIndex, inputIndex, tx.SourceInput, main.TypeIDTable.PreAccountCell); err != nil {
		return err
	}
	if err := verifyCellTypeID(t, itemIndex, outputIndex, tx.SourceOutput, main.TypeIDTable.AccountCell); err != nil {
		return err
	}

	inputCell, err := t.Cell(tx.SourceInput, inputIndex)
	if err != nil {
		return err
	}
	outputCell, err := t.Cell(tx.SourceOutput, outputIndex)
	if err != nil {
		return err
	}

	if err := verifyCellAccountID(item.ItemType, itemIndex, inputCell.Data, inputIndex, tx.SourceInput, item.AccountID); err != nil {
		return err
	}
	if err := verifyCellAccountID(entity.ProposalItemTypeExist, itemIndex, outputCell.Data, outputIndex, tx.SourceOutput, item.AccountID); err != nil {
		return err
	}

	inputRecord, err := parser.VerifyAndGet(tx.SourceInput, inputIndex)
	if err != nil {
		return err
	}
	preAccountWitness, err := entity.DecodePreAccountCellData(inputRecord.Entity)
	if err != nil {
		return err
	}
	outputRecord, err := parser.VerifyAndGet(tx.SourceOutput, outputIndex)
	if err != nil {
		return err
	}
	accountWitness, err := entity.DecodeAccountCellData(outputRecord.Entity)
	if err != nil {
		return err
	}

	storedAccount, err := dataparser.AccountCellAccount(outputCell.Data)
	if err != nil {
		return err
	}
	storageCapacity := fee.AccountStorageCapacity(cfgAccount, uint64(len(storedAccount)))
	totalCapacity := inputCell.Capacity
	if totalCapacity < storageCapacity {
		return das.Errorf(das.CodeProposalConfirmNewAccountCellCapacityError,
			"the PreAccountCell capacity %d can not cover the storage capacity %d",
			totalCapacity, storageCapacity)
	}
	// The capacity carried beyond storage is the rent paid.
	profit := totalCapacity - storageCapacity
	log.Debug("profit carried by PreAccountCell",
		"item", itemIndex, "profit", profit, "total", totalCapacity, "storage", storageCapacity)

	if err := script.VerifyAccountCanBeRegistered(len(preAccountWitness.Account), timestamp); err != nil {
		return err
	}

	if outputCell.Capacity != storageCapacity {
		return das.Errorf(das.CodeProposalConfirmNewAccountCellCapacityError,
			"the AccountCell.capacity should be %d, but %d found", storageCapacity, outputCell.Capacity)
	}
	expectedLock := das.DasLock(preAccountWitness.OwnerLockArgs)
	if !outputCell.Lock.Equal(expectedLock) {
		return das.Errorf(das.CodeProposalConfirmAccountLockArgsIsInvalid,
			"the outputs[%d].lock should come from the owner_lock_args of inputs[%d]",
			outputIndex, inputIndex)
	}

	// All fields of the new AccountCell's data.
	if err := verifyID(itemIndex, outputCell.Data, inputCell.Data); err != nil {
		return err
	}
	if err := verifyAccountIDDerivation(itemIndex, outputCell.Data); err != nil {
		return err
	}
	if err := verifyNext(itemIndex, outputCell.Data, item.Next); err != nil {
		return err
	}
	if err := verifyExpiredAt(itemIndex, profit, timestamp, outputCell.Data, preAccountWitness); err != nil {
		return err
	}

	// All fields of the new AccountCell's witness.
	if err := verifyWitnessID(itemIndex, outputCell.Data, accountWitness); err != nil {
		return err
	}
	if err := verifyWitnessAccount(itemIndex, outputCell.Data, accountWitness); err != nil {
		return err
	}
	if err := verifyWitnessStatus(itemIndex, accountWitness); err != nil {
		return err
	}

	accrueProfits(profit, cfgProfitRate, preAccountWitness, proposerLock, itemIndex, profitMap)
	return nil
}

// accrueProfits splits the rent among inviter, channel, proposer and the
// protocol wallet. The confirmer's share is deducted but never recorded: the
// transaction creator takes it freely, and this script can not know which
// lock they will use. The residual accrues to the protocol wallet, which
// keeps the reconciliation exact regardless of rounding.
func accrueProfits(profit uint64, rates *entity.ConfigCellProfitRate,
	preAccountWitness *entity.PreAccountCellData, proposerLock das.Script,
	itemIndex int, profitMap fee.ProfitMap) {
	var inviterProfit, channelProfit uint64
	if preAccountWitness.InviterLock != nil {
		inviterProfit = fee.Split(profit, rates.Inviter)
		profitMap.Add(*preAccountWitness.InviterLock, inviterProfit)
	}
	if preAccountWitness.ChannelLock != nil {
		channelProfit = fee.Split(profit, rates.Channel)
		profitMap.Add(*preAccountWitness.ChannelLock, channelProfit)
	}

	proposalCreateProfit := fee.Split(profit, rates.ProposalCreate)
	profitMap.Add(proposerLock, proposalCreateProfit)

	proposalConfirmProfit := fee.Split(profit, rates.ProposalConfirm)

	dasProfit := profit - inviterProfit - channelProfit - proposalCreateProfit - proposalConfirmProfit
	profitMap.Add(das.DasWalletLock(), dasProfit)

	log.Debug("profit split",
		"item", itemIndex,
		"profit", profit,
		"inviter", inviterProfit,
		"channel", channelProfit,
		"proposal_create", proposalCreateProfit,
		"proposal_confirm", proposalConfirmProfit,
		"das", dasProfit,
	)
}

// verifyIncomeCells reconciles the profit map against the IncomeCells: at
// most one input IncomeCell whose single record passes through, and exactly
// one output IncomeCell whose records must match the profit map entry by
// entry and sum to its on-chain capacity.
func verifyIncomeCells(t *tx.Transaction, parser *witness.Parser, main *entity.ConfigCellMain, profitMap fee.ProfitMap) error {
	log.Debug("check the IncomeCell records everyone's profit correctly")

	inputIncomeCells := t.FindCellsByTypeID(main.TypeIDTable.IncomeCell, tx.SourceInput)
	outputIncomeCells := t.FindCellsByTypeID(main.TypeIDTable.IncomeCell, tx.SourceOutput)

	if len(inputIncomeCells) > 1 {
		return das.Errorf(das.CodeProposalFoundInvalidTransaction,
			"the number of IncomeCells in inputs should be <= 1 (current: %d)", len(inputIncomeCells))
	}

	if len(inputIncomeCells) == 1 {
		record, err := parser.VerifyAndGet(tx.SourceInput, inputIncomeCells[0])
		if err != nil {
			return err
		}
		incomeWitness, err := entity.DecodeIncomeCellData(record.Entity)
		if err != nil {
			return err
		}
		// The input IncomeCell must be newly created, carrying only the
		// record of its creator; that capacity passes through.
		if len(incomeWitness.Records) != 1 {
			return das.NewError(das.CodeProposalFoundInvalidTransaction,
				"the IncomeCell in inputs should be newly created with only one record")
		}
		profitMap.Add(incomeWitness.Records[0].BelongTo, incomeWitness.Records[0].Capacity)
	}

	if len(outputIncomeCells) != 1 {
		return das.Errorf(das.CodeProposalFoundInvalidTransaction,
			"the number of IncomeCells in outputs should be exactly 1 (current: %d)", len(outputIncomeCells))
	}

	record, err := parser.VerifyAndGet(tx.SourceOutput, outputIncomeCells[0])
	if err != nil {
		return err
	}
	incomeWitness, err := entity.DecodeIncomeCellData(record.Entity)
	if err != nil {
		return err
	}

	var expectedCapacity uint64
	for i, rec := range incomeWitness.Records {
		expected, ok := profitMap.Get(rec.BelongTo)
		if !ok {
			return das.Errorf(das.CodeProposalConfirmIncomeError,
				"IncomeCell.records[%d] is a profit record which should not be there (belong_to: %v)",
				i, rec.BelongTo)
		}
		if rec.Capacity != expected {
			return das.Errorf(das.CodeProposalConfirmIncomeError,
				"IncomeCell.records[%d] capacity is incorrect (expected: %d, current: %d)",
				i, expected, rec.Capacity)
		}
		profitMap.Remove(rec.BelongTo)
		expectedCapacity += rec.Capacity
	}

	if profitMap.Len() != 0 {
		return das.Errorf(das.CodeProposalConfirmIncomeError,
			"the IncomeCell in outputs should contain everyone's profit (missing: %d)", profitMap.Len())
	}

	incomeCell, err := t.Cell(tx.SourceOutput, outputIncomeCells[0])
	if err != nil {
		return err
	}
	if expectedCapacity != incomeCell.Capacity {
		return das.Errorf(das.CodeProposalConfirmIncomeError,
			"the capacity of the IncomeCell should be %d, but %d found", expectedCapacity, incomeCell.Capacity)
	}

	return nil
}

func bytesEq(itemIndex int, field string, current, expected []byte, code das.ErrorCode) error {
	if !bytes.Equal(current, expected) {
		return das.Errorf(code,
			"the AccountCell.%s of item[%d] is inconsistent (expected: 0x%x, current: 0x%x)",
			field, itemIndex, expected, current)
	}
	return nil
}

// verifyDataConsistent requires everything of an existing AccountCell's data
// except next to be bit-identical between input and output.
func verifyDataConsistent(itemIndex int, outputData, inputData []byte) error {
	outHash, err := dataparser.EntityHashOf(outputData)
	if err != nil {
		return err
	}
	inHash, err := dataparser.EntityHashOf(inputData)
	if err != nil {
		return err
	}
	if err := bytesEq(itemIndex, "hash", outHash.Bytes(), inHash.Bytes(), das.CodeProposalFieldCanNotBeModified); err != nil {
		return err
	}

	outID, err := dataparser.AccountCellID(outputData)
	if err != nil {
		return err
	}
	inID, err := dataparser.AccountCellID(inputData)
	if err != nil {
		return err
	}
	if err := bytesEq(itemIndex, "id", outID.Bytes(), inID.Bytes(), das.CodeProposalFieldCanNotBeModified); err != nil {
		return err
	}

	outAccount, err := dataparser.AccountCellAccount(outputData)
	if err != nil {
		return err
	}
	inAccount, err := dataparser.AccountCellAccount(inputData)
	if err != nil {
		return err
	}
	if err := bytesEq(itemIndex, "account", outAccount, inAccount, das.CodeProposalFieldCanNotBeModified); err != nil {
		return err
	}

	outExpired, err := dataparser.AccountCellExpiredAt(outputData)
	if err != nil {
		return err
	}
	inExpired, err := dataparser.AccountCellExpiredAt(inputData)
	if err != nil {
		return err
	}
	if outExpired != inExpired {
		return das.Errorf(das.CodeProposalFieldCanNotBeModified,
			"the AccountCell.expired_at of item[%d] is inconsistent (expected: %d, current: %d)",
			itemIndex, inExpired, outExpired)
	}
	return nil
}

func verifyID(itemIndex int, outputData, inputData []byte) error {
	outID, err := dataparser.AccountCellID(outputData)
	if err != nil {
		return err
	}
	inID, err := dataparser.PreAccountCellID(inputData)
	if err != nil {
		return err
	}
	return bytesEq(itemIndex, "id", outID.Bytes(), inID.Bytes(), das.CodeProposalConfirmNewAccountCellDataError)
}

// verifyAccountIDDerivation checks the account-id derivation law: id equals
// the first 20 bytes of blake2b-256 of the stored account string.
func verifyAccountIDDerivation(itemIndex int, outputData []byte) error {
	id, err := dataparser.AccountCellID(outputData)
	if err != nil {
		return err
	}
	account, err := dataparser.AccountCellAccount(outputData)
	if err != nil {
		return err
	}
	derived := das.AccountToID(account)
	return bytesEq(itemIndex, "account", derived.Bytes(), id.Bytes(), das.CodeProposalConfirmNewAccountCellDataError)
}

func verifyNext(itemIndex int, outputData []byte, proposedNext das.AccountID) error {
	next, err := dataparser.AccountCellNext(outputData)
	if err != nil {
		return err
	}
	return bytesEq(itemIndex, "next", next.Bytes(), proposedNext.Bytes(), das.CodeProposalConfirmNewAccountCellDataError)
}

// verifyExpiredAt checks the rent duration law: the paid capacity buys
// duration at the witnessed price, quote and discount, counted from the
// current timestamp.
func verifyExpiredAt(itemIndex int, profit, timestamp uint64, outputData []byte, preAccountWitness *entity.PreAccountCellData) error {
	duration, err := fee.DurationFromPaid(profit, preAccountWitness.Price.New,
		preAccountWitness.Quote, preAccountWitness.InvitedDiscount)
	if err != nil {
		return err
	}
	expiredAt, err := dataparser.AccountCellExpiredAt(outputData)
	if err != nil {
		return err
	}
	calculated := timestamp + duration
	if calculated != expiredAt {
		return das.Errorf(das.CodeProposalConfirmNewAccountCellDataError,
			"the AccountCell.expired_at of item[%d] should be %d, but %d found",
			itemIndex, calculated, expiredAt)
	}
	return nil
}

func verifyWitnessID(itemIndex int, outputData []byte, accountWitness *entity.AccountCellData) error {
	expected, err := dataparser.AccountCellID(outputData)
	if err != nil {
		return err
	}
	return bytesEq(itemIndex, "witness.id", accountWitness.ID.Bytes(), expected.Bytes(), das.CodeProposalConfirmWitnessIDError)
}

// verifyWitnessAccount checks that witness.account plus the protocol suffix
// reproduces the stored account string.
func verifyWitnessAccount(itemIndex int, outputData []byte, accountWitness *entity.AccountCellData) error {
	account := append(accountWitness.Account.Text(), []byte(das.AccountSuffix)...)
	expected, err := dataparser.AccountCellAccount(outputData)
	if err != nil {
		return err
	}
	return bytesEq(itemIndex, "witness.account", account, expected, das.CodeProposalConfirmWitnessAccountError)
}

func verifyWitnessStatus(itemIndex int, accountWitness *entity.AccountCellData) error {
	if accountWitness.Status != entity.AccountStatusNormal {
		return das.Errorf(das.CodeProposalConfirmWitnessManagerError,
			"the AccountCell.witness.status of item[%d] should be normal (current: %d)",
			itemIndex, accountWitness.Status)
	}
	return nil
}
