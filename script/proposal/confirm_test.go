// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package proposal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/fortest"
	"github.com/dasnames/dascore/tx"
)

const (
	confirmTimestamp = uint64(1_642_032_000)
	// 100_000 paid at 5 a year over a 1000 quote buys a fifth of a year
	confirmProfit   = uint64(100_000)
	confirmDuration = das.SecondsPerYear / 5
)

var newName = "test0001" + das.AccountSuffix

func confirmStorageCapacity() uint64 {
	return fortest.AccountConfig().BasicCapacity + uint64(len(newName))*das.OneCKB
}

func standardRecords() []entity.IncomeRecord {
	return []entity.IncomeRecord{
		{BelongTo: fortest.OwnerLock(inviterTag), Capacity: 10_000},
		{BelongTo: fortest.OwnerLock(channelTag), Capacity: 8_000},
		{BelongTo: fortest.OwnerLock(proposerTag), Capacity: 4_000},
		{BelongTo: das.DasWalletLock(), Capacity: 76_000},
	}
}

type confirmOpts struct {
	incomeRecords  []entity.IncomeRecord
	incomeCapacity uint64
	inputIncome    *fortest.IncomeCellParams
}

// confirmFixture assembles a full confirm_proposal transaction: one slice
// converting a single PreAccountCell next to the anchor AccountCell, with
// the fee split recorded in the output IncomeCell and the proposer refunded.
func confirmFixture(t *testing.T, opts confirmOpts) *fortest.Builder {
	t.Helper()

	if opts.incomeRecords == nil {
		opts.incomeRecords = standardRecords()
		opts.incomeCapacity = 98_000
	}

	newID := das.AccountToID([]byte(newName))
	inviterLock := fortest.OwnerLock(inviterTag)
	channelLock := fortest.OwnerLock(channelTag)
	proposerLock := fortest.OwnerLock(proposerTag)

	slices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: newID},
		{AccountID: newID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}

	builder := fortest.NewTx().Action("confirm_proposal").
		Oracles(1010, confirmTimestamp, 2000).
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellAccount, fortest.AccountConfig()).
		Config(entity.DataTypeConfigCellProfitRate, fortest.ProfitRateConfig())

	builder.ProposalCell(tx.SourceInput, fortest.ProposalCellParams{
		ProposerLock:    proposerLock,
		CreatedAtHeight: 900,
		Slices:          slices,
		Capacity:        100 * das.OneCKB,
	})
	builder.AccountCell(tx.SourceInput, fortest.AccountCellParams{
		Account:   "anchor" + das.AccountSuffix,
		ID:        &anchorID,
		Next:      sentinel,
		ExpiredAt: 1_700_000_000,
		Capacity:  210 * das.OneCKB,
		Lock:      fortest.OwnerLock(0x05),
	})
	pre := preParams("test0001", confirmStorageCapacity()+confirmProfit)
	pre.InviterLock = &inviterLock
	pre.ChannelLock = &channelLock
	builder.PreAccountCell(tx.SourceInput, pre)
	if opts.inputIncome != nil {
		builder.IncomeCell(tx.SourceInput, *opts.inputIncome)
	}

	builder.AccountCell(tx.SourceOutput, fortest.AccountCellParams{
		Account:   "anchor" + das.AccountSuffix,
		ID:        &anchorID,
		Next:      newID,
		ExpiredAt: 1_700_000_000,
		Capacity:  210 * das.OneCKB,
		Lock:      fortest.OwnerLock(0x05),
	})
	builder.AccountCell(tx.SourceOutput, fortest.AccountCellParams{
		Account:   newName,
		Next:      sentinel,
		ExpiredAt: confirmTimestamp + confirmDuration,
		Capacity:  confirmStorageCapacity(),
		Lock:      das.DasLock([]byte{0x77}),
	})
	builder.IncomeCell(tx.SourceOutput, fortest.IncomeCellParams{
		Creator:  das.AlwaysSuccessLock(),
		Records:  opts.incomeRecords,
		Capacity: opts.incomeCapacity,
	})
	builder.NormalCell(tx.SourceOutput, 100*das.OneCKB, proposerLock)

	return builder
}

func TestConfirmProposal(t *testing.T) {
	builder := confirmFixture(t, confirmOpts{})
	assert.NoError(t, Run(builder.Build(), selfScript))
}

func TestConfirmProposalIncomeRecordWrong(t *testing.T) {
	records := standardRecords()
	records[0].Capacity = 9_999
	records[3].Capacity = 76_001
	builder := confirmFixture(t, confirmOpts{incomeRecords: records, incomeCapacity: 98_000})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalConfirmIncomeError, das.CodeOf(err))
}

func TestConfirmProposalIncomeExtraRecord(t *testing.T) {
	records := append(standardRecords(), entity.IncomeRecord{
		BelongTo: fortest.OwnerLock(0x33), Capacity: 1,
	})
	builder := confirmFixture(t, confirmOpts{incomeRecords: records, incomeCapacity: 98_001})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalConfirmIncomeError, das.CodeOf(err))
}

func TestConfirmProposalIncomeMissingBeneficiary(t *testing.T) {
	// everyone but the inviter is recorded
	records := standardRecords()[1:]
	builder := confirmFixture(t, confirmOpts{incomeRecords: records, incomeCapacity: 88_000})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalConfirmIncomeError, das.CodeOf(err))
}

func TestConfirmProposalIncomeCapacityMismatch(t *testing.T) {
	builder := confirmFixture(t, confirmOpts{})
	transaction := builder.Build()
	// the on-chain capacity must equal the recorded sum
	for i, cell := range transaction.Outputs {
		if cell.HasTypeID(fortest.IncomeCellTypeID) {
			transaction.Outputs[i].Capacity = 98_001
		}
	}

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalConfirmIncomeError, das.CodeOf(err))
}

func TestConfirmProposalIncomePassThrough(t *testing.T) {
	creatorLock := fortest.OwnerLock(0x0c)
	records := append(standardRecords(), entity.IncomeRecord{
		BelongTo: creatorLock, Capacity: 500,
	})
	builder := confirmFixture(t, confirmOpts{
		incomeRecords:  records,
		incomeCapacity: 98_500,
		inputIncome: &fortest.IncomeCellParams{
			Creator:  creatorLock,
			Records:  []entity.IncomeRecord{{BelongTo: creatorLock, Capacity: 500}},
			Capacity: 500,
		},
	})

	assert.NoError(t, Run(builder.Build(), selfScript))
}

func TestConfirmProposalInputIncomeTooManyRecords(t *testing.T) {
	creatorLock := fortest.OwnerLock(0x0c)
	builder := confirmFixture(t, confirmOpts{
		inputIncome: &fortest.IncomeCellParams{
			Creator: creatorLock,
			Records: []entity.IncomeRecord{
				{BelongTo: creatorLock, Capacity: 300},
				{BelongTo: fortest.OwnerLock(0x0d), Capacity: 200},
			},
			Capacity: 500,
		},
	})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalFoundInvalidTransaction, das.CodeOf(err))
}

func TestConfirmProposalRefundTooSmall(t *testing.T) {
	builder := confirmFixture(t, confirmOpts{})
	transaction := builder.Build()
	last := len(transaction.Outputs) - 1
	transaction.Outputs[last].Capacity = 99 * das.OneCKB

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalConfirmRefundError, das.CodeOf(err))
}

func TestConfirmProposalNextNotApplied(t *testing.T) {
	builder := confirmFixture(t, confirmOpts{})
	transaction := builder.Build()
	// the new AccountCell keeps a wrong next pointer
	bad := fortest.RawID(0x44)
	copy(transaction.Outputs[1].Data[das.HashLength+das.AccountIDLength:], bad.Bytes())

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalConfirmNewAccountCellDataError, das.CodeOf(err))
}

func TestConfirmProposalExpiredAtWrong(t *testing.T) {
	builder := confirmFixture(t, confirmOpts{})
	transaction := builder.Build()
	// one extra second of rent nobody paid for
	offset := das.HashLength + 2*das.AccountIDLength
	transaction.Outputs[1].Data[offset]++

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalConfirmNewAccountCellDataError, das.CodeOf(err))
}

func TestConfirmProposalCapacityWrong(t *testing.T) {
	builder := confirmFixture(t, confirmOpts{})
	transaction := builder.Build()
	transaction.Outputs[1].Capacity++

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalConfirmNewAccountCellCapacityError, das.CodeOf(err))
}

func TestConfirmProposalExistingCellModified(t *testing.T) {
	builder := confirmFixture(t, confirmOpts{})
	transaction := builder.Build()
	// bump the anchor's expired_at on the way through
	offset := das.HashLength + 2*das.AccountIDLength
	transaction.Outputs[0].Data[offset]++

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalFieldCanNotBeModified, das.CodeOf(err))
}

func TestRecycleProposal(t *testing.T) {
	tests := []struct {
		name     string
		height   uint64
		wantCode das.ErrorCode
	}{
		{"too early", 508, das.CodeProposalRecycleNeedWaitLonger},
		{"exactly at the interval", 510, 0},
		{"well past the interval", 600, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := recycleFixture(tt.height)
			builder.NormalCell(tx.SourceOutput, 100*das.OneCKB, fortest.OwnerLock(proposerTag))

			err := Run(builder.Build(), selfScript)
			assert.Equal(t, tt.wantCode, das.CodeOf(err))
		})
	}
}

func TestRecycleProposalNoRefund(t *testing.T) {
	builder := recycleFixture(600)

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalConfirmRefundError, das.CodeOf(err))
}

func recycleFixture(height uint64) *fortest.Builder {
	builder := fortest.NewTx().Action("recycle_proposal").
		Oracles(height, confirmTimestamp, 2000).
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())
	builder.ProposalCell(tx.SourceInput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 500,
		Slices: []entity.Slice{
			chainSlice(ascendingIDs(0x01, 0x02), sentinel),
		},
		Capacity: 100 * das.OneCKB,
	})
	return builder
}
