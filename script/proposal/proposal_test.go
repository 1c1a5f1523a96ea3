// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package proposal

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/fortest"
	"github.com/dasnames/dascore/tx"
)

var selfScript = das.Script{CodeHash: fortest.ProposalCellTypeID, HashType: das.HashTypeType}

var (
	anchorID = fortest.RawID(0x00)
	sentinel = fortest.RawID(0xff)
)

const (
	proposerTag = byte(0x01)
	inviterTag  = byte(0x0a)
	channelTag  = byte(0x0b)
)

// sortedByID returns the accounts (suffix included) ascending by their
// derived account ids.
func sortedByID(accounts ...string) []string {
	sorted := append([]string{}, accounts...)
	sort.Slice(sorted, func(i, j int) bool {
		a := das.AccountToID([]byte(sorted[i]))
		b := das.AccountToID([]byte(sorted[j]))
		return a.Compare(b) < 0
	})
	return sorted
}

func preParams(account string, capacity uint64) fortest.PreAccountCellParams {
	return fortest.PreAccountCellParams{
		Account:       account,
		OwnerLockArgs: []byte{0x77},
		PriceNew:      5,
		Quote:         1000,
		Capacity:      capacity,
	}
}

// proposeFixture assembles a propose transaction over one slice: the anchor
// AccountCell plus two new registrations, all referenced from cell-deps.
func proposeFixture(t *testing.T) (*fortest.Builder, []entity.Slice) {
	t.Helper()

	names := sortedByID("alpha.bit", "bravo.bit")
	firstID := das.AccountToID([]byte(names[0]))
	secondID := das.AccountToID([]byte(names[1]))

	slices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: firstID},
		{AccountID: firstID, ItemType: entity.ProposalItemTypeNew, Next: secondID},
		{AccountID: secondID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}

	builder := fortest.NewTx().Action("propose").
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())

	builder.AccountCell(tx.SourceCellDep, fortest.AccountCellParams{
		Account:   "anchor" + das.AccountSuffix,
		ID:        &anchorID,
		Next:      sentinel,
		ExpiredAt: 1_700_000_000,
		Capacity:  210 * das.OneCKB,
		Lock:      fortest.OwnerLock(0x05),
	})
	for _, name := range names {
		builder.PreAccountCell(tx.SourceCellDep, preParams(name[:len(name)-len(das.AccountSuffix)], 500*das.OneCKB))
	}

	builder.ProposalCell(tx.SourceOutput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 1000,
		Slices:          slices,
		Capacity:        100 * das.OneCKB,
	})
	return builder, slices
}

func TestPropose(t *testing.T) {
	builder, _ := proposeFixture(t)
	assert.NoError(t, Run(builder.Build(), selfScript))
}

func TestProposeSliceNotSorted(t *testing.T) {
	names := sortedByID("alpha.bit", "bravo.bit")
	firstID := das.AccountToID([]byte(names[0]))
	secondID := das.AccountToID([]byte(names[1]))

	// items reordered with the chain rebuilt: continuity holds, order breaks
	slices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: secondID},
		{AccountID: secondID, ItemType: entity.ProposalItemTypeNew, Next: firstID},
		{AccountID: firstID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}

	builder := fortest.NewTx().Action("propose").
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())
	builder.ProposalCell(tx.SourceOutput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 1000,
		Slices:          slices,
		Capacity:        100 * das.OneCKB,
	})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalSliceIsNotSorted, das.CodeOf(err))
}

func TestProposeRelatedCellMissing(t *testing.T) {
	builder, _ := proposeFixture(t)
	transaction := builder.Build()
	// drop the last PreAccountCell from cell-deps
	transaction.CellDeps = transaction.CellDeps[:len(transaction.CellDeps)-1]

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalSliceRelatedCellMissing, das.CodeOf(err))
}

func TestProposeAnchorNextMismatch(t *testing.T) {
	builder, _ := proposeFixture(t)
	transaction := builder.Build()
	// the anchor's stored next no longer reaches the last item
	for i, cell := range transaction.CellDeps {
		if cell.HasTypeID(fortest.AccountCellTypeID) {
			bad := fortest.RawID(0x55)
			copy(transaction.CellDeps[i].Data[das.HashLength+das.AccountIDLength:], bad.Bytes())
		}
	}

	err := Run(transaction, selfScript)
	assert.Equal(t, das.CodeProposalSliceNotEndCorrectly, das.CodeOf(err))
}

func TestProposeRequiresAlwaysSuccessLock(t *testing.T) {
	names := sortedByID("alpha.bit", "bravo.bit")
	firstID := das.AccountToID([]byte(names[0]))

	slices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: firstID},
		{AccountID: firstID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}
	userLock := fortest.OwnerLock(0x09)

	builder := fortest.NewTx().Action("propose").
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())
	builder.ProposalCell(tx.SourceOutput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 1000,
		Slices:          slices,
		Capacity:        100 * das.OneCKB,
		Lock:            &userLock,
	})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeCellMustUseAlwaysSuccessLock, das.CodeOf(err))
}

func TestProposeShape(t *testing.T) {
	builder, slices := proposeFixture(t)
	builder.ProposalCell(tx.SourceInput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 900,
		Slices:          slices,
		Capacity:        100 * das.OneCKB,
	})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalFoundInvalidTransaction, das.CodeOf(err))
}

func TestProposeSystemOff(t *testing.T) {
	names := sortedByID("alpha.bit", "bravo.bit")
	firstID := das.AccountToID([]byte(names[0]))
	slices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: firstID},
		{AccountID: firstID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}

	off := fortest.MainConfig()
	off.Status = 0
	builder := fortest.NewTx().Action("propose").
		Config(entity.DataTypeConfigCellMain, off).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())
	builder.ProposalCell(tx.SourceOutput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 1000,
		Slices:          slices,
		Capacity:        100 * das.OneCKB,
	})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeSystemOff, das.CodeOf(err))
}

func TestExtendProposal(t *testing.T) {
	names := sortedByID("xray.bit", "yankee.bit")
	xID := das.AccountToID([]byte(names[0]))
	yID := das.AccountToID([]byte(names[1]))

	parentSlices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: xID},
		{AccountID: xID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}
	childSlices := []entity.Slice{{
		{AccountID: xID, ItemType: entity.ProposalItemTypeProposed, Next: yID},
		{AccountID: yID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}

	builder := fortest.NewTx().Action("extend_proposal").
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())

	builder.ProposalCell(tx.SourceCellDep, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 900,
		Slices:          parentSlices,
		Capacity:        100 * das.OneCKB,
	})
	for _, name := range names {
		builder.PreAccountCell(tx.SourceCellDep, preParams(name[:len(name)-len(das.AccountSuffix)], 500*das.OneCKB))
	}
	builder.ProposalCell(tx.SourceOutput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 1000,
		Slices:          childSlices,
		Capacity:        100 * das.OneCKB,
	})

	assert.NoError(t, Run(builder.Build(), selfScript))
}

func TestExtendProposalFallbackToCellData(t *testing.T) {
	// the child slice starts with an AccountCell the parent never touched;
	// its tracked next comes from the cell's own data
	zID := das.AccountToID([]byte("zulu.bit"))
	parentSlices := []entity.Slice{{
		{AccountID: fortest.RawID(0x01), ItemType: entity.ProposalItemTypeExist, Next: fortest.RawID(0x02)},
		{AccountID: fortest.RawID(0x02), ItemType: entity.ProposalItemTypeNew, Next: fortest.RawID(0x03)},
	}}
	childSlices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: zID},
		{AccountID: zID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}

	builder := fortest.NewTx().Action("extend_proposal").
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())
	builder.ProposalCell(tx.SourceCellDep, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 900,
		Slices:          parentSlices,
		Capacity:        100 * das.OneCKB,
	})
	builder.AccountCell(tx.SourceCellDep, fortest.AccountCellParams{
		Account:   "anchor" + das.AccountSuffix,
		ID:        &anchorID,
		Next:      sentinel,
		ExpiredAt: 1_700_000_000,
		Capacity:  210 * das.OneCKB,
		Lock:      fortest.OwnerLock(0x05),
	})
	builder.PreAccountCell(tx.SourceCellDep, preParams("zulu", 500*das.OneCKB))
	builder.ProposalCell(tx.SourceOutput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 1000,
		Slices:          childSlices,
		Capacity:        100 * das.OneCKB,
	})

	assert.NoError(t, Run(builder.Build(), selfScript))
}

func TestExtendProposalTailMismatch(t *testing.T) {
	names := sortedByID("xray.bit", "yankee.bit")
	xID := das.AccountToID([]byte(names[0]))
	yID := das.AccountToID([]byte(names[1]))

	parentSlices := []entity.Slice{{
		{AccountID: anchorID, ItemType: entity.ProposalItemTypeExist, Next: xID},
		{AccountID: xID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}
	childSlices := []entity.Slice{{
		{AccountID: xID, ItemType: entity.ProposalItemTypeProposed, Next: yID},
		{AccountID: yID, ItemType: entity.ProposalItemTypeNew, Next: sentinel},
	}}

	builder := fortest.NewTx().Action("extend_proposal").
		Config(entity.DataTypeConfigCellMain, fortest.MainConfig()).
		Config(entity.DataTypeConfigCellProposal, fortest.ProposalConfig())
	builder.ProposalCell(tx.SourceCellDep, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 900,
		Slices:          parentSlices,
		Capacity:        100 * das.OneCKB,
	})
	for _, name := range names {
		builder.PreAccountCell(tx.SourceCellDep, preParams(name[:len(name)-len(das.AccountSuffix)], 500*das.OneCKB))
	}
	// the child promises a different tail than the parent tracked
	childSlices[0][1].Next = fortest.RawID(0x66)
	childSlices[0][0].Next = yID
	builder.ProposalCell(tx.SourceOutput, fortest.ProposalCellParams{
		ProposerLock:    fortest.OwnerLock(proposerTag),
		CreatedAtHeight: 1000,
		Slices:          childSlices,
		Capacity:        100 * das.OneCKB,
	})

	err := Run(builder.Build(), selfScript)
	assert.Equal(t, das.CodeProposalSliceNotEndCorrectly, das.CodeOf(err))
}
