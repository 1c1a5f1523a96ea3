// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fortest

import (
	"encoding/binary"
	"strings"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/dataparser"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/tx"
	"github.com/dasnames/dascore/witness"
)

// Builder to make it easy to assemble a transaction fixture. Cells added
// through the typed helpers get their witness entities anchored
// automatically.
type Builder struct {
	transaction tx.Transaction
}

// NewTx creates an empty transaction builder.
func NewTx() *Builder {
	return &Builder{}
}

// Build returns the assembled transaction.
func (b *Builder) Build() *tx.Transaction {
	return &b.transaction
}

// Action appends the action witness.
func (b *Builder) Action(name string) *Builder {
	b.transaction.Witnesses = append(b.transaction.Witnesses, witness.NewActionWitness([]byte(name), nil))
	return b
}

// AddCell appends a raw cell to the source and returns its index.
func (b *Builder) AddCell(source tx.Source, cell tx.Cell) int {
	switch source {
	case tx.SourceInput:
		b.transaction.Inputs = append(b.transaction.Inputs, cell)
		return len(b.transaction.Inputs) - 1
	case tx.SourceOutput:
		b.transaction.Outputs = append(b.transaction.Outputs, cell)
		return len(b.transaction.Outputs) - 1
	default:
		b.transaction.CellDeps = append(b.transaction.CellDeps, cell)
		return len(b.transaction.CellDeps) - 1
	}
}

// AddWitness appends a raw witness.
func (b *Builder) AddWitness(w []byte) *Builder {
	b.transaction.Witnesses = append(b.transaction.Witnesses, w)
	return b
}

// Config adds a ConfigCell to cell-deps together with its witness.
func (b *Builder) Config(dataType entity.DataType, cfg interface{}) *Builder {
	entityBytes := entity.MustEncode(cfg)
	script := witness.ConfigCellTypeScript(dataType)
	b.AddCell(tx.SourceCellDep, tx.Cell{
		Capacity: 100 * das.OneCKB,
		Lock:     das.DasWalletLock(),
		Type:     &script,
		Data:     das.Blake2b(entityBytes).Bytes(),
	})
	b.AddWitness(witness.NewConfigWitness(dataType, entityBytes))
	return b
}

// Oracles adds height, time and quote oracle cells to cell-deps.
func (b *Builder) Oracles(height, timestamp, quote uint64) *Builder {
	for _, oracle := range []struct {
		codeHash das.Hash
		value    uint64
	}{
		{das.HeightCellCodeHash, height},
		{das.TimeCellCodeHash, timestamp},
		{das.QuoteCellCodeHash, quote},
	} {
		data := binary.LittleEndian.AppendUint64(nil, oracle.value)
		b.AddCell(tx.SourceCellDep, tx.Cell{
			Capacity: das.OneCKB,
			Lock:     das.DasWalletLock(),
			Type:     TypeScript(oracle.codeHash),
			Data:     data,
		})
	}
	return b
}

// ApplyRegisterCellParams shape of an ApplyRegisterCell fixture.
type ApplyRegisterCellParams struct {
	Commitment das.Hash
	Height     uint64
	Capacity   uint64
	Lock       das.Script
}

// ApplyRegisterCell adds an ApplyRegisterCell to the source.
func (b *Builder) ApplyRegisterCell(source tx.Source, p ApplyRegisterCellParams) int {
	return b.AddCell(source, tx.Cell{
		Capacity: p.Capacity,
		Lock:     p.Lock,
		Type:     TypeScript(ApplyRegisterCellTypeID),
		Data:     dataparser.JoinApplyRegisterCellData(p.Commitment, p.Height),
	})
}

// AccountCellParams shape of an AccountCell fixture. Account carries the
// suffix; the id is derived unless overridden.
type AccountCellParams struct {
	Account   string
	Next      das.AccountID
	ExpiredAt uint64
	Capacity  uint64
	Lock      das.Script
	Status    entity.AccountStatus

	// ID overrides the derived account id when set.
	ID *das.AccountID
	// CorruptWitness flips a witness byte without re-anchoring, for hash
	// mismatch fixtures.
	CorruptWitness bool
}

// AccountCell adds a fully-wired AccountCell to the source: witness entity,
// anchored data and enveloped witness.
func (b *Builder) AccountCell(source tx.Source, p AccountCellParams) int {
	id := das.AccountToID([]byte(p.Account))
	if p.ID != nil {
		id = *p.ID
	}
	witnessEntity := &entity.AccountCellData{
		ID:      id,
		Account: Chars(strings.TrimSuffix(p.Account, das.AccountSuffix)),
		Status:  p.Status,
	}
	entityBytes := entity.MustEncode(witnessEntity)
	data := dataparser.JoinAccountCellData(das.Blake2b(entityBytes), id, p.Next, p.ExpiredAt, []byte(p.Account))
	index := b.AddCell(source, tx.Cell{
		Capacity: p.Capacity,
		Lock:     p.Lock,
		Type:     TypeScript(AccountCellTypeID),
		Data:     data,
	})
	if p.CorruptWitness {
		entityBytes = append([]byte{}, entityBytes...)
		entityBytes[0] ^= 0xff
	}
	b.AddWitness(witness.NewCellWitness(entity.DataTypeAccountCellData, source, index, entityBytes))
	return index
}

// PreAccountCellParams shape of a PreAccountCell fixture. Account carries no
// suffix.
type PreAccountCellParams struct {
	Account         string
	OwnerLockArgs   []byte
	InviterLock     *das.Script
	ChannelLock     *das.Script
	PriceNew        uint64
	Quote           uint64
	InvitedDiscount uint32
	Capacity        uint64

	// ID overrides the derived account id when set.
	ID *das.AccountID
}

// PreAccountCell adds a fully-wired PreAccountCell to the source.
func (b *Builder) PreAccountCell(source tx.Source, p PreAccountCellParams) int {
	id := das.AccountToID([]byte(p.Account + das.AccountSuffix))
	if p.ID != nil {
		id = *p.ID
	}
	witnessEntity := &entity.PreAccountCellData{
		Account:         Chars(p.Account),
		OwnerLockArgs:   p.OwnerLockArgs,
		InviterLock:     p.InviterLock,
		ChannelLock:     p.ChannelLock,
		Price:           entity.Price{Length: uint8(len(p.Account)), New: p.PriceNew, Renew: p.PriceNew},
		Quote:           p.Quote,
		InvitedDiscount: p.InvitedDiscount,
	}
	entityBytes := entity.MustEncode(witnessEntity)
	data := dataparser.JoinPreAccountCellData(das.Blake2b(entityBytes), id)
	index := b.AddCell(source, tx.Cell{
		Capacity: p.Capacity,
		Lock:     das.AlwaysSuccessLock(),
		Type:     TypeScript(PreAccountCellTypeID),
		Data:     data,
	})
	b.AddWitness(witness.NewCellWitness(entity.DataTypePreAccountCellData, source, index, entityBytes))
	return index
}

// ProposalCellParams shape of a ProposalCell fixture.
type ProposalCellParams struct {
	ProposerLock    das.Script
	CreatedAtHeight uint64
	Slices          []entity.Slice
	Capacity        uint64

	// Lock overrides the always-success lock when set.
	Lock *das.Script
}

// ProposalCell adds a fully-wired ProposalCell to the source.
func (b *Builder) ProposalCell(source tx.Source, p ProposalCellParams) int {
	witnessEntity := &entity.ProposalCellData{
		ProposerLock:    p.ProposerLock,
		CreatedAtHeight: p.CreatedAtHeight,
		Slices:          p.Slices,
	}
	entityBytes := entity.MustEncode(witnessEntity)
	lock := das.AlwaysSuccessLock()
	if p.Lock != nil {
		lock = *p.Lock
	}
	index := b.AddCell(source, tx.Cell{
		Capacity: p.Capacity,
		Lock:     lock,
		Type:     TypeScript(ProposalCellTypeID),
		Data:     das.Blake2b(entityBytes).Bytes(),
	})
	b.AddWitness(witness.NewCellWitness(entity.DataTypeProposalCellData, source, index, entityBytes))
	return index
}

// IncomeCellParams shape of an IncomeCell fixture.
type IncomeCellParams struct {
	Creator  das.Script
	Records  []entity.IncomeRecord
	Capacity uint64
}

// IncomeCell adds a fully-wired IncomeCell to the source.
func (b *Builder) IncomeCell(source tx.Source, p IncomeCellParams) int {
	witnessEntity := &entity.IncomeCellData{Creator: p.Creator, Records: p.Records}
	entityBytes := entity.MustEncode(witnessEntity)
	index := b.AddCell(source, tx.Cell{
		Capacity: p.Capacity,
		Lock:     das.AlwaysSuccessLock(),
		Type:     TypeScript(IncomeCellTypeID),
		Data:     das.Blake2b(entityBytes).Bytes(),
	})
	b.AddWitness(witness.NewCellWitness(entity.DataTypeIncomeCellData, source, index, entityBytes))
	return index
}

// NormalCell adds a plain capacity cell with the given lock.
func (b *Builder) NormalCell(source tx.Source, capacity uint64, lock das.Script) int {
	return b.AddCell(source, tx.Cell{Capacity: capacity, Lock: lock})
}

// Chars decomposes a plain account name into single-byte character items.
func Chars(account string) entity.AccountChars {
	chars := make(entity.AccountChars, 0, len(account))
	for i := range len(account) {
		chars = append(chars, entity.AccountChar{CharsetID: 0, Bytes: []byte{account[i]}})
	}
	return chars
}
