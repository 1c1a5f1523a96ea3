// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package fortest provides fixtures for validator tests: deterministic type
// ids, locks and a transaction builder wiring cells to their hash-anchored
// witnesses.
package fortest

import (
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
)

// Deterministic type ids of the deployed cell kinds used across tests.
var (
	ApplyRegisterCellTypeID = das.Blake2b([]byte("fortest.apply-register-cell-type"))
	PreAccountCellTypeID    = das.Blake2b([]byte("fortest.pre-account-cell-type"))
	AccountCellTypeID       = das.Blake2b([]byte("fortest.account-cell-type"))
	ProposalCellTypeID      = das.Blake2b([]byte("fortest.proposal-cell-type"))
	IncomeCellTypeID        = das.Blake2b([]byte("fortest.income-cell-type"))
)

// TypeIDTable returns the table wiring the deterministic type ids.
func TypeIDTable() entity.TypeIDTable {
	return entity.TypeIDTable{
		ApplyRegisterCell: ApplyRegisterCellTypeID,
		PreAccountCell:    PreAccountCellTypeID,
		AccountCell:       AccountCellTypeID,
		ProposalCell:      ProposalCellTypeID,
		IncomeCell:        IncomeCellTypeID,
	}
}

// MainConfig returns a ConfigCellMain with the system on and the
// deterministic type-id table.
func MainConfig() *entity.ConfigCellMain {
	return &entity.ConfigCellMain{
		Status:      entity.SystemStatusOn,
		TypeIDTable: TypeIDTable(),
	}
}

// ProposalConfig returns a ConfigCellProposal with workable bounds.
func ProposalConfig() *entity.ConfigCellProposal {
	return &entity.ConfigCellProposal{
		ProposalMinConfirmInterval:   2,
		ProposalMinExtendInterval:    1,
		ProposalMinRecycleInterval:   10,
		ProposalMaxAccountAffect:     50,
		ProposalMaxPreAccountContain: 50,
	}
}

// AccountConfig returns a ConfigCellAccount with workable bounds.
func AccountConfig() *entity.ConfigCellAccount {
	return &entity.ConfigCellAccount{
		MaxLength:             42,
		BasicCapacity:         200 * das.OneCKB,
		PreparedFeeCapacity:   1 * das.OneCKB,
		ExpirationGracePeriod: 90 * 86400,
	}
}

// ProfitRateConfig returns a ConfigCellProfitRate with the canonical rates.
func ProfitRateConfig() *entity.ConfigCellProfitRate {
	return &entity.ConfigCellProfitRate{
		Inviter:         1000,
		Channel:         800,
		ProposalCreate:  400,
		ProposalConfirm: 200,
	}
}

// TypeScript returns a type script of the given type id.
func TypeScript(codeHash das.Hash) *das.Script {
	return &das.Script{CodeHash: codeHash, HashType: das.HashTypeType}
}

// OwnerLock returns a distinct user lock per tag.
func OwnerLock(tag byte) das.Script {
	return das.Script{
		CodeHash: das.Blake2b([]byte("fortest.user-lock")),
		HashType: das.HashTypeType,
		Args:     []byte{tag},
	}
}

// ID derives the account id of an account string, suffix included.
func ID(account string) das.AccountID {
	return das.AccountToID([]byte(account))
}

// RawID returns an account id with every byte set to b, handy for ordering
// fixtures.
func RawID(b byte) das.AccountID {
	var id das.AccountID
	for i := range id {
		id[i] = b
	}
	return id
}
