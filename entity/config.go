// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package entity

import (
	"github.com/dasnames/dascore/das"
)

// TypeIDTable the deployed type script code hashes of all DAS cell kinds.
type TypeIDTable struct {
	ApplyRegisterCell das.Hash
	PreAccountCell    das.Hash
	AccountCell       das.Hash
	ProposalCell      das.Hash
	IncomeCell        das.Hash
}

// SystemStatus value of ConfigCellMain.Status when the system accepts
// transactions.
const SystemStatusOn uint8 = 1

// ConfigCellMain the root config: kill switch and type-id table.
type ConfigCellMain struct {
	Status      uint8
	TypeIDTable TypeIDTable
}

// ConfigCellApply parameters of the commit phase.
type ConfigCellApply struct {
	ApplyMinWaitingBlockNumber uint32
	ApplyMaxWaitingBlockNumber uint32
}

// ConfigCellProposal parameters of the proposal pipeline.
type ConfigCellProposal struct {
	ProposalMinConfirmInterval   uint8
	ProposalMinExtendInterval    uint8
	ProposalMinRecycleInterval   uint8
	ProposalMaxAccountAffect     uint32
	ProposalMaxPreAccountContain uint32
}

// ConfigCellAccount parameters of account cells.
type ConfigCellAccount struct {
	MaxLength             uint32
	BasicCapacity         uint64
	PreparedFeeCapacity   uint64
	ExpirationGracePeriod uint32
}

// ConfigCellProfitRate fee split rates in parts per RateBase.
type ConfigCellProfitRate struct {
	Inviter         uint32
	Channel         uint32
	ProposalCreate  uint32
	ProposalConfirm uint32
}

// DecodeConfigCellMain decodes the canonical encoding of ConfigCellMain.
func DecodeConfigCellMain(b []byte) (*ConfigCellMain, error) {
	var c ConfigCellMain
	if err := decode(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeConfigCellApply decodes the canonical encoding of ConfigCellApply.
func DecodeConfigCellApply(b []byte) (*ConfigCellApply, error) {
	var c ConfigCellApply
	if err := decode(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeConfigCellProposal decodes the canonical encoding of ConfigCellProposal.
func DecodeConfigCellProposal(b []byte) (*ConfigCellProposal, error) {
	var c ConfigCellProposal
	if err := decode(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeConfigCellAccount decodes the canonical encoding of ConfigCellAccount.
func DecodeConfigCellAccount(b []byte) (*ConfigCellAccount, error) {
	var c ConfigCellAccount
	if err := decode(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeConfigCellProfitRate decodes the canonical encoding of ConfigCellProfitRate.
func DecodeConfigCellProfitRate(b []byte) (*ConfigCellProfitRate, error) {
	var c ConfigCellProfitRate
	if err := decode(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
