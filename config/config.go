// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package config materialises typed configuration views from the ConfigCells
// carried in a transaction's cell-deps. The snapshot is immutable and lives
// for one validator invocation.
package config

import (
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/tx"
	"github.com/dasnames/dascore/witness"
)

// Configs an immutable snapshot of the config views requested at resolve
// time. Views not requested return CodeConfigEntityMissing.
type Configs struct {
	main       *entity.ConfigCellMain
	apply      *entity.ConfigCellApply
	proposal   *entity.ConfigCellProposal
	account    *entity.ConfigCellAccount
	profitRate *entity.ConfigCellProfitRate
}

// Resolve reads the requested config views. ConfigCellMain is always
// resolved; it carries the kill switch and the type-id table every validator
// needs. Each view's witness is hash-checked against its ConfigCell.
func Resolve(t *tx.Transaction, parser *witness.Parser, dataTypes ...entity.DataType) (*Configs, error) {
	configs := &Configs{}
	for _, dataType := range append([]entity.DataType{entity.DataTypeConfigCellMain}, dataTypes...) {
		raw, err := loadVerified(t, parser, dataType)
		if err != nil {
			return nil, err
		}
		switch dataType {
		case entity.DataTypeConfigCellMain:
			if configs.main, err = entity.DecodeConfigCellMain(raw); err != nil {
				return nil, err
			}
		case entity.DataTypeConfigCellApply:
			if configs.apply, err = entity.DecodeConfigCellApply(raw); err != nil {
				return nil, err
			}
		case entity.DataTypeConfigCellProposal:
			if configs.proposal, err = entity.DecodeConfigCellProposal(raw); err != nil {
				return nil, err
			}
		case entity.DataTypeConfigCellAccount:
			if configs.account, err = entity.DecodeConfigCellAccount(raw); err != nil {
				return nil, err
			}
		case entity.DataTypeConfigCellProfitRate:
			if configs.profitRate, err = entity.DecodeConfigCellProfitRate(raw); err != nil {
				return nil, err
			}
		default:
			return nil, das.Errorf(das.CodeConfigCellNotFound, "not a config data type: %v", dataType)
		}
	}
	return configs, nil
}

// loadVerified finds the ConfigCell of the data type in cell-deps and the
// matching config witness, then checks the hash anchor.
func loadVerified(t *tx.Transaction, parser *witness.Parser, dataType entity.DataType) ([]byte, error) {
	script := witness.ConfigCellTypeScript(dataType)
	cells := t.FindCellsByScript(tx.ScriptTypeType, script, tx.SourceCellDep)
	if len(cells) != 1 {
		return nil, das.Errorf(das.CodeConfigCellNotFound,
			"expected exactly one %v in cell_deps, found %d", dataType, len(cells))
	}
	cell, err := t.Cell(tx.SourceCellDep, cells[0])
	if err != nil {
		return nil, err
	}
	anchored, err := cell.EntityHash()
	if err != nil {
		return nil, err
	}
	payload, ok := parser.FindConfigPayload(dataType)
	if !ok {
		return nil, das.Errorf(das.CodeWitnessEntityMissing, "no config witness for %v", dataType)
	}
	if das.Blake2b(payload) != anchored {
		return nil, das.Errorf(das.CodeWitnessEntityDecodingError,
			"config witness hash mismatch for %v", dataType)
	}
	return payload, nil
}

func missing(dataType entity.DataType) error {
	return das.Errorf(das.CodeConfigEntityMissing, "%v not resolved", dataType)
}

// Main returns the ConfigCellMain view.
func (c *Configs) Main() (*entity.ConfigCellMain, error) {
	if c.main == nil {
		return nil, missing(entity.DataTypeConfigCellMain)
	}
	return c.main, nil
}

// Apply returns the ConfigCellApply view.
func (c *Configs) Apply() (*entity.ConfigCellApply, error) {
	if c.apply == nil {
		return nil, missing(entity.DataTypeConfigCellApply)
	}
	return c.apply, nil
}

// Proposal returns the ConfigCellProposal view.
func (c *Configs) Proposal() (*entity.ConfigCellProposal, error) {
	if c.proposal == nil {
		return nil, missing(entity.DataTypeConfigCellProposal)
	}
	return c.proposal, nil
}

// Account returns the ConfigCellAccount view.
func (c *Configs) Account() (*entity.ConfigCellAccount, error) {
	if c.account == nil {
		return nil, missing(entity.DataTypeConfigCellAccount)
	}
	return c.account, nil
}

// ProfitRate returns the ConfigCellProfitRate view.
func (c *Configs) ProfitRate() (*entity.ConfigCellProfitRate, error) {
	if c.profitRate == nil {
		return nil, missing(entity.DataTypeConfigCellProfitRate)
	}
	return c.profitRate, nil
}
