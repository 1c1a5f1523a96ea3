// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/tx"
)

// The fixture file mirrors the transaction shape: three cell groups plus the
// witnesses, and the type script under validation. All binary fields are
// 0x-prefixed hex.
type txFixture struct {
	Script    scriptFixture `json:"script" yaml:"script"`
	Inputs    []cellFixture `json:"inputs" yaml:"inputs"`
	Outputs   []cellFixture `json:"outputs" yaml:"outputs"`
	CellDeps  []cellFixture `json:"cell_deps" yaml:"cell_deps"`
	Witnesses []string      `json:"witnesses" yaml:"witnesses"`
}

type scriptFixture struct {
	CodeHash string `json:"code_hash" yaml:"code_hash"`
	HashType uint8  `json:"hash_type" yaml:"hash_type"`
	Args     string `json:"args" yaml:"args"`
}

type cellFixture struct {
	Capacity uint64         `json:"capacity" yaml:"capacity"`
	Lock     scriptFixture  `json:"lock" yaml:"lock"`
	Type     *scriptFixture `json:"type" yaml:"type"`
	Data     string         `json:"data" yaml:"data"`
}

func loadFixture(path string) (*tx.Transaction, das.Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, das.Script{}, err
	}

	var fixture txFixture
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		err = yaml.Unmarshal(raw, &fixture)
	} else {
		err = json.Unmarshal(raw, &fixture)
	}
	if err != nil {
		return nil, das.Script{}, errors.Wrap(err, "decode fixture")
	}

	transaction := &tx.Transaction{}
	if transaction.Inputs, err = convertCells(fixture.Inputs); err != nil {
		return nil, das.Script{}, err
	}
	if transaction.Outputs, err = convertCells(fixture.Outputs); err != nil {
		return nil, das.Script{}, err
	}
	if transaction.CellDeps, err = convertCells(fixture.CellDeps); err != nil {
		return nil, das.Script{}, err
	}
	for _, w := range fixture.Witnesses {
		b, err := decodeHex(w)
		if err != nil {
			return nil, das.Script{}, err
		}
		transaction.Witnesses = append(transaction.Witnesses, b)
	}

	self, err := convertScript(fixture.Script)
	if err != nil {
		return nil, das.Script{}, err
	}
	return transaction, self, nil
}

func convertCells(fixtures []cellFixture) ([]tx.Cell, error) {
	cells := make([]tx.Cell, 0, len(fixtures))
	for _, f := range fixtures {
		lock, err := convertScript(f.Lock)
		if err != nil {
			return nil, err
		}
		cell := tx.Cell{Capacity: f.Capacity, Lock: lock}
		if f.Type != nil {
			typeScript, err := convertScript(*f.Type)
			if err != nil {
				return nil, err
			}
			cell.Type = &typeScript
		}
		if cell.Data, err = decodeHex(f.Data); err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

func convertScript(f scriptFixture) (das.Script, error) {
	codeHash, err := das.ParseHash(f.CodeHash)
	if err != nil {
		return das.Script{}, errors.Wrap(err, "parse code_hash")
	}
	args, err := decodeHex(f.Args)
	if err != nil {
		return das.Script{}, err
	}
	return das.Script{CodeHash: codeHash, HashType: das.HashType(f.HashType), Args: args}, nil
}

func decodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hexutil.Decode(s)
}
