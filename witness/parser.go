// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package witness locates and verifies the hash-anchored side payloads of a
// transaction. Parsing is lazy per cell but deterministic: an entity is
// verified at most once and repeated lookups return the cached record.
package witness

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dasnames/dascore/cache"
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/tx"
)

// Record a cell-bound entity witness.
type Record struct {
	Source   tx.Source
	Index    int
	DataType entity.DataType
	Entity   []byte
}

type recordKey struct {
	source tx.Source
	index  int
}

// Parser reads the witness group of one transaction.
type Parser struct {
	tx       *tx.Transaction
	action   *entity.ActionData
	records  map[recordKey]*Record
	verified *cache.LRU
}

// NewParser creates a parser over the transaction's witnesses.
func NewParser(t *tx.Transaction) *Parser {
	return &Parser{
		tx:       t,
		verified: cache.NewLRU(64),
	}
}

// Action returns the action witness of the transaction.
func (p *Parser) Action() (*entity.ActionData, error) {
	if p.action != nil {
		return p.action, nil
	}
	for _, w := range p.tx.Witnesses {
		dataType, payload, ok := decodeEnvelope(w)
		if !ok || dataType != entity.DataTypeActionData {
			continue
		}
		action, err := entity.DecodeActionData(payload)
		if err != nil {
			return nil, err
		}
		p.action = action
		return action, nil
	}
	return nil, das.NewError(das.CodeWitnessActionNotFound, "no action witness found")
}

// ParseCell materialises the entity records of every cell-bound witness.
// Config and action witnesses are left to their own readers.
func (p *Parser) ParseCell() error {
	if p.records != nil {
		return nil
	}
	records := make(map[recordKey]*Record)
	for _, w := range p.tx.Witnesses {
		dataType, payload, ok := decodeEnvelope(w)
		if !ok || dataType == entity.DataTypeActionData || dataType.IsConfig() {
			continue
		}
		var env cellEnvelope
		if err := rlp.DecodeBytes(payload, &env); err != nil {
			return das.WrapError(das.CodeWitnessEnvelopeInvalid, err, "ill-formed witness envelope")
		}
		rec := &Record{
			Source:   tx.Source(env.Source),
			Index:    int(env.Index),
			DataType: dataType,
			Entity:   env.Entity,
		}
		records[recordKey{rec.Source, rec.Index}] = rec
	}
	p.records = records
	return nil
}

// VerifyAndGet returns the entity record of the cell at source/index, having
// checked that blake2b-256 of the entity equals the first 32 bytes of the
// cell's data. Verification runs once per cell; later calls hit the cache.
func (p *Parser) VerifyAndGet(source tx.Source, index int) (*Record, error) {
	if err := p.ParseCell(); err != nil {
		return nil, err
	}
	key := recordKey{source, index}
	rec, err := p.verified.GetOrLoad(key, func(interface{}) (interface{}, error) {
		rec, ok := p.records[key]
		if !ok {
			return nil, das.Errorf(das.CodeWitnessEntityMissing, "no witness entity for %v[%d]", source, index)
		}
		cell, err := p.tx.Cell(source, index)
		if err != nil {
			return nil, err
		}
		anchored, err := cell.EntityHash()
		if err != nil {
			return nil, err
		}
		if das.Blake2b(rec.Entity) != anchored {
			return nil, das.Errorf(das.CodeWitnessEntityDecodingError,
				"witness entity hash mismatch at %v[%d]", source, index)
		}
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	return rec.(*Record), nil
}

// FindConfigPayload scans the witnesses for the config entity of the given
// data type.
func (p *Parser) FindConfigPayload(dataType entity.DataType) ([]byte, bool) {
	for _, w := range p.tx.Witnesses {
		dt, payload, ok := decodeEnvelope(w)
		if ok && dt == dataType {
			return payload, true
		}
	}
	return nil, false
}
