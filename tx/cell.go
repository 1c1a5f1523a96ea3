// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/dasnames/dascore/das"
)

// Cell a UTXO-shaped record: capacity plus lock, optional type and data.
// Cells are value objects; validators never mutate them.
type Cell struct {
	Capacity uint64
	Lock     das.Script
	Type     *das.Script
	Data     []byte
}

// HasTypeID returns if the cell's type script carries the given code hash.
func (c *Cell) HasTypeID(codeHash das.Hash) bool {
	return c.Type != nil && c.Type.CodeHash == codeHash
}

// EntityHash returns the witness anchor stored in the first 32 bytes of the
// cell's data.
func (c *Cell) EntityHash() (das.Hash, error) {
	if len(c.Data) < das.HashLength {
		return das.Hash{}, das.Errorf(das.CodeLengthNotEnough, "cell data too short for entity hash (len: %d)", len(c.Data))
	}
	return das.BytesToHash(c.Data[:das.HashLength]), nil
}
