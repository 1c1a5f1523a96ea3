// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/dasnames/dascore/das"
)

// Transaction the read-only view of the transaction under validation.
// It's immutable for the whole validator invocation; cells of each group are
// kept in their native ascending index order.
type Transaction struct {
	Inputs    []Cell
	Outputs   []Cell
	CellDeps  []Cell
	Witnesses [][]byte
}

// Cells returns the cell group of the given source.
func (t *Transaction) Cells(source Source) []Cell {
	switch source {
	case SourceInput:
		return t.Inputs
	case SourceOutput:
		return t.Outputs
	default:
		return t.CellDeps
	}
}

// Cell returns the cell at index of the given source.
func (t *Transaction) Cell(source Source, index int) (*Cell, error) {
	cells := t.Cells(source)
	if index < 0 || index >= len(cells) {
		return nil, das.Errorf(das.CodeIndexOutOfBound, "no cell at %v[%d]", source, index)
	}
	return &cells[index], nil
}

// FindCellsByScript enumerates cells of the source whose lock or type script
// equals the given script. The result is ascending by index; absence returns
// an empty slice.
func (t *Transaction) FindCellsByScript(st ScriptType, script das.Script, source Source) []int {
	var found []int
	for i, cell := range t.Cells(source) {
		switch st {
		case ScriptTypeLock:
			if cell.Lock.Equal(script) {
				found = append(found, i)
			}
		case ScriptTypeType:
			if cell.Type != nil && cell.Type.Equal(script) {
				found = append(found, i)
			}
		}
	}
	return found
}

// FindCellsByTypeID enumerates cells of the source whose type script carries
// the given code hash, regardless of args. The result is ascending by index.
func (t *Transaction) FindCellsByTypeID(codeHash das.Hash, source Source) []int {
	var found []int
	for i, cell := range t.Cells(source) {
		if cell.HasTypeID(codeHash) {
			found = append(found, i)
		}
	}
	return found
}
