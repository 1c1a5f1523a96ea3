// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/log"
	"github.com/dasnames/dascore/tx"
)

var inspectConf = spew.ConfigState{Indent: "  ", DisableMethods: false, SortKeys: true}

// InspectSlices dumps the proposal slices to the debug log. A no-op unless
// debug logging is enabled.
func InspectSlices(slices []entity.Slice) {
	if !log.Root().Enabled(log.LevelDebug) {
		return
	}
	log.Debug("proposal slices", "dump", inspectConf.Sdump(slices))
}

// InspectRelatedCells logs the capacity, type script and data length of the
// cells bound to a proposal. A no-op unless debug logging is enabled.
func InspectRelatedCells(t *tx.Transaction, source tx.Source, indexes []int) {
	if !log.Root().Enabled(log.LevelDebug) {
		return
	}
	for _, i := range indexes {
		cell, err := t.Cell(source, i)
		if err != nil {
			log.Debug("related cell out of bound", "source", source, "index", i)
			continue
		}
		log.Debug("related cell",
			"source", source,
			"index", i,
			"capacity", cell.Capacity,
			"type", cell.Type,
			"data_len", len(cell.Data),
		)
	}
}
