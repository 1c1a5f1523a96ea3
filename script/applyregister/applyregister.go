// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package applyregister validates transactions touching ApplyRegisterCells,
// the commit phase of the commit-reveal registration.
package applyregister

import (
	"github.com/dasnames/dascore/config"
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/dataparser"
	"github.com/dasnames/dascore/log"
	"github.com/dasnames/dascore/oracle"
	"github.com/dasnames/dascore/script"
	"github.com/dasnames/dascore/tx"
	"github.com/dasnames/dascore/witness"
)

// Run validates the transaction against the ApplyRegisterCell type script
// identified by self. It terminates at the first broken invariant with a
// coded error.
func Run(t *tx.Transaction, self das.Script) (err error) {
	log.Debug("running apply-register-cell-type")

	parser := witness.NewParser(t)
	actionData, err := parser.Action()
	if err != nil {
		return err
	}
	action := string(actionData.Action)
	defer func() { script.CountOutcome(action, err) }()

	switch action {
	case script.ActionApplyRegister:
		return applyRegister(t, self)
	case script.ActionPreRegister:
		return delegate(t, parser, tx.SourceOutput)
	case script.ActionRefundPreRegister:
		return delegate(t, parser, tx.SourceInput)
	default:
		return das.Errorf(das.CodeActionNotSupported, "action not supported: %q", action)
	}
}

func applyRegister(t *tx.Transaction, self das.Script) error {
	log.Debug("route to apply_register action")

	// Consuming an ApplyRegisterCell is not allowed here, and only one can
	// be created at a time.
	oldCells := t.FindCellsByScript(tx.ScriptTypeType, self, tx.SourceInput)
	newCells := t.FindCellsByScript(tx.ScriptTypeType, self, tx.SourceOutput)
	if len(oldCells) != 0 || len(newCells) != 1 {
		return das.Errorf(das.CodeApplyRegisterFoundInvalidTransaction,
			"there should be only one ApplyRegisterCell in the outputs (inputs: %d, outputs: %d)",
			len(oldCells), len(newCells))
	}

	cell, err := t.Cell(tx.SourceOutput, newCells[0])
	if err != nil {
		return err
	}
	if len(cell.Data) != das.ApplyRegisterCellDataLength {
		return das.Errorf(das.CodeInvalidCellData,
			"ApplyRegisterCell data must be exactly %d bytes (len: %d)",
			das.ApplyRegisterCellDataLength, len(cell.Data))
	}
	if _, err := dataparser.ApplyRegisterCellHash(cell.Data); err != nil {
		return err
	}
	applyHeight, err := dataparser.ApplyRegisterCellHeight(cell.Data)
	if err != nil {
		return err
	}

	// The height in the cell must match the height oracle exactly.
	current, err := oracle.Height(t)
	if err != nil {
		return err
	}
	if applyHeight != current {
		return das.Errorf(das.CodeApplyRegisterCellHeightInvalid,
			"ApplyRegisterCell height should be %d, but %d found", current, applyHeight)
	}
	return nil
}

// delegate admits the transaction when the PreAccountCell type script shows
// up in the given source; detailed verification belongs to that script.
func delegate(t *tx.Transaction, parser *witness.Parser, source tx.Source) error {
	log.Debug("route to delegated action", "source", source)

	configs, err := config.Resolve(t, parser)
	if err != nil {
		return err
	}
	main, err := configs.Main()
	if err != nil {
		return err
	}
	return script.RequireTypeScript(t, main.TypeIDTable.PreAccountCell, source,
		das.CodePreRegisterFoundInvalidTransaction)
}
