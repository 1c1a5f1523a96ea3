// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package script holds the plumbing shared by the type-script validators:
// the action registry, cross-cell predicates and debug inspection.
package script

import (
	"github.com/dasnames/dascore/config"
	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/entity"
	"github.com/dasnames/dascore/metrics"
	"github.com/dasnames/dascore/tx"
)

var metricValidations = metrics.CounterVec("validations_total", []string{"action", "outcome"})

// CountOutcome records a finished validator run.
func CountOutcome(action string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	metricValidations.AddWithLabel(1, map[string]string{"action": action, "outcome": outcome})
}

// RequireSystemOn fails when the kill switch in ConfigCellMain is thrown.
func RequireSystemOn(configs *config.Configs) error {
	main, err := configs.Main()
	if err != nil {
		return err
	}
	if main.Status != entity.SystemStatusOn {
		return das.NewError(das.CodeSystemOff, "system is off")
	}
	return nil
}

// RequireTypeScript fails with the given code unless a cell bearing the type
// id is present in the source. Used for delegated actions whose detailed
// verification belongs to a sibling type script.
func RequireTypeScript(t *tx.Transaction, codeHash das.Hash, source tx.Source, code das.ErrorCode) error {
	if len(t.FindCellsByTypeID(codeHash, source)) == 0 {
		return das.Errorf(code, "no cell with the required type script in %v", source)
	}
	return nil
}

// RequireAlwaysSuccessLock fails unless the cell uses the no-op lock.
func RequireAlwaysSuccessLock(cell *tx.Cell) error {
	if cell.Lock.CodeHash != das.AlwaysSuccessCodeHash {
		return das.Errorf(das.CodeCellMustUseAlwaysSuccessLock,
			"cell must use the always-success lock (current: %v)", cell.Lock.CodeHash)
	}
	return nil
}

// RequireCapacityEqual fails unless both cells hold the same capacity.
func RequireCapacityEqual(a, b *tx.Cell) error {
	if a.Capacity != b.Capacity {
		return das.Errorf(das.CodeCellCapacityNotEqual,
			"cell capacity changed (expected: %d, current: %d)", a.Capacity, b.Capacity)
	}
	return nil
}

// RequireLockEqual fails unless both cells carry the same lock script.
func RequireLockEqual(a, b *tx.Cell) error {
	if !a.Lock.Equal(b.Lock) {
		return das.Errorf(das.CodeCellLockNotEqual,
			"cell lock changed (expected: %v, current: %v)", a.Lock, b.Lock)
	}
	return nil
}
