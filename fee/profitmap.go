// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fee

import (
	"github.com/dasnames/dascore/das"
)

// ProfitMap accumulates the capacity owed to each beneficiary lock. Keys are
// the canonical lock encodings.
type ProfitMap map[string]uint64

// NewProfitMap creates an empty profit map.
func NewProfitMap() ProfitMap {
	return make(ProfitMap)
}

// Add accrues capacity to a lock.
func (m ProfitMap) Add(lock das.Script, capacity uint64) {
	m[lock.Key()] += capacity
}

// Get returns the capacity owed to a lock.
func (m ProfitMap) Get(lock das.Script) (uint64, bool) {
	v, ok := m[lock.Key()]
	return v, ok
}

// Remove deletes a lock's entry.
func (m ProfitMap) Remove(lock das.Script) {
	delete(m, lock.Key())
}

// Len returns the number of beneficiaries.
func (m ProfitMap) Len() int {
	return len(m)
}

// Sum returns the total capacity across all beneficiaries.
func (m ProfitMap) Sum() uint64 {
	var total uint64
	for _, v := range m {
		total += v
	}
	return total
}
