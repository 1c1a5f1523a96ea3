// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"github.com/dasnames/dascore/das"
)

// Accounts are released by length over time: short names only become
// registrable once their tier unlocks. Timestamps are unix seconds.
const (
	releaseTierTwoSince   uint64 = 1_627_008_000 // 2021-07-23, names of 9+ chars
	releaseTierThreeSince uint64 = 1_642_032_000 // 2022-01-13, names of 4+ chars
)

func unlockedAccountLength(timestamp uint64) int {
	switch {
	case timestamp >= releaseTierThreeSince:
		return 4
	case timestamp >= releaseTierTwoSince:
		return 9
	default:
		return 10
	}
}

// VerifyAccountCanBeRegistered checks the account's character count against
// the release tier unlocked at the given timestamp.
func VerifyAccountCanBeRegistered(accountChars int, timestamp uint64) error {
	unlocked := unlockedAccountLength(timestamp)
	if accountChars < unlocked {
		return das.Errorf(das.CodeAccountStillCanNotBeRegistered,
			"accounts of %d chars are not released yet (unlocked: >= %d)", accountChars, unlocked)
	}
	return nil
}
