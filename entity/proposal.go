// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package entity

import (
	"github.com/dasnames/dascore/das"
)

// ProposalItemType how a slice item is resolved against the chain.
type ProposalItemType uint8

// Item kinds. Exist is a currently live AccountCell, Proposed is an
// AccountCell promised by a previous proposal in the chain, New is a
// PreAccountCell to be converted.
const (
	ProposalItemTypeExist    ProposalItemType = 0
	ProposalItemTypeProposed ProposalItemType = 1
	ProposalItemTypeNew      ProposalItemType = 2
)

// ProposalItem one insertion step of a slice.
type ProposalItem struct {
	AccountID das.AccountID
	ItemType  ProposalItemType
	Next      das.AccountID
}

// Slice a contiguous batch of items representing one insertion interval of
// the account ring. The first item anchors the interval; the rest are spliced
// between it and its original next in ascending account-id order.
type Slice []ProposalItem

// ProposalCellData the witness entity of a ProposalCell.
type ProposalCellData struct {
	ProposerLock    das.Script
	CreatedAtHeight uint64
	Slices          []Slice
}

// ItemCount returns the total item count across all slices.
func (p *ProposalCellData) ItemCount() int {
	count := 0
	for _, slice := range p.Slices {
		count += len(slice)
	}
	return count
}

// FindItem searches all slices for the first item with the given account id.
func (p *ProposalCellData) FindItem(id das.AccountID) (*ProposalItem, bool) {
	for _, slice := range p.Slices {
		for i := range slice {
			if slice[i].AccountID == id {
				return &slice[i], true
			}
		}
	}
	return nil, false
}

// DecodeProposalCellData decodes the canonical encoding of ProposalCellData.
func DecodeProposalCellData(b []byte) (*ProposalCellData, error) {
	var p ProposalCellData
	if err := decode(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
