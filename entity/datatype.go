// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package entity

import "fmt"

// DataType identifies the schema of a witness entity.
type DataType uint32

// The data type registry. Config data types start at 100 so that cell entity
// types and config types can be told apart without a lookup.
const (
	DataTypeActionData         DataType = 0
	DataTypeAccountCellData    DataType = 1
	DataTypeProposalCellData   DataType = 2
	DataTypePreAccountCellData DataType = 3
	DataTypeIncomeCellData     DataType = 4

	DataTypeConfigCellMain       DataType = 100
	DataTypeConfigCellAccount    DataType = 101
	DataTypeConfigCellApply      DataType = 102
	DataTypeConfigCellProposal   DataType = 103
	DataTypeConfigCellProfitRate DataType = 104
)

// IsConfig returns if the data type belongs to the config range.
func (dt DataType) IsConfig() bool {
	return dt >= DataTypeConfigCellMain
}

// String implements stringer.
func (dt DataType) String() string {
	switch dt {
	case DataTypeActionData:
		return "ActionData"
	case DataTypeAccountCellData:
		return "AccountCellData"
	case DataTypeProposalCellData:
		return "ProposalCellData"
	case DataTypePreAccountCellData:
		return "PreAccountCellData"
	case DataTypeIncomeCellData:
		return "IncomeCellData"
	case DataTypeConfigCellMain:
		return "ConfigCellMain"
	case DataTypeConfigCellAccount:
		return "ConfigCellAccount"
	case DataTypeConfigCellApply:
		return "ConfigCellApply"
	case DataTypeConfigCellProposal:
		return "ConfigCellProposal"
	case DataTypeConfigCellProfitRate:
		return "ConfigCellProfitRate"
	default:
		return fmt.Sprintf("DataType(%d)", uint32(dt))
	}
}
