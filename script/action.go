// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

// Recognised action names. The external ABI stays the raw byte string of the
// action witness; dispatchers compare literally.
const (
	ActionApplyRegister     = "apply_register"
	ActionPreRegister       = "pre_register"
	ActionRefundPreRegister = "refund_pre_register"
	ActionPropose           = "propose"
	ActionExtendProposal    = "extend_proposal"
	ActionConfirmProposal   = "confirm_proposal"
	ActionRecycleProposal   = "recycle_proposal"
)
