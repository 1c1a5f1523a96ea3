// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode stable numeric error code returned to the host when validation
// fails. Off-chain clients parse these numerics to localise failures, so
// existing values must never be reused; new codes are appended.
type ErrorCode int

// The error code registry.
const (
	CodeIndexOutOfBound    ErrorCode = 1
	CodeItemMissing        ErrorCode = 2
	CodeLengthNotEnough    ErrorCode = 3
	CodeEncoding           ErrorCode = 4
	CodeActionNotSupported ErrorCode = 5
	CodeSystemOff          ErrorCode = 6
	CodeInvalidCellData    ErrorCode = 7

	CodeCellMustUseAlwaysSuccessLock ErrorCode = 8
	CodeCellCapacityNotEqual         ErrorCode = 9
	CodeCellLockNotEqual             ErrorCode = 10
	CodeOracleCellNotFound           ErrorCode = 11
	CodeConfigCellNotFound           ErrorCode = 12
	CodeConfigEntityMissing          ErrorCode = 13

	CodeWitnessEnvelopeInvalid         ErrorCode = 20
	CodeWitnessActionNotFound          ErrorCode = 21
	CodeWitnessEntityMissing           ErrorCode = 22
	CodeWitnessEntityDecodingError     ErrorCode = 23
	CodeAccountStillCanNotBeRegistered ErrorCode = 24

	CodeApplyRegisterFoundInvalidTransaction ErrorCode = 30
	CodeApplyRegisterCellHeightInvalid       ErrorCode = 31

	CodePreRegisterFoundInvalidTransaction ErrorCode = 40

	CodeProposalFoundInvalidTransaction            ErrorCode = 50
	CodeProposalSlicesCanNotBeEmpty                ErrorCode = 51
	CodeProposalSliceMustContainMoreThanOneElement ErrorCode = 52
	CodeProposalSliceItemMustBeUniqueAccount       ErrorCode = 53
	CodeProposalSliceIsDiscontinuity               ErrorCode = 54
	CodeProposalSliceIsNotSorted                   ErrorCode = 55
	CodeProposalCellTypeError                      ErrorCode = 56
	CodeProposalCellAccountIdError                 ErrorCode = 57
	CodeProposalSliceRelatedCellMissing            ErrorCode = 58
	CodeProposalSliceRelatedCellNotFound           ErrorCode = 59
	CodeProposalSliceMustStartWithAccountCell      ErrorCode = 60
	CodeProposalSliceNotEndCorrectly               ErrorCode = 61
	CodeProposalFieldCanNotBeModified              ErrorCode = 62
	CodeProposalConfirmNewAccountCellDataError     ErrorCode = 63
	CodeProposalConfirmNewAccountCellCapacityError ErrorCode = 64
	CodeProposalConfirmAccountLockArgsIsInvalid    ErrorCode = 65
	CodeProposalConfirmWitnessIDError              ErrorCode = 66
	CodeProposalConfirmWitnessAccountError         ErrorCode = 67
	CodeProposalConfirmWitnessManagerError         ErrorCode = 68
	CodeProposalConfirmIncomeError                 ErrorCode = 69
	CodeProposalConfirmRefundError                 ErrorCode = 70
	CodeProposalRecycleNeedWaitLonger              ErrorCode = 71
	CodePrevProposalItemNotFound                   ErrorCode = 72
)

// Error a validation failure carrying a stable numeric code.
type Error struct {
	code  ErrorCode
	msg   string
	cause error
}

// NewError creates a coded error.
func NewError(code ErrorCode, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Errorf creates a coded error with a formatted message.
func Errorf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// WrapError creates a coded error wrapping its cause.
func WrapError(code ErrorCode, cause error, msg string) *Error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Error implements error.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (code %d): %s", e.msg, e.code, e.cause)
	}
	return fmt.Sprintf("%s (code %d)", e.msg, e.code)
}

// Code returns the numeric code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the numeric code from err. Errors without a code map to 0,
// which is never a valid rejection code.
func CodeOf(err error) ErrorCode {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return 0
}

// IsCode returns if err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
