// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInternal is returned if internal consistency checks fail.  In
	// practice this error should never be seen as it would mean there is an
	// error in the script package.
	ErrInternal ErrorCode = iota

	// ErrInvalidOpcode is used when a value outside of the valid byte range
	// is supplied where an opcode is expected, or when a non-push opcode is
	// handed to a function that only accepts push opcodes.  This indicates a
	// caller bug and is raised through a panic.
	ErrInvalidOpcode

	// ErrInvalidSmallInt is used when a value outside of [0, 16] is encoded
	// as a small integer opcode, or an opcode other than OP_0 and OP_1
	// through OP_16 is decoded as one.  This is raised through a panic.
	ErrInvalidSmallInt

	// ErrMalformedPush is returned when a data push opcode tries to push
	// more bytes than are left in the script.
	ErrMalformedPush

	// ErrNumberTooBig is returned when the byte representation of a script
	// number is larger than the maximum allowed length for the context it
	// is interpreted in.
	ErrNumberTooBig

	// ErrMinimalData is returned when a script number is required to be
	// minimally encoded and it is not.
	ErrMinimalData

	// ErrNumberOverflow is used when arithmetic on script numbers overflows
	// the signed 64-bit range.  Well formed consensus code can never reach
	// it, so it is raised through a panic.
	ErrNumberOverflow

	// ErrBadShortForm is returned when a token in a short form script can
	// not be assembled.
	ErrBadShortForm

	// ErrTooManyWitnessItems is returned when a serialized witness claims
	// more items than can fit in a transaction.
	ErrTooManyWitnessItems

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:            "ErrInternal",
	ErrInvalidOpcode:       "ErrInvalidOpcode",
	ErrInvalidSmallInt:     "ErrInvalidSmallInt",
	ErrMalformedPush:       "ErrMalformedPush",
	ErrNumberTooBig:        "ErrNumberTooBig",
	ErrMinimalData:         "ErrMinimalData",
	ErrNumberOverflow:      "ErrNumberOverflow",
	ErrBadShortForm:        "ErrBadShortForm",
	ErrTooManyWitnessItems: "ErrTooManyWitnessItems",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error.  It is used to indicate three
// classes of errors:
//  1. Malformed script data found while decoding or iterating a script
//  2. Programming contract violations, which are raised through panics
//  3. Failures assembling a textual script
//
// The caller can use type assertions to determine the specific error and
// access the ErrorCode field.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var serr Error
	return errors.As(err, &serr) && serr.ErrorCode == c
}
