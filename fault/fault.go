// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotConfigured     = InvalidError("account is not configured")
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrBalanceOverflow          = ProcessError("balance overflow")
	ErrBridgePaused             = ProcessError("bridge is paused")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrDatabaseInUse            = ProcessError("database transaction already in use")
	ErrDatabaseNotInUse         = ProcessError("database transaction not in use")
	ErrDerivationDisabled       = ProcessError("address derivation is not configured")
	ErrInsufficientBalance      = ProcessError("insufficient balance")
	ErrInvalidAmount            = InvalidError("invalid amount")
	ErrInvalidCapability        = InvalidError("invalid capability")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidDerivationPath    = InvalidError("invalid derivation path")
	ErrInvalidDerivationSeed    = InvalidError("invalid derivation seed")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidMark              = InvalidError("invalid mark")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidTransactionRef    = InvalidError("invalid transaction reference")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrNoDepositAuth            = AuthorisationError("no deposit auth")
	ErrNoMarkAuth               = AuthorisationError("no mark auth")
	ErrNoRefundAuth             = AuthorisationError("no refund auth")
	ErrNoWithdrawAuth           = AuthorisationError("no withdraw auth")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotPublicKey             = InvalidError("not public key")
	ErrNotRoot                  = AuthorisationError("origin is not root")
	ErrNotSigned                = AuthorisationError("origin is not a signed account")
	ErrPendingWithdrawNotFound  = NotFoundError("pending withdraw not found")
	ErrRecordTruncated          = RecordError("record is truncated")
	ErrRecordUnknownType        = RecordError("record has unknown type")
	ErrRepeatedTransaction      = ExistsError("repeated transaction")
	ErrTransactionNotFound      = NotFoundError("transaction not found")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
