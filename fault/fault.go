// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"strings"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConstraintError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StaleError GenericError
type TransitionError GenericError
type UnavailableError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAssetNotFound        = NotFoundError("asset not found")
	ErrCallTimeout          = ProcessError("no reply from the server in time")
	ErrCollectionExists     = ExistsError("collection already exists with different data")
	ErrCollectionNotFound   = NotFoundError("collection not found")
	ErrDuplicateTrait       = InvalidError("attribute trait is reserved or repeated")
	ErrInvalidAmount        = InvalidError("amount must be positive")
	ErrInvalidConfiguration = InvalidError("configuration file did not return a table")
	ErrInvalidCount         = InvalidError("count is out of range")
	ErrInvalidListenAddress = InvalidError("invalid listen address")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStatus        = InvalidError("invalid transaction status")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTransition    = TransitionError("transaction status cannot change to the requested value")
	ErrMintFailed           = ProcessError("minting failed")
	ErrMissingParameters    = InvalidError("missing parameters")
	ErrNotConnected         = UnavailableError("not connected to the database")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrOwnerChanged         = StaleError("asset owner changed by another request, please try again")
	ErrRateLimiting         = InvalidError("rate limiting")
	ErrRequestInvalidated   = StaleError("your request couldn't be processed, please try again")
	ErrServiceUnavailable   = UnavailableError("could not connect to the database, please try later")
	ErrStatementTimeout     = ProcessError("database statement timed out")
	ErrTransactionNotFound  = NotFoundError("transaction not found")
	ErrUnsupportedDriver    = InvalidError("unsupported database driver")
	ErrUserExists           = ExistsError("user already exists")
	ErrUserNotFound         = NotFoundError("user not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConstraintError) Error() string  { return string(e) }
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e StaleError) Error() string       { return string(e) }
func (e TransitionError) Error() string  { return string(e) }
func (e UnavailableError) Error() string { return string(e) }

// determine the class of an error
func IsErrConstraint(e error) bool  { _, ok := e.(ConstraintError); return ok }
func IsErrExists(e error) bool      { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrStale(e error) bool       { _, ok := e.(StaleError); return ok }
func IsErrTransition(e error) bool  { _, ok := e.(TransitionError); return ok }
func IsErrUnavailable(e error) bool { _, ok := e.(UnavailableError); return ok }

// IsFault - true for any error class of this package
func IsFault(e error) bool {
	switch e.(type) {
	case GenericError, ConstraintError, ExistsError, InvalidError, NotFoundError,
		ProcessError, StaleError, TransitionError, UnavailableError:
		return true
	default:
		return false
	}
}

// Constraint - store rejected a statement, keep the driver message
func Constraint(err error) ConstraintError {
	return ConstraintError("constraint violation: " + err.Error())
}

// Connection - store could not be reached, keep the driver message
func Connection(err error) UnavailableError {
	return UnavailableError("connection error: " + err.Error())
}

// Process - unclassified store failure, keep the driver message
func Process(err error) ProcessError {
	return ProcessError("database error: " + err.Error())
}

// messages of every fixed error so a class survives a trip over the
// wire as plain text
var known = []error{
	ErrAlreadyInitialised, ErrAssetNotFound, ErrCallTimeout, ErrCollectionExists,
	ErrCollectionNotFound, ErrDuplicateTrait, ErrInvalidAmount, ErrInvalidConfiguration,
	ErrInvalidCount, ErrInvalidListenAddress, ErrInvalidLoggerChannel, ErrInvalidStatus,
	ErrInvalidStructPointer, ErrInvalidTransition, ErrMintFailed,
	ErrMissingParameters, ErrNotConnected, ErrNotInitialised,
	ErrOwnerChanged, ErrRateLimiting, ErrRequestInvalidated,
	ErrServiceUnavailable, ErrStatementTimeout, ErrTransactionNotFound,
	ErrUnsupportedDriver, ErrUserExists, ErrUserNotFound,
}

// Lookup - recover the classified error from its message
//
// unknown messages give a GenericError
func Lookup(message string) error {
	for _, e := range known {
		if e.Error() == message {
			return e
		}
	}
	switch {
	case strings.HasPrefix(message, "constraint violation: "):
		return ConstraintError(message)
	case strings.HasPrefix(message, "connection error: "):
		return UnavailableError(message)
	case strings.HasPrefix(message, "database error: "):
		return ProcessError(message)
	}
	return GenericError(message)
}
