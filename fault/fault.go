// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// DataAccessError - the underlying key-value engine failed
	DataAccessError GenericError

	// ExistsError - item already exists
	ExistsError GenericError

	// InvalidError - caller supplied an out of range or malformed parameter
	InvalidError GenericError

	// NotFoundError - item was not found
	NotFoundError GenericError

	// ProcessError - stored data could not be processed
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ExistsError("already initialised")
	CannotDecodeAddress           = ProcessError("cannot decode address")
	CannotDecodeDigest            = ProcessError("cannot decode digest")
	CannotDecodeTransactionStatus = ProcessError("cannot decode transaction status")
	DatabaseIsNotSet              = DataAccessError("database is not set")
	DuplicateColumnBinding        = InvalidError("duplicate column binding")
	InvalidColumnName             = InvalidError("invalid column name")
	InvalidCount                  = InvalidError("invalid count")
	InvalidCursor                 = InvalidError("invalid cursor")
	NotInitialised                = NotFoundError("not initialised")
	TransactionAlreadyCommitted   = ProcessError("transaction already committed")
	TruncatedRecord               = ProcessError("truncated record")
	WrongLengthHexBytes           = InvalidError("wrong length of hex bytes")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e DataAccessError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
