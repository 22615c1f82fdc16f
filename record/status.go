// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/chainindex/indexd/fault"
)

// StatusState - which execution state a transaction is in
type StatusState byte

// all possible states
//
// values are persisted, do not renumber
const (
	StatusSubmitted   StatusState = 0x01 // accepted into the pool, not yet executed
	StatusSuccess     StatusState = 0x02 // executed successfully
	StatusFailed      StatusState = 0x03 // executed and reverted
	StatusSqueezedOut StatusState = 0x04 // dropped from the pool before execution
)

// TransactionStatus - the current execution status of one transaction
//
// BlockHeight is only meaningful for Success and Failed,
// Reason only for Failed and SqueezedOut
type TransactionStatus struct {
	State       StatusState
	Timestamp   uint64 // unix seconds
	BlockHeight BlockHeight
	Reason      string
}

// number of bytes before the variable length reason
const statusFixedLength = 1 + 8 + BlockHeightLength

// Pack - serialise a status for storage
//
// layout: state(1) ++ timestamp(8) ++ block height(4) ++ reason(rest)
func (status TransactionStatus) Pack() []byte {
	buffer := make([]byte, statusFixedLength, statusFixedLength+len(status.Reason))
	buffer[0] = byte(status.State)
	binary.BigEndian.PutUint64(buffer[1:9], status.Timestamp)
	binary.BigEndian.PutUint32(buffer[9:13], uint32(status.BlockHeight))
	return append(buffer, status.Reason...)
}

// UnpackTransactionStatus - deserialise a stored status
//
// a failure here indicates either a version mismatch or data corruption
func UnpackTransactionStatus(buffer []byte) (TransactionStatus, error) {
	status := TransactionStatus{}
	if len(buffer) < statusFixedLength {
		return status, fault.CannotDecodeTransactionStatus
	}

	state := StatusState(buffer[0])
	switch state {
	case StatusSubmitted, StatusSuccess, StatusFailed, StatusSqueezedOut:
	default:
		return status, fault.CannotDecodeTransactionStatus
	}

	status.State = state
	status.Timestamp = binary.BigEndian.Uint64(buffer[1:9])
	status.BlockHeight = BlockHeight(binary.BigEndian.Uint32(buffer[9:13]))
	status.Reason = string(buffer[statusFixedLength:])
	return status, nil
}
