// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"github.com/chainindex/indexd/record"
	"github.com/chainindex/indexd/storage"
)

// UpdateTxStatus - stage the current execution status of a transaction
//
// returns the status being replaced, nil if this is the first status
// recorded for the id, so a caller can distinguish a fresh record from
// a transition such as submitted to executed
func UpdateTxStatus(
	trx storage.Transaction,
	txID record.TxID,
	status record.TransactionStatus,
) (*record.TransactionStatus, error) {

	prior, err := trx.Replace(storage.Pool.TransactionStatuses, txID[:], status.Pack())
	if nil != err {
		return nil, err
	}
	if nil == prior {
		return nil, nil
	}

	priorStatus, err := record.UnpackTransactionStatus(prior)
	if nil != err {
		return nil, err
	}
	return &priorStatus, nil
}

// TxStatus - the committed status of a transaction
//
// nil if no status was ever recorded
func TxStatus(txID record.TxID) (*record.TransactionStatus, error) {
	buffer, err := storage.Pool.TransactionStatuses.Get(txID[:])
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, nil
	}

	status, err := record.UnpackTransactionStatus(buffer)
	if nil != err {
		return nil, err
	}
	return &status, nil
}
