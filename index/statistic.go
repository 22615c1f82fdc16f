// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"math"

	"github.com/chainindex/indexd/storage"
)

// TxCountName - statistic key tracking the total number of transactions
// written to the chain, useful for TPS and similar metrics
const TxCountName = "total_tx_count"

// IncreaseTxCount - add to the running transaction count
//
// saturates at the maximum representable value instead of wrapping, the
// count is informational and must never decrease through an increment.
// The read-modify-stage sequence is not isolated from other concurrent
// transactions.
func IncreaseTxCount(trx storage.Transaction, delta uint64) (uint64, error) {
	current, _, err := trx.GetN(storage.Pool.Statistics, []byte(TxCountName))
	if nil != err {
		return 0, err
	}

	newCount := current + delta
	if newCount < current {
		newCount = math.MaxUint64
	}

	err = trx.PutN(storage.Pool.Statistics, []byte(TxCountName), newCount)
	if nil != err {
		return 0, err
	}
	return newCount, nil
}

// GetTxCount - the transaction count visible to this transaction
//
// zero if never initialised
func GetTxCount(trx storage.Transaction) (uint64, error) {
	count, _, err := trx.GetN(storage.Pool.Statistics, []byte(TxCountName))
	return count, err
}

// ResetTxCount - reinitialise the transaction count
//
// only for chain regenesis; regular indexing must never lower the count
func ResetTxCount(trx storage.Transaction, total uint64) error {
	return trx.PutN(storage.Pool.Statistics, []byte(TxCountName), total)
}

// TotalTxCount - the committed transaction count, for diagnostics
func TotalTxCount() (uint64, error) {
	count, _, err := storage.Pool.Statistics.GetN([]byte(TxCountName))
	return count, err
}
