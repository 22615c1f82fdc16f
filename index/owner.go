// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"github.com/chainindex/indexd/record"
	"github.com/chainindex/indexd/storage"
)

// marker value for membership pools
var ownedMarker = []byte{0x01}

// RecordTxIDOwner - stage one owned-transaction index entry
//
// the caller must guarantee (owner, height, txIdx) is unique per
// transaction; a repeated key simply overwrites
func RecordTxIDOwner(
	trx storage.Transaction,
	owner record.Address,
	height record.BlockHeight,
	txIdx uint16,
	txID record.TxID,
) error {
	key := record.OwnedTransactionKey(owner, height, txIdx)
	return trx.Put(storage.Pool.OwnedTransactions, key, txID[:])
}

// RecordOwnedCoin - stage ownership of a coin
func RecordOwnedCoin(
	trx storage.Transaction,
	owner record.Address,
	txID record.TxID,
	outputIdx uint16,
) error {
	key := record.OwnedCoinKey(owner, txID, outputIdx)
	return trx.Put(storage.Pool.OwnedCoins, key, ownedMarker)
}

// RemoveOwnedCoin - stage removal of coin ownership after a spend
func RemoveOwnedCoin(
	trx storage.Transaction,
	owner record.Address,
	txID record.TxID,
	outputIdx uint16,
) error {
	key := record.OwnedCoinKey(owner, txID, outputIdx)
	_, err := trx.Delete(storage.Pool.OwnedCoins, key)
	return err
}

// RecordOwnedMessage - stage ownership of a bridged message
func RecordOwnedMessage(
	trx storage.Transaction,
	owner record.Address,
	nonce record.Nonce,
) error {
	key := record.OwnedMessageKey(owner, nonce)
	return trx.Put(storage.Pool.OwnedMessages, key, ownedMarker)
}

// RemoveOwnedMessage - stage removal of message ownership after a spend
func RemoveOwnedMessage(
	trx storage.Transaction,
	owner record.Address,
	nonce record.Nonce,
) error {
	key := record.OwnedMessageKey(owner, nonce)
	_, err := trx.Delete(storage.Pool.OwnedMessages, key)
	return err
}
