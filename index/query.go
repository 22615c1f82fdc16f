// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"bytes"

	"github.com/chainindex/indexd/record"
	"github.com/chainindex/indexd/storage"
)

// OwnedTransaction - one entry of the owned-transaction index
type OwnedTransaction struct {
	BlockHeight record.BlockHeight
	TxIdx       uint16
	TxID        record.TxID
}

// OwnedCoin - one entry of the owned-coin index
type OwnedCoin struct {
	TxID      record.TxID
	OutputIdx uint16
}

// OwnedTransactions - committed owned-transaction entries for one owner
//
// ordered by (block height, in-block index), at most count entries
func OwnedTransactions(owner record.Address, count int) ([]OwnedTransaction, error) {
	cursor := storage.Pool.OwnedTransactions.NewFetchCursor().Seek(owner[:])

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	results := make([]OwnedTransaction, 0, len(elements))
	for _, e := range elements {
		// keys are sorted, the first foreign key ends this owner's range
		if !bytes.HasPrefix(e.Key, owner[:]) {
			break
		}

		_, height, txIdx, err := record.UnpackOwnedTransactionKey(e.Key)
		if nil != err {
			return nil, err
		}
		txID, err := record.TxIDFromBytes(e.Value)
		if nil != err {
			return nil, err
		}

		results = append(results, OwnedTransaction{
			BlockHeight: height,
			TxIdx:       txIdx,
			TxID:        txID,
		})
	}
	return results, nil
}

// OwnedCoins - committed owned-coin entries for one owner
func OwnedCoins(owner record.Address, count int) ([]OwnedCoin, error) {
	cursor := storage.Pool.OwnedCoins.NewFetchCursor().Seek(owner[:])

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	results := make([]OwnedCoin, 0, len(elements))
	for _, e := range elements {
		if !bytes.HasPrefix(e.Key, owner[:]) {
			break
		}

		_, txID, outputIdx, err := record.UnpackOwnedCoinKey(e.Key)
		if nil != err {
			return nil, err
		}

		results = append(results, OwnedCoin{
			TxID:      txID,
			OutputIdx: outputIdx,
		})
	}
	return results, nil
}

// OwnedMessages - committed owned-message nonces for one owner
func OwnedMessages(owner record.Address, count int) ([]record.Nonce, error) {
	cursor := storage.Pool.OwnedMessages.NewFetchCursor().Seek(owner[:])

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	results := make([]record.Nonce, 0, len(elements))
	for _, e := range elements {
		if !bytes.HasPrefix(e.Key, owner[:]) {
			break
		}

		_, nonce, err := record.UnpackOwnedMessageKey(e.Key)
		if nil != err {
			return nil, err
		}
		results = append(results, nonce)
	}
	return results, nil
}
