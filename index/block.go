// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"github.com/chainindex/indexd/record"
	"github.com/chainindex/indexd/storage"
)

// RecordBlockHeight - stage the block id to height mapping
func RecordBlockHeight(
	trx storage.Transaction,
	blockID record.BlockID,
	height record.BlockHeight,
) error {
	return trx.Put(storage.Pool.BlockHeights, blockID[:], height.Bytes())
}

// GetBlockHeight - the height visible to this transaction for a block id
//
// second return is false if the block id was never recorded
func GetBlockHeight(
	trx storage.Transaction,
	blockID record.BlockID,
) (record.BlockHeight, bool, error) {
	buffer, err := trx.Get(storage.Pool.BlockHeights, blockID[:])
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}

	height, err := record.BlockHeightFromBytes(buffer)
	if nil != err {
		return 0, false, err
	}
	return height, true, nil
}
