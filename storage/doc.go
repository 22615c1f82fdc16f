// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk off-chain index store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a single byte prefix that is the numeric
// identifier of its column in the column catalog, so two tables never
// collide in the shared key space even when their unprefixed key bytes
// coincide.
//
// Notes:
// 1. each separate pool has a single byte prefix (the column id)
// 2. ++           = concatenation of byte data
// 3. block height = big endian uint32 (4 bytes)
// 4. tx index     = big endian uint16 (2 bytes)
// 5. txId         = transaction digest (32 bytes)
// 6. owner        = owner account address (32 bytes)
// 7. count        = big endian uint64 (8 bytes)
//
// Metadata (0x00):
//
//   0x00 ++ "VERSION"             - database schema version
//                                   data: big endian uint32
//
// Ownership:
//
//   0x02 ++ owner ++ txId ++ out  - owned coins
//                                   data: 0x01 marker
//   0x04 ++ owner ++ height ++ ix - owned transactions, iterates in
//                                   execution order for one owner
//                                   data: txId
//   0x05 ++ owner ++ nonce        - owned messages
//                                   data: 0x01 marker
//
// Transactions:
//
//   0x03 ++ txId                  - current execution status
//                                   data: packed record.TransactionStatus
//
// Statistics:
//
//   0x06 ++ name                  - named chain statistic
//                                   data: count
//
// Blocks:
//
//   0x07 ++ blockId               - block id to height
//                                   data: big endian uint32
package storage
