// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package column

import (
	"sort"

	"github.com/bitmark-inc/logger"
)

// Column - tag for one logical table in the shared database
type Column uint32

// all unconditional columns
//
// never renumber, never reuse a value
const (
	// Metadata - housekeeping about the database itself
	Metadata Column = 0

	// GenesisMetadata - progress of genesis import
	GenesisMetadata Column = 1

	// OwnedCoins - key present if owner owns the coin
	OwnedCoins Column = 2

	// TransactionStatus - transaction id to current execution status
	TransactionStatus Column = 3

	// TransactionsByOwnerBlockIdx - all transactions of one owner in execution order
	TransactionsByOwnerBlockIdx Column = 4

	// OwnedMessageIds - key present if owner owns the message
	OwnedMessageIds Column = 5

	// Statistic - named counters about the chain
	Statistic Column = 6

	// BlockIdsToHeights - block id to its height
	BlockIdsToHeights Column = 7

	// ContractsInfo - contract metadata
	ContractsInfo Column = 8

	// OldBlocks - blocks from before the last regenesis
	OldBlocks Column = 9

	// OldBlockConsensus - consensus records from before the last regenesis
	OldBlockConsensus Column = 10

	// OldTransactions - transactions from before the last regenesis
	OldTransactions Column = 11

	// RelayedTransactionStatus - relayed transaction id to layer 1 status
	RelayedTransactionStatus Column = 12

	// SpentMessages - key present if the message has been spent
	SpentMessages Column = 13

	// DaCompressedBlocks - DA compressed block payloads
	DaCompressedBlocks Column = 14

	// temporal registry columns for DA compression
	DaCompressionTemporalRegistryIndex         Column = 15
	DaCompressionTemporalRegistryTimestamps    Column = 16
	DaCompressionTemporalRegistryEvictorCache  Column = 17
	DaCompressionTemporalRegistryAddress       Column = 18
	DaCompressionTemporalRegistryAssetId       Column = 19
	DaCompressionTemporalRegistryContractId    Column = 20
	DaCompressionTemporalRegistryScriptCode    Column = 21
	DaCompressionTemporalRegistryPredicateCode Column = 22

	// CoinBalances - coin balance per owner and asset
	CoinBalances Column = 23

	// MessageBalances - message balance per owner
	MessageBalances Column = 24

	// AssetsInfo - asset metadata
	AssetsInfo Column = 25

	// CoinsToSpend - coins available to spend
	CoinsToSpend Column = 26
)

// name of every column compiled into this build
//
// extended by init in the fault proving file when that build tag is set
var names = map[Column]string{
	Metadata:                    "Metadata",
	GenesisMetadata:             "GenesisMetadata",
	OwnedCoins:                  "OwnedCoins",
	TransactionStatus:           "TransactionStatus",
	TransactionsByOwnerBlockIdx: "TransactionsByOwnerBlockIdx",
	OwnedMessageIds:             "OwnedMessageIds",
	Statistic:                   "Statistic",
	BlockIdsToHeights:           "BlockIdsToHeights",
	ContractsInfo:               "ContractsInfo",
	OldBlocks:                   "OldBlocks",
	OldBlockConsensus:           "OldBlockConsensus",
	OldTransactions:             "OldTransactions",
	RelayedTransactionStatus:    "RelayedTransactionStatus",
	SpentMessages:               "SpentMessages",
	DaCompressedBlocks:          "DaCompressedBlocks",

	DaCompressionTemporalRegistryIndex:         "DaCompressionTemporalRegistryIndex",
	DaCompressionTemporalRegistryTimestamps:    "DaCompressionTemporalRegistryTimestamps",
	DaCompressionTemporalRegistryEvictorCache:  "DaCompressionTemporalRegistryEvictorCache",
	DaCompressionTemporalRegistryAddress:       "DaCompressionTemporalRegistryAddress",
	DaCompressionTemporalRegistryAssetId:       "DaCompressionTemporalRegistryAssetId",
	DaCompressionTemporalRegistryContractId:    "DaCompressionTemporalRegistryContractId",
	DaCompressionTemporalRegistryScriptCode:    "DaCompressionTemporalRegistryScriptCode",
	DaCompressionTemporalRegistryPredicateCode: "DaCompressionTemporalRegistryPredicateCode",

	CoinBalances:    "CoinBalances",
	MessageBalances: "MessageBalances",
	AssetsInfo:      "AssetsInfo",
	CoinsToSpend:    "CoinsToSpend",
}

// ID - the numeric identifier of a column
func (c Column) ID() uint32 {
	return uint32(c)
}

// String - the stable name of a column
//
// an identifier outside the catalog is a programming error
func (c Column) String() string {
	name, ok := names[c]
	if !ok {
		logger.Panicf("column: identifier outside the catalog: %d", uint32(c))
	}
	return name
}

// ByName - reverse lookup for configuration and pool binding
func ByName(name string) (Column, bool) {
	for c, n := range names {
		if n == name {
			return c, true
		}
	}
	return Column(0), false
}

// Count - total number of columns compiled into this build
func Count() int {
	return len(names)
}

// All - every column of this build in ascending identifier order
//
// read-only enumeration for diagnostics, the catalog itself never changes
func All() []Column {
	all := make([]Column, 0, len(names))
	for c := range names {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
