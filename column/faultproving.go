// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// +build faultproving

package column

// merkle backed temporal registry columns, only present in fault proving
// builds
//
// the identifiers stay reserved in every build so that a database written
// by a fault proving build remains readable after upgrade
const (
	DaCompressionTemporalRegistryAddressV2           Column = 27
	DaCompressionTemporalAddressMerkleData           Column = 28
	DaCompressionTemporalAddressMerkleMetadata       Column = 29
	DaCompressionTemporalRegistryAssetIdV2           Column = 30
	DaCompressionTemporalAssetIdMerkleData           Column = 31
	DaCompressionTemporalAssetIdMerkleMetadata       Column = 32
	DaCompressionTemporalRegistryContractIdV2        Column = 33
	DaCompressionTemporalContractIdMerkleData        Column = 34
	DaCompressionTemporalContractIdMerkleMetadata    Column = 35
	DaCompressionTemporalRegistryScriptCodeV2        Column = 36
	DaCompressionTemporalScriptCodeMerkleData        Column = 37
	DaCompressionTemporalScriptCodeMerkleMetadata    Column = 38
	DaCompressionTemporalRegistryPredicateCodeV2     Column = 39
	DaCompressionTemporalPredicateCodeMerkleData     Column = 40
	DaCompressionTemporalPredicateCodeMerkleMetadata Column = 41
	DaCompressionTemporalRegistryIndexV2             Column = 42
	DaCompressionTemporalRegistryIndexMerkleData     Column = 43
	DaCompressionTemporalRegistryIndexMerkleMetadata Column = 44
	DaCompressionTemporalRegistryTimestampsV2        Column = 45
	DaCompressionTemporalTimestampsMerkleData        Column = 46
	DaCompressionTemporalTimestampsMerkleMetadata    Column = 47
	DaCompressionTemporalRegistryEvictorCacheV2      Column = 48
	DaCompressionTemporalEvictorCacheMerkleData      Column = 49
	DaCompressionTemporalEvictorCacheMerkleMetadata  Column = 50
)

func init() {
	names[DaCompressionTemporalRegistryAddressV2] = "DaCompressionTemporalRegistryAddressV2"
	names[DaCompressionTemporalAddressMerkleData] = "DaCompressionTemporalAddressMerkleData"
	names[DaCompressionTemporalAddressMerkleMetadata] = "DaCompressionTemporalAddressMerkleMetadata"
	names[DaCompressionTemporalRegistryAssetIdV2] = "DaCompressionTemporalRegistryAssetIdV2"
	names[DaCompressionTemporalAssetIdMerkleData] = "DaCompressionTemporalAssetIdMerkleData"
	names[DaCompressionTemporalAssetIdMerkleMetadata] = "DaCompressionTemporalAssetIdMerkleMetadata"
	names[DaCompressionTemporalRegistryContractIdV2] = "DaCompressionTemporalRegistryContractIdV2"
	names[DaCompressionTemporalContractIdMerkleData] = "DaCompressionTemporalContractIdMerkleData"
	names[DaCompressionTemporalContractIdMerkleMetadata] = "DaCompressionTemporalContractIdMerkleMetadata"
	names[DaCompressionTemporalRegistryScriptCodeV2] = "DaCompressionTemporalRegistryScriptCodeV2"
	names[DaCompressionTemporalScriptCodeMerkleData] = "DaCompressionTemporalScriptCodeMerkleData"
	names[DaCompressionTemporalScriptCodeMerkleMetadata] = "DaCompressionTemporalScriptCodeMerkleMetadata"
	names[DaCompressionTemporalRegistryPredicateCodeV2] = "DaCompressionTemporalRegistryPredicateCodeV2"
	names[DaCompressionTemporalPredicateCodeMerkleData] = "DaCompressionTemporalPredicateCodeMerkleData"
	names[DaCompressionTemporalPredicateCodeMerkleMetadata] = "DaCompressionTemporalPredicateCodeMerkleMetadata"
	names[DaCompressionTemporalRegistryIndexV2] = "DaCompressionTemporalRegistryIndexV2"
	names[DaCompressionTemporalRegistryIndexMerkleData] = "DaCompressionTemporalRegistryIndexMerkleData"
	names[DaCompressionTemporalRegistryIndexMerkleMetadata] = "DaCompressionTemporalRegistryIndexMerkleMetadata"
	names[DaCompressionTemporalRegistryTimestampsV2] = "DaCompressionTemporalRegistryTimestampsV2"
	names[DaCompressionTemporalTimestampsMerkleData] = "DaCompressionTemporalTimestampsMerkleData"
	names[DaCompressionTemporalTimestampsMerkleMetadata] = "DaCompressionTemporalTimestampsMerkleMetadata"
	names[DaCompressionTemporalRegistryEvictorCacheV2] = "DaCompressionTemporalRegistryEvictorCacheV2"
	names[DaCompressionTemporalEvictorCacheMerkleData] = "DaCompressionTemporalEvictorCacheMerkleData"
	names[DaCompressionTemporalEvictorCacheMerkleMetadata] = "DaCompressionTemporalEvictorCacheMerkleMetadata"
}
