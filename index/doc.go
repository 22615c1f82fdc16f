// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - off-chain index maintenance
//
// Domain operations over the storage pools, expressed against a caller
// supplied storage.Transaction so the caller controls transaction scope
// and commit timing.  The usual pattern is one transaction per block:
// stage every index update for the block, then commit once.
//
// None of these operations retries or suppresses a storage failure; an
// error from the underlying store propagates unchanged.
package index
