// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package column - the catalog of logical tables in the off-chain index database
//
// Every logical table multiplexed over the shared key-value store is
// identified by one Column tag.  The catalog is closed and append-only:
// an identifier, once assigned, is never reused or renumbered, even for
// columns that are only present under an optional build tag.  This keeps
// previously persisted data readable across software upgrades.
//
// Identifiers 27..50 are reserved for the fault proving columns and are
// only compiled in when the "faultproving" build tag is set.
package column
