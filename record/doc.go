// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - value types stored in the off-chain index database
//
// All key and value encodings are fixed width big endian so that the
// byte order of a packed composite key matches the logical ordering of
// its fields.
package record
