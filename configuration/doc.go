// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the configuration file
//
// The configuration file is a Lua script that returns a table; it is
// executed and the resulting table is mapped onto the Configuration
// structure.
package configuration
