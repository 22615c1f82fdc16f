// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/chainindex/indexd/column"
	"github.com/chainindex/indexd/configuration"
	"github.com/chainindex/indexd/fault"
	"github.com/chainindex/indexd/index"
	"github.com/chainindex/indexd/record"
	"github.com/chainindex/indexd/storage"
)

// enumerate the column catalog, no database access required
func runColumns(c *cli.Context, globals globalFlags) error {
	for _, col := range column.All() {
		fmt.Printf("%3d  %s\n", col.ID(), col.String())
	}
	fmt.Printf("total: %d columns in this build\n", column.Count())
	return nil
}

// open the database read-only and report the statistics
func runStats(c *cli.Context, globals globalFlags) error {
	err := openDatabase(globals)
	if nil != err {
		return err
	}
	defer storage.Finalise()

	version, err := storage.Version()
	if nil != err {
		return err
	}
	fmt.Printf("schema version: 0x%x\n", version)

	count, err := index.TotalTxCount()
	if nil != err {
		return err
	}
	fmt.Printf("%s: %d\n", index.TxCountName, count)
	return nil
}

// list the owned-transaction index entries of one owner
func runOwned(c *cli.Context, globals globalFlags) error {
	if 1 != len(c.Args()) {
		return fault.CannotDecodeAddress
	}

	var owner record.Address
	err := owner.UnmarshalText([]byte(c.Args().Get(0)))
	if nil != err {
		return err
	}

	err = openDatabase(globals)
	if nil != err {
		return err
	}
	defer storage.Finalise()

	owned, err := index.OwnedTransactions(owner, c.Int("count"))
	if nil != err {
		return err
	}

	for _, e := range owned {
		fmt.Printf("height: %6d  index: %3d  tx: %s\n", e.BlockHeight, e.TxIdx, e.TxID)
	}
	if globals.verbose {
		fmt.Printf("total: %d entries\n", len(owned))
	}
	return nil
}

// read the configuration, start logging and open the database read-only
func openDatabase(globals globalFlags) error {
	config, err := configuration.Read(globals.config)
	if nil != err {
		return err
	}

	err = logger.Initialise(config.Logging)
	if nil != err {
		return err
	}

	return storage.Initialise(config.Database, storage.ReadOnly)
}
