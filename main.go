// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// indexd-info - administrative tool for the off-chain index database
//
// read-only diagnostics: enumerate the column catalog, show chain
// statistics and list owned-transaction index entries
package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type globalFlags struct {
	verbose bool
	config  string
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "indexd-info"
	app.Usage = "inspect the off-chain index database"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "config, c",
			Value:       "indexd.conf",
			Usage:       "indexd configuration file",
			Destination: &globals.config,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "columns",
			Usage: "enumerate the column catalog of this build",
			Action: func(c *cli.Context) error {
				return runColumns(c, globals)
			},
		},
		{
			Name:  "stats",
			Usage: "show chain statistics",
			Action: func(c *cli.Context) error {
				return runStats(c, globals)
			},
		},
		{
			Name:      "owned",
			Usage:     "list owned transactions for an owner",
			ArgsUsage: "hex-address",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 100,
					Usage: " maximum number of entries",
				},
			},
			Action: func(c *cli.Context) error {
				return runOwned(c, globals)
			},
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}
}
