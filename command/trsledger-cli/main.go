// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/trsledger/command/trsledger-cli/rpccalls"
	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/rpc"
)

type metadata struct {
	connect string
	timeout time.Duration
	verbose bool
	client  *rpccalls.Client
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "trsledger-cli"
	app.Usage = "query and update a trsledgerd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " trsledgerd host/IP and port, `HOST:PORT`",
			EnvVar: "TRSLEDGER_CONNECT",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Value: rpccalls.DefaultCallTimeout,
			Usage: " wait at most `DURATION` for each reply",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "mint",
			Usage:     "mint a new collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Usage: "*collection name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Usage: " collection description `STRING`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 1,
					Usage: " number of assets `COUNT`",
				},
				cli.StringFlag{
					Name:  "creator, u",
					Usage: "*creator user `ID`",
				},
				cli.StringSliceFlag{
					Name:  "attribute, a",
					Usage: " extra attribute `TRAIT=VALUE`, may be repeated",
				},
			},
			Action: runMint,
		},
		{
			Name:      "owner",
			Usage:     "current owner of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "trs, t",
					Usage: "*asset `TRS_ID`",
				},
			},
			Action: runOwner,
		},
		{
			Name:      "wallet",
			Usage:     "assets held by a user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user, u",
					Usage: "*user `ID`",
				},
				cli.StringFlag{
					Name:  "collection, n",
					Usage: " only this collection `NAME`",
				},
			},
			Action: runWallet,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to another user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "trs, t",
					Usage: "*asset `TRS_ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Usage: " only if this is still the owner `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Usage: "*new owner `ID`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "collection",
			Usage:     "collection details and attributes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Usage: "*collection `NAME`",
				},
			},
			Action: runCollection,
		},
		{
			Name:      "buy",
			Usage:     "record a purchase",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "trs, t",
					Usage: "*asset `TRS_ID`",
				},
				cli.StringFlag{
					Name:  "buyer, b",
					Usage: "*buyer `ID`",
				},
				cli.StringFlag{
					Name:  "seller, s",
					Usage: "*seller `ID`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Usage: "*price `DECIMAL`",
				},
				cli.IntFlag{
					Name:  "number, n",
					Value: 1,
					Usage: " quantity `COUNT`",
				},
				cli.StringFlag{
					Name:  "reference, r",
					Usage: " buyer transaction number `STRING`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "transaction",
			Usage:     "show a purchase",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "number, n",
					Usage: "*transaction `NUMBER`",
				},
			},
			Action: runTransaction,
		},
		{
			Name:      "set-status",
			Usage:     "move a purchase to its next status",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "number, n",
					Usage: "*transaction `NUMBER`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Usage: "*new status `STATUS` [approved|finished]",
				},
			},
			Action: runSetStatus,
		},
		{
			Name:      "approved",
			Usage:     "list purchases of a buyer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Usage: "*buyer `ID`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Usage: " list this status instead `STATUS` [initiated|approved|finished]",
				},
			},
			Action: runApproved,
		},
		{
			Name:      "approve",
			Usage:     "approve every initiated purchase of a buyer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Usage: "*buyer `ID`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "finish",
			Usage:     "finish every approved purchase of a buyer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Usage: "*buyer `ID`",
				},
			},
			Action: runFinish,
		},
		{
			Name:   "info",
			Usage:  "display trsledgerd status",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display trsledger-cli version",
			Action: runVersion,
		},
	}

	// set the connection for all commands
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")
		connect := c.GlobalString("connect")

		if verbose {
			fmt.Fprintf(e, "connect: %q\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			timeout: c.GlobalDuration("timeout"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// close any connection opened by a command
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.client {
			return nil
		}
		m.client.Close()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s  status: %d\n", err, rpc.StatusCode(fault.Lookup(err.Error())))
		os.Exit(1)
	}
}
