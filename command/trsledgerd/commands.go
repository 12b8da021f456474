// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/storage"
	"github.com/bitmark-inc/trsledger/user"
)

// setup command handler
//
// commands that need neither the configuration file nor the store
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "create-tables", "tables", "add-user", "user":
		return false // defer processing until the store is connected

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  create-tables              (tables) - create any missing tables and exit\n")
		fmt.Printf("\n")

		fmt.Printf("  add-user USER...           (user)   - add users to the directory and exit\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the store is connected so these commands can change it
func processDataCommand(log *logger.L, arguments []string, store *storage.Supervisor) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	ctx := context.Background()

	switch command {

	case "start", "run":
		return false // continue processing

	case "create-tables", "tables":
		if err := store.CreateTables(ctx); nil != err {
			log.Criticalf("create tables error: %s", err)
			exitwithstatus.Message("create tables error: %s", err)
		}
		fmt.Printf("tables: %v\n", storage.Tables())

	case "add-user", "user":
		if 0 == len(arguments) {
			exitwithstatus.Message("missing user argument")
		}
		users := user.New(store)
		for _, u := range arguments {
			if err := users.Add(ctx, u); nil != err {
				exitwithstatus.Message("add user: %q  error: %s", u, err)
			}
			fmt.Printf("added user: %q\n", u)
		}

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}
