// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/background"
	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/mint"
	"github.com/bitmark-inc/trsledger/ownership"
	"github.com/bitmark-inc/trsledger/rpc/listeners"
	"github.com/bitmark-inc/trsledger/rpc/server"
	"github.com/bitmark-inc/trsledger/storage"
	"github.com/bitmark-inc/trsledger/transaction"
	"github.com/bitmark-inc/trsledger/user"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// optional env file, the environment wins over its values
	if "" != theConfiguration.EnvFile {
		if err := storage.LoadEnvironmentFile(theConfiguration.EnvFile); nil != err {
			log.Criticalf("env file: %q  error: %s", theConfiguration.EnvFile, err)
			exitwithstatus.Message("env file: %q  error: %s", theConfiguration.EnvFile, err)
		}
	}

	// durations were validated with the configuration
	delay, _ := storage.ParseDuration(theConfiguration.Reconnect.Delay, storage.DefaultDelay)
	timeout, _ := storage.ParseDuration(theConfiguration.Database.Timeout, storage.DefaultTimeout)
	healthInterval, _ := storage.ParseDuration(theConfiguration.Database.HealthInterval, storage.DefaultHealthInterval)
	cacheExpiry, _ := storage.ParseDuration(theConfiguration.CollectionCache.Expiry, collection.DefaultExpiry)

	// start the data storage
	log.Info("initialise storage")
	connector, err := storage.NewConnector(theConfiguration.Database.Pool)
	if nil != err {
		log.Criticalf("storage connector error: %s", err)
		exitwithstatus.Message("storage connector error: %s", err)
	}

	store := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.EnvironmentCredentials(theConfiguration.credentials()),
		Attempts:    theConfiguration.Reconnect.Attempts,
		Delay:       delay,
		Timeout:     timeout,
	})
	if !store.EnsureConnected(context.Background()) {
		log.Critical("could not connect to the database")
		exitwithstatus.Message("could not connect to the database")
	}
	defer store.Close()

	if theConfiguration.Database.CreateTables {
		if err := store.CreateTables(context.Background()); nil != err {
			log.Criticalf("create tables error: %s", err)
			exitwithstatus.Message("create tables error: %s", err)
		}
	}

	// these commands are allowed to access the store
	if len(arguments) > 0 && processDataCommand(log, arguments, store) {
		return
	}

	// ledger components
	users := user.New(store)
	collections := collection.New(store, cacheExpiry)
	ledger := ownership.New(store, users, collections)
	workflow := transaction.New(store)

	minter, err := mint.NewScriptMinter(theConfiguration.Mint)
	if nil != err {
		log.Criticalf("mint program error: %s", err)
		exitwithstatus.Message("mint program error: %s", err)
	}
	issuer := mint.NewIssuer(minter, ledger, collections, users)

	// start up the rpc listener
	var rpcCount atomic.Uint64
	rpcServer := server.Create(logger.New("rpc"), version, &rpcCount, server.Handles{
		Ledger:      ledger,
		Collections: collections,
		Workflow:    workflow,
		Issuer:      issuer,
		Store:       store,
	})

	rpcListener, err := listeners.NewRPC(&theConfiguration.ClientRPC, logger.New("client_rpc"), &rpcCount, rpcServer)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	if err := rpcListener.Listen(); nil != err {
		log.Criticalf("rpc listen error: %s", err)
		exitwithstatus.Message("rpc listen error: %s", err)
	}

	processes := background.Processes{
		storage.NewHealthCheck(store, healthInterval),
		rpcListener,
	}

	var reloaded <-chan struct{}
	if "" != theConfiguration.EnvFile {
		watcher, err := storage.NewEnvironmentWatcher(theConfiguration.EnvFile)
		if nil != err {
			log.Criticalf("env file watch error: %s", err)
			exitwithstatus.Message("env file watch error: %s", err)
		}
		reloaded = watcher.Reloaded()
		processes = append(processes, watcher)
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

wait:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if 0 == len(options["quiet"]) {
				fmt.Printf("\nreceived signal: %v\n", sig)
				fmt.Printf("\nshutting down…\n")
			}
			break wait

		case <-reloaded:
			log.Infof("credentials reloaded at: %s  next reconnect uses them", time.Now().UTC().Format(time.RFC3339))
		}
	}

	log.Info("shutting down…")
}
