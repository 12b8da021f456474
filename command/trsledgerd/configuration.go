// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/configuration"
	"github.com/bitmark-inc/trsledger/mint"
	"github.com/bitmark-inc/trsledger/rpc/listeners"
	"github.com/bitmark-inc/trsledger/storage"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "trsledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - store location and statement limits, the password only
// ever comes from the environment
type DatabaseType struct {
	Driver         string                    `gluamapper:"driver" json:"driver"`
	Host           string                    `gluamapper:"host" json:"host"`
	User           string                    `gluamapper:"user" json:"user"`
	Name           string                    `gluamapper:"name" json:"name"`
	SSLMode        string                    `gluamapper:"sslmode" json:"sslmode"`
	Timeout        string                    `gluamapper:"timeout" json:"timeout"`
	HealthInterval string                    `gluamapper:"health_interval" json:"health_interval"`
	CreateTables   bool                      `gluamapper:"create_tables" json:"create_tables"`
	Pool           storage.PoolConfiguration `gluamapper:"pool" json:"pool"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory   string                         `gluamapper:"data_directory" json:"data_directory"`
	PidFile         string                         `gluamapper:"pidfile" json:"pidfile"`
	EnvFile         string                         `gluamapper:"env_file" json:"env_file"`
	Database        DatabaseType                   `gluamapper:"database" json:"database"`
	Reconnect       storage.ReconnectConfiguration `gluamapper:"reconnect" json:"reconnect"`
	CollectionCache collection.CacheConfiguration  `gluamapper:"collection_cache" json:"collection_cache"`
	Mint            mint.Configuration             `gluamapper:"mint" json:"mint"`
	ClientRPC       listeners.RPCConfiguration     `gluamapper:"client_rpc" json:"client_rpc"`
	Logging         logger.Configuration           `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		EnvFile:       "", // environment only

		Database: DatabaseType{
			Driver: storage.MySQL,
		},

		Reconnect: storage.ReconnectConfiguration{
			Attempts: storage.DefaultAttempts,
			Delay:    storage.DefaultDelay.String(),
		},

		CollectionCache: collection.CacheConfiguration{
			Expiry: collection.DefaultExpiry.String(),
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Database.Driver = strings.ToLower(options.Database.Driver)
	switch options.Database.Driver {
	case storage.MySQL, storage.Postgres, storage.SQLite:
	default:
		return nil, fmt.Errorf("Driver: %q is not supported", options.Database.Driver)
	}

	// every duration must parse before anything starts
	for _, d := range []struct {
		name  string
		value string
	}{
		{"database.timeout", options.Database.Timeout},
		{"database.health_interval", options.Database.HealthInterval},
		{"database.pool.connection_lifetime", options.Database.Pool.ConnectionLifetime},
		{"database.pool.connection_idle_time", options.Database.Pool.ConnectionIdleTime},
		{"reconnect.delay", options.Reconnect.Delay},
		{"collection_cache.expiry", options.CollectionCache.Expiry},
	} {
		if _, err := storage.ParseDuration(d.value, time.Second); nil != err {
			return nil, fmt.Errorf("%s: %q is not a valid duration", d.name, d.value)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.EnvFile,
	}
	if storage.SQLite == options.Database.Driver {
		optionalAbsolute = append(optionalAbsolute, &options.Database.Name)
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// a bare program name is looked up in PATH
	if strings.ContainsRune(options.Mint.Program, filepath.Separator) {
		options.Mint.Program = configuration.EnsureAbsolute(options.DataDirectory, options.Mint.Program)
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// credentials from the configuration, the environment overrides them
// at every connection attempt
func (c *Configuration) credentials() storage.Credentials {
	return storage.Credentials{
		Driver:   c.Database.Driver,
		Host:     c.Database.Host,
		User:     c.Database.User,
		Database: c.Database.Name,
		SSLMode:  c.Database.SSLMode,
	}
}
