// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/trsledger/storage"
)

func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "trsledgerd.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return fileName
}

func TestGetConfigurationSample(t *testing.T) {
	sample, err := os.ReadFile("trsledgerd.conf.sample")
	require.NoError(t, err, "read sample")

	fileName := writeConfiguration(t, string(sample))
	dataDirectory := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.NoError(t, err, "sample configuration")

	assert.Equal(t, filepath.Clean(dataDirectory)+"/", c.DataDirectory, "wrong data directory")
	assert.Equal(t, storage.MySQL, c.Database.Driver, "wrong driver")
	assert.Equal(t, "trs", c.Database.Name, "wrong database")
	assert.True(t, c.Database.CreateTables, "create tables not set")
	assert.Equal(t, 10, c.Database.Pool.MaximumOpenConnections, "wrong pool size")
	assert.Equal(t, 5, c.Reconnect.Attempts, "wrong attempts")
	assert.Equal(t, "3s", c.Reconnect.Delay, "wrong delay")
	assert.Equal(t, "mint-collection", c.Mint.Program, "bare program changed")
	assert.Equal(t, []string{"--cluster", "devnet"}, c.Mint.Arguments, "wrong mint arguments")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, 2, len(c.ClientRPC.Listen), "wrong listen")
	assert.Equal(t, filepath.Join(dataDirectory, ".env"), c.EnvFile, "env file not absolute")
	assert.Equal(t, filepath.Join(dataDirectory, "log"), c.Logging.Directory, "log directory not absolute")

	credentials := c.credentials()
	assert.Equal(t, "127.0.0.1:3306", credentials.Host, "wrong host")
	assert.Equal(t, "", credentials.Password, "password read from configuration")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    database = { driver = "SQLite", name = "ledger.db" },
    mint = { program = "bin/mint" },
    client_rpc = { listen = { "127.0.0.1:2130" } },
}
`)
	dataDirectory := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.NoError(t, err, "configuration")

	assert.Equal(t, storage.SQLite, c.Database.Driver, "driver not lower cased")
	assert.Equal(t, filepath.Join(dataDirectory, "ledger.db"), c.Database.Name, "sqlite file not absolute")
	assert.Equal(t, filepath.Join(dataDirectory, "bin/mint"), c.Mint.Program, "program path not absolute")
	assert.Equal(t, storage.DefaultAttempts, c.Reconnect.Attempts, "wrong default attempts")
	assert.Equal(t, uint64(defaultRPCClients), c.ClientRPC.MaximumConnections, "wrong default connections")
	assert.Equal(t, "", c.PidFile, "pid file set")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		name string
		text string
	}{
		{"driver", `return { data_directory = ".", database = { driver = "oracle" } }`},
		{"duration", `return { data_directory = ".", reconnect = { delay = "soon" } }`},
		{"directory", `return { data_directory = "" }`},
		{"missing", `return { data_directory = "/no/such/directory/here" }`},
		{"log file", `return { data_directory = ".", logging = { file = "a/b.log" } }`},
	}

	for _, item := range items {
		_, err := getConfiguration(writeConfiguration(t, item.text))
		assert.NotNil(t, err, "%s: invalid configuration accepted", item.name)
	}
}
