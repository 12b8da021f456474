// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/trsledger/configuration"
	"github.com/bitmark-inc/trsledger/fault"
)

type databaseSection struct {
	Driver  string `gluamapper:"driver"`
	Name    string `gluamapper:"name"`
	Timeout string `gluamapper:"timeout"`
}

type testConfiguration struct {
	DataDirectory string          `gluamapper:"data_directory"`
	Database      databaseSection `gluamapper:"database"`
	Listen        []string        `gluamapper:"listen"`
	Attempts      int             `gluamapper:"attempts"`
	Untouched     string          `gluamapper:"untouched"`
}

const configText = `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.database = {
    driver = "sqlite",
    name = "ledger.db",
    timeout = os.getenv("TRS_TEST_TIMEOUT") or "10s",
}
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.attempts = 2 + 3
if arg[1] then
    M.database.name = arg[1]
end
return M
`

func writeFile(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "trsledgerd.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, configText)
	t.Setenv("TRS_TEST_TIMEOUT", "4s")

	c := testConfiguration{
		Untouched: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	require.NoError(t, err, "parse")

	assert.Equal(t, filepath.Dir(fileName)+"/", c.DataDirectory, "wrong data directory")
	assert.Equal(t, "sqlite", c.Database.Driver, "wrong driver")
	assert.Equal(t, "ledger.db", c.Database.Name, "wrong name")
	assert.Equal(t, "4s", c.Database.Timeout, "environment not read")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen, "wrong listen")
	assert.Equal(t, 5, c.Attempts, "wrong attempts")
	assert.Equal(t, "default", c.Untouched, "default overwritten")
}

func TestParseConfigurationFileArguments(t *testing.T) {
	fileName := writeFile(t, configText)

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c, "other.db")
	require.NoError(t, err, "parse")
	assert.Equal(t, "other.db", c.Database.Name, "argument not passed")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	var c testConfiguration

	err := configuration.ParseConfigurationFile(writeFile(t, "return 42"), &c)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non table accepted")

	err = configuration.ParseConfigurationFile(writeFile(t, "return {"), &c)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile(writeFile(t, configText), c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &c)
	assert.NotNil(t, err, "missing file accepted")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/ledger.pid", configuration.EnsureAbsolute("/data", "ledger.pid"), "relative not joined")
	assert.Equal(t, "/run/ledger.pid", configuration.EnsureAbsolute("/data", "/run/ledger.pid"), "absolute changed")
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data/", "./log/"), "not cleaned")
}
