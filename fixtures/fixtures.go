// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/trsledger/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// LogFile - written by the logger SetupTestLogger starts
var LogFile = filepath.Join(dir, LogCategory+".log")

// SetupTestLogger - file logger for a single test, finalised by the
// first cleanup registered so it outlives every later one
func SetupTestLogger(t *testing.T) {
	t.Helper()

	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      filepath.Base(LogFile),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	t.Cleanup(TeardownTestLogger)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// OpenStore - connected supervisor over a fresh SQLite file with all
// tables created, closed when the test ends
func OpenStore(t *testing.T) *storage.Supervisor {
	t.Helper()

	connector, err := storage.NewConnector(storage.PoolConfiguration{})
	require.NoError(t, err, "connector")

	credentials := storage.Credentials{
		Driver:   storage.SQLite,
		Database: filepath.Join(t.TempDir(), "ledger.db"),
	}

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(credentials),
		Attempts:    1,
	})

	ctx := context.Background()
	require.NoError(t, s.Connect(ctx, credentials), "connect")
	require.NoError(t, s.CreateTables(ctx), "create tables")

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// AddUsers - insert user rows directly
func AddUsers(t *testing.T, s *storage.Supervisor, users ...string) {
	t.Helper()

	err := s.Query(context.Background(), "fixture users", func(ctx context.Context, db sqlx.ExtContext) error {
		for _, u := range users {
			if _, err := db.ExecContext(ctx, db.Rebind("INSERT INTO users (user_id) VALUES (?)"), u); nil != err {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err, "add users")
}
