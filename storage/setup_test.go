// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/fixtures"
	"github.com/bitmark-inc/trsledger/mocks"
	"github.com/bitmark-inc/trsledger/storage"
)

var errRefused = errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

func testCredentials(t *testing.T) storage.Credentials {
	return storage.Credentials{
		Driver:   storage.SQLite,
		Database: filepath.Join(t.TempDir(), "test.db"),
	}
}

func openDB(t *testing.T, c storage.Credentials) *sqlx.DB {
	dsn, err := c.DSN()
	require.NoError(t, err, "dsn")
	db, err := sqlx.Open(storage.SQLite, dsn)
	require.NoError(t, err, "open")
	return db
}

// counting credential source
func countingCredentials(c storage.Credentials, reads *int64) storage.CredentialSource {
	return func() (storage.Credentials, error) {
		atomic.AddInt64(reads, 1)
		return c, nil
	}
}

func TestEnsureConnectedGivesUpAfterAttempts(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	reads := int64(0)

	connector := mocks.NewMockConnector(ctl)
	connector.EXPECT().Connect(gomock.Any(), c).Return(nil, errRefused).Times(5)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: countingCredentials(c, &reads),
		Attempts:    5,
		Delay:       time.Millisecond,
	})

	assert.False(t, s.EnsureConnected(context.Background()), "wrong connection result")
	assert.False(t, s.IsConnected(), "wrong state")
	assert.Equal(t, int64(5), atomic.LoadInt64(&reads), "credentials not read for every attempt")
}

func TestEnsureConnectedSucceedsOnThirdAttempt(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	db := openDB(t, c)

	connector := mocks.NewMockConnector(ctl)
	gomock.InOrder(
		connector.EXPECT().Connect(gomock.Any(), c).Return(nil, errRefused),
		connector.EXPECT().Connect(gomock.Any(), c).Return(nil, errRefused),
		connector.EXPECT().Connect(gomock.Any(), c).Return(db, nil),
	)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(c),
		Attempts:    5,
	})
	defer s.Close()

	assert.True(t, s.EnsureConnected(context.Background()), "wrong connection result")
	assert.True(t, s.IsConnected(), "wrong state")
	assert.Equal(t, storage.SQLite, s.Driver(), "wrong driver")

	// already connected, no further attempt
	assert.True(t, s.EnsureConnected(context.Background()), "wrong connection result")
}

func TestEnsureConnectedStopsOnCancel(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	connector := mocks.NewMockConnector(ctl)
	connector.EXPECT().Connect(gomock.Any(), c).Return(nil, errRefused).Times(1)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(c),
		Attempts:    5,
		Delay:       time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.False(t, s.EnsureConnected(ctx), "wrong connection result")
}

func TestReady(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	connector := mocks.NewMockConnector(ctl)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(c),
		Attempts:    2,
	})
	defer s.Close()

	// could not reconnect
	connector.EXPECT().Connect(gomock.Any(), c).Return(nil, errRefused).Times(2)
	err := s.Ready(context.Background())
	assert.Equal(t, fault.ErrServiceUnavailable, err, "wrong unavailable error")
	assert.True(t, fault.IsErrUnavailable(err), "wrong error class")

	// reconnected, the request must be resubmitted
	connector.EXPECT().Connect(gomock.Any(), c).Return(openDB(t, c), nil).Times(1)
	err = s.Ready(context.Background())
	assert.Equal(t, fault.ErrRequestInvalidated, err, "wrong stale error")
	assert.True(t, fault.IsErrStale(err), "wrong error class")

	// connected
	assert.Nil(t, s.Ready(context.Background()), "wrong ready result")
}

func TestConnectFailure(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	connector := mocks.NewMockConnector(ctl)
	connector.EXPECT().Connect(gomock.Any(), c).Return(nil, errRefused).Times(1)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(c),
	})

	err := s.Connect(context.Background(), c)
	assert.True(t, fault.IsErrUnavailable(err), "wrong error class")
	assert.Contains(t, err.Error(), "connection refused", "driver message lost")
	assert.False(t, s.IsConnected(), "wrong state")
}

func TestCloseIsIdempotent(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	connector := mocks.NewMockConnector(ctl)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(c),
	})

	// never opened
	assert.Nil(t, s.Close(), "close of unopened store")

	connector.EXPECT().Connect(gomock.Any(), c).Return(openDB(t, c), nil).Times(1)
	require.NoError(t, s.Connect(context.Background(), c), "connect")

	assert.Nil(t, s.Close(), "first close")
	assert.Nil(t, s.Close(), "second close")
	assert.False(t, s.IsConnected(), "wrong state")

	// closed stores do not reconnect
	assert.Equal(t, fault.ErrNotConnected, s.Ready(context.Background()), "wrong ready result")
}

func TestQueryConnectionLoss(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	connector := mocks.NewMockConnector(ctl)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(c),
		Attempts:    1,
	})
	defer s.Close()

	connector.EXPECT().Connect(gomock.Any(), c).Return(openDB(t, c), nil).Times(1)
	require.NoError(t, s.Connect(context.Background(), c), "connect")

	lost := func(context.Context, sqlx.ExtContext) error {
		return driver.ErrBadConn
	}

	// reconnect works
	connector.EXPECT().Connect(gomock.Any(), c).Return(openDB(t, c), nil).Times(1)
	err := s.Query(context.Background(), "lost", lost)
	assert.Equal(t, fault.ErrRequestInvalidated, err, "wrong error after reconnect")
	assert.True(t, s.IsConnected(), "not reconnected")

	// reconnect fails
	connector.EXPECT().Connect(gomock.Any(), c).Return(nil, errRefused).Times(1)
	err = s.Query(context.Background(), "lost", lost)
	assert.Equal(t, fault.ErrServiceUnavailable, err, "wrong error after failed reconnect")
	assert.False(t, s.IsConnected(), "wrong state")
}

func TestQueryErrorClasses(t *testing.T) {
	fixtures.SetupTestLogger(t)

	s := fixtures.OpenStore(t)
	ctx := context.Background()

	err := s.Query(ctx, "timeout", func(context.Context, sqlx.ExtContext) error {
		return context.DeadlineExceeded
	})
	assert.Equal(t, fault.ErrStatementTimeout, err, "wrong timeout error")

	err = s.Query(ctx, "fault", func(context.Context, sqlx.ExtContext) error {
		return fault.ErrUserNotFound
	})
	assert.Equal(t, fault.ErrUserNotFound, err, "fault error changed")

	err = s.Query(ctx, "syntax", func(ctx context.Context, db sqlx.ExtContext) error {
		_, err := db.ExecContext(ctx, "SELEKT 1")
		return err
	})
	assert.True(t, fault.IsErrProcess(err), "wrong class for: %v", err)

	fixtures.AddUsers(t, s, "u1")
	err = s.Query(ctx, "duplicate", func(ctx context.Context, db sqlx.ExtContext) error {
		_, err := db.ExecContext(ctx, db.Rebind("INSERT INTO users (user_id) VALUES (?)"), "u1")
		return err
	})
	assert.True(t, fault.IsErrConstraint(err), "wrong class for: %v", err)
	assert.True(t, s.IsConnected(), "constraint error must not disconnect")
}

func TestTransactRollsBack(t *testing.T) {
	fixtures.SetupTestLogger(t)

	s := fixtures.OpenStore(t)
	ctx := context.Background()

	insert := func(ctx context.Context, tx *sqlx.Tx, user string) error {
		_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO users (user_id) VALUES (?)"), user)
		return err
	}

	err := s.Transact(ctx, "rollback", func(ctx context.Context, tx *sqlx.Tx) error {
		if err := insert(ctx, tx, "u1"); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	})
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error")

	err = s.Transact(ctx, "commit", func(ctx context.Context, tx *sqlx.Tx) error {
		return insert(ctx, tx, "u2")
	})
	assert.Nil(t, err, "commit error")

	var users []string
	err = s.Query(ctx, "list", func(ctx context.Context, db sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, db, &users, "SELECT user_id FROM users ORDER BY user_id")
	})
	require.NoError(t, err, "list users")
	assert.Equal(t, []string{"u2"}, users, "wrong users after rollback")
}

func TestCreateTablesTwice(t *testing.T) {
	fixtures.SetupTestLogger(t)

	s := fixtures.OpenStore(t)
	assert.Nil(t, s.CreateTables(context.Background()), "second create")
	assert.Equal(t, []string{"users", "collections", "collection_data", "trs", "transactions"}, storage.Tables(), "wrong table order")
}
