// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:generate mockgen -source=connector.go -destination=../mocks/connector.go -package=mocks

// Connector - opens a pool for a set of credentials
type Connector interface {
	Connect(context.Context, Credentials) (*sqlx.DB, error)
}

// PoolConfiguration - connection pool sizing from the configuration file
type PoolConfiguration struct {
	MaximumOpenConnections int    `gluamapper:"maximum_open_connections" json:"maximum_open_connections"`
	MaximumIdleConnections int    `gluamapper:"maximum_idle_connections" json:"maximum_idle_connections"`
	ConnectionLifetime     string `gluamapper:"connection_lifetime" json:"connection_lifetime"`
	ConnectionIdleTime     string `gluamapper:"connection_idle_time" json:"connection_idle_time"`
}

// defaults for pool sizing
const (
	defaultMaximumOpenConnections = 10
	defaultMaximumIdleConnections = 2
	defaultConnectionLifetime     = time.Hour
	defaultConnectionIdleTime     = 30 * time.Minute
)

func init() {
	// modernc registers as "sqlite" which sqlx does not know
	sqlx.BindDriver(SQLite, sqlx.QUESTION)
}

type sqlConnector struct {
	openConnections int
	idleConnections int
	lifetime        time.Duration
	idleTime        time.Duration
}

// NewConnector - a connector applying the pool configuration to every new pool
func NewConnector(configuration PoolConfiguration) (Connector, error) {
	c := &sqlConnector{
		openConnections: defaultMaximumOpenConnections,
		idleConnections: defaultMaximumIdleConnections,
		lifetime:        defaultConnectionLifetime,
		idleTime:        defaultConnectionIdleTime,
	}
	if configuration.MaximumOpenConnections > 0 {
		c.openConnections = configuration.MaximumOpenConnections
	}
	if configuration.MaximumIdleConnections > 0 {
		c.idleConnections = configuration.MaximumIdleConnections
	}

	var err error
	if c.lifetime, err = ParseDuration(configuration.ConnectionLifetime, c.lifetime); nil != err {
		return nil, err
	}
	if c.idleTime, err = ParseDuration(configuration.ConnectionIdleTime, c.idleTime); nil != err {
		return nil, err
	}
	return c, nil
}

// Connect - open and ping a new pool
func (c *sqlConnector) Connect(ctx context.Context, credentials Credentials) (*sqlx.DB, error) {
	driverName, err := credentials.DriverName()
	if nil != err {
		return nil, err
	}
	dsn, err := credentials.DSN()
	if nil != err {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if nil != err {
		return nil, err
	}

	if SQLite == driverName {
		// a single writer, and transactions must not wait on a second connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return db, nil
	}

	db.SetMaxOpenConns(c.openConnections)
	db.SetMaxIdleConns(c.idleConnections)
	db.SetConnMaxLifetime(c.lifetime)
	db.SetConnMaxIdleTime(c.idleTime)
	return db, nil
}

// ParseDuration - empty string gives the default
func ParseDuration(s string, defaultValue time.Duration) (time.Duration, error) {
	if "" == s {
		return defaultValue, nil
	}
	return time.ParseDuration(s)
}
