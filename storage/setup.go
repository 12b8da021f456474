// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/jmoiron/sqlx"

	"github.com/bitmark-inc/trsledger/fault"
)

// defaults for the reconnect policy and statement timeout
const (
	DefaultAttempts = 5
	DefaultDelay    = 3 * time.Second
	DefaultTimeout  = 10 * time.Second
)

// ReconnectConfiguration - reconnect policy from the configuration file
type ReconnectConfiguration struct {
	Attempts int    `gluamapper:"attempts" json:"attempts"`
	Delay    string `gluamapper:"delay" json:"delay"`
}

// Options - construction parameters for a Supervisor
type Options struct {
	Connector   Connector
	Credentials CredentialSource
	Attempts    int           // reconnect attempts before giving up
	Delay       time.Duration // fixed pause between attempts
	Timeout     time.Duration // per operation statement timeout
}

// Supervisor - owns the pool and its connected state
type Supervisor struct {
	log         *logger.L
	connector   Connector
	credentials CredentialSource
	attempts    int
	delay       time.Duration
	timeout     time.Duration

	// serialises reconnect attempts
	reconnect sync.Mutex

	// protects the fields below
	sync.RWMutex
	db        *sqlx.DB
	driver    string
	connected bool
	closed    bool
}

// New - create a disconnected supervisor
//
// zero Attempts or Timeout select the defaults, Delay is used as given
func New(options Options) *Supervisor {
	s := &Supervisor{
		log:         logger.New("storage"),
		connector:   options.Connector,
		credentials: options.Credentials,
		attempts:    options.Attempts,
		delay:       options.Delay,
		timeout:     options.Timeout,
	}
	if s.attempts <= 0 {
		s.attempts = DefaultAttempts
	}
	if s.delay < 0 {
		s.delay = 0
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	return s
}

// Connect - establish the pool with the given credentials
func (s *Supervisor) Connect(ctx context.Context, credentials Credentials) error {
	db, err := s.connector.Connect(ctx, credentials)
	if nil != err {
		s.Lock()
		s.connected = false
		s.Unlock()

		s.log.Errorf("connect to: %s  error: %s", credentials, err)
		if fault.IsFault(err) {
			return err
		}
		return fault.Connection(err)
	}

	s.Lock()
	previous := s.db
	s.db = db
	s.driver = credentials.Driver
	s.connected = true
	s.closed = false
	s.Unlock()

	if nil != previous {
		if err := previous.Close(); nil != err {
			s.log.Warnf("close previous pool error: %s", err)
		}
	}

	s.log.Infof("successfully connected to the database: %s", credentials)
	return nil
}

// EnsureConnected - true if a connection is, or becomes, available
//
// when disconnected, make up to the configured number of attempts
// with a fixed delay between them, reading the credentials again for
// each attempt
func (s *Supervisor) EnsureConnected(ctx context.Context) bool {
	if s.IsConnected() {
		return true
	}

	s.reconnect.Lock()
	defer s.reconnect.Unlock()

	// another caller may have reconnected while this one waited
	if s.IsConnected() {
		return true
	}
	if s.isClosed() {
		return false
	}

	for attempt := 1; attempt <= s.attempts; attempt += 1 {
		credentials, err := s.credentials()
		if nil == err {
			err = s.Connect(ctx, credentials)
			if nil == err {
				return true
			}
		}
		s.log.Errorf("connection attempt: %d of: %d failed: %s", attempt, s.attempts, err)

		if attempt == s.attempts {
			break
		}
		s.log.Warnf("trying again in: %s", s.delay)
		select {
		case <-ctx.Done():
			s.log.Warnf("reconnect abandoned: %s", ctx.Err())
			return false
		case <-time.After(s.delay):
		}
	}
	return false
}

// Ready - guard run before every operation
//
// when disconnected the reconnect policy runs, a successful reconnect
// still fails the request so the caller resubmits it as a whole
func (s *Supervisor) Ready(ctx context.Context) error {
	if s.IsConnected() {
		return nil
	}
	if s.isClosed() {
		return fault.ErrNotConnected
	}

	s.log.Critical("no database connection")
	if s.EnsureConnected(ctx) {
		return fault.ErrRequestInvalidated
	}
	return fault.ErrServiceUnavailable
}

// Ping - health check, a failure marks the connection as lost
func (s *Supervisor) Ping(ctx context.Context) error {
	db := s.handle()
	if nil == db {
		return fault.ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := db.PingContext(ctx); nil != err {
		s.log.Errorf("ping error: %s", err)
		s.disconnected()
		return fault.Connection(err)
	}
	return nil
}

// IsConnected - current state
func (s *Supervisor) IsConnected() bool {
	s.RLock()
	defer s.RUnlock()
	return s.connected && nil != s.db
}

// Driver - driver of the current pool
func (s *Supervisor) Driver() string {
	s.RLock()
	defer s.RUnlock()
	return s.driver
}

// Close - release the pool, safe to call when already closed
//
// no reconnect is attempted after Close until Connect is called again
func (s *Supervisor) Close() error {
	s.Lock()
	db := s.db
	s.db = nil
	s.connected = false
	s.closed = true
	s.Unlock()

	if nil == db {
		return nil
	}
	err := db.Close()
	if nil != err {
		s.log.Errorf("close error: %s", err)
		return err
	}
	s.log.Info("database connection closed")
	return nil
}

func (s *Supervisor) handle() *sqlx.DB {
	s.RLock()
	defer s.RUnlock()
	return s.db
}

func (s *Supervisor) isClosed() bool {
	s.RLock()
	defer s.RUnlock()
	return s.closed
}

func (s *Supervisor) disconnected() {
	s.Lock()
	s.connected = false
	s.Unlock()
}
