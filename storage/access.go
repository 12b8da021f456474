// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/bitmark-inc/trsledger/fault"
)

// Access - statement execution used by the ledger components
type Access interface {
	Query(ctx context.Context, name string, fn func(context.Context, sqlx.ExtContext) error) error
	Transact(ctx context.Context, name string, fn func(context.Context, *sqlx.Tx) error) error
}

// Query - run fn against the pool outside any transaction
func (s *Supervisor) Query(ctx context.Context, name string, fn func(context.Context, sqlx.ExtContext) error) error {
	if err := s.Ready(ctx); nil != err {
		return err
	}
	db := s.handle()
	if nil == db {
		return fault.ErrServiceUnavailable
	}

	statementCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := fn(statementCtx, db); nil != err {
		return s.failed(ctx, name, err)
	}
	return nil
}

// Transact - run fn inside a single transaction
//
// the transaction commits only if fn returns nil, any error rolls
// back every statement fn issued
func (s *Supervisor) Transact(ctx context.Context, name string, fn func(context.Context, *sqlx.Tx) error) error {
	if err := s.Ready(ctx); nil != err {
		return err
	}
	db := s.handle()
	if nil == db {
		return fault.ErrServiceUnavailable
	}

	statementCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := db.BeginTxx(statementCtx, nil)
	if nil != err {
		return s.failed(ctx, name, err)
	}

	if err := fn(statementCtx, tx); nil != err {
		s.rollback(name, tx)
		return s.failed(ctx, name, err)
	}

	if err := tx.Commit(); nil != err {
		s.rollback(name, tx)
		return s.failed(ctx, name, err)
	}
	return nil
}

func (s *Supervisor) rollback(name string, tx *sqlx.Tx) {
	err := tx.Rollback()
	if nil == err {
		s.log.Debugf("%s: rolled back", name)
	} else if !errors.Is(err, sql.ErrTxDone) {
		s.log.Errorf("%s: rollback error: %s", name, err)
	}
}

// failed - log and translate a driver error into a fault class
func (s *Supervisor) failed(ctx context.Context, name string, err error) error {
	if fault.IsFault(err) {
		s.log.Debugf("%s: %s", name, err)
		return err
	}

	s.log.Errorf("%s: error: %s", name, err)

	// must come first, a deadline error also satisfies net.Error
	if errors.Is(err, context.DeadlineExceeded) {
		return fault.ErrStatementTimeout
	}

	if isConnectionError(err) {
		s.disconnected()
		if s.EnsureConnected(ctx) {
			return fault.ErrRequestInvalidated
		}
		return fault.ErrServiceUnavailable
	}

	if isConstraintError(err) {
		return fault.Constraint(err)
	}
	return fault.Process(err)
}
