// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bitmark-inc/logger"
	"github.com/jmoiron/sqlx"

	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/storage"
)

//go:generate mockgen -source=user.go -destination=../mocks/user.go -package=mocks

// Directory - existence of users, owned by the user subsystem
type Directory interface {
	Exists(ctx context.Context, userId string) (bool, error)
}

// Store - directory over the users table
type Store struct {
	log   *logger.L
	store storage.Access
}

// New - directory backed by the store
func New(store storage.Access) *Store {
	return &Store{
		log:   logger.New("user"),
		store: store,
	}
}

// Exists - true if the user is known
func (s *Store) Exists(ctx context.Context, userId string) (bool, error) {
	if "" == userId {
		return false, nil
	}

	found := false
	err := s.store.Query(ctx, "user exists", func(ctx context.Context, db sqlx.ExtContext) error {
		var id string
		err := sqlx.GetContext(ctx, db, &id, db.Rebind("SELECT user_id FROM users WHERE user_id = ?"), userId)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if nil != err {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// Add - register a user
func (s *Store) Add(ctx context.Context, userId string) error {
	if "" == userId {
		return fault.ErrMissingParameters
	}

	exists, err := s.Exists(ctx, userId)
	if nil != err {
		return err
	}
	if exists {
		return fault.ErrUserExists
	}

	err = s.store.Query(ctx, "user add", func(ctx context.Context, db sqlx.ExtContext) error {
		_, err := db.ExecContext(ctx, db.Rebind("INSERT INTO users (user_id) VALUES (?)"), userId)
		return err
	})

	// the primary key is the only constraint, a concurrent Add won
	if fault.IsErrConstraint(err) {
		return fault.ErrUserExists
	}
	if nil != err {
		return err
	}
	s.log.Infof("added user: %q", userId)
	return nil
}
