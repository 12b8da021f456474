// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/bitmark-inc/trsledger/fault"
)

// GetOwner - current owner of an asset
func (l *ledger) GetOwner(ctx context.Context, trsId string) (string, error) {
	owner := ""
	err := l.store.Query(ctx, "get owner", func(ctx context.Context, db sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, db, &owner, db.Rebind("SELECT user_id FROM trs WHERE trs_id = ?"), trsId)
		if errors.Is(err, sql.ErrNoRows) {
			return fault.ErrAssetNotFound
		}
		return err
	})
	if nil != err {
		return "", err
	}
	return owner, nil
}

// Wallet - every asset a user owns
func (l *ledger) Wallet(ctx context.Context, userId string) ([]Holding, error) {
	if err := l.requireUser(ctx, userId); nil != err {
		return nil, err
	}

	holdings := []Holding{}
	err := l.store.Query(ctx, "wallet", func(ctx context.Context, db sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, db, &holdings, db.Rebind(
			"SELECT trs_id, collection_name FROM trs WHERE user_id = ? ORDER BY collection_name, trs_id"), userId)
	})
	if nil != err {
		return nil, err
	}
	return holdings, nil
}

// WalletByCollection - assets of one collection a user owns
func (l *ledger) WalletByCollection(ctx context.Context, userId string, collectionName string) ([]Holding, error) {
	if err := l.requireUser(ctx, userId); nil != err {
		return nil, err
	}

	holdings := []Holding{}
	err := l.store.Query(ctx, "wallet by collection", func(ctx context.Context, db sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, db, &holdings, db.Rebind(
			"SELECT trs_id, collection_name FROM trs WHERE user_id = ? AND collection_name = ? ORDER BY trs_id"),
			userId, collectionName)
	})
	if nil != err {
		return nil, err
	}
	return holdings, nil
}

// Assets - identifiers of every asset in a collection
func (l *ledger) Assets(ctx context.Context, collectionName string) ([]string, error) {
	ids := []string{}
	err := l.store.Query(ctx, "collection assets", func(ctx context.Context, db sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, db, &ids, db.Rebind(
			"SELECT trs_id FROM trs WHERE collection_name = ? ORDER BY trs_id"), collectionName)
	})
	if nil != err {
		return nil, err
	}
	return ids, nil
}
