// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/fault"
)

// CreateAssets - record a minted collection and its assets, all owned
// by the creator
//
// collection, attributes and ownership rows are written in a single
// transaction. Replaying a batch that was already recorded returns the
// existing identifiers.
func (l *ledger) CreateAssets(ctx context.Context, batch Batch) ([]string, error) {
	if batch.Count < 1 || batch.Count > MaximumBatchCount {
		return nil, fault.ErrInvalidCount
	}
	if "" == batch.CreatorId || "" == batch.CollectionName || "" == batch.MintAddress {
		return nil, fault.ErrMissingParameters
	}
	if err := collection.ValidateAttributes(batch.Attributes); nil != err {
		return nil, err
	}

	// lookups run before the transaction opens, a single connection
	// pool cannot serve them while the transaction holds it
	if err := l.requireUser(ctx, batch.CreatorId); nil != err {
		return nil, err
	}

	ids, done, err := l.replay(ctx, batch)
	if done || nil != err {
		return ids, err
	}

	ids = newTrsIds(batch.Count)

	c := collection.Collection{
		Name:                batch.CollectionName,
		TrsId:               ids[0],
		MintAddress:         batch.MintAddress,
		TokenAccountAddress: batch.TokenAccountAddress,
		CreatorId:           batch.CreatorId,
	}

	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{
			UserId:         batch.CreatorId,
			TrsId:          id,
			CollectionName: batch.CollectionName,
			CreatorId:      batch.CreatorId,
		}
	}

	err = l.store.Transact(ctx, "create assets", func(ctx context.Context, tx *sqlx.Tx) error {
		if err := l.collections.Insert(ctx, tx, c, batch.Attributes); nil != err {
			return err
		}
		return l.recordOwnership(ctx, tx, entries)
	})

	// a concurrent request may have recorded the same batch first
	if fault.IsErrConstraint(err) {
		ids, done, replayErr := l.replay(ctx, batch)
		if done || nil != replayErr {
			return ids, replayErr
		}
	}
	if nil != err {
		return nil, err
	}

	l.log.Infof("created: %d assets  collection: %q  creator: %q", len(ids), batch.CollectionName, batch.CreatorId)
	return ids, nil
}

// replay - done is true if the collection already exists, either with
// identical data (ids returned) or conflicting data (error returned)
//
// a batch with a different count conflicts, the recorded assets are
// never topped up or trimmed
func (l *ledger) replay(ctx context.Context, batch Batch) ([]string, bool, error) {
	existing, err := l.collections.Get(ctx, batch.CollectionName)
	if fault.IsErrNotFound(err) {
		return nil, false, nil
	}
	if nil != err {
		return nil, true, err
	}

	if existing.CreatorId != batch.CreatorId ||
		existing.MintAddress != batch.MintAddress ||
		existing.TokenAccountAddress != batch.TokenAccountAddress {
		l.log.Warnf("collection: %q exists with different data", batch.CollectionName)
		return nil, true, fault.ErrCollectionExists
	}

	ids, err := l.Assets(ctx, batch.CollectionName)
	if nil != err {
		return nil, true, err
	}
	if len(ids) != batch.Count {
		l.log.Warnf("collection: %q has: %d assets  batch count: %d", batch.CollectionName, len(ids), batch.Count)
		return nil, true, fault.ErrCollectionExists
	}
	l.log.Infof("replayed collection: %q  assets: %d", batch.CollectionName, len(ids))
	return ids, true, nil
}

// RecordOwnership - bulk insert of ownership rows in one transaction
func (l *ledger) RecordOwnership(ctx context.Context, entries []Entry) error {
	if 0 == len(entries) {
		return nil
	}
	if len(entries) > MaximumBatchCount {
		return fault.ErrInvalidCount
	}
	for _, e := range entries {
		if "" == e.UserId || "" == e.TrsId || "" == e.CollectionName || "" == e.CreatorId {
			return fault.ErrMissingParameters
		}
	}

	return l.store.Transact(ctx, "record ownership", func(ctx context.Context, tx *sqlx.Tx) error {
		return l.recordOwnership(ctx, tx, entries)
	})
}

func (l *ledger) recordOwnership(ctx context.Context, tx *sqlx.Tx, entries []Entry) error {
	stmt, err := tx.PreparexContext(ctx, tx.Rebind(
		"INSERT INTO trs (trs_id, user_id, collection_name, creator) VALUES (?, ?, ?, ?)"))
	if nil != err {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.TrsId, e.UserId, e.CollectionName, e.CreatorId); nil != err {
			l.log.Errorf("record ownership: %q  owner: %q  error: %s", e.TrsId, e.UserId, err)
			return err
		}
	}
	return nil
}
