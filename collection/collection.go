// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/jmoiron/sqlx"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/storage"
)

//go:generate mockgen -source=collection.go -destination=../mocks/collection.go -package=mocks

// DefaultExpiry - lifetime of a cached collection
const DefaultExpiry = 10 * time.Minute

// CacheConfiguration - collection cache from the configuration file
type CacheConfiguration struct {
	Expiry string `gluamapper:"expiry" json:"expiry"`
}

// Collection - one minting batch
type Collection struct {
	Name                string `db:"collection_name" json:"name"`
	TrsId               string `db:"trs_id" json:"trsId"`
	MintAddress         string `db:"mint_address" json:"mintAddress"`
	TokenAccountAddress string `db:"token_account_address" json:"tokenAccountAddress"`
	CreatorId           string `db:"creator_id" json:"creatorId"`
}

// Attribute - one collection level metadata row
type Attribute struct {
	TraitType string `db:"trait_type" json:"trait_type"`
	Value     string `db:"value" json:"value"`
}

// ValidateAttributes - every trait named once, none of them blank
func ValidateAttributes(attributes []Attribute) error {
	seen := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		if "" == a.TraitType {
			return fault.ErrMissingParameters
		}
		if _, ok := seen[a.TraitType]; ok {
			return fault.ErrDuplicateTrait
		}
		seen[a.TraitType] = struct{}{}
	}
	return nil
}

// Registry - collection metadata
type Registry interface {
	Get(ctx context.Context, name string) (*Collection, error)
	CollectionData(ctx context.Context, name string) ([]Attribute, error)
	MintAddress(ctx context.Context, name string) (string, error)
	Creator(ctx context.Context, name string) (string, error)
	TokenAccountAddress(ctx context.Context, name string) (string, error)
	Insert(ctx context.Context, tx *sqlx.Tx, c Collection, attributes []Attribute) error
}

type registry struct {
	log   *logger.L
	store storage.Access
	cache *cache.Cache
}

// New - registry over the store, zero expiry selects the default
func New(store storage.Access, expiry time.Duration) Registry {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &registry{
		log:   logger.New("collection"),
		store: store,
		cache: cache.New(expiry, 2*expiry),
	}
}

// Get - a collection by name
//
// rows never change once written so hits are served from the cache,
// misses always go to the store
func (r *registry) Get(ctx context.Context, name string) (*Collection, error) {
	if obj, found := r.cache.Get(name); found {
		c := obj.(Collection)
		return &c, nil
	}

	var c Collection
	err := r.store.Query(ctx, "collection get", func(ctx context.Context, db sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, db, &c, db.Rebind(
			`SELECT collection_name, trs_id, mint_address, token_account_address, creator_id
FROM collections WHERE collection_name = ?`), name)
		if errors.Is(err, sql.ErrNoRows) {
			return fault.ErrCollectionNotFound
		}
		return err
	})
	if nil != err {
		return nil, err
	}

	r.cache.SetDefault(name, c)
	return &c, nil
}

// CollectionData - attribute rows, empty for a collection without any
func (r *registry) CollectionData(ctx context.Context, name string) ([]Attribute, error) {
	if _, err := r.Get(ctx, name); nil != err {
		return nil, err
	}

	attributes := []Attribute{}
	err := r.store.Query(ctx, "collection data", func(ctx context.Context, db sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, db, &attributes, db.Rebind(
			"SELECT trait_type, value FROM collection_data WHERE name = ? ORDER BY trait_type"), name)
	})
	if nil != err {
		return nil, err
	}
	return attributes, nil
}

// MintAddress - on-chain mint of the collection
func (r *registry) MintAddress(ctx context.Context, name string) (string, error) {
	c, err := r.Get(ctx, name)
	if nil != err {
		return "", err
	}
	return c.MintAddress, nil
}

// Creator - user that minted the collection
func (r *registry) Creator(ctx context.Context, name string) (string, error) {
	c, err := r.Get(ctx, name)
	if nil != err {
		return "", err
	}
	return c.CreatorId, nil
}

// TokenAccountAddress - on-chain token account of the collection
func (r *registry) TokenAccountAddress(ctx context.Context, name string) (string, error) {
	c, err := r.Get(ctx, name)
	if nil != err {
		return "", err
	}
	return c.TokenAccountAddress, nil
}

// Insert - write a new collection and its attributes inside the caller's transaction
//
// the primary key on collection_name rejects a second batch with the same name
func (r *registry) Insert(ctx context.Context, tx *sqlx.Tx, c Collection, attributes []Attribute) error {
	if "" == c.Name || "" == c.TrsId || "" == c.CreatorId || "" == c.MintAddress {
		return fault.ErrMissingParameters
	}
	if err := ValidateAttributes(attributes); nil != err {
		return err
	}

	_, err := tx.NamedExecContext(ctx,
		`INSERT INTO collections (collection_name, trs_id, mint_address, token_account_address, creator_id)
VALUES (:collection_name, :trs_id, :mint_address, :token_account_address, :creator_id)`, c)
	if nil != err {
		r.log.Errorf("insert collection: %q  error: %s", c.Name, err)
		return err
	}

	query := tx.Rebind("INSERT INTO collection_data (name, trait_type, value) VALUES (?, ?, ?)")
	for _, a := range attributes {
		if _, err := tx.ExecContext(ctx, query, c.Name, a.TraitType, a.Value); nil != err {
			r.log.Errorf("insert collection: %q  trait: %q  error: %s", c.Name, a.TraitType, err)
			return err
		}
	}

	r.log.Infof("collection: %q  creator: %q  mint: %s", c.Name, c.CreatorId, c.MintAddress)
	return nil
}
