// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/storage"
	"github.com/bitmark-inc/trsledger/user"
)

//go:generate mockgen -source=ownership.go -destination=../mocks/ownership.go -package=mocks

// MaximumBatchCount - most assets a single batch may create
const MaximumBatchCount = 1000

// Batch - a newly minted collection and the number of assets in it
type Batch struct {
	CreatorId           string                 `json:"creatorId"`
	CollectionName      string                 `json:"collectionName"`
	MintAddress         string                 `json:"mintAddress"`
	TokenAccountAddress string                 `json:"tokenAccountAddress"`
	Count               int                    `json:"count"`
	Attributes          []collection.Attribute `json:"attributes"`
}

// Entry - one ownership row
type Entry struct {
	UserId         string `db:"user_id" json:"userId"`
	TrsId          string `db:"trs_id" json:"trsId"`
	CollectionName string `db:"collection_name" json:"collectionName"`
	CreatorId      string `db:"creator" json:"creatorId"`
}

// Holding - one item of a wallet
type Holding struct {
	TrsId          string `db:"trs_id" json:"trsId"`
	CollectionName string `db:"collection_name" json:"collectionName"`
}

// Ledger - asset ownership records
type Ledger interface {
	CreateAssets(ctx context.Context, batch Batch) ([]string, error)
	RecordOwnership(ctx context.Context, entries []Entry) error
	GetOwner(ctx context.Context, trsId string) (string, error)
	Transfer(ctx context.Context, newUserId string, trsId string) error
	TransferFrom(ctx context.Context, trsId string, currentUserId string, newUserId string) error
	Wallet(ctx context.Context, userId string) ([]Holding, error)
	WalletByCollection(ctx context.Context, userId string, collectionName string) ([]Holding, error)
	Assets(ctx context.Context, collectionName string) ([]string, error)
}

type ledger struct {
	log         *logger.L
	store       storage.Access
	users       user.Directory
	collections collection.Registry
}

// New - ledger over the store
func New(store storage.Access, users user.Directory, collections collection.Registry) Ledger {
	return &ledger{
		log:         logger.New("ownership"),
		store:       store,
		users:       users,
		collections: collections,
	}
}

func (l *ledger) requireUser(ctx context.Context, userId string) error {
	exists, err := l.users.Exists(ctx, userId)
	if nil != err {
		return err
	}
	if !exists {
		return fault.ErrUserNotFound
	}
	return nil
}
