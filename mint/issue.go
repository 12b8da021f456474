// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"context"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/ownership"
	"github.com/bitmark-inc/trsledger/user"
)

// attribute names recorded for every minted collection
const (
	TraitDescription = "description"
	TraitNumber      = "number"
	TraitCreator     = "creator"
)

// Issuer - mints a collection once and records its assets
type Issuer interface {
	Issue(ctx context.Context, request Request, extra []collection.Attribute) ([]string, error)
}

type issuer struct {
	log         *logger.L
	minter      Minter
	ledger      ownership.Ledger
	collections collection.Registry
	users       user.Directory
}

// NewIssuer - issuer using the given collaborators
func NewIssuer(minter Minter, ledger ownership.Ledger, collections collection.Registry, users user.Directory) Issuer {
	return &issuer{
		log:         logger.New("issue"),
		minter:      minter,
		ledger:      ledger,
		collections: collections,
		users:       users,
	}
}

// Issue - mint and record a new collection
//
// a collection that already exists is not minted again, its assets
// are returned instead
func (i *issuer) Issue(ctx context.Context, request Request, extra []collection.Attribute) ([]string, error) {
	if "" == request.Title || "" == request.Creator {
		return nil, fault.ErrMissingParameters
	}
	if request.Count < 1 || request.Count > ownership.MaximumBatchCount {
		return nil, fault.ErrInvalidCount
	}

	// checked before minting, a batch the ledger rejects afterwards
	// leaves an unrecorded token on chain
	attributes := []collection.Attribute{
		{TraitType: TraitDescription, Value: request.Description},
		{TraitType: TraitNumber, Value: strconv.Itoa(request.Count)},
		{TraitType: TraitCreator, Value: request.Creator},
	}
	attributes = append(attributes, extra...)
	if err := collection.ValidateAttributes(attributes); nil != err {
		return nil, err
	}

	existing, err := i.collections.Get(ctx, request.Title)
	if nil == err {
		if existing.CreatorId != request.Creator {
			return nil, fault.ErrCollectionExists
		}
		i.log.Infof("collection: %q already minted", request.Title)
		return i.ledger.Assets(ctx, request.Title)
	}
	if !fault.IsErrNotFound(err) {
		return nil, err
	}

	exists, err := i.users.Exists(ctx, request.Creator)
	if nil != err {
		return nil, err
	}
	if !exists {
		return nil, fault.ErrUserNotFound
	}

	result, err := i.minter.Mint(ctx, request)
	if nil != err {
		return nil, err
	}

	ids, err := i.ledger.CreateAssets(ctx, ownership.Batch{
		CreatorId:           request.Creator,
		CollectionName:      request.Title,
		MintAddress:         result.MintAddress,
		TokenAccountAddress: result.TokenAccountAddress,
		Count:               request.Count,
		Attributes:          attributes,
	})
	if nil != err {
		// the token exists on chain but not in the ledger
		fault.Criticalf("collection: %q  mint address: %s  not recorded: %s", request.Title, result.MintAddress, err)
		return nil, err
	}
	return ids, nil
}
