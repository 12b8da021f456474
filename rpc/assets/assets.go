// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/mint"
	"github.com/bitmark-inc/trsledger/ownership"
	"github.com/bitmark-inc/trsledger/rpc/ratelimit"
)

const (
	rateLimitAssets = 200
	rateBurstAssets = ownership.MaximumBatchCount
)

// Assets - type for the RPC
type Assets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ownership.Ledger
	Issuer  mint.Issuer
}

// New - create assets RPC handler
func New(log *logger.L, ledger ownership.Ledger, issuer mint.Issuer) *Assets {
	return &Assets{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Ledger:  ledger,
		Issuer:  issuer,
	}
}

// Assets mint
// -----------

// MintArguments - a new collection
type MintArguments struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Count       int                    `json:"count"`
	Creator     string                 `json:"creator"`
	Attributes  []collection.Attribute `json:"attributes"`
}

// MintReply - identifiers of every asset in the collection
type MintReply struct {
	Collection string   `json:"collection"`
	TrsIds     []string `json:"trsIds"`
}

// Mint - mint a collection and record its assets, repeating a mint
// for an existing collection returns the recorded assets
func (assets *Assets) Mint(arguments *MintArguments, reply *MintReply) error {
	if err := ratelimit.LimitN(assets.Limiter, arguments.Count, ownership.MaximumBatchCount); nil != err {
		return err
	}

	request := mint.Request{
		Title:       arguments.Title,
		Description: arguments.Description,
		Count:       arguments.Count,
		Creator:     arguments.Creator,
	}

	assets.Log.Infof("mint: %q  count: %d  creator: %q", request.Title, request.Count, request.Creator)

	ids, err := assets.Issuer.Issue(context.Background(), request, arguments.Attributes)
	if nil != err {
		assets.Log.Warnf("mint: %q  error: %s", request.Title, err)
		return err
	}

	reply.Collection = request.Title
	reply.TrsIds = ids
	return nil
}

// Assets owner
// ------------

// OwnerArguments - one asset
type OwnerArguments struct {
	TrsId string `json:"trsId"`
}

// OwnerReply - the current owner
type OwnerReply struct {
	TrsId string `json:"trsId"`
	Owner string `json:"owner"`
}

// Owner - current owner of an asset
func (assets *Assets) Owner(arguments *OwnerArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if "" == arguments.TrsId {
		return fault.ErrMissingParameters
	}

	owner, err := assets.Ledger.GetOwner(context.Background(), arguments.TrsId)
	if nil != err {
		return err
	}

	reply.TrsId = arguments.TrsId
	reply.Owner = owner
	return nil
}

// Assets transfer
// ---------------

// TransferArguments - move an asset to a new owner
//
// when Owner is given the transfer only happens while it is still the
// current owner
type TransferArguments struct {
	TrsId    string `json:"trsId"`
	Owner    string `json:"owner"`
	NewOwner string `json:"newOwner"`
}

// TransferReply - the owner after the transfer
type TransferReply struct {
	TrsId string `json:"trsId"`
	Owner string `json:"owner"`
}

// Transfer - change the owner of an asset
func (assets *Assets) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if "" == arguments.TrsId || "" == arguments.NewOwner {
		return fault.ErrMissingParameters
	}

	ctx := context.Background()

	var err error
	if "" == arguments.Owner {
		err = assets.Ledger.Transfer(ctx, arguments.NewOwner, arguments.TrsId)
	} else {
		err = assets.Ledger.TransferFrom(ctx, arguments.TrsId, arguments.Owner, arguments.NewOwner)
	}
	if nil != err {
		assets.Log.Warnf("transfer: %s  to: %q  error: %s", arguments.TrsId, arguments.NewOwner, err)
		return err
	}

	reply.TrsId = arguments.TrsId
	reply.Owner = arguments.NewOwner
	return nil
}

// Assets wallet
// -------------

// WalletArguments - a user and an optional collection filter
type WalletArguments struct {
	UserId     string `json:"userId"`
	Collection string `json:"collection"`
}

// WalletReply - everything the user holds
type WalletReply struct {
	UserId   string              `json:"userId"`
	Holdings []ownership.Holding `json:"holdings"`
}

// Wallet - list the assets held by a user
func (assets *Assets) Wallet(arguments *WalletArguments, reply *WalletReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if "" == arguments.UserId {
		return fault.ErrMissingParameters
	}

	ctx := context.Background()

	var holdings []ownership.Holding
	var err error
	if "" == arguments.Collection {
		holdings, err = assets.Ledger.Wallet(ctx, arguments.UserId)
	} else {
		holdings, err = assets.Ledger.WalletByCollection(ctx, arguments.UserId, arguments.Collection)
	}
	if nil != err {
		return err
	}

	reply.UserId = arguments.UserId
	reply.Holdings = holdings
	return nil
}
