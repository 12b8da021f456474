// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/rpc/assets"
	"github.com/bitmark-inc/trsledger/rpc/collections"
)

// MintData - a collection to mint
type MintData struct {
	Title       string
	Description string
	Count       int
	Creator     string
	Attributes  []collection.Attribute
}

// Mint - mint a collection, repeating it returns the existing assets
func (client *Client) Mint(data *MintData) (*assets.MintReply, error) {
	arguments := assets.MintArguments{
		Title:       data.Title,
		Description: data.Description,
		Count:       data.Count,
		Creator:     data.Creator,
		Attributes:  data.Attributes,
	}
	reply := &assets.MintReply{}
	if err := client.call("Assets.Mint", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Owner - current owner of an asset
func (client *Client) Owner(trsId string) (*assets.OwnerReply, error) {
	reply := &assets.OwnerReply{}
	if err := client.call("Assets.Owner", &assets.OwnerArguments{TrsId: trsId}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move an asset, owner may be blank for an unconditional transfer
func (client *Client) Transfer(trsId string, owner string, newOwner string) (*assets.TransferReply, error) {
	arguments := assets.TransferArguments{
		TrsId:    trsId,
		Owner:    owner,
		NewOwner: newOwner,
	}
	reply := &assets.TransferReply{}
	if err := client.call("Assets.Transfer", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Wallet - assets held by a user, collectionName may be blank
func (client *Client) Wallet(userId string, collectionName string) (*assets.WalletReply, error) {
	arguments := assets.WalletArguments{
		UserId:     userId,
		Collection: collectionName,
	}
	reply := &assets.WalletReply{}
	if err := client.call("Assets.Wallet", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// CollectionInfo - a collection row together with its attributes
type CollectionInfo struct {
	Collection collection.Collection  `json:"collection"`
	Attributes []collection.Attribute `json:"attributes"`
}

// Collection - fetch a collection and its attributes
func (client *Client) Collection(name string) (*CollectionInfo, error) {
	arguments := collections.Arguments{Name: name}

	got := &collections.GetReply{}
	if err := client.call("Collections.Get", &arguments, got); nil != err {
		return nil, err
	}
	data := &collections.DataReply{}
	if err := client.call("Collections.Data", &arguments, data); nil != err {
		return nil, err
	}
	return &CollectionInfo{
		Collection: got.Collection,
		Attributes: data.Attributes,
	}, nil
}
