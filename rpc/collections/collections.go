// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collections

import (
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/rpc/ratelimit"
)

const (
	rateLimitCollections = 200
	rateBurstCollections = 100
)

// Collections - type for the RPC
type Collections struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry collection.Registry
}

// New - create collections RPC handler
func New(log *logger.L, registry collection.Registry) *Collections {
	return &Collections{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitCollections, rateBurstCollections),
		Registry: registry,
	}
}

// Arguments - a collection name
type Arguments struct {
	Name string `json:"name"`
}

// GetReply - the collection row
type GetReply struct {
	Collection collection.Collection `json:"collection"`
}

// Get - mint addresses and creator of a collection
func (collections *Collections) Get(arguments *Arguments, reply *GetReply) error {
	if err := ratelimit.Limit(collections.Limiter); nil != err {
		return err
	}
	if "" == arguments.Name {
		return fault.ErrMissingParameters
	}

	c, err := collections.Registry.Get(context.Background(), arguments.Name)
	if nil != err {
		return err
	}
	reply.Collection = *c
	return nil
}

// DataReply - the collection attributes
type DataReply struct {
	Name       string                 `json:"name"`
	Attributes []collection.Attribute `json:"attributes"`
}

// Data - attributes recorded with a collection
func (collections *Collections) Data(arguments *Arguments, reply *DataReply) error {
	if err := ratelimit.Limit(collections.Limiter); nil != err {
		return err
	}
	if "" == arguments.Name {
		return fault.ErrMissingParameters
	}

	attributes, err := collections.Registry.CollectionData(context.Background(), arguments.Name)
	if nil != err {
		return err
	}
	reply.Name = arguments.Name
	reply.Attributes = attributes
	return nil
}
