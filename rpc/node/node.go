// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/trsledger/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Store - connection state of the ledger store
type Store interface {
	IsConnected() bool
	Driver() string
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Store   Store
	counter *atomic.Uint64
}

// New - create node RPC handler
func New(log *logger.L, start time.Time, version string, counter *atomic.Uint64, store Store) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Store:   store,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version  string    `json:"version"`
	Uptime   string    `json:"uptime"`
	Database StoreInfo `json:"database"`
	RPCs     uint64    `json:"rpcs"`
}

// StoreInfo - ledger store state
type StoreInfo struct {
	Driver    string `json:"driver"`
	Connected bool   `json:"connected"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Database = StoreInfo{
		Driver:    node.Store.Driver(),
		Connected: node.Store.IsConnected(),
	}
	if nil != node.counter {
		reply.RPCs = node.counter.Load()
	}
	return nil
}
