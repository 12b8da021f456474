// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/mint"
	"github.com/bitmark-inc/trsledger/ownership"
	"github.com/bitmark-inc/trsledger/rpc/assets"
	"github.com/bitmark-inc/trsledger/rpc/collections"
	"github.com/bitmark-inc/trsledger/rpc/node"
	"github.com/bitmark-inc/trsledger/rpc/transactions"
	"github.com/bitmark-inc/trsledger/transaction"
)

// Handles - the components behind the services
type Handles struct {
	Ledger      ownership.Ledger
	Collections collection.Registry
	Workflow    transaction.Workflow
	Issuer      mint.Issuer
	Store       node.Store
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *atomic.Uint64, handles Handles) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, handles.Ledger, handles.Issuer))
	_ = server.Register(collections.New(log, handles.Collections))
	_ = server.Register(transactions.New(log, handles.Workflow))
	_ = server.Register(node.New(log, start, version, rpcCount, handles.Store))

	return server
}
