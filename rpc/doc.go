// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC access to the ledger and the purchase workflow
//
// the services live in sub-packages and are registered by
// server.Create, standard golang RPC clients with the jsonrpc codec can
// call them:
//
//   Assets.Mint  Assets.Owner  Assets.Transfer  Assets.Wallet
//   Collections.Get  Collections.Data
//   Transactions.Create  Transactions.Get  Transactions.SetStatus
//   Transactions.List  Transactions.Approved  Transactions.Approve
//   Transactions.Finish
//   Node.Info
//
// errors cross the wire as their message only, StatusCode maps a
// (recovered) error to the status a web front end would report
package rpc
