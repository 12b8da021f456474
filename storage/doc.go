// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - supervised connection pool to the relational store
//
// A Supervisor owns the single logical connection (a sqlx pool) and
// guards every statement:
//
//   connected     - statement runs inside the configured timeout
//   disconnected  - up to Attempts reconnects, Delay apart, then
//                   ErrServiceUnavailable   (could not reconnect)
//                   ErrRequestInvalidated   (reconnected, resubmit)
//
// Tables (see schema.go):
//
//   users            user_id
//   collections      collection_name ⧺ trs_id (seed) ⧺ mint_address ⧺ token_account_address ⧺ creator_id
//   collection_data  name ⧺ trait_type ⧺ value
//   trs              trs_id ⧺ user_id (current owner) ⧺ collection_name ⧺ creator
//   transactions     transaction_number ⧺ buyer_transaction_number ⧺ trs_id ⧺ buyer_id ⧺ seller_id ⧺ amount ⧺ number ⧺ status
package storage
