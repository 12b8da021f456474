// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - buyer/seller purchase records
//
// a transaction is created by a purchase request and then only moves
// forward through its states:
//
//   initiated ──► approved ──► finished
//
// transactions are never deleted, the table is the audit trail of
// every sale. Each status change is a conditional update from the
// preceding state so two concurrent changes cannot both apply.
package transaction
