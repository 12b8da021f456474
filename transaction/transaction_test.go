// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/fixtures"
	"github.com/bitmark-inc/trsledger/ownership"
	"github.com/bitmark-inc/trsledger/transaction"
	"github.com/bitmark-inc/trsledger/user"
)

// workflow over a store holding one asset owned by seller S
func setup(t *testing.T) (transaction.Workflow, string) {
	s := fixtures.OpenStore(t)
	fixtures.AddUsers(t, s, "S", "B", "B2")

	l := ownership.New(s, user.New(s), collection.New(s, 0))
	ids, err := l.CreateAssets(context.Background(), ownership.Batch{
		CreatorId:           "S",
		CollectionName:      "Genesis",
		MintAddress:         "mint-genesis",
		TokenAccountAddress: "account-genesis",
		Count:               1,
	})
	require.NoError(t, err, "create asset")

	return transaction.New(s), ids[0]
}

func request(trsId string, buyer string) transaction.Request {
	return transaction.Request{
		BuyerTransactionNumber: "client-1",
		TrsId:                  trsId,
		BuyerId:                buyer,
		SellerId:               "S",
		Amount:                 decimal.RequireFromString("12.5"),
		Number:                 1,
	}
}

func TestCreateAndGet(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	w, trsId := setup(t)

	seen := map[string]struct{}{}
	for i := 0; i < 10; i += 1 {
		n, err := w.Create(ctx, request(trsId, "B"))
		require.NoError(t, err, "create")
		_, duplicate := seen[n]
		assert.False(t, duplicate, "repeated transaction number: %s", n)
		seen[n] = struct{}{}

		tx, err := w.Get(ctx, n)
		require.NoError(t, err, "get")
		assert.Equal(t, transaction.Initiated, tx.Status, "wrong initial status")
		assert.Equal(t, n, tx.TransactionNumber, "wrong number")
		assert.Equal(t, "client-1", tx.BuyerTransactionNumber, "wrong client number")
		assert.Equal(t, trsId, tx.TrsId, "wrong asset")
		assert.Equal(t, "B", tx.BuyerId, "wrong buyer")
		assert.Equal(t, "S", tx.SellerId, "wrong seller")
		assert.True(t, decimal.RequireFromString("12.5").Equal(tx.Amount), "wrong amount: %s", tx.Amount)
		assert.Equal(t, 1, tx.Number, "wrong quantity")
	}

	_, err := w.Get(ctx, "no-such-transaction")
	assert.Equal(t, fault.ErrTransactionNotFound, err, "wrong missing error")
}

func TestCreateValidation(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	w, trsId := setup(t)

	r := request(trsId, "B")
	r.Amount = decimal.Zero
	_, err := w.Create(ctx, r)
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero amount accepted")

	r = request(trsId, "B")
	r.Amount = decimal.RequireFromString("-1")
	_, err = w.Create(ctx, r)
	assert.Equal(t, fault.ErrInvalidAmount, err, "negative amount accepted")

	r = request(trsId, "B")
	r.Number = 0
	_, err = w.Create(ctx, r)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero quantity accepted")

	r = request(trsId, "")
	_, err = w.Create(ctx, r)
	assert.Equal(t, fault.ErrMissingParameters, err, "missing buyer accepted")

	// references are enforced by the store
	_, err = w.Create(ctx, request("999", "B"))
	assert.True(t, fault.IsErrConstraint(err), "unknown asset accepted: %v", err)

	_, err = w.Create(ctx, request(trsId, "nobody"))
	assert.True(t, fault.IsErrConstraint(err), "unknown buyer accepted: %v", err)
}

func TestSetStatusIsMonotonic(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	w, trsId := setup(t)

	n, err := w.Create(ctx, request(trsId, "B"))
	require.NoError(t, err, "create")

	// cannot skip a state
	assert.Equal(t, fault.ErrInvalidTransition, w.SetStatus(ctx, n, transaction.Finished), "skipped approval")

	assert.Nil(t, w.SetStatus(ctx, n, transaction.Initiated), "same status rejected")
	assert.Nil(t, w.SetStatus(ctx, n, transaction.Approved), "approve rejected")
	assert.Nil(t, w.SetStatus(ctx, n, transaction.Approved), "repeat approve rejected")
	assert.Equal(t, fault.ErrInvalidTransition, w.SetStatus(ctx, n, transaction.Initiated), "moved backwards")
	assert.Nil(t, w.SetStatus(ctx, n, transaction.Finished), "finish rejected")

	for _, back := range []transaction.Status{transaction.Initiated, transaction.Approved} {
		err := w.SetStatus(ctx, n, back)
		assert.Equal(t, fault.ErrInvalidTransition, err, "finished moved to: %s", back)
		assert.True(t, fault.IsErrTransition(err), "wrong class")
	}

	tx, err := w.Get(ctx, n)
	require.NoError(t, err, "get")
	assert.Equal(t, transaction.Finished, tx.Status, "wrong final status")

	assert.Equal(t, fault.ErrTransactionNotFound, w.SetStatus(ctx, "missing", transaction.Approved), "wrong missing error")
	assert.Equal(t, fault.ErrTransactionNotFound, w.SetStatus(ctx, "missing", transaction.Initiated), "wrong missing error")
	assert.Equal(t, fault.ErrInvalidStatus, w.SetStatus(ctx, n, transaction.Status("paid")), "unknown status accepted")
}

func TestApproveThenApproved(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	w, trsId := setup(t)

	n, err := w.Create(ctx, request(trsId, "B"))
	require.NoError(t, err, "create")
	other, err := w.Create(ctx, request(trsId, "B2"))
	require.NoError(t, err, "create other buyer")

	approved, err := w.Approved(ctx, "B")
	assert.Nil(t, err, "approved error")
	assert.Equal(t, 0, len(approved), "initiated transaction reported as approved")

	changed, err := w.ApproveInitiated(ctx, "B")
	assert.Nil(t, err, "approve error")
	assert.Equal(t, int64(1), changed, "wrong approve count")

	approved, err = w.Approved(ctx, "B")
	assert.Nil(t, err, "approved error")
	require.Equal(t, 1, len(approved), "wrong approved count")
	assert.Equal(t, n, approved[0].TransactionNumber, "wrong approved transaction")
	assert.Equal(t, transaction.Approved, approved[0].Status, "wrong approved status")

	// other buyers are untouched
	tx, err := w.Get(ctx, other)
	require.NoError(t, err, "get other")
	assert.Equal(t, transaction.Initiated, tx.Status, "other buyer approved")

	changed, err = w.FinishApproved(ctx, "B")
	assert.Nil(t, err, "finish error")
	assert.Equal(t, int64(1), changed, "wrong finish count")

	finished, err := w.ByStatus(ctx, "B", transaction.Finished)
	assert.Nil(t, err, "by status error")
	assert.Equal(t, 1, len(finished), "wrong finished count")

	// nothing left to change
	changed, err = w.FinishApproved(ctx, "B")
	assert.Nil(t, err, "finish error")
	assert.Equal(t, int64(0), changed, "finished twice")
}

func TestFinishOnlyApproved(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	w, trsId := setup(t)

	n, err := w.Create(ctx, request(trsId, "B"))
	require.NoError(t, err, "create")

	changed, err := w.FinishApproved(ctx, "B")
	assert.Nil(t, err, "finish error")
	assert.Equal(t, int64(0), changed, "initiated transaction finished")

	tx, err := w.Get(ctx, n)
	require.NoError(t, err, "get")
	assert.Equal(t, transaction.Initiated, tx.Status, "status changed")

	_, err = w.ApproveInitiated(ctx, "")
	assert.Equal(t, fault.ErrMissingParameters, err, "empty buyer accepted")

	_, err = w.ByStatus(ctx, "B", transaction.Status("paid"))
	assert.Equal(t, fault.ErrInvalidStatus, err, "unknown status accepted")
}
