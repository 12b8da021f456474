// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/storage"
)

//go:generate mockgen -source=transaction.go -destination=../mocks/transaction.go -package=mocks

// Transaction - one purchase
type Transaction struct {
	TransactionNumber      string          `db:"transaction_number" json:"transactionNumber"`
	BuyerTransactionNumber string          `db:"buyer_transaction_number" json:"buyerTransactionNumber"`
	TrsId                  string          `db:"trs_id" json:"trsId"`
	BuyerId                string          `db:"buyer_id" json:"buyerId"`
	SellerId               string          `db:"seller_id" json:"sellerId"`
	Amount                 decimal.Decimal `db:"amount" json:"amount"`
	Number                 int             `db:"number" json:"number"`
	Status                 Status          `db:"status" json:"status"`
}

// Request - fields supplied by the buyer
type Request struct {
	BuyerTransactionNumber string          `json:"buyerTransactionNumber"`
	TrsId                  string          `json:"trsId"`
	BuyerId                string          `json:"buyerId"`
	SellerId               string          `json:"sellerId"`
	Amount                 decimal.Decimal `json:"amount"`
	Number                 int             `json:"number"`
}

// Workflow - purchase lifecycle
type Workflow interface {
	Create(ctx context.Context, request Request) (string, error)
	Get(ctx context.Context, transactionNumber string) (*Transaction, error)
	SetStatus(ctx context.Context, transactionNumber string, status Status) error
	Approved(ctx context.Context, buyerId string) ([]Transaction, error)
	ByStatus(ctx context.Context, buyerId string, status Status) ([]Transaction, error)
	ApproveInitiated(ctx context.Context, buyerId string) (int64, error)
	FinishApproved(ctx context.Context, buyerId string) (int64, error)
}

type workflow struct {
	log   *logger.L
	store storage.Access
}

const selectTransaction = `SELECT transaction_number, buyer_transaction_number, trs_id,
buyer_id, seller_id, amount, number, status FROM transactions`

// New - workflow over the store
func New(store storage.Access) Workflow {
	return &workflow{
		log:   logger.New("transaction"),
		store: store,
	}
}

// Create - record a new purchase in the initiated state
func (w *workflow) Create(ctx context.Context, request Request) (string, error) {
	if "" == request.TrsId || "" == request.BuyerId || "" == request.SellerId {
		return "", fault.ErrMissingParameters
	}
	if !request.Amount.IsPositive() {
		return "", fault.ErrInvalidAmount
	}
	if request.Number < 1 {
		return "", fault.ErrInvalidCount
	}

	tx := Transaction{
		TransactionNumber:      uuid.NewString(),
		BuyerTransactionNumber: request.BuyerTransactionNumber,
		TrsId:                  request.TrsId,
		BuyerId:                request.BuyerId,
		SellerId:               request.SellerId,
		Amount:                 request.Amount,
		Number:                 request.Number,
		Status:                 Initiated,
	}

	err := w.store.Query(ctx, "create transaction", func(ctx context.Context, db sqlx.ExtContext) error {
		_, err := sqlx.NamedExecContext(ctx, db,
			`INSERT INTO transactions (transaction_number, buyer_transaction_number, trs_id, buyer_id, seller_id, amount, number, status)
VALUES (:transaction_number, :buyer_transaction_number, :trs_id, :buyer_id, :seller_id, :amount, :number, :status)`, tx)
		return err
	})
	if nil != err {
		return "", err
	}

	w.log.Infof("transaction: %s  trs: %q  buyer: %q  seller: %q  amount: %s", tx.TransactionNumber, tx.TrsId, tx.BuyerId, tx.SellerId, tx.Amount)
	return tx.TransactionNumber, nil
}

// Get - a single transaction
func (w *workflow) Get(ctx context.Context, transactionNumber string) (*Transaction, error) {
	var tx Transaction
	err := w.store.Query(ctx, "get transaction", func(ctx context.Context, db sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, db, &tx, db.Rebind(selectTransaction+" WHERE transaction_number = ?"), transactionNumber)
		if errors.Is(err, sql.ErrNoRows) {
			return fault.ErrTransactionNotFound
		}
		return err
	})
	if nil != err {
		return nil, err
	}
	return &tx, nil
}

// SetStatus - move a transaction to the next state
//
// setting the current status again is accepted and changes nothing
func (w *workflow) SetStatus(ctx context.Context, transactionNumber string, status Status) error {
	if !status.IsValid() {
		return fault.ErrInvalidStatus
	}

	err := w.store.Query(ctx, "set status", func(ctx context.Context, db sqlx.ExtContext) error {
		if from, ok := status.predecessor(); ok {
			result, err := db.ExecContext(ctx, db.Rebind(
				"UPDATE transactions SET status = ? WHERE transaction_number = ? AND status = ?"),
				status, transactionNumber, from)
			if nil != err {
				return err
			}
			n, err := result.RowsAffected()
			if nil != err {
				return err
			}
			if 1 == n {
				return nil
			}
		}

		// no change made, find out why
		var current Status
		err := sqlx.GetContext(ctx, db, &current, db.Rebind(
			"SELECT status FROM transactions WHERE transaction_number = ?"), transactionNumber)
		if errors.Is(err, sql.ErrNoRows) {
			return fault.ErrTransactionNotFound
		}
		if nil != err {
			return err
		}
		if current == status {
			return nil
		}
		w.log.Warnf("transaction: %s  rejected change from: %s  to: %s", transactionNumber, current, status)
		return fault.ErrInvalidTransition
	})
	if nil != err {
		return err
	}

	w.log.Infof("transaction: %s  status: %s", transactionNumber, status)
	return nil
}

// Approved - a buyer's transactions waiting to be finished
func (w *workflow) Approved(ctx context.Context, buyerId string) ([]Transaction, error) {
	return w.ByStatus(ctx, buyerId, Approved)
}

// ByStatus - a buyer's transactions in one state
func (w *workflow) ByStatus(ctx context.Context, buyerId string, status Status) ([]Transaction, error) {
	if !status.IsValid() {
		return nil, fault.ErrInvalidStatus
	}

	transactions := []Transaction{}
	err := w.store.Query(ctx, "transactions by status", func(ctx context.Context, db sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, db, &transactions, db.Rebind(
			selectTransaction+" WHERE buyer_id = ? AND status = ? ORDER BY transaction_number"), buyerId, status)
	})
	if nil != err {
		return nil, err
	}
	return transactions, nil
}

// ApproveInitiated - approve all of a buyer's initiated transactions
func (w *workflow) ApproveInitiated(ctx context.Context, buyerId string) (int64, error) {
	return w.advance(ctx, "approve initiated", buyerId, Initiated, Approved)
}

// FinishApproved - finish all of a buyer's approved transactions
func (w *workflow) FinishApproved(ctx context.Context, buyerId string) (int64, error) {
	return w.advance(ctx, "finish approved", buyerId, Approved, Finished)
}

func (w *workflow) advance(ctx context.Context, name string, buyerId string, from Status, to Status) (int64, error) {
	if "" == buyerId {
		return 0, fault.ErrMissingParameters
	}
	if !from.CanChangeTo(to) {
		w.log.Criticalf("%s: invalid bulk change from: %s  to: %s", name, from, to)
		return 0, fault.ErrInvalidTransition
	}

	n := int64(0)
	err := w.store.Query(ctx, name, func(ctx context.Context, db sqlx.ExtContext) error {
		result, err := db.ExecContext(ctx, db.Rebind(
			"UPDATE transactions SET status = ? WHERE buyer_id = ? AND status = ?"), to, buyerId, from)
		if nil != err {
			return err
		}
		n, err = result.RowsAffected()
		return err
	})
	if nil != err {
		return 0, err
	}

	w.log.Infof("%s: buyer: %q  changed: %d", name, buyerId, n)
	return n, nil
}
