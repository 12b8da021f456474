// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions

import (
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/rpc/ratelimit"
	"github.com/bitmark-inc/trsledger/transaction"
)

const (
	rateLimitTransactions = 200
	rateBurstTransactions = 100
)

// Transactions - type for the RPC
type Transactions struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Workflow transaction.Workflow
}

// New - create transactions RPC handler
func New(log *logger.L, workflow transaction.Workflow) *Transactions {
	return &Transactions{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTransactions, rateBurstTransactions),
		Workflow: workflow,
	}
}

// CreateReply - identifier of the new purchase
type CreateReply struct {
	TransactionNumber string             `json:"transactionNumber"`
	Status            transaction.Status `json:"status"`
}

// Create - record a purchase as initiated
func (transactions *Transactions) Create(arguments *transaction.Request, reply *CreateReply) error {
	if err := ratelimit.Limit(transactions.Limiter); nil != err {
		return err
	}

	number, err := transactions.Workflow.Create(context.Background(), *arguments)
	if nil != err {
		transactions.Log.Warnf("create: buyer: %q  trs: %q  error: %s", arguments.BuyerId, arguments.TrsId, err)
		return err
	}
	reply.TransactionNumber = number
	reply.Status = transaction.Initiated
	return nil
}

// GetArguments - one purchase
type GetArguments struct {
	TransactionNumber string `json:"transactionNumber"`
}

// Get - a purchase by number
func (transactions *Transactions) Get(arguments *GetArguments, reply *transaction.Transaction) error {
	if err := ratelimit.Limit(transactions.Limiter); nil != err {
		return err
	}
	if "" == arguments.TransactionNumber {
		return fault.ErrMissingParameters
	}

	tx, err := transactions.Workflow.Get(context.Background(), arguments.TransactionNumber)
	if nil != err {
		return err
	}
	*reply = *tx
	return nil
}

// SetStatusArguments - the requested status, text form
type SetStatusArguments struct {
	TransactionNumber string `json:"transactionNumber"`
	Status            string `json:"status"`
}

// SetStatusReply - status after the change
type SetStatusReply struct {
	TransactionNumber string             `json:"transactionNumber"`
	Status            transaction.Status `json:"status"`
}

// SetStatus - move a purchase to a later status
func (transactions *Transactions) SetStatus(arguments *SetStatusArguments, reply *SetStatusReply) error {
	if err := ratelimit.Limit(transactions.Limiter); nil != err {
		return err
	}
	if "" == arguments.TransactionNumber {
		return fault.ErrMissingParameters
	}

	status, err := transaction.ParseStatus(arguments.Status)
	if nil != err {
		return err
	}

	err = transactions.Workflow.SetStatus(context.Background(), arguments.TransactionNumber, status)
	if nil != err {
		return err
	}
	reply.TransactionNumber = arguments.TransactionNumber
	reply.Status = status
	return nil
}

// BuyerArguments - purchases of one buyer
type BuyerArguments struct {
	BuyerId string `json:"buyerId"`
	Status  string `json:"status,omitempty"`
}

// ListReply - matching purchases
type ListReply struct {
	Transactions []transaction.Transaction `json:"transactions"`
}

// List - purchases of a buyer in the given status
func (transactions *Transactions) List(arguments *BuyerArguments, reply *ListReply) error {
	if err := ratelimit.Limit(transactions.Limiter); nil != err {
		return err
	}
	if "" == arguments.BuyerId {
		return fault.ErrMissingParameters
	}

	status, err := transaction.ParseStatus(arguments.Status)
	if nil != err {
		return err
	}

	list, err := transactions.Workflow.ByStatus(context.Background(), arguments.BuyerId, status)
	if nil != err {
		return err
	}
	reply.Transactions = list
	return nil
}

// Approved - approved purchases of a buyer
func (transactions *Transactions) Approved(arguments *BuyerArguments, reply *ListReply) error {
	if err := ratelimit.Limit(transactions.Limiter); nil != err {
		return err
	}
	if "" == arguments.BuyerId {
		return fault.ErrMissingParameters
	}

	list, err := transactions.Workflow.Approved(context.Background(), arguments.BuyerId)
	if nil != err {
		return err
	}
	reply.Transactions = list
	return nil
}

// CountReply - number of purchases changed
type CountReply struct {
	Count int64 `json:"count"`
}

// Approve - approve every initiated purchase of a buyer
func (transactions *Transactions) Approve(arguments *BuyerArguments, reply *CountReply) error {
	if err := ratelimit.Limit(transactions.Limiter); nil != err {
		return err
	}
	if "" == arguments.BuyerId {
		return fault.ErrMissingParameters
	}

	n, err := transactions.Workflow.ApproveInitiated(context.Background(), arguments.BuyerId)
	if nil != err {
		return err
	}
	transactions.Log.Infof("buyer: %q  approved: %d", arguments.BuyerId, n)
	reply.Count = n
	return nil
}

// Finish - finish every approved purchase of a buyer
func (transactions *Transactions) Finish(arguments *BuyerArguments, reply *CountReply) error {
	if err := ratelimit.Limit(transactions.Limiter); nil != err {
		return err
	}
	if "" == arguments.BuyerId {
		return fault.ErrMissingParameters
	}

	n, err := transactions.Workflow.FinishApproved(context.Background(), arguments.BuyerId)
	if nil != err {
		return err
	}
	transactions.Log.Infof("buyer: %q  finished: %d", arguments.BuyerId, n)
	reply.Count = n
	return nil
}
