// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/trsledger/rpc/node"
	"github.com/bitmark-inc/trsledger/rpc/transactions"
	"github.com/bitmark-inc/trsledger/transaction"
)

// Buy - record a purchase
func (client *Client) Buy(request *transaction.Request) (*transactions.CreateReply, error) {
	reply := &transactions.CreateReply{}
	if err := client.call("Transactions.Create", request, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transaction - a purchase by number
func (client *Client) Transaction(transactionNumber string) (*transaction.Transaction, error) {
	reply := &transaction.Transaction{}
	arguments := transactions.GetArguments{TransactionNumber: transactionNumber}
	if err := client.call("Transactions.Get", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SetStatus - move a purchase to its next status
func (client *Client) SetStatus(transactionNumber string, status string) (*transactions.SetStatusReply, error) {
	arguments := transactions.SetStatusArguments{
		TransactionNumber: transactionNumber,
		Status:            status,
	}
	reply := &transactions.SetStatusReply{}
	if err := client.call("Transactions.SetStatus", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// List - purchases of a buyer, a blank status lists the approved ones
func (client *Client) List(buyerId string, status string) (*transactions.ListReply, error) {
	arguments := transactions.BuyerArguments{
		BuyerId: buyerId,
		Status:  status,
	}
	method := "Transactions.List"
	if "" == status {
		method = "Transactions.Approved"
	}
	reply := &transactions.ListReply{}
	if err := client.call(method, &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Approve - approve every initiated purchase of a buyer
func (client *Client) Approve(buyerId string) (*transactions.CountReply, error) {
	reply := &transactions.CountReply{}
	if err := client.call("Transactions.Approve", &transactions.BuyerArguments{BuyerId: buyerId}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Finish - finish every approved purchase of a buyer
func (client *Client) Finish(buyerId string) (*transactions.CountReply, error) {
	reply := &transactions.CountReply{}
	if err := client.call("Transactions.Finish", &transactions.BuyerArguments{BuyerId: buyerId}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Info - daemon state
func (client *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	if err := client.call("Node.Info", &node.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
