// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/trsledger/collection"
	"github.com/bitmark-inc/trsledger/command/trsledger-cli/rpccalls"
	"github.com/bitmark-inc/trsledger/transaction"
)

// open the connection on first use
func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)
	if nil != m.client {
		return m, m.client, nil
	}

	client, err := rpccalls.NewClient(m.connect, m.timeout, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	m.client = client
	return m, client, nil
}

// fetch a required string flag
func required(c *cli.Context, name string) (string, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

// TRAIT=VALUE items
func parseAttributes(items []string) ([]collection.Attribute, error) {
	attributes := make([]collection.Attribute, 0, len(items))
	for _, item := range items {
		n := strings.Index(item, "=")
		if n <= 0 {
			return nil, fmt.Errorf("invalid attribute: %q", item)
		}
		attributes = append(attributes, collection.Attribute{
			TraitType: item[:n],
			Value:     item[n+1:],
		})
	}
	return attributes, nil
}

func runMint(c *cli.Context) error {
	title, err := required(c, "title")
	if nil != err {
		return err
	}
	creator, err := required(c, "creator")
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}
	attributes, err := parseAttributes(c.StringSlice("attribute"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Mint(&rpccalls.MintData{
		Title:       title,
		Description: c.String("description"),
		Count:       count,
		Creator:     creator,
		Attributes:  attributes,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runOwner(c *cli.Context) error {
	trsId, err := required(c, "trs")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Owner(trsId)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runWallet(c *cli.Context) error {
	userId, err := required(c, "user")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Wallet(userId, c.String("collection"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runTransfer(c *cli.Context) error {
	trsId, err := required(c, "trs")
	if nil != err {
		return err
	}
	receiver, err := required(c, "receiver")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Transfer(trsId, c.String("owner"), receiver)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runCollection(c *cli.Context) error {
	name, err := required(c, "name")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Collection(name)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBuy(c *cli.Context) error {
	request := transaction.Request{
		BuyerTransactionNumber: c.String("reference"),
		Number:                 c.Int("number"),
	}

	var err error
	if request.TrsId, err = required(c, "trs"); nil != err {
		return err
	}
	if request.BuyerId, err = required(c, "buyer"); nil != err {
		return err
	}
	if request.SellerId, err = required(c, "seller"); nil != err {
		return err
	}
	amount, err := required(c, "amount")
	if nil != err {
		return err
	}
	if request.Amount, err = decimal.NewFromString(amount); nil != err {
		return fmt.Errorf("invalid amount: %q", amount)
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Buy(&request)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runTransaction(c *cli.Context) error {
	number, err := required(c, "number")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Transaction(number)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runSetStatus(c *cli.Context) error {
	number, err := required(c, "number")
	if nil != err {
		return err
	}
	status, err := required(c, "status")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.SetStatus(number, strings.ToLower(status))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runApproved(c *cli.Context) error {
	buyer, err := required(c, "buyer")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.List(buyer, strings.ToLower(c.String("status")))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runApprove(c *cli.Context) error {
	buyer, err := required(c, "buyer")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Approve(buyer)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runFinish(c *cli.Context) error {
	buyer, err := required(c, "buyer")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Finish(buyer)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	reply, err := client.Info()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
