// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/trsledger/fault"
)

const dialTimeout = 10 * time.Second

// DefaultCallTimeout - limit on a single call when none is given
const DefaultCallTimeout = 30 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	timeout time.Duration
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a trsledgerd
//
// every call waits at most timeout for its reply, zero selects
// DefaultCallTimeout
func NewClient(connect string, timeout time.Duration, verbose bool, handle io.Writer) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	conn, err := net.DialTimeout("tcp", connect, dialTimeout)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		timeout: timeout,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the trsledgerd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call a method, echoing request and reply when verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" Request", arguments)

	// a reply the server fails to encode is never sent
	call := c.client.Go(method, arguments, reply, make(chan *rpc.Call, 1))

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case <-call.Done:
		if nil != call.Error {
			return call.Error
		}
	case <-timer.C:
		return fault.ErrCallTimeout
	}

	c.printJson(method+" Reply", reply)
	return nil
}

func (c *Client) printJson(title string, message interface{}) {
	if !c.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
