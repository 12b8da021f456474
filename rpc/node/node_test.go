// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trsledger/fixtures"
	"github.com/bitmark-inc/trsledger/rpc/node"
)

type store struct {
	connected bool
}

func (s store) IsConnected() bool { return s.connected }
func (s store) Driver() string    { return "sqlite" }

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger(t)

	var count atomic.Uint64
	count.Store(3)

	start := time.Now().Add(-time.Minute)
	n := node.New(logger.New(fixtures.LogCategory), start, "1.2", &count, store{connected: true})

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.True(t, reply.Database.Connected, "store not connected")
	assert.Equal(t, "sqlite", reply.Database.Driver, "wrong driver")

	uptime, err := time.ParseDuration(reply.Uptime)
	assert.Nil(t, err, "uptime not a duration")
	assert.True(t, uptime >= time.Minute, "wrong uptime: %s", reply.Uptime)
}

func TestNodeInfoDisconnected(t *testing.T) {
	fixtures.SetupTestLogger(t)

	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.2", nil, store{})

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.False(t, reply.Database.Connected, "store reported connected")
	assert.Equal(t, uint64(0), reply.RPCs, "wrong rpc count")
}
