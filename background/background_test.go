// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trsledger/background"
)

type ticker struct {
	ticks    int64
	finished int64
	args     interface{}
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	state.args = args

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&state.ticks, 1)
		}
	}
	atomic.StoreInt64(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, "shared")
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	// Stop waits for every Run to return
	assert.Equal(t, int64(1), atomic.LoadInt64(&proc1.finished), "first process still running")
	assert.Equal(t, int64(1), atomic.LoadInt64(&proc2.finished), "second process still running")
	assert.True(t, atomic.LoadInt64(&proc1.ticks) > 0, "first process never ran")
	assert.True(t, atomic.LoadInt64(&proc2.ticks) > 0, "second process never ran")
	assert.Equal(t, "shared", proc1.args, "wrong args")

	// ticks must not advance after stop
	before := atomic.LoadInt64(&proc1.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, before, atomic.LoadInt64(&proc1.ticks), "process ran after stop")
}

func TestStopTwiceAndNil(t *testing.T) {
	p := background.Start(background.Processes{&ticker{}}, nil)
	p.Stop()
	p.Stop()

	var none *background.T
	none.Stop()
}
