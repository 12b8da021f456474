// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trsledger/background"
	"github.com/bitmark-inc/trsledger/fixtures"
	"github.com/bitmark-inc/trsledger/mocks"
	"github.com/bitmark-inc/trsledger/storage"
)

func TestHealthCheckReconnects(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := testCredentials(t)
	connector := mocks.NewMockConnector(ctl)
	connector.EXPECT().Connect(gomock.Any(), c).Return(openDB(t, c), nil).Times(1)

	s := storage.New(storage.Options{
		Connector:   connector,
		Credentials: storage.StaticCredentials(c),
		Attempts:    1,
	})

	p := background.Start(background.Processes{storage.NewHealthCheck(s, 5*time.Millisecond)}, nil)

	deadline := time.Now().Add(5 * time.Second)
	for !s.IsConnected() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	p.Stop()

	assert.True(t, s.IsConnected(), "health check did not reconnect")
	assert.Nil(t, s.Ping(context.Background()), "ping error")
	assert.Nil(t, s.Close(), "close error")
}
