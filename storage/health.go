// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
)

// DefaultHealthInterval - time between health checks
const DefaultHealthInterval = 30 * time.Second

// HealthCheck - background process that pings the store and
// reconnects when the connection was lost
type HealthCheck struct {
	log        *logger.L
	supervisor *Supervisor
	interval   time.Duration
}

// NewHealthCheck - zero interval selects the default
func NewHealthCheck(supervisor *Supervisor, interval time.Duration) *HealthCheck {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	return &HealthCheck{
		log:        logger.New("health"),
		supervisor: supervisor,
		interval:   interval,
	}
}

// Run - background process entry
func (h *HealthCheck) Run(args interface{}, shutdown <-chan struct{}) {
	log := h.log
	log.Infof("starting, interval: %s", h.interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-shutdown
		cancel()
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			h.check(ctx)
		}
	}
	log.Info("shutting down…")
	log.Flush()
}

func (h *HealthCheck) check(ctx context.Context) {
	if h.supervisor.IsConnected() {
		if err := h.supervisor.Ping(ctx); nil == err {
			return
		}
		h.log.Warn("connection lost")
	}
	if h.supervisor.EnsureConnected(ctx) {
		h.log.Info("connection restored")
		return
	}
	h.log.Errorf("store unavailable, next check in: %s", h.interval)
}
