// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
}

// RPC - JSON RPC listener, a background process
type RPC struct {
	log            *logger.L
	count          *atomic.Uint64
	server         *rpc.Server
	maxConnections uint64
	listen         []string

	sync.Mutex
	listeners   []net.Listener
	connections map[net.Conn]struct{}
	closed      bool
}

// NewRPC - validate the configuration, nothing is bound until Listen
func NewRPC(configuration *RPCConfiguration, log *logger.L, count *atomic.Uint64, server *rpc.Server) (*RPC, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	listen := make([]string, 0, len(configuration.Listen))
	for _, address := range configuration.Listen {
		a, err := parseListenAddress(address)
		if nil != err {
			log.Errorf("invalid %s listen: %q  error: %s", logName, address, err)
			return nil, err
		}
		listen = append(listen, a)
	}

	return &RPC{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		listen:         listen,
		connections:    make(map[net.Conn]struct{}),
	}, nil
}

// Listen - bind every listen address
func (r *RPC) Listen() error {
	r.Lock()
	defer r.Unlock()

	if 0 != len(r.listeners) {
		return nil
	}
	for _, address := range r.listen {
		r.log.Infof("starting RPC server: %s", address)
		l, err := net.Listen("tcp", address)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			for _, bound := range r.listeners {
				_ = bound.Close()
			}
			r.listeners = nil
			return err
		}
		r.listeners = append(r.listeners, l)
	}
	return nil
}

// Addresses - bound addresses, useful when listening on port zero
func (r *RPC) Addresses() []string {
	r.Lock()
	defer r.Unlock()

	addresses := make([]string, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr().String()
	}
	return addresses
}

// Run - serve until shutdown, then close the listeners and any open
// connections
func (r *RPC) Run(args interface{}, shutdown <-chan struct{}) {
	if err := r.Listen(); nil != err {
		r.log.Criticalf("rpc listen error: %s", err)
		<-shutdown
		return
	}

	r.Lock()
	listeners := append([]net.Listener(nil), r.listeners...)
	r.Unlock()

	var wg sync.WaitGroup
	for _, l := range listeners {
		wg.Add(1)
		go func(l net.Listener) {
			defer wg.Done()
			r.accept(l)
		}(l)
	}

	<-shutdown

	r.log.Info("shutting down…")
	r.Lock()
	r.closed = true
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
	for conn := range r.connections {
		_ = conn.Close()
	}
	r.Unlock()

	wg.Wait()
	r.log.Info("stopped")
}

func (r *RPC) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if r.count.Add(1) > r.maxConnections {
			r.count.Add(^uint64(0))
			r.log.Warnf("connection limit reached, rejecting: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		r.Lock()
		if r.closed {
			r.Unlock()
			_ = conn.Close()
			r.count.Add(^uint64(0))
			return
		}
		r.connections[conn] = struct{}{}
		r.Unlock()

		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()

			r.Lock()
			delete(r.connections, conn)
			r.Unlock()
			r.count.Add(^uint64(0))
		}()
	}
}

// change "*:PORT" to "[::]:PORT" so both tcp4 and tcp6 are served
func parseListenAddress(address string) (string, error) {
	if strings.HasPrefix(address, "*:") {
		address = "[::]" + address[1:]
	}
	host, port, err := net.SplitHostPort(address)
	if nil != err {
		return "", fault.ErrInvalidListenAddress
	}
	if "" != host && nil == net.ParseIP(host) {
		return "", fault.ErrInvalidListenAddress
	}
	if "" == port {
		return "", fault.ErrInvalidListenAddress
	}
	return address, nil
}
