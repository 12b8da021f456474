// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/rpc"
)

func TestStatusCode(t *testing.T) {
	items := []struct {
		err    error
		status int
	}{
		{nil, http.StatusOK},
		{fault.ErrServiceUnavailable, 501},
		{fault.ErrNotConnected, 501},
		{fault.Connection(errors.New("refused")), 501},
		{fault.ErrRequestInvalidated, 502},
		{fault.ErrOwnerChanged, 502},
		{fault.ErrUserNotFound, http.StatusNotFound},
		{fault.ErrAssetNotFound, http.StatusNotFound},
		{fault.ErrTransactionNotFound, http.StatusNotFound},
		{fault.ErrMissingParameters, http.StatusBadRequest},
		{fault.Constraint(errors.New("duplicate")), http.StatusBadRequest},
		{fault.ErrUserExists, http.StatusBadRequest},
		{fault.ErrInvalidTransition, http.StatusBadRequest},
		{fault.ErrMintFailed, http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for i, item := range items {
		assert.Equal(t, item.status, rpc.StatusCode(item.err), "%d: wrong status for: %v", i, item.err)
	}
}

func TestStatusCodeAfterLookup(t *testing.T) {
	err := fault.Lookup(fault.ErrServiceUnavailable.Error())
	assert.Equal(t, 501, rpc.StatusCode(err), "class lost over the wire")
}
