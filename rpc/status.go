// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"

	"github.com/bitmark-inc/trsledger/fault"
)

// status codes used by the web front end for the store failures
const (
	StatusServiceUnavailable = http.StatusNotImplemented // 501
	StatusRequestInvalidated = http.StatusBadGateway     // 502
)

// StatusCode - status for an error, 200 for nil
func StatusCode(err error) int {
	switch {
	case nil == err:
		return http.StatusOK
	case fault.IsErrUnavailable(err):
		return StatusServiceUnavailable
	case fault.IsErrStale(err):
		return StatusRequestInvalidated
	case fault.IsErrNotFound(err):
		return http.StatusNotFound
	case fault.IsErrInvalid(err), fault.IsErrConstraint(err),
		fault.IsErrExists(err), fault.IsErrTransition(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
