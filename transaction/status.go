// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/trsledger/fault"
)

// Status - state of a transaction
type Status string

// possible states for a transaction
const (
	Initiated = Status("initiated")
	Approved  = Status("approved")
	Finished  = Status("finished")
)

// ParseStatus - status from its text form
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fault.ErrInvalidStatus
	}
	return status, nil
}

// IsValid - true for one of the known states
func (status Status) IsValid() bool {
	switch status {
	case Initiated, Approved, Finished:
		return true
	default:
		return false
	}
}

// CanChangeTo - only the immediate successor is allowed
func (status Status) CanChangeTo(newStatus Status) bool {

	// exclude change to same state
	if status == newStatus {
		return false
	}

	switch status {
	case Initiated:
		return Approved == newStatus

	case Approved:
		return Finished == newStatus

	default:
		return false
	}
}

// predecessor - the state that may change to this one
func (status Status) predecessor() (Status, bool) {
	switch status {
	case Approved:
		return Initiated, true
	case Finished:
		return Approved, true
	default:
		return "", false
	}
}

func (status Status) String() string {
	if !status.IsValid() {
		return "?"
	}
	return string(status)
}

// MarshalText - convert status to text
func (status Status) MarshalText() ([]byte, error) {
	if !status.IsValid() {
		return nil, fault.ErrInvalidStatus
	}
	return []byte(status), nil
}

// UnmarshalText - convert text to status
func (status *Status) UnmarshalText(s []byte) error {
	parsed, err := ParseStatus(string(s))
	if nil != err {
		return err
	}
	*status = parsed
	return nil
}
