// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/trsledger/fault"
)

var (
	ErrConstraintOne  = fault.ConstraintError("constraint one")
	ErrExistsOne      = fault.ExistsError("exists one")
	ErrInvalidOne     = fault.InvalidError("invalid one")
	ErrNotFoundOne    = fault.NotFoundError("not found one")
	ErrProcessOne     = fault.ProcessError("process one")
	ErrStaleOne       = fault.StaleError("stale one")
	ErrTransitionOne  = fault.TransitionError("transition one")
	ErrUnavailableOne = fault.UnavailableError("unavailable one")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err         error
		constraint  bool
		exists      bool
		invalid     bool
		notFound    bool
		process     bool
		stale       bool
		transition  bool
		unavailable bool
	}{
		{ErrConstraintOne, true, false, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false, false},
		{ErrProcessOne, false, false, false, false, true, false, false, false},
		{ErrStaleOne, false, false, false, false, false, true, false, false},
		{ErrTransitionOne, false, false, false, false, false, false, true, false},
		{ErrUnavailableOne, false, false, false, false, false, false, false, true},
		{fault.ErrServiceUnavailable, false, false, false, false, false, false, false, true},
		{fault.ErrRequestInvalidated, false, false, false, false, false, true, false, false},
		{fault.ErrInvalidTransition, false, false, false, false, false, false, true, false},
		{errors.New("plain"), false, false, false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrConstraint(err) != e.constraint {
			t.Errorf("%d: expected 'constraint' == %v for err = %v", i, e.constraint, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrStale(err) != e.stale {
			t.Errorf("%d: expected 'stale' == %v for err = %v", i, e.stale, err)
		}
		if fault.IsErrTransition(err) != e.transition {
			t.Errorf("%d: expected 'transition' == %v for err = %v", i, e.transition, err)
		}
		if fault.IsErrUnavailable(err) != e.unavailable {
			t.Errorf("%d: expected 'unavailable' == %v for err = %v", i, e.unavailable, err)
		}
	}
}

func TestWrappersKeepDriverMessage(t *testing.T) {
	driverError := errors.New("Duplicate entry '7' for key 'PRIMARY'")

	c := fault.Constraint(driverError)
	if !fault.IsErrConstraint(c) {
		t.Errorf("constraint wrapper has wrong class: %T", c)
	}
	if "constraint violation: Duplicate entry '7' for key 'PRIMARY'" != c.Error() {
		t.Errorf("constraint message lost: %q", c.Error())
	}

	u := fault.Connection(driverError)
	if !fault.IsErrUnavailable(u) {
		t.Errorf("connection wrapper has wrong class: %T", u)
	}

	p := fault.Process(driverError)
	if !fault.IsErrProcess(p) || !fault.IsFault(p) {
		t.Errorf("process wrapper has wrong class: %T", p)
	}

	if fault.IsFault(driverError) {
		t.Errorf("plain error classified as fault")
	}
}

func TestLookup(t *testing.T) {
	if fault.ErrOwnerChanged != fault.Lookup(fault.ErrOwnerChanged.Error()) {
		t.Errorf("fixed error not recovered")
	}

	c := fault.Lookup(fault.Constraint(errors.New("duplicate key")).Error())
	if !fault.IsErrConstraint(c) {
		t.Errorf("constraint message has wrong class: %T", c)
	}

	u := fault.Lookup("connection error: dial tcp: refused")
	if !fault.IsErrUnavailable(u) {
		t.Errorf("connection message has wrong class: %T", u)
	}

	g := fault.Lookup("something else")
	if _, ok := g.(fault.GenericError); !ok {
		t.Errorf("unknown message has wrong class: %T", g)
	}
}
