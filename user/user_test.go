// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package user_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trsledger/fault"
	"github.com/bitmark-inc/trsledger/fixtures"
	"github.com/bitmark-inc/trsledger/storage"
	"github.com/bitmark-inc/trsledger/user"
)

// existence checks never see a row, as if another Add raced past them
type unseen struct {
	storage.Access
}

func (u unseen) Query(ctx context.Context, name string, fn func(context.Context, sqlx.ExtContext) error) error {
	if "user exists" == name {
		return nil
	}
	return u.Access.Query(ctx, name, fn)
}

func TestUserAddExists(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	d := user.New(fixtures.OpenStore(t))

	exists, err := d.Exists(ctx, "alice")
	assert.Nil(t, err, "exists error")
	assert.False(t, exists, "unknown user found")

	assert.Nil(t, d.Add(ctx, "alice"), "add error")

	exists, err = d.Exists(ctx, "alice")
	assert.Nil(t, err, "exists error")
	assert.True(t, exists, "added user not found")

	assert.Equal(t, fault.ErrUserExists, d.Add(ctx, "alice"), "duplicate accepted")
	assert.Equal(t, fault.ErrMissingParameters, d.Add(ctx, ""), "empty id accepted")

	exists, err = d.Exists(ctx, "")
	assert.Nil(t, err, "exists error")
	assert.False(t, exists, "empty id found")
}

func TestUserAddLosesInsertRace(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	s := fixtures.OpenStore(t)
	fixtures.AddUsers(t, s, "alice")

	d := user.New(unseen{Access: s})
	assert.Equal(t, fault.ErrUserExists, d.Add(ctx, "alice"), "wrong error for duplicate insert")
}

func TestUserConcurrentAdd(t *testing.T) {
	fixtures.SetupTestLogger(t)

	ctx := context.Background()
	d := user.New(fixtures.OpenStore(t))

	const n = 8
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i += 1 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = d.Add(ctx, "bob")
		}(i)
	}
	wg.Wait()

	added := 0
	for _, err := range errs {
		if nil == err {
			added += 1
			continue
		}
		assert.Equal(t, fault.ErrUserExists, err, "wrong error for duplicate")
	}
	assert.Equal(t, 1, added, "wrong number of successful adds")
}
