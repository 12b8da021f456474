// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bitmark-inc/trsledger/fault"
)

// Transfer - move an asset from whoever owns it now to the new owner
func (l *ledger) Transfer(ctx context.Context, newUserId string, trsId string) error {
	current, err := l.GetOwner(ctx, trsId)
	if nil != err {
		return err
	}
	return l.TransferFrom(ctx, trsId, current, newUserId)
}

// TransferFrom - move an asset only if it is still owned by currentUserId
//
// of two concurrent transfers from the same owner exactly one succeeds,
// the other gets ErrOwnerChanged
func (l *ledger) TransferFrom(ctx context.Context, trsId string, currentUserId string, newUserId string) error {
	if "" == trsId || "" == currentUserId || "" == newUserId {
		return fault.ErrMissingParameters
	}
	if err := l.requireUser(ctx, newUserId); nil != err {
		return err
	}

	err := l.store.Query(ctx, "transfer", func(ctx context.Context, db sqlx.ExtContext) error {
		result, err := db.ExecContext(ctx, db.Rebind(
			"UPDATE trs SET user_id = ? WHERE trs_id = ? AND user_id = ?"), newUserId, trsId, currentUserId)
		if nil != err {
			return err
		}
		n, err := result.RowsAffected()
		if nil != err {
			return err
		}
		if 1 == n {
			return nil
		}

		// nothing matched: either no such asset or a different owner
		count := 0
		err = sqlx.GetContext(ctx, db, &count, db.Rebind("SELECT COUNT(*) FROM trs WHERE trs_id = ?"), trsId)
		if nil != err {
			return err
		}
		if 0 == count {
			return fault.ErrAssetNotFound
		}
		return fault.ErrOwnerChanged
	})
	if nil != err {
		l.log.Warnf("transfer: %q  from: %q  to: %q  error: %s", trsId, currentUserId, newUserId, err)
		return err
	}

	l.log.Infof("transfer: %q  from: %q  to: %q", trsId, currentUserId, newUserId)
	return nil
}
