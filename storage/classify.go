// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mysql server error numbers for integrity violations
var mysqlConstraintErrors = map[uint16]struct{}{
	1048: {}, // column cannot be null
	1062: {}, // duplicate entry
	1216: {}, // child row: foreign key fails
	1217: {}, // parent row: foreign key fails
	1451: {}, // cannot delete or update parent row
	1452: {}, // cannot add or update child row
	3819: {}, // check constraint violated
}

// postgres: class 08 connection exception, class 23 integrity violation
const (
	pqConnectionClass = "08"
	pqConstraintClass = "23"
)

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqConnectionClass == pqErr.Code.Class()
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isConstraintError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		_, ok := mysqlConstraintErrors[mysqlErr.Number]
		return ok
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqConstraintClass == pqErr.Code.Class()
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		// extended result codes carry the primary code in the low byte
		return sqlite3.SQLITE_CONSTRAINT == sqliteErr.Code()&0xff
	}
	return false
}
