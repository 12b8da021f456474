// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// table names
const (
	UsersTable          = "users"
	CollectionsTable    = "collections"
	CollectionDataTable = "collection_data"
	AssetsTable         = "trs"
	TransactionsTable   = "transactions"
)

type schema struct {
	table string
	ddl   string
}

// ordered so every foreign key target exists before it is referenced
//
// DDL is restricted to what MySQL, PostgreSQL and SQLite all accept:
// table level keys only, since MySQL ignores column level REFERENCES
var schemas = []schema{
	{
		table: UsersTable,
		ddl: `CREATE TABLE IF NOT EXISTS users (
  user_id VARCHAR(255) NOT NULL,
  PRIMARY KEY (user_id)
)`,
	},
	{
		table: CollectionsTable,
		ddl: `CREATE TABLE IF NOT EXISTS collections (
  collection_name VARCHAR(255) NOT NULL,
  trs_id VARCHAR(40) NOT NULL,
  mint_address VARCHAR(255) NOT NULL,
  token_account_address VARCHAR(255) NOT NULL,
  creator_id VARCHAR(255) NOT NULL,
  PRIMARY KEY (collection_name),
  FOREIGN KEY (creator_id) REFERENCES users (user_id)
)`,
	},
	{
		table: CollectionDataTable,
		ddl: `CREATE TABLE IF NOT EXISTS collection_data (
  name VARCHAR(255) NOT NULL,
  trait_type VARCHAR(255) NOT NULL,
  value VARCHAR(1024) NOT NULL,
  PRIMARY KEY (name, trait_type),
  FOREIGN KEY (name) REFERENCES collections (collection_name)
)`,
	},
	{
		table: AssetsTable,
		ddl: `CREATE TABLE IF NOT EXISTS trs (
  trs_id VARCHAR(40) NOT NULL,
  user_id VARCHAR(255) NOT NULL,
  collection_name VARCHAR(255) NOT NULL,
  creator VARCHAR(255) NOT NULL,
  PRIMARY KEY (trs_id),
  FOREIGN KEY (user_id) REFERENCES users (user_id),
  FOREIGN KEY (collection_name) REFERENCES collections (collection_name)
)`,
	},
	{
		table: TransactionsTable,
		ddl: `CREATE TABLE IF NOT EXISTS transactions (
  transaction_number VARCHAR(36) NOT NULL,
  buyer_transaction_number VARCHAR(255) NOT NULL,
  trs_id VARCHAR(40) NOT NULL,
  buyer_id VARCHAR(255) NOT NULL,
  seller_id VARCHAR(255) NOT NULL,
  amount DECIMAL(30,8) NOT NULL,
  number INTEGER NOT NULL,
  status VARCHAR(16) NOT NULL,
  PRIMARY KEY (transaction_number),
  FOREIGN KEY (trs_id) REFERENCES trs (trs_id),
  FOREIGN KEY (buyer_id) REFERENCES users (user_id),
  FOREIGN KEY (seller_id) REFERENCES users (user_id),
  CHECK (status IN ('initiated', 'approved', 'finished')),
  CHECK (amount > 0),
  CHECK (number >= 1)
)`,
	},
}

// Tables - names of all tables in creation order
func Tables() []string {
	names := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.table)
	}
	return names
}

// CreateTables - create any missing table
func (s *Supervisor) CreateTables(ctx context.Context) error {
	for _, sc := range schemas {
		sc := sc
		err := s.Query(ctx, "create table "+sc.table, func(ctx context.Context, db sqlx.ExtContext) error {
			_, err := db.ExecContext(ctx, sc.ddl)
			return err
		})
		if nil != err {
			return err
		}
		s.log.Debugf("table: %s ready", sc.table)
	}
	return nil
}
