// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"net/url"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/bitmark-inc/trsledger/fault"
)

// supported drivers
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// environment variables read at every connection attempt
const (
	EnvDriver   = "DATABASE_DRIVER"
	EnvHost     = "DATABASE_HOST"
	EnvUser     = "DATABASE_USERNAME"
	EnvPassword = "DATABASE_PASSWORD"
	EnvName     = "DATABASE_NAME"
	EnvSSLMode  = "DATABASE_SSLMODE"
)

// Credentials - everything needed to reach the store
type Credentials struct {
	Driver   string `gluamapper:"driver" json:"driver"`
	Host     string `gluamapper:"host" json:"host"`
	User     string `gluamapper:"user" json:"user"`
	Password string `gluamapper:"-" json:"-"`
	Database string `gluamapper:"name" json:"name"`
	SSLMode  string `gluamapper:"sslmode" json:"sslmode"`
}

// CredentialSource - called before every connection attempt so
// rotated credentials are picked up by a reconnect
type CredentialSource func() (Credentials, error)

// EnvironmentCredentials - credentials from the process environment,
// any variable not set keeps the value from defaults
func EnvironmentCredentials(defaults Credentials) CredentialSource {
	return func() (Credentials, error) {
		c := defaults
		lookup := []struct {
			name  string
			value *string
		}{
			{EnvDriver, &c.Driver},
			{EnvHost, &c.Host},
			{EnvUser, &c.User},
			{EnvPassword, &c.Password},
			{EnvName, &c.Database},
			{EnvSSLMode, &c.SSLMode},
		}
		for _, l := range lookup {
			if value, ok := os.LookupEnv(l.name); ok {
				*l.value = value
			}
		}
		if "" == c.Driver {
			c.Driver = MySQL
		}
		c.Driver = strings.ToLower(c.Driver)

		if "" == c.Database {
			return c, fault.ErrMissingParameters
		}
		return c, nil
	}
}

// StaticCredentials - fixed credentials, mainly for tests and tools
func StaticCredentials(c Credentials) CredentialSource {
	return func() (Credentials, error) {
		return c, nil
	}
}

// DriverName - the database/sql driver registered for the credentials
func (c Credentials) DriverName() (string, error) {
	switch c.Driver {
	case MySQL, Postgres, SQLite:
		return c.Driver, nil
	default:
		return "", fault.ErrUnsupportedDriver
	}
}

// DSN - data source name for the driver
func (c Credentials) DSN() (string, error) {
	switch c.Driver {

	case MySQL:
		cfg := mysql.NewConfig()
		cfg.User = c.User
		cfg.Passwd = c.Password
		cfg.Net = "tcp"
		cfg.Addr = c.Host
		cfg.DBName = c.Database
		cfg.ParseTime = true

		// affected rows must count matched rows for compare-and-swap updates
		cfg.ClientFoundRows = true
		return cfg.FormatDSN(), nil

	case Postgres:
		u := url.URL{
			Scheme: "postgres",
			Host:   c.Host,
			Path:   "/" + c.Database,
		}
		if "" != c.User {
			u.User = url.UserPassword(c.User, c.Password)
		}
		if "" != c.SSLMode {
			q := url.Values{}
			q.Set("sslmode", c.SSLMode)
			u.RawQuery = q.Encode()
		}
		return u.String(), nil

	case SQLite:
		if "" == c.Database {
			return "", fault.ErrMissingParameters
		}
		return "file:" + c.Database + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil

	default:
		return "", fault.ErrUnsupportedDriver
	}
}

// String - safe for logging, never shows the password
func (c Credentials) String() string {
	return c.Driver + "://" + c.User + "@" + c.Host + "/" + c.Database
}
