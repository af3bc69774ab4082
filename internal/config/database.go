// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

const (
	DriverPostgres string = "postgres"
	DriverSQLite   string = "sqlite"
)

type DatabaseConfig struct {
	driver          string
	host            string
	port            int64
	name            string
	user            string
	password        string
	connectionLimit int64
	timezone        string
	path            string
}

func NewDatabaseConfig(
	driver,
	host string,
	port int64,
	name,
	user,
	password string,
	connectionLimit int64,
	timezone,
	path string,
) DatabaseConfig {
	return DatabaseConfig{
		driver:          driver,
		host:            host,
		port:            port,
		name:            name,
		user:            user,
		password:        password,
		connectionLimit: connectionLimit,
		timezone:        timezone,
		path:            path,
	}
}

func (d *DatabaseConfig) Driver() string {
	return d.driver
}

func (d *DatabaseConfig) Host() string {
	return d.host
}

func (d *DatabaseConfig) Port() int64 {
	return d.port
}

func (d *DatabaseConfig) Name() string {
	return d.name
}

func (d *DatabaseConfig) User() string {
	return d.user
}

func (d *DatabaseConfig) Password() string {
	return d.password
}

func (d *DatabaseConfig) ConnectionLimit() int64 {
	return d.connectionLimit
}

func (d *DatabaseConfig) Timezone() string {
	return d.timezone
}

func (d *DatabaseConfig) Path() string {
	return d.path
}

// URL builds the postgres connection string. Credentials are only included
// when set.
func (d *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.host, strconv.FormatInt(d.port, 10)),
		Path:   "/" + d.name,
	}

	switch {
	case d.user != "" && d.password != "":
		u.User = url.UserPassword(d.user, d.password)
	case d.user != "":
		u.User = url.User(d.user)
	}

	return u.String()
}

// String is safe to log.
func (d *DatabaseConfig) String() string {
	if d.driver == DriverSQLite {
		return fmt.Sprintf("sqlite %s (max %d connections)", d.path, d.connectionLimit)
	}

	return fmt.Sprintf("postgres %s:%d/%s (max %d connections)", d.host, d.port, d.name, d.connectionLimit)
}
