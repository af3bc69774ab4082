// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import (
	"context"
	"fmt"

	"github.com/tugascript/devlogs/appsearch/internal/config"
)

// Pool hands out connections to the catalog store. Acquire blocks while every
// connection is checked out.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
	Ping(ctx context.Context) error
	Stat() PoolStat
	Close()
}

// Conn is a borrowed connection. Release must be called exactly once.
type Conn interface {
	FindAppsByName(ctx context.Context, arg FindAppsByNameParams) ([]App, error)
	Ping(ctx context.Context) error
	Release()
}

type PoolStat struct {
	AcquiredConns int32
	IdleConns     int32
	TotalConns    int32
	MaxConns      int32
}

type Database struct {
	connPool Pool
}

func NewDatabase(connPool Pool) *Database {
	return &Database{connPool: connPool}
}

// Connect builds the pool for the configured driver. Neither backend dials at
// construction time, so an unreachable store does not fail here.
func Connect(ctx context.Context, dbCfg config.DatabaseConfig) (*Database, error) {
	var connPool Pool
	var err error

	switch dbCfg.Driver() {
	case config.DriverPostgres:
		connPool, err = NewPostgresPool(ctx, dbCfg)
	case config.DriverSQLite:
		connPool, err = NewSQLitePool(dbCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", dbCfg.Driver())
	}
	if err != nil {
		return nil, err
	}

	return NewDatabase(connPool), nil
}

func (d *Database) Acquire(ctx context.Context) (Conn, error) {
	return d.connPool.Acquire(ctx)
}

func (d *Database) Ping(ctx context.Context) error {
	return d.connPool.Ping(ctx)
}

// CheckLiveness borrows a single connection, pings the store through it and
// gives it back.
func (d *Database) CheckLiveness(ctx context.Context) error {
	conn, err := d.connPool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return conn.Ping(ctx)
}

func (d *Database) Stat() PoolStat {
	return d.connPool.Stat()
}

// Close waits for borrowed connections to come back and closes the pool.
func (d *Database) Close() {
	d.connPool.Close()
}
