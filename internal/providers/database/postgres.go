// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tugascript/devlogs/appsearch/internal/config"
)

const findAppsByNamePostgres = `-- name: FindAppsByName :many
SELECT * FROM "apps"
WHERE "name" LIKE $1
LIMIT $2 OFFSET $3
`

type postgresPool struct {
	connPool *pgxpool.Pool
}

func NewPostgresPool(ctx context.Context, dbCfg config.DatabaseConfig) (Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dbCfg.URL())
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	poolCfg.MaxConns = int32(dbCfg.ConnectionLimit())
	poolCfg.MinConns = 0
	if tz := dbCfg.Timezone(); tz != "" {
		poolCfg.ConnConfig.RuntimeParams["timezone"] = tz
	}

	connPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &postgresPool{connPool: connPool}, nil
}

func (p *postgresPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.connPool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	return &postgresConn{conn: conn}, nil
}

func (p *postgresPool) Ping(ctx context.Context) error {
	return p.connPool.Ping(ctx)
}

func (p *postgresPool) Stat() PoolStat {
	stat := p.connPool.Stat()
	return PoolStat{
		AcquiredConns: stat.AcquiredConns(),
		IdleConns:     stat.IdleConns(),
		TotalConns:    stat.TotalConns(),
		MaxConns:      stat.MaxConns(),
	}
}

func (p *postgresPool) Close() {
	p.connPool.Close()
}

type postgresConn struct {
	conn *pgxpool.Conn
}

func (c *postgresConn) FindAppsByName(ctx context.Context, arg FindAppsByNameParams) ([]App, error) {
	rows, err := c.conn.Query(ctx, findAppsByNamePostgres, arg.Name, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, rowToApp)
}

func (c *postgresConn) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c *postgresConn) Release() {
	c.conn.Release()
}

func rowToApp(row pgx.CollectableRow) (App, error) {
	values, err := row.Values()
	if err != nil {
		return App{}, err
	}

	fields := row.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name
	}

	return App{Columns: columns, Values: values}, nil
}
