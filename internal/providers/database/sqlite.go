package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"github.com/tugascript/devlogs/appsearch/internal/config"
)

const findAppsByNameSQLite = `SELECT * FROM apps WHERE name LIKE ? LIMIT ? OFFSET ?`

type sqlitePool struct {
	db *sql.DB
}

func NewSQLitePool(dbCfg config.DatabaseConfig) (Pool, error) {
	db, err := sql.Open("sqlite3", dbCfg.Path()+"?_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	maxConns := int(dbCfg.ConnectionLimit())
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)

	return &sqlitePool{db: db}, nil
}

func (p *sqlitePool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	return &sqliteConn{conn: conn}, nil
}

func (p *sqlitePool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *sqlitePool) Stat() PoolStat {
	stat := p.db.Stats()
	return PoolStat{
		AcquiredConns: int32(stat.InUse),
		IdleConns:     int32(stat.Idle),
		TotalConns:    int32(stat.OpenConnections),
		MaxConns:      int32(stat.MaxOpenConnections),
	}
}

func (p *sqlitePool) Close() {
	// waits for queries that already started to finish
	_ = p.db.Close()
}

type sqliteConn struct {
	conn *sql.Conn
}

func (c *sqliteConn) FindAppsByName(ctx context.Context, arg FindAppsByNameParams) ([]App, error) {
	rows, err := c.conn.QueryContext(ctx, findAppsByNameSQLite, arg.Name, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	apps := make([]App, 0, arg.Limit)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		apps = append(apps, App{Columns: columns, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

func (c *sqliteConn) Ping(ctx context.Context) error {
	return c.conn.PingContext(ctx)
}

func (c *sqliteConn) Release() {
	_ = c.conn.Close()
}
