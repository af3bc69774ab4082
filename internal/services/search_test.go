// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/mattn/go-sqlite3"

	"github.com/tugascript/devlogs/appsearch/internal/exceptions"
	"github.com/tugascript/devlogs/appsearch/internal/providers/database"
	"github.com/tugascript/devlogs/appsearch/internal/testutils"
)

type countingPool struct {
	mu         sync.Mutex
	acquired   int
	released   int
	acquireErr error
	queryErr   error
	apps       []database.App
	lastParams database.FindAppsByNameParams
}

func (p *countingPool) Acquire(_ context.Context) (database.Conn, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquired++
	return &countingConn{pool: p}, nil
}

func (p *countingPool) Ping(_ context.Context) error {
	return p.acquireErr
}

func (p *countingPool) Stat() database.PoolStat {
	p.mu.Lock()
	defer p.mu.Unlock()
	return database.PoolStat{
		AcquiredConns: int32(p.acquired - p.released),
		MaxConns:      4,
	}
}

func (p *countingPool) Close() {}

type countingConn struct {
	pool *countingPool
}

func (c *countingConn) FindAppsByName(_ context.Context, arg database.FindAppsByNameParams) ([]database.App, error) {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	c.pool.lastParams = arg

	if c.pool.queryErr != nil {
		return nil, c.pool.queryErr
	}

	end := int(arg.Offset) + int(arg.Limit)
	if end > len(c.pool.apps) {
		end = len(c.pool.apps)
	}
	if int(arg.Offset) >= end {
		return []database.App{}, nil
	}

	return c.pool.apps[arg.Offset:end], nil
}

func (c *countingConn) Ping(_ context.Context) error {
	return nil
}

func (c *countingConn) Release() {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	c.pool.released++
}

func fakeApps(count int) []database.App {
	apps := make([]database.App, count)
	for i := range apps {
		apps[i] = database.App{
			Columns: []string{"name", "content_rating", "installs"},
			Values:  []interface{}{fmt.Sprintf("Chess %02d", i), "Everyone", int64(i * 1000)},
		}
	}
	return apps
}

func newTestServices(pool database.Pool) *Services {
	return NewServices(testutils.DiscardLogger(), database.NewDatabase(pool), nil)
}

func TestSearchApps(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the first page and release the connection", func(t *testing.T) {
		pool := &countingPool{apps: fakeApps(23)}
		result, serviceErr := newTestServices(pool).SearchApps(ctx, SearchAppsOptions{
			RequestID: "test",
			Query:     "Chess",
		})
		if serviceErr != nil {
			t.Fatal("Unexpected service error", serviceErr)
		}

		testutils.AssertEqual(t, len(result.Apps), PageSize)
		testutils.AssertEqual(t, result.HasResult(), true)
		testutils.AssertEqual(t, result.Apps[0].Name, "Chess 00")
		testutils.AssertEqual(t, result.Apps[3].Values[2], "3000")
		testutils.AssertEqual(t, len(result.Columns), 3)
		testutils.AssertEqual(t, result.Columns[1], "Content Rating")
		testutils.AssertEqual(t, result.Pagination.IsFirstPage, true)
		testutils.AssertEqual(t, result.Pagination.IsLastPage, false)
		testutils.AssertEqual(t, pool.lastParams.Name, "%Chess%")
		testutils.AssertEqual(t, pool.lastParams.Limit, int32(PageSize))
		testutils.AssertEqual(t, pool.lastParams.Offset, int32(0))
		testutils.AssertEqual(t, pool.acquired, 1)
		testutils.AssertEqual(t, pool.released, 1)
	})

	t.Run("Should return the last partial page", func(t *testing.T) {
		pool := &countingPool{apps: fakeApps(23)}
		result, serviceErr := newTestServices(pool).SearchApps(ctx, SearchAppsOptions{
			RequestID: "test",
			Query:     "Chess",
			Offset:    20,
		})
		if serviceErr != nil {
			t.Fatal("Unexpected service error", serviceErr)
		}

		testutils.AssertEqual(t, len(result.Apps), 3)
		testutils.AssertEqual(t, result.Pagination.PreviousOffset, 10)
		testutils.AssertEqual(t, result.Pagination.NextOffset, 30)
		testutils.AssertEqual(t, result.Pagination.IsFirstPage, false)
		testutils.AssertEqual(t, result.Pagination.IsLastPage, true)
		testutils.AssertEqual(t, pool.lastParams.Offset, int32(20))
	})

	t.Run("Should match everything with an empty query", func(t *testing.T) {
		pool := &countingPool{apps: fakeApps(5)}
		result, serviceErr := newTestServices(pool).SearchApps(ctx, SearchAppsOptions{RequestID: "test"})
		if serviceErr != nil {
			t.Fatal("Unexpected service error", serviceErr)
		}

		testutils.AssertEqual(t, pool.lastParams.Name, "%%")
		testutils.AssertEqual(t, len(result.Apps), 5)
		testutils.AssertEqual(t, result.Pagination.IsLastPage, true)
	})

	t.Run("Should return an empty page past the end", func(t *testing.T) {
		pool := &countingPool{apps: fakeApps(5)}
		result, serviceErr := newTestServices(pool).SearchApps(ctx, SearchAppsOptions{
			RequestID: "test",
			Query:     "Chess",
			Offset:    50,
		})
		if serviceErr != nil {
			t.Fatal("Unexpected service error", serviceErr)
		}

		testutils.AssertEqual(t, result.HasResult(), false)
		testutils.AssertEqual(t, len(result.Columns), 0)
		testutils.AssertEqual(t, result.Pagination.IsLastPage, true)
	})

	t.Run("Should release the connection when the query fails", func(t *testing.T) {
		pool := &countingPool{queryErr: errors.New("connection reset")}
		_, serviceErr := newTestServices(pool).SearchApps(ctx, SearchAppsOptions{
			RequestID: "test",
			Query:     "Chess",
		})
		if serviceErr == nil {
			t.Fatal("Expected a service error")
		}

		testutils.AssertEqual(t, exceptions.NewRequestErrorStatus(serviceErr.Code), http.StatusInternalServerError)
		testutils.AssertEqual(t, pool.acquired, 1)
		testutils.AssertEqual(t, pool.released, 1)
	})

	t.Run("Should map a malformed query to a server error", func(t *testing.T) {
		pool := &countingPool{queryErr: sqlite3.Error{Code: sqlite3.ErrError}}
		_, serviceErr := newTestServices(pool).SearchApps(ctx, SearchAppsOptions{RequestID: "test"})
		if serviceErr == nil {
			t.Fatal("Expected a service error")
		}

		testutils.AssertEqual(t, serviceErr.Code, exceptions.CodeServerError)
		testutils.AssertEqual(t, serviceErr.Message, exceptions.MessageInvalidQuery)
		testutils.AssertEqual(t, pool.acquired, pool.released)
	})

	t.Run("Should not release when no connection was acquired", func(t *testing.T) {
		pool := &countingPool{acquireErr: errors.New("too many clients")}
		_, serviceErr := newTestServices(pool).SearchApps(ctx, SearchAppsOptions{RequestID: "test"})
		if serviceErr == nil {
			t.Fatal("Expected a service error")
		}

		testutils.AssertEqual(t, serviceErr.Code, exceptions.CodeUnavailable)
		testutils.AssertEqual(t, exceptions.NewRequestErrorStatus(serviceErr.Code), http.StatusServiceUnavailable)
		testutils.AssertEqual(t, pool.acquired, 0)
		testutils.AssertEqual(t, pool.released, 0)
	})

	t.Run("Should keep the pool balanced across concurrent searches", func(t *testing.T) {
		pool := &countingPool{apps: fakeApps(40)}
		serv := newTestServices(pool)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(offset int) {
				defer wg.Done()
				serv.SearchApps(ctx, SearchAppsOptions{RequestID: "test", Query: "Chess", Offset: offset})
			}(i * PageSize)
		}
		wg.Wait()

		testutils.AssertEqual(t, pool.acquired, 20)
		testutils.AssertEqual(t, pool.released, 20)
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be healthy without a cache", func(t *testing.T) {
		pool := &countingPool{}
		if serviceErr := newTestServices(pool).HealthCheck(ctx, "test"); serviceErr != nil {
			t.Fatal("Unexpected service error", serviceErr)
		}
	})

	t.Run("Should fail when the database is unreachable", func(t *testing.T) {
		pool := &countingPool{acquireErr: errors.New("connection refused")}
		serviceErr := newTestServices(pool).HealthCheck(ctx, "test")
		if serviceErr == nil {
			t.Fatal("Expected a service error")
		}

		testutils.AssertEqual(t, serviceErr.Code, exceptions.CodeServerError)
	})
}
