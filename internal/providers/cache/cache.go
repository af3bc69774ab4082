// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cache

import (
	"context"
	"log/slog"

	fiberRedis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/tugascript/devlogs/appsearch/internal/utils"
)

const logLayer string = utils.ProvidersLogLayer + "/cache"

// Cache holds the shared redis storage. Only the rate limiter writes to it;
// search results are never cached.
type Cache struct {
	logger  *slog.Logger
	storage *fiberRedis.Storage
}

func NewCache(logger *slog.Logger, storage *fiberRedis.Storage) *Cache {
	return &Cache{
		logger:  logger.With(utils.BaseLayer, logLayer),
		storage: storage,
	}
}

// NewStorage returns nil when no redis url is configured, leaving the rate
// limiter on its in-memory store.
func NewStorage(redisURL string) *fiberRedis.Storage {
	if redisURL == "" {
		return nil
	}

	return fiberRedis.New(fiberRedis.Config{
		URL: redisURL,
	})
}

func (c *Cache) Storage() *fiberRedis.Storage {
	return c.storage
}

func (c *Cache) Client() redis.UniversalClient {
	return c.storage.Conn()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.Client().Ping(ctx).Err()
}

func (c *Cache) Close() error {
	c.logger.Info("Closing redis storage...")
	return c.storage.Close()
}
