// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/tugascript/devlogs/appsearch/internal/config"
	"github.com/tugascript/devlogs/appsearch/internal/controllers"
	"github.com/tugascript/devlogs/appsearch/internal/providers/cache"
	"github.com/tugascript/devlogs/appsearch/internal/providers/database"
	"github.com/tugascript/devlogs/appsearch/internal/server/routes"
	"github.com/tugascript/devlogs/appsearch/internal/server/validations"
	"github.com/tugascript/devlogs/appsearch/internal/services"
	"github.com/tugascript/devlogs/appsearch/internal/utils"
)

type FiberServer struct {
	*fiber.App
	routes    *routes.Routes
	database  *database.Database
	cache     *cache.Cache
	publicDir string
}

// New builds the providers from the configuration and panics only when the
// connection pool cannot be configured.
func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
) *FiberServer {
	var cc *cache.Cache
	if redisURL := cfg.RedisURL(); redisURL != "" {
		logger.InfoContext(ctx, "Building redis storage...")
		cc = cache.NewCache(logger, cache.NewStorage(redisURL))
		logger.InfoContext(ctx, "Finished building redis storage")
	}

	logger.InfoContext(ctx, "Building database connection pool...")
	dbCfg := cfg.DatabaseConfig()
	logger.InfoContext(ctx, "Database configuration", "database", dbCfg.String())
	db, err := database.Connect(ctx, dbCfg)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to configure database connection pool", "error", err)
		panic(err)
	}
	logger.InfoContext(ctx, "Finished building database connection pool")

	return NewWithProviders(ctx, logger, cfg, db, cc)
}

// NewWithProviders wires an already built pool and optional cache into the
// fiber app.
func NewWithProviders(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
	db *database.Database,
	cc *cache.Cache,
) *FiberServer {
	logger.InfoContext(ctx, "Building services...")
	newServices := services.NewServices(logger, db, cc)
	logger.InfoContext(ctx, "Finished building services")

	logger.InfoContext(ctx, "Loading validators...")
	vld := validations.NewValidator(logger)
	logger.InfoContext(ctx, "Finished loading validators")

	ctrls := controllers.NewControllers(logger, newServices, vld)
	serviceName := cfg.ServiceName()
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: serviceName,
			AppName:      serviceName,
			ErrorHandler: ctrls.ErrorHandler,
		}),
		routes:    routes.NewRoutes(ctrls),
		database:  db,
		cache:     cc,
		publicDir: cfg.PublicDir(),
	}

	logger.InfoContext(ctx, "Loading middleware...")
	server.Use(fiberRecover.New())
	server.Use(helmet.New())
	server.Use(requestid.New(requestid.Config{
		Header: fiber.HeaderXRequestID,
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	rateLimitCfg := cfg.RateLimiterConfig()
	if rateLimitCfg.Enabled() {
		limiterCfg := limiter.Config{
			Max:               int(rateLimitCfg.Max()),
			Expiration:        utils.ToSecondsDuration(rateLimitCfg.ExpSec()),
			LimiterMiddleware: limiter.SlidingWindow{},
		}
		if cc != nil {
			limiterCfg.Storage = cc.Storage()
		}
		server.Use(limiter.New(limiterCfg))
	}
	logger.InfoContext(ctx, "Finished loading common middlewares")

	return server
}

func (s *FiberServer) Database() *database.Database {
	return s.database
}

// Cache is nil when redis is not configured.
func (s *FiberServer) Cache() *cache.Cache {
	return s.cache
}
