// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"

	"github.com/tugascript/devlogs/appsearch/internal/exceptions"
	"github.com/tugascript/devlogs/appsearch/internal/providers/database"
	"github.com/tugascript/devlogs/appsearch/internal/services/dtos"
	"github.com/tugascript/devlogs/appsearch/internal/utils"
)

const searchLocation string = "search"

type SearchAppsOptions struct {
	RequestID string
	Query     string
	Offset    int
}

func (s *Services) SearchApps(
	ctx context.Context,
	opts SearchAppsOptions,
) (dtos.SearchResultDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, searchLocation, "SearchApps").With(
		"query", opts.Query,
		"offset", opts.Offset,
	)
	logger.InfoContext(ctx, "Searching apps...")

	conn, err := s.database.Acquire(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to acquire database connection", "error", err)
		return dtos.SearchResultDTO{}, exceptions.FromPoolError(err)
	}
	defer conn.Release()

	apps, err := conn.FindAppsByName(ctx, database.FindAppsByNameParams{
		Name:   utils.DbSearch(opts.Query),
		Limit:  int32(PageSize),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to find apps by name", "error", err)
		return dtos.SearchResultDTO{}, exceptions.FromDBError(err)
	}

	logger.DebugContext(ctx, "Found apps", "count", len(apps))
	return dtos.NewSearchResultDTO(
		opts.Query,
		opts.Offset,
		utils.MapSlice(apps, dtos.MapAppToDTO),
		Paginate(opts.Offset, len(apps)),
	), nil
}
