// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tugascript/devlogs/appsearch/internal/controllers/params"
	"github.com/tugascript/devlogs/appsearch/internal/services"
	"github.com/tugascript/devlogs/appsearch/internal/services/templates"
)

const searchLocation string = "search"

func (c *Controllers) Home(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, searchLocation, "Home")
	logRequest(logger, ctx)

	page, err := templates.BuildIndexTemplate()
	if err != nil {
		return templateErrorResponse(logger, ctx, err)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return htmlResponse(ctx, fiber.StatusOK, page)
}

func (c *Controllers) SearchApps(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, searchLocation, "SearchApps")
	logRequest(logger, ctx)

	queryParams := params.SearchQueryParams{
		Q:             ctx.Query("q"),
		CurrentOffset: params.ParseOffset(ctx.Query("currentOffset")),
	}
	if err := c.validate.StructCtx(ctx.UserContext(), &queryParams); err != nil {
		return validateQueryParamsErrorResponse(logger, ctx, err)
	}

	result, serviceErr := c.services.SearchApps(ctx.UserContext(), services.SearchAppsOptions{
		RequestID: requestID,
		Query:     queryParams.Q,
		Offset:    queryParams.CurrentOffset,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	page, err := templates.BuildResultTemplate(&result)
	if err != nil {
		return templateErrorResponse(logger, ctx, err)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return htmlResponse(ctx, fiber.StatusOK, page)
}
