// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/tugascript/devlogs/appsearch/internal/exceptions"
	"github.com/tugascript/devlogs/appsearch/internal/services/templates"
	"github.com/tugascript/devlogs/appsearch/internal/utils"
)

const errorsLocation string = "errors"

func (c *Controllers) buildLogger(
	requestID,
	location,
	method string,
) *slog.Logger {
	return utils.BuildLogger(c.logger, utils.LoggerOptions{
		Layer:     utils.ControllersLogLayer,
		Location:  location,
		Method:    method,
		RequestID: requestID,
	})
}

func logRequest(logger *slog.Logger, ctx *fiber.Ctx) {
	logger.InfoContext(
		ctx.UserContext(),
		fmt.Sprintf("Request: %s %s", ctx.Method(), ctx.Path()),
	)
}

func getRequestID(ctx *fiber.Ctx) string {
	if requestID, ok := ctx.Locals(requestid.ConfigDefault.ContextKey).(string); ok && requestID != "" {
		return requestID
	}

	return ctx.Get(fiber.HeaderXRequestID, uuid.NewString())
}

func logResponse(logger *slog.Logger, ctx *fiber.Ctx, status int) {
	logger.InfoContext(
		ctx.UserContext(),
		fmt.Sprintf("Response: %s %s", ctx.Method(), ctx.Path()),
		"status", status,
	)
}

func htmlResponse(ctx *fiber.Ctx, status int, page string) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(status).SendString(page)
}

// errorPageResponse always completes the response, falling back to plain text
// when the error page itself cannot be built.
func errorPageResponse(logger *slog.Logger, ctx *fiber.Ctx, status int, message string) error {
	logResponse(logger, ctx, status)

	page, err := templates.BuildErrorTemplate(status, message)
	if err != nil {
		logger.ErrorContext(ctx.UserContext(), "Failed to build error page", "error", err)
		return ctx.Status(status).SendString(message)
	}

	return htmlResponse(ctx, status, page)
}

func validationErrorMessage(res *exceptions.ValidationErrorResponse) string {
	if len(res.Fields) == 0 {
		return res.Message
	}

	messages := make([]string, len(res.Fields))
	for i, field := range res.Fields {
		messages[i] = field.Param + " " + field.Message
	}

	return res.Message + ": " + strings.Join(messages, ", ")
}

func validateErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, location string, err error) error {
	logger.WarnContext(ctx.UserContext(), "Failed to validate request", "error", err)

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		res := exceptions.NewEmptyValidationErrorResponse(location)
		return errorPageResponse(logger, ctx, fiber.StatusBadRequest, validationErrorMessage(&res))
	}

	res := exceptions.ValidationErrorResponseFromErr(&errs, location)
	return errorPageResponse(logger, ctx, fiber.StatusBadRequest, validationErrorMessage(&res))
}

func validateQueryParamsErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, err error) error {
	return validateErrorResponse(logger, ctx, exceptions.ValidationResponseLocationQuery, err)
}

func serviceErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, serviceErr *exceptions.ServiceError) error {
	status := exceptions.NewRequestErrorStatus(serviceErr.Code)
	resErr := exceptions.NewErrorResponse(serviceErr)
	return errorPageResponse(logger, ctx, status, resErr.Message)
}

func templateErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, err error) error {
	logger.ErrorContext(ctx.UserContext(), "Failed to build page", "error", err)
	return errorPageResponse(logger, ctx, fiber.StatusInternalServerError, exceptions.MessageUnknown)
}

// ErrorHandler renders whatever escapes the handlers, unknown routes and
// recovered panics included, as an HTML error page.
func (c *Controllers) ErrorHandler(ctx *fiber.Ctx, err error) error {
	logger := c.buildLogger(getRequestID(ctx), errorsLocation, "ErrorHandler")

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errorPageResponse(logger, ctx, fiberErr.Code, fiberErr.Message)
	}

	logger.ErrorContext(ctx.UserContext(), "Unhandled error", "error", err)
	return errorPageResponse(logger, ctx, fiber.StatusInternalServerError, exceptions.MessageUnknown)
}
