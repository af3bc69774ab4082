// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package exceptions

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const (
	CodeValidation  string = "VALIDATION"
	CodeNotFound    string = "NOT_FOUND"
	CodeUnknown     string = "UNKNOWN"
	CodeServerError string = "SERVER_ERROR"
	CodeUnavailable string = "UNAVAILABLE"
)

const (
	MessageUnknown      string = "Something went wrong"
	MessageUnavailable  string = "The catalog is currently unavailable"
	MessageInvalidQuery string = "The search could not be performed"
)

type ServiceError struct {
	Code    string
	Message string
}

func NewError(code string, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

func NewServerError() *ServiceError {
	return NewError(CodeServerError, MessageUnknown)
}

func NewUnavailableError() *ServiceError {
	return NewError(CodeUnavailable, MessageUnavailable)
}

func (e *ServiceError) Error() string {
	return e.Message
}

// FromPoolError maps a failed connection acquisition.
func FromPoolError(_ error) *ServiceError {
	return NewUnavailableError()
}

// FromDBError maps a failed query. Every query failure is a server error; only
// the message varies.
func FromDBError(err error) *ServiceError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "42") {
			return NewError(CodeServerError, MessageInvalidQuery)
		}
		return NewError(CodeServerError, MessageUnknown)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrError {
		return NewError(CodeServerError, MessageInvalidQuery)
	}

	return NewError(CodeUnknown, MessageUnknown)
}
