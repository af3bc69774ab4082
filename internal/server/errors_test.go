// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/tugascript/devlogs/appsearch/internal/testutils"
)

func TestErrorHandler(t *testing.T) {
	server := newTestServer(t, createTestCatalog(t))
	server.Get("/panic", func(_ *fiber.Ctx) error {
		panic("boom")
	})
	server.Get("/teapot", func(_ *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	testCases := []testutils.TestRequestCase{
		{
			Name:      "Should render a recovered panic as a server error",
			Path:      "/panic",
			ExpStatus: http.StatusInternalServerError,
			AssertFn: func(t *testing.T, body string, _ *http.Response) {
				testutils.AssertContains(t, body, "500 Internal Server Error")
				testutils.AssertNotContains(t, body, "boom")
			},
		},
		{
			Name:      "Should keep the status of a fiber error",
			Path:      "/teapot",
			ExpStatus: http.StatusTeapot,
			AssertFn: func(t *testing.T, body string, _ *http.Response) {
				testutils.AssertContains(t, body, "short and stout")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			testutils.PerformTestRequestCase(t, server.App, http.MethodGet, tc)
		})
	}
}
