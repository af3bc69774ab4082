// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func AssertEqual[V comparable](t *testing.T, actual, expected V) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Actual: %v, Expected: %v", actual, expected)
	}
}

func AssertNotEmpty[V comparable](t *testing.T, actual V) {
	t.Helper()
	var empty V
	if actual == empty {
		t.Fatal("Value is empty")
	}
}

func AssertContains(t *testing.T, actual, expected string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Fatalf("%q not found in: %s", expected, actual)
	}
}

func AssertNotContains(t *testing.T, actual, unexpected string) {
	t.Helper()
	if strings.Contains(actual, unexpected) {
		t.Fatalf("%q unexpectedly found in: %s", unexpected, actual)
	}
}

func AssertTestStatusCode(t *testing.T, resp *http.Response, expectedStatusCode int) {
	t.Helper()
	if resp.StatusCode != expectedStatusCode {
		t.Logf("Status Code: %d", resp.StatusCode)
		t.Fatal("Failed to assert status code")
	}
}

func PerformTestRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Accept", "text/html")

	resp, err := app.Test(req, 2000)
	if err != nil {
		t.Fatal("Failed to perform request", err)
	}

	return resp
}

func ReadTestResponseBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal("Failed to read response body", err)
	}

	return string(body)
}

type TestRequestCase struct {
	Name      string
	Path      string
	ExpStatus int
	AssertFn  func(t *testing.T, body string, res *http.Response)
}

func PerformTestRequestCase(t *testing.T, app *fiber.App, method string, tc TestRequestCase) {
	t.Helper()

	// Act
	resp := PerformTestRequest(t, app, method, tc.Path)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	// Assert
	AssertTestStatusCode(t, resp, tc.ExpStatus)
	if tc.AssertFn != nil {
		tc.AssertFn(t, ReadTestResponseBody(t, resp), resp)
	}
}
