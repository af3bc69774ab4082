// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tugascript/devlogs/appsearch/internal/config"
	"github.com/tugascript/devlogs/appsearch/internal/testutils"
)

const createTestAppsTable = `CREATE TABLE apps (
	name TEXT NOT NULL,
	category TEXT,
	rating REAL,
	reviews INTEGER,
	content_rating TEXT,
	last_updated TEXT
)`

type fakeAppData struct {
	Word     string  `faker:"word"`
	Category string  `faker:"oneof: GAME, FAMILY, TOOLS, PRODUCTIVITY"`
	Rating   float64 `faker:"oneof: 3.5, 4.1, 4.7"`
	Reviews  int64   `faker:"boundary_start=0, boundary_end=100000"`
	Date     string  `faker:"date"`
}

func insertTestApps(t *testing.T, db *sql.DB, prefix string, count int) {
	for i := 0; i < count; i++ {
		data := fakeAppData{}
		if err := faker.FakeData(&data); err != nil {
			t.Fatal("Failed to generate fake data", err)
		}

		if _, err := db.Exec(
			`INSERT INTO apps (name, category, rating, reviews, content_rating, last_updated) VALUES (?, ?, ?, ?, ?, ?)`,
			fmt.Sprintf("%s %s %02d", prefix, data.Word, i),
			data.Category,
			data.Rating,
			data.Reviews,
			"Everyone",
			data.Date,
		); err != nil {
			t.Fatal("Failed to insert app", err)
		}
	}
}

// createTestCatalog writes 23 "Chess" apps and 2 "Solitaire" apps.
func createTestCatalog(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "playstore.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal("Failed to open sqlite database", err)
	}
	defer db.Close()

	if _, err := db.Exec(createTestAppsTable); err != nil {
		t.Fatal("Failed to create apps table", err)
	}
	insertTestApps(t, db, "Chess", 23)
	insertTestApps(t, db, "Solitaire", 2)

	return path
}

func createEmptyCatalog(t *testing.T) string {
	return filepath.Join(t.TempDir(), "empty.db")
}

func newTestServer(t *testing.T, dbPath string) *FiberServer {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "test")
	t.Setenv("PUBLIC_DIR", filepath.Join("..", "..", "public"))
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("DB_CONNECTION_LIMIT", "2")
	t.Setenv("REDIS_URL", "")
	t.Setenv("RATE_LIMITER_MAX", "0")

	logger := testutils.DiscardLogger()
	cfg := config.NewConfig(logger, filepath.Join(t.TempDir(), ".env"), nil)
	server := New(context.Background(), logger, cfg)
	server.RegisterFiberRoutes()
	t.Cleanup(server.Database().Close)

	return server
}
