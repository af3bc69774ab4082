// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"path/filepath"
	"testing"

	"github.com/tugascript/devlogs/appsearch/internal/testutils"
)

func TestResolvePort(t *testing.T) {
	testCases := []struct {
		name       string
		candidates []string
		expected   int64
	}{
		{"argument wins over environment", []string{"8080", "9090"}, 8080},
		{"environment when no argument", []string{"", "9090"}, 9090},
		{"default when nothing is set", []string{"", ""}, DefaultPort},
		{"non-numeric argument falls through", []string{"http", "9090"}, 9090},
		{"zero falls through", []string{"0", ""}, DefaultPort},
		{"negative falls through", []string{"-1", "-2"}, DefaultPort},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testutils.AssertEqual(t, ResolvePort(tc.candidates...), tc.expected)
		})
	}
}

func missingEnvPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func clearEnv(t *testing.T) {
	for variable := range defaults {
		t.Setenv(variable, "")
	}
	for _, variable := range optionalVariables {
		t.Setenv(variable, "")
	}
	t.Setenv("PORT", "")
}

func TestNewConfig(t *testing.T) {
	t.Run("Should apply the defaults", func(t *testing.T) {
		clearEnv(t)
		cfg := NewConfig(testutils.DiscardLogger(), missingEnvPath(t), nil)

		testutils.AssertEqual(t, cfg.Port(), DefaultPort)
		testutils.AssertEqual(t, cfg.PublicDir(), "public")
		testutils.AssertEqual(t, cfg.RedisURL(), "")

		dbCfg := cfg.DatabaseConfig()
		testutils.AssertEqual(t, dbCfg.Driver(), DriverPostgres)
		testutils.AssertEqual(t, dbCfg.Host(), "localhost")
		testutils.AssertEqual(t, dbCfg.Port(), int64(5432))
		testutils.AssertEqual(t, dbCfg.Name(), "playstore")
		testutils.AssertEqual(t, dbCfg.User(), "")
		testutils.AssertEqual(t, dbCfg.ConnectionLimit(), int64(4))
		testutils.AssertEqual(t, dbCfg.Timezone(), "Asia/Singapore")

		rateLimiterCfg := cfg.RateLimiterConfig()
		testutils.AssertEqual(t, rateLimiterCfg.Enabled(), true)
	})

	t.Run("Should read the environment and the port argument", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "4000")
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("DB_CONNECTION_LIMIT", "8")
		t.Setenv("DB_USER", "reader")
		t.Setenv("RATE_LIMITER_MAX", "0")

		cfg := NewConfig(testutils.DiscardLogger(), missingEnvPath(t), []string{"5000"})
		testutils.AssertEqual(t, cfg.Port(), int64(5000))

		dbCfg := cfg.DatabaseConfig()
		testutils.AssertEqual(t, dbCfg.Driver(), DriverSQLite)
		testutils.AssertEqual(t, dbCfg.ConnectionLimit(), int64(8))
		testutils.AssertEqual(t, dbCfg.User(), "reader")

		rateLimiterCfg := cfg.RateLimiterConfig()
		testutils.AssertEqual(t, rateLimiterCfg.Enabled(), false)
	})

	t.Run("Should fall back to PORT when the argument is invalid", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "4000")

		cfg := NewConfig(testutils.DiscardLogger(), missingEnvPath(t), []string{"--verbose"})
		testutils.AssertEqual(t, cfg.Port(), int64(4000))
	})

	t.Run("Should use the defaults for a non-positive pool size or port", func(t *testing.T) {
		testCases := []struct {
			limit string
			port  string
		}{
			{"0", "0"},
			{"-3", "-5432"},
		}

		for _, tc := range testCases {
			clearEnv(t)
			t.Setenv("DB_CONNECTION_LIMIT", tc.limit)
			t.Setenv("DB_PORT", tc.port)

			cfg := NewConfig(testutils.DiscardLogger(), missingEnvPath(t), nil)
			dbCfg := cfg.DatabaseConfig()
			testutils.AssertEqual(t, dbCfg.ConnectionLimit(), int64(4))
			testutils.AssertEqual(t, dbCfg.Port(), int64(5432))
		}
	})

	t.Run("Should panic on a non-numeric connection limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_CONNECTION_LIMIT", "four")

		defer func() {
			if r := recover(); r == nil {
				t.Fatal("Expected NewConfig to panic")
			}
		}()
		NewConfig(testutils.DiscardLogger(), missingEnvPath(t), nil)
	})
}

func TestDatabaseConfigURL(t *testing.T) {
	dbCfg := NewDatabaseConfig(DriverPostgres, "db", 5433, "playstore", "reader", "p@ss:word", 4, "Asia/Singapore", "")
	testutils.AssertEqual(t, dbCfg.URL(), "postgres://reader:p%40ss%3Aword@db:5433/playstore")
	testutils.AssertNotContains(t, dbCfg.String(), "p@ss:word")
}
