// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultPort int64 = 3000

type Config struct {
	port              int64
	env               string
	maxProcs          int64
	publicDir         string
	redisURL          string
	serviceName       string
	loggerConfig      LoggerConfig
	databaseConfig    DatabaseConfig
	rateLimiterConfig RateLimiterConfig
}

func (c *Config) Port() int64 {
	return c.port
}

func (c *Config) Env() string {
	return c.env
}

func (c *Config) MaxProcs() int64 {
	return c.maxProcs
}

func (c *Config) PublicDir() string {
	return c.publicDir
}

func (c *Config) RedisURL() string {
	return c.redisURL
}

func (c *Config) ServiceName() string {
	return c.serviceName
}

func (c *Config) LoggerConfig() LoggerConfig {
	return c.loggerConfig
}

func (c *Config) DatabaseConfig() DatabaseConfig {
	return c.databaseConfig
}

func (c *Config) RateLimiterConfig() RateLimiterConfig {
	return c.rateLimiterConfig
}

var defaults = map[string]string{
	"ENV":                  "development",
	"DEBUG":                "false",
	"SERVICE_NAME":         "appsearch",
	"MAX_PROCS":            "0",
	"PUBLIC_DIR":           "public",
	"DB_DRIVER":            DriverPostgres,
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_NAME":              "playstore",
	"DB_CONNECTION_LIMIT":  "4",
	"DB_TIMEZONE":          "Asia/Singapore",
	"DB_PATH":              "data/playstore.db",
	"RATE_LIMITER_MAX":     "100",
	"RATE_LIMITER_EXP_SEC": "60",
}

// No defaults: a missing credential surfaces as a failed liveness check.
var optionalVariables = [3]string{
	"DB_USER",
	"DB_PASSWORD",
	"REDIS_URL",
}

var numerics = [5]string{
	"MAX_PROCS",
	"DB_PORT",
	"DB_CONNECTION_LIMIT",
	"RATE_LIMITER_MAX",
	"RATE_LIMITER_EXP_SEC",
}

// A zero or negative value for these falls back to the default.
var positiveNumerics = [2]string{
	"DB_PORT",
	"DB_CONNECTION_LIMIT",
}

// NewConfig loads envPath (when present) and the process environment. args are
// the positional command line arguments; the first one, when it is a valid
// port, wins over PORT.
func NewConfig(logger *slog.Logger, envPath string, args []string) Config {
	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("No .env file loaded, using the process environment", "path", envPath)
	}

	variablesMap := make(map[string]string)
	for variable, defaultValue := range defaults {
		value := os.Getenv(variable)
		if value == "" {
			value = defaultValue
		}
		variablesMap[variable] = value
	}

	for _, variable := range optionalVariables {
		variablesMap[variable] = os.Getenv(variable)
	}

	intMap := make(map[string]int64)
	for _, numeric := range numerics {
		value, err := strconv.ParseInt(variablesMap[numeric], 10, 0)
		if err != nil {
			logger.Error(numeric + " is not an integer")
			panic(numeric + " is not an integer")
		}
		intMap[numeric] = value
	}

	for _, numeric := range positiveNumerics {
		if intMap[numeric] > 0 {
			continue
		}

		logger.Warn(numeric+" must be positive, using the default", "value", intMap[numeric])
		value, err := strconv.ParseInt(defaults[numeric], 10, 0)
		if err != nil {
			panic(numeric + " default is not an integer")
		}
		intMap[numeric] = value
	}

	var firstArg string
	if len(args) > 0 {
		firstArg = args[0]
	}

	return Config{
		port:        ResolvePort(firstArg, os.Getenv("PORT")),
		env:         variablesMap["ENV"],
		maxProcs:    intMap["MAX_PROCS"],
		publicDir:   variablesMap["PUBLIC_DIR"],
		redisURL:    variablesMap["REDIS_URL"],
		serviceName: variablesMap["SERVICE_NAME"],
		loggerConfig: NewLoggerConfig(
			strings.ToLower(variablesMap["DEBUG"]) == "true",
			variablesMap["ENV"],
			variablesMap["SERVICE_NAME"],
		),
		databaseConfig: NewDatabaseConfig(
			strings.ToLower(variablesMap["DB_DRIVER"]),
			variablesMap["DB_HOST"],
			intMap["DB_PORT"],
			variablesMap["DB_NAME"],
			variablesMap["DB_USER"],
			variablesMap["DB_PASSWORD"],
			intMap["DB_CONNECTION_LIMIT"],
			variablesMap["DB_TIMEZONE"],
			variablesMap["DB_PATH"],
		),
		rateLimiterConfig: NewRateLimiterConfig(
			intMap["RATE_LIMITER_MAX"],
			intMap["RATE_LIMITER_EXP_SEC"],
		),
	}
}

// ResolvePort picks the first candidate that parses to a positive integer and
// falls back to DefaultPort.
func ResolvePort(candidates ...string) int64 {
	for _, candidate := range candidates {
		port, err := strconv.ParseInt(strings.TrimSpace(candidate), 10, 0)
		if err == nil && port > 0 {
			return port
		}
	}

	return DefaultPort
}
