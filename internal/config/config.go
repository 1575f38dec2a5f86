// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client runtime settings (navigation settle delay, log file).
	App App `envPrefix:"APP_"`

	// Auth holds token issuance settings of the development Auth API.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds persistence settings for both the client key-value
	// store and the server user table.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the Auth API server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the Auth API base URL and per-call timeouts used by
	// the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client runtime settings.
type App struct {
	// SettleDelay is how long a freshly signed-in login screen keeps showing
	// its success state before the navigation guard moves to the home tabs.
	// Env: APP_SETTLE_DELAY
	SettleDelay time.Duration `env:"SETTLE_DELAY"`

	// LogFile is where the client writes its log; empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Auth holds JWT settings of the development Auth API.
type Auth struct {
	// TokenSignKey is the HMAC secret used to sign issued tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token (e.g. "24h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups storage backend settings.
type Storage struct {
	// DB holds database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds database connection settings.
type DB struct {
	// DSN is a SQLite file path (":memory:" keeps client state in memory
	// only) or, for the server, a postgres:// connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound HTTP settings of the Auth API server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound Auth API settings used by the client.
type Adapter struct {
	// HTTPAddress is the Auth API base URL (scheme optional).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// LoginTimeout bounds POST /api/auth/login.
	// Env: ADAPTER_LOGIN_TIMEOUT
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"`

	// HealthTimeout bounds GET /health.
	// Env: ADAPTER_HEALTH_TIMEOUT
	HealthTimeout time.Duration `env:"HEALTH_TIMEOUT"`
}

// Defaults applied before any other source.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultLoginTimeout   = 15 * time.Second
	DefaultHealthTimeout  = 5 * time.Second
	DefaultSettleDelay    = time.Second
	DefaultDSN            = "nurse-notes.db"
	DefaultServerAddress  = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "nurse-notes-auth"
	DefaultTokenDuration  = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{SettleDelay: DefaultSettleDelay},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:   DefaultAdapterAddress,
			LoginTimeout:  DefaultLoginTimeout,
			HealthTimeout: DefaultHealthTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the order defaults → env → flags → JSON file and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
