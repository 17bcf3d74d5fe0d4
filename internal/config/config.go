// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Authentication modes accepted by [App.AuthMode].
const (
	// AuthModeJWT authenticates callers by an HS256 bearer token whose "sub"
	// claim is the owner id.
	AuthModeJWT = "jwt"

	// AuthModeHeader trusts identity headers injected by a fronting reverse
	// proxy (X-MS-CLIENT-PRINCIPAL-ID / X-MS-CLIENT-PRINCIPAL-NAME).
	AuthModeHeader = "header"
)

// StructuredConfig is the top-level configuration container for the
// go-rsa-vault server. It is populated by merging values from environment
// variables, command-line flags and an optional JSON file, then filled with
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the authentication mode, at-rest key
	// protection and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the vault database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Workers sizes the generation and cipher lanes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to verify (and, for the CLI
	// helper, sign) JWT bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of every bearer token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by the server
	// (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AuthMode selects how callers are identified: "jwt" or "header".
	// Env: APP_AUTH_MODE
	AuthMode string `env:"AUTH_MODE"`

	// KeyEncryptionKey is the secret from which the key-encryption key for
	// stored private keys is derived. Empty disables at-rest sealing.
	// Env: APP_KEY_ENCRYPTION_KEY
	KeyEncryptionKey string `env:"KEY_ENCRYPTION_KEY"`

	// KeyEncryptionSalt is the Argon2id salt for KeyEncryptionKey.
	// Env: APP_KEY_ENCRYPTION_SALT
	KeyEncryptionSalt string `env:"KEY_ENCRYPTION_SALT"`

	// KeyCacheTTL bounds how long parsed PEM keys stay in memory.
	// Env: APP_KEY_CACHE_TTL
	KeyCacheTTL time.Duration `env:"KEY_CACHE_TTL"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request, including time spent
	// queued for a worker slot.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the vault database.
type DB struct {
	// DSN selects the backend:
	//   - "postgres://..." or "postgresql://..." -> PostgreSQL via pgx;
	//   - "sqlite://<path>" or "file:<path>"     -> SQLite;
	//   - "" or "memory"                        -> in-process store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers sizes the execution lanes. Zero picks a CPU-derived default.
type Workers struct {
	// GenerationWorkers bounds concurrent key generations.
	// Env: WORKERS_GENERATION_WORKERS
	GenerationWorkers int `env:"GENERATION_WORKERS"`

	// CipherWorkers bounds concurrent encrypt, decrypt and avalanche calls.
	// Env: WORKERS_CIPHER_WORKERS
	CipherWorkers int `env:"CIPHER_WORKERS"`
}

// defaultConfig holds the values applied to fields left empty by every source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-rsa-vault",
			TokenDuration: 24 * time.Hour,
			AuthMode:      AuthModeJWT,
			KeyCacheTTL:   time.Minute,
			LogLevel:      "debug",
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
