// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"strings"
	"sync"
)

// DefaultEnvFile is the conventional dotenv file consulted by [Get].
// Its absence is not an error; the file layer then contributes nothing.
const DefaultEnvFile = ".env"

// LogLevel is the application logging level. Values are normalized to upper
// case during parsing, so "debug" and "DEBUG" are equivalent. Membership in
// the recognized set is checked during validation, not coercion.
type LogLevel string

// Recognized logging levels, ordered by increasing severity.
const (
	LevelDebug    LogLevel = "DEBUG"
	LevelInfo     LogLevel = "INFO"
	LevelWarning  LogLevel = "WARNING"
	LevelError    LogLevel = "ERROR"
	LevelCritical LogLevel = "CRITICAL"
)

// UnmarshalText implements encoding.TextUnmarshaler. It never fails: the
// input is upper-cased and stored as-is, and an unrecognized level surfaces
// later as an invariant violation rather than a coercion error.
func (l *LogLevel) UnmarshalText(text []byte) error {
	*l = LogLevel(strings.ToUpper(strings.TrimSpace(string(text))))
	return nil
}

// Settings is the immutable, validated configuration value for the process.
// It is populated by merging defaults, an optional .env file, and environment
// variables; see the package documentation for the precedence rules.
//
// Struct tags:
//   - env        — environment variable name for scalar fields.
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - envDefault — compiled-in default, so construction never fails solely
//     from missing input.
type Settings struct {
	// AppName is the human-readable application name.
	// Env: APP_NAME
	AppName string `env:"APP_NAME" envDefault:"go-service-starter"`

	// Debug toggles debug mode.
	// Env: DEBUG
	Debug bool `env:"DEBUG" envDefault:"false"`

	// LogLevel is the logging level; one of DEBUG, INFO, WARNING, ERROR,
	// CRITICAL.
	// Env: LOG_LEVEL
	LogLevel LogLevel `env:"LOG_LEVEL" envDefault:"INFO"`

	// SecretKey is the application secret key. The default is suitable for
	// development only.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY" envDefault:"dev-secret-key"`

	// APIKey is the key for external API integrations. Empty when no
	// integration is configured.
	// Env: API_KEY
	APIKey string `env:"API_KEY" envDefault:""`

	// Database holds database connection settings.
	Database Database `envPrefix:"DATABASE_"`

	// API holds the inbound HTTP API settings.
	API API `envPrefix:"API_"`
}

// Database groups database connection settings.
type Database struct {
	// URL is the database connection URL.
	// Env: DATABASE_URL
	URL string `env:"URL" envDefault:"sqlite:///./app.db"`

	// Echo toggles statement logging on the database layer.
	// Env: DATABASE_ECHO
	Echo bool `env:"ECHO" envDefault:"false"`

	// PoolSize is the connection pool size. Must be at least 1.
	// Env: DATABASE_POOL_SIZE
	PoolSize int `env:"POOL_SIZE" envDefault:"5"`
}

// API groups inbound HTTP API settings.
type API struct {
	// Host is the interface the API listens on.
	// Env: API_HOST
	Host string `env:"HOST" envDefault:"localhost"`

	// Port is the TCP port the API listens on. Must be in [1, 65535].
	// Env: API_PORT
	Port int `env:"PORT" envDefault:"8000"`

	// Workers is the number of request workers. Must be at least 1.
	// Env: API_WORKERS
	Workers uint `env:"WORKERS" envDefault:"4"`
}

// New constructs a fresh Settings value from the default/file/environment
// sources, reading the optional dotenv file at envFile (pass "" to skip the
// file layer entirely). Each call re-reads the sources and returns an
// independent instance; the cache behind [Get] is not touched.
func New(envFile string) (*Settings, error) {
	return newSettingsBuilder().
		withEnv().
		withDotenv(envFile).
		build()
}

var cached = sync.OnceValues(func() (*Settings, error) {
	return New(DefaultEnvFile)
})

// Get returns the process's single Settings instance.
//
// The first call performs construction from [DefaultEnvFile] and the process
// environment; every subsequent call, from any goroutine, returns the
// identical cached instance (or the identical construction error) without
// re-reading files or environment. The cache lives for the process lifetime
// and is never invalidated; re-reading configuration requires a new process.
//
// A construction failure is fatal by contract: callers that depend on
// Settings at boot must treat a non-nil error as non-recoverable.
func Get() (*Settings, error) {
	return cached()
}
