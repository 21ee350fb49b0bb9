// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging environment variables, command-line
// flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings of the backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and the request timeout of the backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the backend location and timeout used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// View holds the directory view settings of the client.
	View View `envPrefix:"VIEW_"`

	// Print holds the one-shot table print settings of the client.
	Print Print `envPrefix:"PRINT_"`

	// Seed holds the settings of the demo data generator.
	Seed Seed `envPrefix:"SEED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN is a postgres:// URL or a path to a SQLite database file.
	DSN string `env:"DATABASE_URI"`
}

// App holds application-wide settings.
type App struct {
	Version string `env:"VERSION"`
}

// Server holds the settings of the backend listeners.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health listener when non-empty.
	GRPCAddress string `env:"GRPC_ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the backend.
type Adapter struct {
	// HTTPAddress is the backend base URL; a scheme-less host:port is
	// treated as http.
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// View holds the settings of the directory view.
type View struct {
	// Locale is a BCP 47 tag selecting the name collation.
	Locale string `env:"LOCALE"`

	// DefaultSort is the sort mode used at start. Reset always returns to
	// newest first.
	DefaultSort string `env:"DEFAULT_SORT"`

	// NoticeTTL is how long a notification stays on screen.
	NoticeTTL time.Duration `env:"NOTICE_TTL"`
}

// Print holds the settings of the one-shot table print mode.
type Print struct {
	// Enabled switches the client from the interactive UI to printing.
	Enabled bool `env:"ENABLED"`

	// Search is the search term applied before printing.
	Search string `env:"SEARCH"`
}

// Seed holds the settings of the demo data generator.
type Seed struct {
	// Count is the number of users created per run.
	Count int `env:"COUNT"`
}

// GetStructuredConfig assembles the configuration from the environment,
// the command line and the optional JSON file, then fills defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
