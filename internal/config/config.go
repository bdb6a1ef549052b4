// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// launcher. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds launcher-level settings: where data lives, which Java to
	// run and where to send the user for downloads and the EULA.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the preference database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the core artifact download transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Process holds settings for external process execution.
	Process Process `envPrefix:"PROCESS_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds launcher-level configuration values.
type App struct {
	// DataDir is the launcher working directory. The core artifact lives in
	// DataDir/core and the setup completion marker in DataDir.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// JavaBinary is the Java executable used both for the environment check
	// and for running the core.
	// Env: APP_JAVA_BINARY
	JavaBinary string `env:"JAVA_BINARY"`

	// MinJavaMajor is the minimum accepted Java major version.
	// Env: APP_MIN_JAVA_MAJOR
	MinJavaMajor int `env:"MIN_JAVA_MAJOR"`

	// JavaDownloadURL is opened when the environment check fails.
	// Env: APP_JAVA_DOWNLOAD_URL
	JavaDownloadURL string `env:"JAVA_DOWNLOAD_URL"`

	// EulaURL points to the end user license agreement document.
	// Env: APP_EULA_URL
	EulaURL string `env:"EULA_URL"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the preference database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite preference database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for outbound HTTP transfers.
type Adapter struct {
	// CoreURL is the download location of the core artifact.
	// Env: ADAPTER_CORE_URL
	CoreURL string `env:"CORE_URL"`

	// RequestTimeout bounds a whole core download (e.g. "10m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Process holds settings for external process execution.
type Process struct {
	// CommandTimeout bounds every external command. Zero disables the
	// timeout and a hung process then blocks until the user cancels.
	// Env: PROCESS_COMMAND_TIMEOUT
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// CoreWatchDisabled turns off the file-system watcher on the core
	// directory.
	// Env: WORKERS_CORE_WATCH_DISABLED
	CoreWatchDisabled bool `env:"CORE_WATCH_DISABLED"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
