// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Known values for [Storage.Backend].
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendRemote = "remote"
)

// StructuredConfig is the top-level configuration container for pin-vault.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment variables additionally carry the global VAULT_ prefix.
type StructuredConfig struct {
	// App holds application-level settings of the TUI client.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the local persistence backend the
	// envelope is written to.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote configures the optional vaultsyncd endpoint used either as
	// the primary backend (Storage.Backend == "remote") or as the mirror
	// target of the background sync job.
	Remote Remote `envPrefix:"REMOTE_"`

	// Server holds network settings for the vaultsyncd binary.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via VAULT_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings of the TUI client.
type App struct {
	// LogFile is where the client writes its JSON log. Stdout belongs to
	// the terminal UI, so client logs always go to a file.
	// Env: VAULT_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// SyncInterval is how often the background job mirrors the envelope
	// to the remote, when a remote is configured. Zero disables the job.
	// Env: VAULT_APP_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Storage selects the persistence backend for the envelope.
type Storage struct {
	// Backend is one of "file", "bolt", "sqlite", "remote".
	// Env: VAULT_STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the vault file or database location for the local backends.
	// Env: VAULT_STORAGE_PATH
	Path string `env:"PATH"`
}

// Remote holds connection settings for a vaultsyncd endpoint.
type Remote struct {
	// Address is the base URL of the vaultsyncd server.
	// Env: VAULT_REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the static bearer token the server expects.
	// Env: VAULT_REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every outbound request.
	// Env: VAULT_REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds settings for the vaultsyncd binary.
type Server struct {
	// Address is the listen address in host:port form.
	// Env: VAULT_SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// StoragePath is where vaultsyncd keeps the uploaded envelope.
	// Env: VAULT_SERVER_STORAGE_PATH
	StoragePath string `env:"STORAGE_PATH"`

	// Token is the bearer token required on every request. Empty disables
	// the check (local testing only).
	// Env: VAULT_SERVER_TOKEN
	Token string `env:"TOKEN"`
}

// validate checks cross-field consistency of the merged configuration.
func (c *StructuredConfig) validate() error {
	switch c.Storage.Backend {
	case "", BackendFile, BackendBolt, BackendSQLite:
	case BackendRemote:
		if c.Remote.Address == "" {
			return fmt.Errorf("%w: remote backend requires an address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, c.Storage.Backend)
	}

	if c.App.SyncInterval < 0 {
		return fmt.Errorf("%w: negative sync interval", ErrInvalidAppConfigs)
	}

	return nil
}
