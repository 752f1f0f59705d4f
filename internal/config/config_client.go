// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientConfig is the configuration view consumed by the vault TUI binary.
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// Storage contains the local backend selection.
	Storage Storage
	// Remote contains the optional vaultsyncd endpoint.
	Remote Remote
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration, filling in defaults: file backend, vault data
// under ~/.pin-vault/, and a 15s remote timeout.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Remote:  cfg.Remote,
	}

	dataDir := defaultDataDir()
	if clientCfg.Storage.Backend == "" {
		clientCfg.Storage.Backend = BackendFile
	}
	if clientCfg.Storage.Path == "" {
		clientCfg.Storage.Path = filepath.Join(dataDir, defaultStorageFile(clientCfg.Storage.Backend))
	}
	if clientCfg.App.LogFile == "" {
		clientCfg.App.LogFile = filepath.Join(dataDir, "client.log")
	}
	if clientCfg.Remote.RequestTimeout <= 0 {
		clientCfg.Remote.RequestTimeout = 15 * time.Second
	}

	return clientCfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".pin-vault")
}

func defaultStorageFile(backend string) string {
	switch backend {
	case BackendBolt:
		return "vault.db"
	case BackendSQLite:
		return "vault.sqlite"
	default:
		return "vault.json"
	}
}
