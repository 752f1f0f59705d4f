// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"path/filepath"
)

// ServerConfig is the configuration view consumed by the vaultsyncd binary.
type ServerConfig struct {
	// Address is the listen address in host:port form.
	Address string
	// StoragePath is where the uploaded envelope is kept.
	StoragePath string
	// Token is the bearer token required on every request; empty disables
	// the check.
	Token string
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration, defaulting to :8080 and an envelope file in the
// working directory.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Address:     cfg.Server.Address,
		StoragePath: cfg.Server.StoragePath,
		Token:       cfg.Server.Token,
	}

	if serverCfg.Address == "" {
		serverCfg.Address = ":8080"
	}
	if serverCfg.StoragePath == "" {
		serverCfg.StoragePath = filepath.Join(".", "vaultsyncd.json")
	}

	return serverCfg, serverCfg.validate()
}

// validate checks the server view after defaults are applied.
func (c *ServerConfig) validate() error {
	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("%w: bad listen address %q", ErrInvalidServerConfigs, c.Address)
	}
	return nil
}
