// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b storage backend (file, bolt, sqlite, remote)
//	-f vault file / database path
//	-r remote vaultsyncd address
//	-t remote bearer token
//	-a vaultsyncd listen address in [host]:[port] form
//	-s vaultsyncd envelope storage path
//	-c/-config json file path with configs
//	-log client log file path
//	-sync-interval background mirror interval (e.g., "5m")
//	-request-timeout remote request timeout (e.g., "15s")
func ParseFlags() *StructuredConfig {
	var (
		backend        string
		storagePath    string
		remoteAddress  string
		remoteToken    string
		serverAddress  string
		serverStorage  string
		jsonConfigPath string
		logFile        string
		syncInterval   time.Duration
		requestTimeout time.Duration
	)

	flag.StringVar(&backend, "b", "", "Storage backend: file, bolt, sqlite, remote")
	flag.StringVar(&storagePath, "f", "", "Vault file / database path")
	flag.StringVar(&remoteAddress, "r", "", "Remote vaultsyncd address")
	flag.StringVar(&remoteToken, "t", "", "Remote bearer token")
	flag.StringVar(&serverAddress, "a", "", "Server listen address host:port")
	flag.StringVar(&serverStorage, "s", "", "Server envelope storage path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logFile, "log", "", "Client log file path")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background mirror interval (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile:      logFile,
			SyncInterval: syncInterval,
		},
		Storage: Storage{
			Backend: backend,
			Path:    storagePath,
		},
		Remote: Remote{
			Address:        remoteAddress,
			Token:          remoteToken,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			Address:     serverAddress,
			StoragePath: serverStorage,
		},
		JSONFilePath: jsonConfigPath,
	}
}
