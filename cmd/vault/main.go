// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/pin-vault/internal/config"
	"github.com/MKhiriev/pin-vault/internal/crypto"
	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/service"
	"github.com/MKhiriev/pin-vault/internal/store"
	"github.com/MKhiriev/pin-vault/internal/tui"
	"github.com/MKhiriev/pin-vault/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		panic(fmt.Sprintf("error getting configs: %v", err))
	}

	// Stdout belongs to the terminal UI, so the client logs to a file.
	log := logger.NewFileLogger("pin-vault", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	adapter, err := newAdapter(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create persistence adapter")
	}
	if closer, ok := adapter.(io.Closer); ok {
		defer closer.Close()
	}

	vault, err := service.NewVaultService(ctx, crypto.NewEnvelopeCipher(), adapter, utils.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create vault service")
	}

	// Mirror to the remote only when it is configured and not already
	// the primary backend.
	if cfg.Remote.Address != "" && cfg.Storage.Backend != config.BackendRemote && cfg.App.SyncInterval > 0 {
		job := service.NewSyncJob(adapter, store.NewRemoteAdapter(store.RemoteConfig{
			BaseURL: cfg.Remote.Address,
			Token:   cfg.Remote.Token,
			Timeout: cfg.Remote.RequestTimeout,
		}), log)
		job.Start(ctx, cfg.App.SyncInterval)
		defer job.Stop()
	}

	if err = tui.Run(ctx, vault, log); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func newAdapter(cfg *config.ClientConfig) (store.PersistenceAdapter, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return store.NewFileAdapter(cfg.Storage.Path), nil
	case config.BackendBolt:
		return store.OpenBoltAdapter(cfg.Storage.Path)
	case config.BackendSQLite:
		return store.OpenSQLiteAdapter(cfg.Storage.Path)
	case config.BackendRemote:
		return store.NewRemoteAdapter(store.RemoteConfig{
			BaseURL: cfg.Remote.Address,
			Token:   cfg.Remote.Token,
			Timeout: cfg.Remote.RequestTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
