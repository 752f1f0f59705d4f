package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_MapsPrefixedVariables(t *testing.T) {
	t.Setenv("VAULT_STORAGE_BACKEND", "bolt")
	t.Setenv("VAULT_STORAGE_PATH", "/tmp/vault.db")
	t.Setenv("VAULT_REMOTE_ADDRESS", "http://localhost:8080")
	t.Setenv("VAULT_APP_SYNC_INTERVAL", "5m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/vault.db", cfg.Storage.Path)
	assert.Equal(t, "http://localhost:8080", cfg.Remote.Address)
	assert.Equal(t, 5*time.Minute, cfg.App.SyncInterval)
}

func TestParseJSON_ReadsDurationsAsStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"log_file": "/tmp/client.log", "sync_interval": "10m"},
		"storage": {"backend": "sqlite", "path": "/tmp/vault.sqlite"},
		"remote": {"address": "http://sync:8080", "token": "secret", "request_timeout": "30s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, 10*time.Minute, cfg.App.SyncInterval)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "secret", cfg.Remote.Token)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "empty config is valid"},
		{
			name: "known backend",
			cfg:  StructuredConfig{Storage: Storage{Backend: BackendBolt}},
		},
		{
			name:    "unknown backend",
			cfg:     StructuredConfig{Storage: Storage{Backend: "redis"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "remote backend without address",
			cfg:     StructuredConfig{Storage: Storage{Backend: BackendRemote}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "remote backend with address",
			cfg: StructuredConfig{
				Storage: Storage{Backend: BackendRemote},
				Remote:  Remote{Address: "http://localhost:8080"},
			},
		},
		{
			name:    "negative sync interval",
			cfg:     StructuredConfig{App: App{SyncInterval: -time.Second}},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuilder_MergePrecedence(t *testing.T) {
	// Earlier configs win with mergo.Merge: flags are added first, env
	// second, JSON last.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Backend: BackendBolt}},
		&StructuredConfig{Storage: Storage{Backend: BackendFile, Path: "/tmp/vault.json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, BackendBolt, cfg.Storage.Backend, "first source must win")
	assert.Equal(t, "/tmp/vault.json", cfg.Storage.Path, "unset fields fill from later sources")
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr error
	}{
		{name: "default address", address: ":8080"},
		{name: "host and port", address: "127.0.0.1:9000"},
		{name: "missing port", address: "localhost", wantErr: ErrInvalidServerConfigs},
		{name: "url instead of host:port", address: "http://localhost:8080", wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ServerConfig{Address: tt.address}

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
