package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can say "5m" instead of
// nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		LogFile      string   `json:"log_file"`
		SyncInterval Duration `json:"sync_interval"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Path    string `json:"path"`
	} `json:"storage,omitempty"`

	Remote struct {
		Address        string   `json:"address"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Server struct {
		Address     string `json:"address"`
		StoragePath string `json:"storage_path"`
		Token       string `json:"token"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:      jsonCfg.App.LogFile,
			SyncInterval: time.Duration(jsonCfg.App.SyncInterval),
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Path:    jsonCfg.Storage.Path,
		},
		Remote: Remote{
			Address:        jsonCfg.Remote.Address,
			Token:          jsonCfg.Remote.Token,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Server: Server{
			Address:     jsonCfg.Server.Address,
			StoragePath: jsonCfg.Server.StoragePath,
			Token:       jsonCfg.Server.Token,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
