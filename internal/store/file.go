// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/pin-vault/models"
)

// fileAdapter persists the envelope as a single JSON file on disk.
//
// Plain file writes are not atomic, so Save writes to a temporary file in
// the same directory and renames it over the target. Rename is atomic on
// POSIX filesystems, which gives the full-replace guarantee the vault
// service requires: a crash mid-save leaves either the old envelope or the
// new one, never a torn mix.
type fileAdapter struct {
	path string
}

// NewFileAdapter constructs a [PersistenceAdapter] that stores the envelope
// at path. Parent directories are created on the first Save.
func NewFileAdapter(path string) PersistenceAdapter {
	return &fileAdapter{path: path}
}

// Load implements [PersistenceAdapter].
func (f *fileAdapter) Load(_ context.Context) (models.Envelope, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Envelope{}, ErrEnvelopeNotFound
		}
		return models.Envelope{}, fmt.Errorf("%w: read vault file: %w", ErrStorage, err)
	}

	var env models.Envelope
	if err = json.Unmarshal(data, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: decode vault file: %w", ErrStorage, err)
	}

	return env, nil
}

// Save implements [PersistenceAdapter].
func (f *fileAdapter) Save(_ context.Context, env models.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: encode envelope: %w", ErrStorage, err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create vault dir: %w", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %w", ErrStorage, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %w", ErrStorage, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %w", ErrStorage, err)
	}

	if err = os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace vault file: %w", ErrStorage, err)
	}

	return nil
}

// Exists implements [PersistenceAdapter].
func (f *fileAdapter) Exists(_ context.Context) (bool, error) {
	if _, err := os.Stat(f.path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat vault file: %w", ErrStorage, err)
	}
	return true, nil
}
