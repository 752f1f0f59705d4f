// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/pin-vault/models"
)

// sqliteAdapter persists the envelope in a single-row SQLite table. The
// UPSERT runs inside SQLite's implicit transaction, so a save is a full
// atomic replace.
type sqliteAdapter struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS vault (
    id       INTEGER PRIMARY KEY CHECK (id = 1),
    envelope BLOB NOT NULL
);`

// OpenSQLiteAdapter opens (or creates) the SQLite database at dsn and
// returns a [PersistenceAdapter] backed by it. Callers own the returned
// adapter and must Close it when done.
func OpenSQLiteAdapter(dsn string) (*sqliteAdapter, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open vault database: %w", ErrStorage, err)
	}

	if _, err = db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init vault schema: %w", ErrStorage, err)
	}

	return &sqliteAdapter{db: db}, nil
}

// Close closes the underlying database.
func (s *sqliteAdapter) Close() error {
	return s.db.Close()
}

// Load implements [PersistenceAdapter].
func (s *sqliteAdapter) Load(ctx context.Context) (models.Envelope, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT envelope FROM vault WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Envelope{}, ErrEnvelopeNotFound
	}
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: read envelope: %w", ErrStorage, err)
	}

	var env models.Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: decode envelope: %w", ErrStorage, err)
	}

	return env, nil
}

// Save implements [PersistenceAdapter].
func (s *sqliteAdapter) Save(ctx context.Context, env models.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: encode envelope: %w", ErrStorage, err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO vault (id, envelope) VALUES (1, ?)
        ON CONFLICT (id) DO UPDATE SET envelope = excluded.envelope`,
		data,
	)
	if err != nil {
		return fmt.Errorf("%w: write envelope: %w", ErrStorage, err)
	}

	return nil
}

// Exists implements [PersistenceAdapter].
func (s *sqliteAdapter) Exists(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vault WHERE id = 1`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("%w: probe envelope: %w", ErrStorage, err)
	}

	return n > 0, nil
}
