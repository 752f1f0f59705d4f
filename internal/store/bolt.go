// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/pin-vault/models"
)

// Bucket and key layout of the bbolt backend. A single bucket with a single
// key: the vault is one opaque blob, replaced wholesale on every write.
var (
	vaultBucket = []byte("vault")
	envelopeKey = []byte("envelope")
)

// boltAdapter persists the envelope in a bbolt database. bbolt updates are
// transactional, so Save gets the atomic full-replace guarantee natively.
type boltAdapter struct {
	db *bolt.DB
}

// OpenBoltAdapter opens (or creates) the bbolt database at path and returns
// a [PersistenceAdapter] backed by it. Callers own the returned adapter and
// must Close it when done.
func OpenBoltAdapter(path string) (*boltAdapter, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: open vault database: %w", ErrStorage, err)
	}

	return &boltAdapter{db: db}, nil
}

// Close closes the underlying database.
func (b *boltAdapter) Close() error {
	return b.db.Close()
}

// Load implements [PersistenceAdapter].
func (b *boltAdapter) Load(_ context.Context) (models.Envelope, error) {
	var raw []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(vaultBucket)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get(envelopeKey); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: read envelope: %w", ErrStorage, err)
	}
	if raw == nil {
		return models.Envelope{}, ErrEnvelopeNotFound
	}

	var env models.Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: decode envelope: %w", ErrStorage, err)
	}

	return env, nil
}

// Save implements [PersistenceAdapter].
func (b *boltAdapter) Save(_ context.Context, env models.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: encode envelope: %w", ErrStorage, err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(vaultBucket)
		if err != nil {
			return err
		}
		return bucket.Put(envelopeKey, data)
	})
	if err != nil {
		return fmt.Errorf("%w: write envelope: %w", ErrStorage, err)
	}

	return nil
}

// Exists implements [PersistenceAdapter].
func (b *boltAdapter) Exists(_ context.Context) (bool, error) {
	var exists bool
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(vaultBucket)
		exists = bucket != nil && bucket.Get(envelopeKey) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: probe envelope: %w", ErrStorage, err)
	}

	return exists, nil
}
