// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/pin-vault/internal/crypto"
	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/store"
	"github.com/MKhiriev/pin-vault/internal/validators"
	"github.com/MKhiriev/pin-vault/models"
)

// vaultService is the private implementation of [VaultService].
type vaultService struct {
	cipher  crypto.EnvelopeCipher
	adapter store.PersistenceAdapter
	ids     store.IDGenerator
	logger  *logger.Logger

	// mu serializes SetupPin, Unlock, and every mutation. The
	// verify-then-seal-then-persist sequence must never interleave with
	// another write: a lost update would let one mutation silently
	// overwrite another's result.
	mu    sync.Mutex
	state models.VaultState
	items models.ItemCollection
}

// NewVaultService constructs a [VaultService] and probes the persistence
// backend to determine the initial state: envelope present means Locked,
// absent means Uninitialized. Returns an error if the probe itself fails.
func NewVaultService(
	ctx context.Context,
	cipher crypto.EnvelopeCipher,
	adapter store.PersistenceAdapter,
	ids store.IDGenerator,
	log *logger.Logger,
) (VaultService, error) {
	exists, err := adapter.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe vault backend: %w", err)
	}

	state := models.Uninitialized
	if exists {
		state = models.Locked
	}

	log.Debug().Stringer("state", state).Msg("vault service initialized")

	return &vaultService{
		cipher:  cipher,
		adapter: adapter,
		ids:     ids,
		logger:  log,
		state:   state,
	}, nil
}

// State implements [VaultService].
func (v *vaultService) State() models.VaultState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Items implements [VaultService].
func (v *vaultService) Items() (models.ItemCollection, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != models.Unlocked {
		return nil, ErrVaultLocked
	}
	return v.items.Clone(), nil
}

// SetupPin implements [VaultService].
func (v *vaultService) SetupPin(ctx context.Context, pin string) error {
	if err := validators.ValidatePIN(pin); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != models.Uninitialized {
		return ErrAlreadyInitialized
	}

	payload, err := encodeCollection(nil)
	if err != nil {
		return err
	}

	env, err := v.cipher.Seal(payload, pin)
	if err != nil {
		return fmt.Errorf("seal empty vault: %w", err)
	}

	// Save is a single atomic replace: on failure nothing is half-written
	// and the vault stays Uninitialized.
	if err = v.adapter.Save(ctx, env); err != nil {
		v.logger.Err(err).Msg("persist initial envelope failed")
		return fmt.Errorf("persist initial envelope: %w", err)
	}

	v.state = models.Unlocked
	v.items = models.ItemCollection{}
	v.logger.Info().Msg("vault created")
	return nil
}

// Unlock implements [VaultService].
func (v *vaultService) Unlock(ctx context.Context, pin string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case models.Uninitialized:
		return ErrNotInitialized
	case models.Unlocked:
		return nil
	}

	items, err := v.openPersisted(ctx, pin)
	if err != nil {
		return err
	}

	v.state = models.Unlocked
	v.items = items
	v.logger.Debug().Int("items", len(items)).Msg("vault unlocked")
	return nil
}

// Lock implements [VaultService].
func (v *vaultService) Lock() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != models.Unlocked {
		return ErrVaultLocked
	}

	// Best-effort scrub before dropping the reference. Go strings are
	// immutable, so the field contents themselves are left to the GC;
	// what matters is that no live reference to the plaintext survives.
	for i := range v.items {
		v.items[i] = models.VaultItem{}
	}
	v.items = nil
	v.state = models.Locked
	v.logger.Debug().Msg("vault locked")
	return nil
}

// AddItem implements [VaultService].
func (v *vaultService) AddItem(ctx context.Context, item models.VaultItem, pin string) (models.VaultItem, error) {
	if err := validators.ValidateItem(item); err != nil {
		return models.VaultItem{}, err
	}

	item.ID = ""
	err := v.mutate(ctx, pin, func(s store.ItemStore) error {
		item.ID = s.Add(item)
		return nil
	})
	if err != nil {
		return models.VaultItem{}, err
	}

	return item, nil
}

// UpdateItem implements [VaultService].
func (v *vaultService) UpdateItem(ctx context.Context, item models.VaultItem, pin string) error {
	if err := validators.ValidateItem(item); err != nil {
		return err
	}

	return v.mutate(ctx, pin, func(s store.ItemStore) error {
		if !s.Update(item) {
			return fmt.Errorf("%w: %s", ErrItemNotFound, item.ID)
		}
		return nil
	})
}

// DeleteItem implements [VaultService].
func (v *vaultService) DeleteItem(ctx context.Context, id string, pin string) error {
	return v.mutate(ctx, pin, func(s store.ItemStore) error {
		if !s.Remove(id) {
			return fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
		return nil
	})
}

// mutate is the shared primitive behind every item mutation. It re-verifies
// pin against the envelope currently on the backend by performing a full
// open, applies f to the freshly decrypted collection (never to the
// possibly-stale in-memory copy), seals the result with a new salt and
// nonce, persists it, and only then updates the in-memory collection.
//
// Verifying against the stored envelope rather than trusting the unlocked
// session is the load-bearing part: a mutation can never be persisted under
// a PIN that does not match what is already on disk, so a stale session or
// a mistyped PIN cannot corrupt the vault.
//
// Failure contract: on verification failure nothing changes; if f rejects
// the mutation (unknown ID) the envelope is not rewritten; if the persist
// fails the previous envelope is still intact because Save is atomic.
func (v *vaultService) mutate(ctx context.Context, pin string, f func(store.ItemStore) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != models.Unlocked {
		return ErrVaultLocked
	}

	items, err := v.openPersisted(ctx, pin)
	if err != nil {
		return err
	}

	s := store.NewItemStore(items, v.ids)
	if err = f(s); err != nil {
		return err
	}

	payload, err := encodeCollection(s.Items())
	if err != nil {
		return err
	}

	env, err := v.cipher.Seal(payload, pin)
	if err != nil {
		return fmt.Errorf("seal collection: %w", err)
	}

	if err = v.adapter.Save(ctx, env); err != nil {
		v.logger.Err(err).Msg("persist envelope failed, previous envelope intact")
		return fmt.Errorf("persist envelope: %w", err)
	}

	v.items = s.Items()
	return nil
}

// openPersisted loads the envelope from the backend and opens it with pin.
// Callers must hold v.mu.
func (v *vaultService) openPersisted(ctx context.Context, pin string) (models.ItemCollection, error) {
	env, err := v.adapter.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load envelope: %w", err)
	}

	payload, err := v.cipher.Open(env, pin)
	if err != nil {
		return nil, err
	}

	return decodeCollection(payload)
}
