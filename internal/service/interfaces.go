package service

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/pin-vault/models"
)

// VaultService is the single owner of vault state: the locked/unlocked
// state machine and the PIN-gated mutation protocol. It is the only
// component that talks to the persistence backend.
//
// The service is not designed for concurrent callers; it nevertheless
// serializes SetupPin, Unlock, and every mutation internally so that a
// verify-then-seal-then-persist sequence can never interleave with another
// write. Operations that derive keys (SetupPin, Unlock, and all mutations)
// run a 100,000-iteration KDF and should be called off any UI event loop.
//
// The derived key and the PIN are never retained or exposed; while unlocked
// the service exposes only the decrypted items.
type VaultService interface {
	// State reports the current lifecycle state.
	State() models.VaultState

	// Items returns a copy of the decrypted collection. Fails with
	// [ErrVaultLocked] unless the vault is unlocked.
	Items() (models.ItemCollection, error)

	// SetupPin creates the vault: it seals an empty collection under pin,
	// persists the envelope, and transitions Uninitialized -> Unlocked.
	// Fails with [ErrAlreadyInitialized] outside Uninitialized, a
	// validation error for a malformed PIN, or a storage error (state
	// unchanged, nothing half-written) if the persist fails.
	SetupPin(ctx context.Context, pin string) error

	// Unlock loads the persisted envelope and opens it with pin,
	// transitioning Locked -> Unlocked on success. On authentication
	// failure the state stays Locked and the error is surfaced; no retry
	// counter or lockout is enforced here.
	Unlock(ctx context.Context, pin string) error

	// Lock discards the in-memory collection and transitions
	// Unlocked -> Locked. Never touches storage and always succeeds from
	// Unlocked.
	Lock() error

	// AddItem assigns a fresh unique ID to item and persists the grown
	// collection under the mutation protocol. Returns the stored item,
	// ID included.
	AddItem(ctx context.Context, item models.VaultItem, pin string) (models.VaultItem, error)

	// UpdateItem replaces the item matching item.ID under the mutation
	// protocol. Fails with [ErrItemNotFound] if the ID is absent; the
	// persisted envelope is left byte-identical in that case.
	UpdateItem(ctx context.Context, item models.VaultItem, pin string) error

	// DeleteItem removes the item with the given ID under the mutation
	// protocol. Fails with [ErrItemNotFound] if the ID is absent; callers
	// that tolerate double-delete may treat that as success.
	DeleteItem(ctx context.Context, id string, pin string) error
}

// SyncJob is a background worker that mirrors the locally persisted
// envelope to a remote backend. It moves ciphertext only and therefore
// needs no PIN.
type SyncJob interface {
	// Start launches the background goroutine. It pushes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
