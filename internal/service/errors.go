package service

import "errors"

// Sentinel errors returned by the vault service. Callers should match with
// [errors.Is]. Authentication and storage failures are surfaced as the
// crypto and store package sentinels
// ([github.com/MKhiriev/pin-vault/internal/crypto.ErrAuthentication],
// [github.com/MKhiriev/pin-vault/internal/store.ErrStorage]) wrapped with
// operation context.
var (
	// ErrAlreadyInitialized is returned by SetupPin when an envelope is
	// already persisted.
	ErrAlreadyInitialized = errors.New("vault already initialized")

	// ErrNotInitialized is returned by Unlock when no envelope has been
	// persisted yet.
	ErrNotInitialized = errors.New("vault not initialized")

	// ErrVaultLocked is returned by operations that require an unlocked
	// vault (mutations, Items).
	ErrVaultLocked = errors.New("vault is locked")

	// ErrItemNotFound is returned by UpdateItem and DeleteItem when the
	// target ID is absent from the collection. The persisted envelope is
	// not rewritten in that case.
	ErrItemNotFound = errors.New("vault item not found")
)
