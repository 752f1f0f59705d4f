package store

//go:generate mockgen -source=interfaces.go -destination=../mock/persistence_adapter_mock.go -package=mock

import (
	"context"
	"iter"

	"github.com/MKhiriev/pin-vault/models"
)

// ItemStore is the pure, in-memory ordered collection of vault items.
// It performs no I/O and never touches the persistence backend; it is the
// data transform the vault service applies between opening and re-sealing
// an envelope.
type ItemStore interface {
	// Add appends item to the collection, assigning a fresh unique ID when
	// item.ID is empty, and returns the ID under which the item was stored.
	Add(item models.VaultItem) string

	// Update replaces the item whose ID matches item.ID in place,
	// preserving its position. Returns false if no such item exists.
	Update(item models.VaultItem) bool

	// Remove deletes the item with the given ID. Returns false if no such
	// item exists.
	Remove(id string) bool

	// All returns a finite, restartable sequence over a snapshot of the
	// collection taken at call time. Later mutations of the store do not
	// affect sequences already obtained.
	All() iter.Seq[models.VaultItem]

	// Items returns a copy of the current collection in insertion order.
	Items() models.ItemCollection

	// Len reports the number of items in the collection.
	Len() int
}

// PersistenceAdapter is the opaque blob backend the vault service persists
// envelopes to. One envelope, replaced wholesale on every write.
//
// Save must be atomic from the engine's point of view: a full replace that
// is never observable half-written. Backends without native atomic replace
// (plain files) must implement write-to-temp-then-rename themselves.
type PersistenceAdapter interface {
	// Load reads the persisted envelope. Returns [ErrEnvelopeNotFound] if
	// no vault has been configured yet, or [ErrStorage]-wrapped errors on
	// backend faults.
	Load(ctx context.Context) (models.Envelope, error)

	// Save atomically replaces the persisted envelope.
	Save(ctx context.Context, env models.Envelope) error

	// Exists reports whether an envelope is currently persisted.
	Exists(ctx context.Context) (bool, error)
}
