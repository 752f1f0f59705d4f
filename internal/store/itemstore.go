// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"iter"

	"github.com/MKhiriev/pin-vault/models"
)

// IDGenerator produces collision-resistant unique item identifiers.
// Satisfied by [github.com/MKhiriev/pin-vault/internal/utils.UUIDGenerator].
type IDGenerator interface {
	Generate() string
}

// itemStore is the private implementation of [ItemStore].
type itemStore struct {
	items models.ItemCollection
	ids   IDGenerator
}

// NewItemStore constructs an [ItemStore] seeded with a copy of items.
// ids supplies identifiers for Add; the store itself holds no other state
// and performs no I/O.
func NewItemStore(items models.ItemCollection, ids IDGenerator) ItemStore {
	return &itemStore{items: items.Clone(), ids: ids}
}

// Add implements [ItemStore]. An already-set item.ID is kept as-is; the
// vault service relies on this when replaying a collection into a fresh
// store.
func (s *itemStore) Add(item models.VaultItem) string {
	if item.ID == "" {
		item.ID = s.ids.Generate()
		// Collision-resistant does not mean collision-free.
		for s.find(item.ID) >= 0 {
			item.ID = s.ids.Generate()
		}
	}

	s.items = append(s.items, item)
	return item.ID
}

// Update implements [ItemStore].
func (s *itemStore) Update(item models.VaultItem) bool {
	i := s.find(item.ID)
	if i < 0 {
		return false
	}

	s.items[i] = item
	return true
}

// Remove implements [ItemStore].
func (s *itemStore) Remove(id string) bool {
	i := s.find(id)
	if i < 0 {
		return false
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// All implements [ItemStore]. The returned sequence iterates over a
// snapshot, so it can be ranged over any number of times and is not
// invalidated by subsequent mutations.
func (s *itemStore) All() iter.Seq[models.VaultItem] {
	snapshot := s.items.Clone()
	return func(yield func(models.VaultItem) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}

// Items implements [ItemStore].
func (s *itemStore) Items() models.ItemCollection {
	return s.items.Clone()
}

// Len implements [ItemStore].
func (s *itemStore) Len() int {
	return len(s.items)
}

func (s *itemStore) find(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
