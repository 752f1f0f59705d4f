package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pin-vault/internal/utils"
	"github.com/MKhiriev/pin-vault/models"
)

func newTestStore(items ...models.VaultItem) ItemStore {
	return NewItemStore(models.ItemCollection(items), utils.NewUUIDGenerator())
}

func TestItemStore_AddAssignsUniqueIDs(t *testing.T) {
	s := newTestStore()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := s.Add(models.VaultItem{Title: "item", Category: models.Note})
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	assert.Equal(t, 50, s.Len())
}

func TestItemStore_AddKeepsPresetID(t *testing.T) {
	s := newTestStore()

	id := s.Add(models.VaultItem{ID: "preset", Title: "item", Category: models.Note})

	assert.Equal(t, "preset", id)
}

func TestItemStore_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore()

	s.Add(models.VaultItem{ID: "a", Title: "first"})
	s.Add(models.VaultItem{ID: "b", Title: "second"})
	s.Add(models.VaultItem{ID: "c", Title: "third"})

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "c", items[2].ID)
}

func TestItemStore_Update(t *testing.T) {
	s := newTestStore(
		models.VaultItem{ID: "a", Title: "first"},
		models.VaultItem{ID: "b", Title: "second"},
	)

	ok := s.Update(models.VaultItem{ID: "a", Title: "renamed", Category: models.Login})
	require.True(t, ok)

	items := s.Items()
	assert.Equal(t, "renamed", items[0].Title)
	assert.Equal(t, "a", items[0].ID, "update must preserve position")

	assert.False(t, s.Update(models.VaultItem{ID: "missing"}))
}

func TestItemStore_Remove(t *testing.T) {
	s := newTestStore(
		models.VaultItem{ID: "a"},
		models.VaultItem{ID: "b"},
		models.VaultItem{ID: "c"},
	)

	require.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"), "second remove of same id must report absence")

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
}

func TestItemStore_AllIsRestartableSnapshot(t *testing.T) {
	s := newTestStore(models.VaultItem{ID: "a"}, models.VaultItem{ID: "b"})

	seq := s.All()

	// A sequence obtained before a mutation keeps iterating the snapshot.
	s.Remove("a")

	for range 2 {
		var ids []string
		for item := range seq {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []string{"a", "b"}, ids)
	}
}

func TestItemStore_ItemsReturnsCopy(t *testing.T) {
	s := newTestStore(models.VaultItem{ID: "a", Title: "first"})

	items := s.Items()
	items[0].Title = "mutated"

	assert.Equal(t, "first", s.Items()[0].Title)
}
