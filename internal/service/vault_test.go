package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pin-vault/internal/crypto"
	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/store"
	"github.com/MKhiriev/pin-vault/internal/utils"
	"github.com/MKhiriev/pin-vault/internal/validators"
	"github.com/MKhiriev/pin-vault/models"
)

// newTestVault builds a vault service against a real cipher and a file
// adapter in a temp dir, and returns the vault file path for byte-level
// assertions.
func newTestVault(t *testing.T) (VaultService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vault.json")
	svc, err := NewVaultService(
		context.Background(),
		crypto.NewEnvelopeCipher(),
		store.NewFileAdapter(path),
		utils.NewUUIDGenerator(),
		logger.Nop(),
	)
	require.NoError(t, err)
	return svc, path
}

func TestNewVaultService_ProbesInitialState(t *testing.T) {
	ctx := context.Background()

	svc, path := newTestVault(t)
	assert.Equal(t, models.Uninitialized, svc.State())

	require.NoError(t, svc.SetupPin(ctx, "1234"))

	// A second service over the same backend starts Locked.
	again, err := NewVaultService(
		ctx,
		crypto.NewEnvelopeCipher(),
		store.NewFileAdapter(path),
		utils.NewUUIDGenerator(),
		logger.Nop(),
	)
	require.NoError(t, err)
	assert.Equal(t, models.Locked, again.State())
}

func TestSetupPin_ValidatesPIN(t *testing.T) {
	svc, _ := newTestVault(t)

	for _, pin := range []string{"", "12", "1234567", "12a4"} {
		err := svc.SetupPin(context.Background(), pin)
		assert.ErrorIs(t, err, validators.ErrInvalidPIN, "pin %q", pin)
	}
	assert.Equal(t, models.Uninitialized, svc.State())
}

func TestSetupPin_RejectedWhenAlreadyInitialized(t *testing.T) {
	svc, _ := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))
	assert.ErrorIs(t, svc.SetupPin(ctx, "5678"), ErrAlreadyInitialized)
}

// Scenario A: setup, lock, unlock with the right PIN.
func TestVaultLifecycle_SetupLockUnlock(t *testing.T) {
	svc, _ := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))
	assert.Equal(t, models.Unlocked, svc.State())

	items, err := svc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, svc.Lock())
	assert.Equal(t, models.Locked, svc.State())

	_, err = svc.Items()
	assert.ErrorIs(t, err, ErrVaultLocked)

	require.NoError(t, svc.Unlock(ctx, "1234"))
	assert.Equal(t, models.Unlocked, svc.State())

	items, err = svc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Scenario B: add an item, lock, fail to unlock with a wrong PIN, then
// unlock with the right one and find the item intact.
func TestVaultLifecycle_WrongPinRejectedItemSurvives(t *testing.T) {
	svc, _ := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))

	created, err := svc.AddItem(ctx, models.VaultItem{
		Title:          "Email",
		Category:       models.Login,
		PrimaryField:   "a@b.com",
		SecondaryField: "pw",
	}, "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	require.NoError(t, svc.Lock())

	err = svc.Unlock(ctx, "9999")
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
	assert.Equal(t, models.Locked, svc.State())

	require.NoError(t, svc.Unlock(ctx, "1234"))

	items, err := svc.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, "Email", items[0].Title)
	assert.Equal(t, models.Login, items[0].Category)
	assert.Equal(t, "a@b.com", items[0].PrimaryField)
	assert.Equal(t, "pw", items[0].SecondaryField)
}

// Scenario C: updating a missing item fails with ErrItemNotFound and leaves
// the persisted envelope byte-identical.
func TestUpdateItem_MissingIDLeavesEnvelopeUntouched(t *testing.T) {
	svc, path := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = svc.UpdateItem(ctx, models.VaultItem{
		ID:       "missing",
		Title:    "Email",
		Category: models.Login,
	}, "1234")
	assert.ErrorIs(t, err, ErrItemNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed update must not rewrite the envelope")
}

func TestDeleteItem_MissingIDSurfacesNotFound(t *testing.T) {
	svc, _ := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))
	assert.ErrorIs(t, svc.DeleteItem(ctx, "missing", "1234"), ErrItemNotFound)
}

func TestMutate_WrongPinLeavesEverythingUnchanged(t *testing.T) {
	svc, path := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))
	created, err := svc.AddItem(ctx, models.VaultItem{Title: "Email", Category: models.Login}, "1234")
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, models.VaultItem{Title: "Sneaky", Category: models.Note}, "9999")
	assert.ErrorIs(t, err, crypto.ErrAuthentication)

	err = svc.DeleteItem(ctx, created.ID, "9999")
	assert.ErrorIs(t, err, crypto.ErrAuthentication)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	items, err := svc.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Email", items[0].Title)
	assert.Equal(t, models.Unlocked, svc.State())
}

func TestAddItem_ValidatesTitle(t *testing.T) {
	svc, _ := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))

	_, err := svc.AddItem(ctx, models.VaultItem{Title: "  ", Category: models.Note}, "1234")
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestAddItem_IDsPairwiseDistinct(t *testing.T) {
	svc, _ := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		created, err := svc.AddItem(ctx, models.VaultItem{Title: "item", Category: models.Note}, "1234")
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestMutate_WorksOnFreshlyDecryptedCollection(t *testing.T) {
	svc, path := newTestVault(t)
	ctx := context.Background()
	cipher := crypto.NewEnvelopeCipher()
	adapter := store.NewFileAdapter(path)

	require.NoError(t, svc.SetupPin(ctx, "1234"))

	// Another writer (a second device, say) replaces the envelope behind
	// the service's back.
	outOfBand := models.ItemCollection{{ID: "external", Title: "From elsewhere", Category: models.Note}}
	payload, err := encodeCollection(outOfBand)
	require.NoError(t, err)
	env, err := cipher.Seal(payload, "1234")
	require.NoError(t, err)
	require.NoError(t, adapter.Save(ctx, env))

	// The mutation must apply to what is persisted, not to the stale
	// in-memory copy.
	created, err := svc.AddItem(ctx, models.VaultItem{Title: "Local", Category: models.Note}, "1234")
	require.NoError(t, err)

	items, err := svc.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "external", items[0].ID)
	assert.Equal(t, created.ID, items[1].ID)
}

func TestUpdateItem_PersistsAcrossRelock(t *testing.T) {
	svc, _ := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))
	created, err := svc.AddItem(ctx, models.VaultItem{Title: "WiFi home", Category: models.WiFi, PrimaryField: "ssid"}, "1234")
	require.NoError(t, err)

	created.SecondaryField = "newpassword"
	require.NoError(t, svc.UpdateItem(ctx, created, "1234"))

	require.NoError(t, svc.Lock())
	require.NoError(t, svc.Unlock(ctx, "1234"))

	items, err := svc.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "newpassword", items[0].SecondaryField)
}

func TestMutations_SerializeUnderConcurrency(t *testing.T) {
	svc, path := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, svc.SetupPin(ctx, "1234"))

	// Every writer re-opens the persisted envelope, appends one item, and
	// re-seals it. Without the service-level serialization two writers
	// could open the same envelope and the second save would erase the
	// first one's item.
	const writers = 16
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.AddItem(ctx, models.VaultItem{
				Title:    fmt.Sprintf("entry-%02d", i),
				Category: models.Note,
			}, "1234")
		}()
	}

	// An Unlock racing the writers must be an Unlocked no-op and must not
	// disturb the in-flight mutations.
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.Unlock(ctx, "1234"))
	}()

	wg.Wait()
	for i, err := range errs {
		require.NoErrorf(t, err, "writer %d", i)
	}

	// No lost update: a fresh service over the same backend sees all of
	// them after decrypting the final envelope.
	again, err := NewVaultService(
		ctx,
		crypto.NewEnvelopeCipher(),
		store.NewFileAdapter(path),
		utils.NewUUIDGenerator(),
		logger.Nop(),
	)
	require.NoError(t, err)
	require.NoError(t, again.Unlock(ctx, "1234"))

	items, err := again.Items()
	require.NoError(t, err)
	require.Len(t, items, writers)

	titles := make(map[string]struct{}, len(items))
	ids := make(map[string]struct{}, len(items))
	for _, item := range items {
		titles[item.Title] = struct{}{}
		ids[item.ID] = struct{}{}
	}
	assert.Len(t, titles, writers, "every writer's item must survive")
	assert.Len(t, ids, writers, "ids must stay unique under contention")
}
