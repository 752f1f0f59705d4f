package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pin-vault/internal/crypto"
	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/mock"
	"github.com/MKhiriev/pin-vault/internal/store"
	"github.com/MKhiriev/pin-vault/internal/utils"
	"github.com/MKhiriev/pin-vault/models"
)

// newMockedVault builds a vault service over a mocked adapter and a real
// cipher. exists controls the initial state probe.
func newMockedVault(t *testing.T, ctrl *gomock.Controller, exists bool) (VaultService, *mock.MockPersistenceAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockPersistenceAdapter(ctrl)
	mockAdapter.EXPECT().Exists(gomock.Any()).Return(exists, nil)

	svc, err := NewVaultService(
		context.Background(),
		crypto.NewEnvelopeCipher(),
		mockAdapter,
		utils.NewUUIDGenerator(),
		logger.Nop(),
	)
	require.NoError(t, err)
	return svc, mockAdapter
}

func TestNewVaultService_ProbeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockPersistenceAdapter(ctrl)
	mockAdapter.EXPECT().Exists(gomock.Any()).Return(false, store.ErrStorage)

	_, err := NewVaultService(
		context.Background(),
		crypto.NewEnvelopeCipher(),
		mockAdapter,
		utils.NewUUIDGenerator(),
		logger.Nop(),
	)
	require.ErrorIs(t, err, store.ErrStorage)
}

func TestSetupPin_SaveFailureLeavesVaultUninitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newMockedVault(t, ctrl, false)
	mockAdapter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrStorage)

	err := svc.SetupPin(context.Background(), "1234")
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.Equal(t, models.Uninitialized, svc.State())
}

func TestMutate_SaveFailureLeavesPreviousEnvelopeAuthoritative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cipher := crypto.NewEnvelopeCipher()

	// Persisted state: one item sealed under "1234".
	payload, err := encodeCollection(models.ItemCollection{
		{ID: "a", Title: "Email", Category: models.Login},
	})
	require.NoError(t, err)
	persisted, err := cipher.Seal(payload, "1234")
	require.NoError(t, err)

	svc, mockAdapter := newMockedVault(t, ctrl, true)

	mockAdapter.EXPECT().Load(gomock.Any()).Return(persisted, nil).Times(2)
	mockAdapter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrStorage)

	require.NoError(t, svc.Unlock(ctx, "1234"))

	_, err = svc.AddItem(ctx, models.VaultItem{Title: "New", Category: models.Note}, "1234")
	assert.ErrorIs(t, err, store.ErrStorage)

	// In-memory state must not have picked up the failed mutation, and the
	// previously persisted envelope still opens to the old collection.
	items, err := svc.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)

	opened, err := cipher.Open(persisted, "1234")
	require.NoError(t, err)
	got, err := decodeCollection(opened)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Email", got[0].Title)
}

func TestMutate_LoadFailureSurfacesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cipher := crypto.NewEnvelopeCipher()

	payload, err := encodeCollection(nil)
	require.NoError(t, err)
	persisted, err := cipher.Seal(payload, "1234")
	require.NoError(t, err)

	svc, mockAdapter := newMockedVault(t, ctrl, true)
	mockAdapter.EXPECT().Load(gomock.Any()).Return(persisted, nil)
	mockAdapter.EXPECT().Load(gomock.Any()).Return(models.Envelope{}, errors.New("disk on fire"))

	require.NoError(t, svc.Unlock(ctx, "1234"))

	_, err = svc.AddItem(ctx, models.VaultItem{Title: "New", Category: models.Note}, "1234")
	require.Error(t, err)

	items, err := svc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUnlock_BeforeSetupSurfacesNotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newMockedVault(t, ctrl, false)

	assert.ErrorIs(t, svc.Unlock(context.Background(), "1234"), ErrNotInitialized)
}

func TestLock_WhenNotUnlockedFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newMockedVault(t, ctrl, true)

	assert.ErrorIs(t, svc.Lock(), ErrVaultLocked)
}
