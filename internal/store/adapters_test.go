package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pin-vault/models"
)

func testEnvelope() models.Envelope {
	return models.Envelope{
		Salt:  make([]byte, models.SaltSize),
		Nonce: make([]byte, models.NonceSize),
		Data:  []byte("ciphertext-and-tag"),
	}
}

// runAdapterContract exercises the Load/Save/Exists contract shared by every
// persistence adapter.
func runAdapterContract(t *testing.T, adapter PersistenceAdapter) {
	t.Helper()
	ctx := context.Background()

	exists, err := adapter.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "fresh backend must report no envelope")

	_, err = adapter.Load(ctx)
	require.ErrorIs(t, err, ErrEnvelopeNotFound)

	env := testEnvelope()
	require.NoError(t, adapter.Save(ctx, env))

	exists, err = adapter.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := adapter.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, env, got)

	// A second save replaces the envelope wholesale.
	env.Data = []byte("replaced")
	require.NoError(t, adapter.Save(ctx, env))

	got, err = adapter.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("replaced"), got.Data)
}

func TestFileAdapter_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	runAdapterContract(t, NewFileAdapter(path))
}

func TestFileAdapter_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	adapter := NewFileAdapter(filepath.Join(dir, "vault.json"))

	require.NoError(t, adapter.Save(context.Background(), testEnvelope()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vault.json", entries[0].Name())
}

func TestFileAdapter_CorruptFileIsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileAdapter(path).Load(context.Background())
	require.ErrorIs(t, err, ErrStorage)
}

func TestBoltAdapter_Contract(t *testing.T) {
	adapter, err := OpenBoltAdapter(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	defer adapter.Close()

	runAdapterContract(t, adapter)
}

func TestSQLiteAdapter_Contract(t *testing.T) {
	adapter, err := OpenSQLiteAdapter(filepath.Join(t.TempDir(), "vault.sqlite"))
	require.NoError(t, err)
	defer adapter.Close()

	runAdapterContract(t, adapter)
}

func TestRemoteAdapter_Contract(t *testing.T) {
	var (
		blob  []byte
		token = "test-token"
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			if blob == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if r.Method == http.MethodGet {
				w.Write(blob)
			}
		case http.MethodPut:
			var env models.Envelope
			if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			blob, _ = json.Marshal(env)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	runAdapterContract(t, NewRemoteAdapter(RemoteConfig{BaseURL: srv.URL, Token: token}))
}

func TestRemoteAdapter_ServerFaultIsStorageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter := NewRemoteAdapter(RemoteConfig{BaseURL: srv.URL})

	_, err := adapter.Load(context.Background())
	require.ErrorIs(t, err, ErrStorage)

	err = adapter.Save(context.Background(), testEnvelope())
	require.ErrorIs(t, err, ErrStorage)
}
