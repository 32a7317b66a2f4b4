package settings

import (
	"encoding/base64"
	"path/filepath"
	"testing"

	"rcwebui/pkg/rclone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestNew(t *testing.T) {
	store, err := New(":memory:")
	require.NoError(t, err)
	assert.NotNil(t, store)
	defer store.Close()
}

func TestStore_GetMissing(t *testing.T) {
	store := setupTestStore(t)

	value, err := store.Get("nope")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestStore_SetGetDelete(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Set("theme", "dark"))
	value, err := store.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Set("theme", "light"))
	value, err = store.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	require.NoError(t, store.Delete("theme"))
	value, err = store.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestStore_All(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))

	all, err := store.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, all)
}

func TestStore_RCEndpoint(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.RCEndpoint()
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, err, rclone.ErrNoEndpoint)

	require.NoError(t, store.SaveLogin("http://localhost:5572", "dXNlcjpwYXNz"))

	ep, err := store.RCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, rclone.Endpoint{URL: "http://localhost:5572", AuthKey: "dXNlcjpwYXNz"}, ep)

	// Changes are visible on the next lookup
	require.NoError(t, store.Set(KeyAuthKey, "bmV3"))
	ep, err = store.RCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "bmV3", ep.AuthKey)

	require.NoError(t, store.ClearLogin())
	_, err = store.RCEndpoint()
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")

	store, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveLogin("http://rc:5572", "a2V5"))
	require.NoError(t, store.Close())

	store, err = New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ep, err := store.RCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "http://rc:5572", ep.URL)
	assert.Equal(t, "a2V5", ep.AuthKey)
}

func TestEncodeAuthKey(t *testing.T) {
	key := EncodeAuthKey("admin", "secret")
	decoded, err := base64.StdEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Equal(t, "admin:secret", string(decoded))
}
