package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/types"
)

func testSession() *types.Session {
	return &types.Session{
		Token: "header.payload.signature",
		User: types.User{
			ID:    "user-1",
			Name:  "Ann",
			Email: "ann@x.com",
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	saved := testSession()
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	first := testSession()
	require.NoError(t, store.Save(first))

	second := &types.Session{
		Token: "another.token.value",
		User:  types.User{ID: "user-2", Name: "Bea", Email: "bea@x.com"},
	}
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestFileStoreLoadAbsent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, store.Clear())
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing an already-empty store is a no-op, not an error.
	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFileStore(path)
	_, err := store.Load()

	var storageErr *apierror.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestFileStoreRejectsEmptySession(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	var storageErr *apierror.StorageError
	assert.ErrorAs(t, store.Save(nil), &storageErr)
	assert.ErrorAs(t, store.Save(&types.Session{}), &storageErr)
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(testSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save(testSession()))
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, testSession(), loaded)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}
