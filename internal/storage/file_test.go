package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kfc-ordering/internal/domain"
	"kfc-ordering/internal/storage"
)

func TestFileStore_MissingFileMeansNotFound(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	_, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	snap := domain.SeedSnapshot()

	require.NoError(t, store.Save(snap))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap, loaded)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := storage.NewFileStore(path)

	_, _, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	_, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)

	snap := domain.SeedSnapshot()
	require.NoError(t, store.Save(snap))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap, loaded)
}
