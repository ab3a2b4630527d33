package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phihorizon/storage"
)

func TestFileStore(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		fs, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, fs.Set("cart", []byte(`[{"productId":"1"}]`)))

		got, err := fs.Get("cart")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"productId":"1"}]`), got)
	})

	t.Run("overwrite wins", func(t *testing.T) {
		fs, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, fs.Set("user", []byte(`{"id":"1"}`)))
		require.NoError(t, fs.Set("user", []byte(`{"id":"2"}`)))

		got, err := fs.Get("user")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"id":"2"}`), got)
	})

	t.Run("missing key", func(t *testing.T) {
		fs, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = fs.Get("wishlist")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		fs, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, fs.Set("user", []byte(`{}`)))

		require.NoError(t, fs.Delete("user"))

		_, err = fs.Get("user")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		// Deleting an absent key is fine.
		assert.NoError(t, fs.Delete("user"))
	})

	t.Run("values survive reopening the directory", func(t *testing.T) {
		dir := t.TempDir()
		fs1, err := storage.NewFileStore(dir)
		require.NoError(t, err)
		require.NoError(t, fs1.Set("orders", []byte(`[]`)))

		fs2, err := storage.NewFileStore(dir)
		require.NoError(t, err)

		got, err := fs2.Get("orders")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		fs, err := storage.NewFileStore(dir)
		require.NoError(t, err)
		require.NoError(t, fs.Set("cart", []byte(`[]`)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "cart.json", entries[0].Name())
		assert.Equal(t, filepath.Ext(entries[0].Name()), ".json")
	})
}

func TestMemoryStore(t *testing.T) {
	ms := storage.NewMemoryStore()

	_, err := ms.Get("cart")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, ms.Set("cart", []byte(`[]`)))
	got, err := ms.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Mutating the returned slice must not leak into the store.
	got[0] = 'X'
	again, err := ms.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), again)

	require.NoError(t, ms.Delete("cart"))
	_, err = ms.Get("cart")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
