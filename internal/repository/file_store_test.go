package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/validation"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file reports ErrBlobNotFound", func(t *testing.T) {
		store := NewFileStore(t.TempDir())

		_, err := store.Read(ctx, domain.CollectionEnemies)

		assert.ErrorIs(t, err, ErrBlobNotFound)
	})

	t.Run("write then read", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data-base")
		store := NewFileStore(dir)

		require.NoError(t, store.Write(ctx, domain.CollectionEnemies, []byte(`[]`)))
		data, err := store.Read(ctx, domain.CollectionEnemies)

		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
		assert.Equal(t, filepath.Join(dir, "enemies.json"), store.Path(domain.CollectionEnemies))
		assert.Equal(t, dir, store.Dir())
	})

	t.Run("read errors other than absence are wrapped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "stats.json"), 0o755))

		_, err := NewFileStore(dir).Read(ctx, domain.CollectionStats)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBlobNotFound)
		assert.Contains(t, err.Error(), "failed to read stats collection")
	})
}

func TestFileStore_CollectionLifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	inv := NewCollection[domain.Item](NewFileStore(dir), domain.CollectionInventory, validation.NewSchemaValidator())
	path := filepath.Join(dir, "inventory.json")

	items, err := inv.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	content, err := os.ReadFile(path)
	require.NoError(t, err, "loading a missing collection should create the file")
	assert.Equal(t, "[]\n", string(content))

	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0o644))
	items, err = inv.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "corrupt file should load as empty")

	require.NoError(t, inv.Save(ctx, []domain.Item{{Name: "Torch", Count: 1}}))
	items, err = inv.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Torch", items[0].Name)
}
