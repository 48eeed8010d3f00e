package save

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "savegame.txt"))

	p, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoRecord)
	assert.False(t, p.Exists())
}

func TestStoreSaveLoadReset(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "savegame.txt"))
	p := samplePlayer(t)

	require.NoError(t, store.Save(ctx, p))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// Overwrite keeps a single record.
	p.ModifyStress(5)
	require.NoError(t, store.Save(ctx, p))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.Stress, got.Stress)

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")

	require.NoError(t, store.Reset())
	require.NoError(t, store.Reset())
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o644))

	p, err := NewStore(path).Load(context.Background())
	require.ErrorIs(t, err, ErrCorrupt)
	assert.False(t, p.Exists())
}

func TestNewStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewStore("").Path())
}
