package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "key", "value"))
	v, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	require.NoError(t, store.Set(ctx, "key", "updated"))
	v, _, _ = store.Get(ctx, "key")
	assert.Equal(t, "updated", v)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "store.json")
	ctx := context.Background()

	store := NewFileStore(path)
	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))

	// A fresh store over the same file sees both keys.
	reopened := NewFileStore(path)
	v, ok, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	v, ok, _ = reopened.Get(ctx, "b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestFileStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o644))
	ctx := context.Background()

	store := NewFileStore(path)
	_, ok, err := store.Get(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)

	// Writes still work and replace the corrupt file.
	require.NoError(t, store.Set(ctx, "k", "v"))
	v, ok, _ := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
