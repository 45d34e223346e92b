package jobs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SeededListings(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	listings, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 8)
	assert.Equal(t, "Frontend Developer", listings[0].Title)
	assert.Equal(t, "Innovate Inc.", listings[0].Company)

	applied, err := store.Applied(ctx)
	require.NoError(t, err)
	require.Len(t, applied, 2)
	for _, listing := range applied {
		assert.True(t, listing.Applied)
		assert.NotNil(t, listing.AppliedAt)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	listing, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestMemoryStore_ApplyStampsAppliedAt(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	listings, err := store.List(ctx)
	require.NoError(t, err)

	// Backend Engineer has not been applied to yet.
	target := listings[1]
	require.False(t, target.Applied)
	require.Nil(t, target.AppliedAt)

	target.Applied = true
	updated, err := store.Update(ctx, target)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Applied)
	require.NotNil(t, updated.AppliedAt)

	// Updating again does not re-stamp.
	stamp := *updated.AppliedAt
	updated.Progress = 50
	again, err := store.Update(ctx, *updated)
	require.NoError(t, err)
	assert.Equal(t, stamp, *again.AppliedAt)
}

func TestMemoryStore_UpdateMissingReturnsNil(t *testing.T) {
	store := NewMemoryStore()

	updated, err := store.Update(context.Background(), Listing{ID: uuid.New(), Title: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestMemoryStore_Create(t *testing.T) {
	store := NewEmptyMemoryStore()
	ctx := context.Background()

	listing := &Listing{Title: "Platform Engineer", Company: "Acme", Location: "Remote"}
	require.NoError(t, store.Create(ctx, listing))
	assert.NotEqual(t, uuid.Nil, listing.ID)
	assert.False(t, listing.PostedAt.IsZero())

	got, err := store.Get(ctx, listing.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Platform Engineer", got.Title)
}
