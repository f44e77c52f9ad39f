package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec := Record{UserID: 7, CreatedAt: time.Now()}
	require.NoError(t, store.Put(ctx, "abc", rec))

	got, ok, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(7), got.UserID)

	_, ok, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	stale := Record{UserID: 3, CreatedAt: time.Now().Add(-TTL - time.Hour)}
	require.NoError(t, store.Put(ctx, "old", stale))

	_, ok, err := store.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok, "expired session must not resolve")

	// Expired record is removed on lookup, not just hidden.
	store.mu.RLock()
	_, stillThere := store.data["old"]
	store.mu.RUnlock()
	assert.False(t, stillThere)
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "abc", Record{UserID: 1, CreatedAt: time.Now()}))
	require.NoError(t, store.Delete(ctx, "abc"))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, ok, _ := store.Get(ctx, "abc")
	assert.False(t, ok)
}

func TestCreateAndResolve(t *testing.T) {
	ctx := context.Background()
	Use(NewMemoryStore())

	id, err := Create(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, id, 48)

	userID, ok := Resolve(ctx, id)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	Destroy(ctx, id)
	_, ok = Resolve(ctx, id)
	assert.False(t, ok)
}
