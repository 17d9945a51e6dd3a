package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Minute))
	raw, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), raw)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Hour))

	now = now.Add(30 * time.Minute)
	_, err := store.Get(ctx, "key")
	assert.NoError(t, err)

	now = now.Add(31 * time.Minute)
	_, err = store.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreIncr(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	for want := int64(1); want <= 3; want++ {
		got, err := store.Incr(ctx, "counter", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Counter resets once the ttl elapses.
	now = now.Add(2 * time.Hour)
	got, err := store.Incr(ctx, "counter", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestGetOrPopulate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loads := 0
	loader := func() ([]string, error) {
		loads++
		return []string{"a", "b"}, nil
	}

	value, hit, err := GetOrPopulate(ctx, store, "list", time.Hour, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.Equal(t, 1, loads)

	// Second call is served from the cache without touching the loader.
	value, hit, err = GetOrPopulate(ctx, store, "list", time.Hour, loader)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.Equal(t, 1, loads)
}

func TestGetOrPopulateReloadsAfterExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	loads := 0
	loader := func() (int, error) {
		loads++
		return loads, nil
	}

	value, hit, err := GetOrPopulate(ctx, store, "n", time.Hour, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, value)

	now = now.Add(2 * time.Hour)
	value, hit, err = GetOrPopulate(ctx, store, "n", time.Hour, loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, value)
}

func TestGetOrPopulateLoaderError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, hit, err := GetOrPopulate(ctx, store, "broken", time.Hour, func() (string, error) {
		return "", assert.AnError
	})
	assert.False(t, hit)
	assert.ErrorIs(t, err, assert.AnError)

	// Nothing was cached on the failed load.
	_, err = store.Get(ctx, "broken")
	assert.ErrorIs(t, err, ErrMiss)
}
