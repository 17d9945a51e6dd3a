package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Store is a key/value cache with per-entry TTL. Backed by Redis in
// production and by an in-memory map in tests.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr increments a counter and returns the new value. The ttl is
	// applied only when the counter is created.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// GetOrPopulate implements the read-through pattern: on a hit the cached
// payload is decoded into a fresh value; on a miss the loader queries the
// backing store and the result is cached for ttl. The returned bool reports
// whether this was a hit. Concurrent misses may both run the loader; the
// payload is idempotent so last writer wins.
func GetOrPopulate[T any](ctx context.Context, store Store, key string, ttl time.Duration, loader func() (T, error)) (T, bool, error) {
	var value T

	raw, err := store.Get(ctx, key)
	if err == nil {
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, true, nil
		}
		// Undecodable entry, treat as a miss and overwrite below.
	} else if !errors.Is(err, ErrMiss) {
		return value, false, err
	}

	value, err = loader()
	if err != nil {
		return value, false, err
	}

	raw, err = json.Marshal(value)
	if err != nil {
		return value, false, err
	}
	if err := store.Set(ctx, key, raw, ttl); err != nil {
		return value, false, err
	}
	return value, false, nil
}
