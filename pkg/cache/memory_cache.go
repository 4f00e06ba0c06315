package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 5 * time.Minute

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache returns a process-local Cache. Entries set with ttl <= 0 never expire.
func NewMemoryCache() Cache {
	return &memoryCache{store: gocache.New(gocache.NoExpiration, memoryCleanupInterval)}
}

func (m *memoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, value, ttl)
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return "", ErrMiss
	}
	return v.(string), nil
}

func (m *memoryCache) Del(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}
