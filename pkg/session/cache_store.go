package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flightservice/pkg/cache"
)

const keyPrefix = "session:"

// CacheStore keeps sessions in a cache.Cache (Redis in production) and
// lets the cache TTL expire them.
type CacheStore struct {
	cache cache.Cache
}

func NewCacheStore(c cache.Cache) *CacheStore {
	return &CacheStore{cache: c}
}

func (s *CacheStore) Create(ctx context.Context, userID int64, username string, ttl time.Duration) (*Session, error) {
	session, err := newSession(userID, username, ttl, time.Now())
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, keyPrefix+session.ID, string(b), ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

func (s *CacheStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.cache.Get(ctx, keyPrefix+id)
	if errors.Is(err, cache.ErrMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.cache.Del(ctx, keyPrefix+id)
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *CacheStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Del(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *CacheStore) Cleanup() {}
