package session

import (
	"context"
	"sync"
	"time"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	done     chan struct{}
	once     sync.Once
}

func NewInMemoryStore(cleanupInterval time.Duration) *InMemoryStore {
	store := &InMemoryStore{
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
	go store.cleanupRoutine(cleanupInterval)
	return store
}

func (s *InMemoryStore) Create(_ context.Context, userID int64, username string, ttl time.Duration) (*Session, error) {
	session, err := newSession(userID, username, ttl, time.Now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session

	cp := *session
	return &cp, nil
}

func (s *InMemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionExpired
	}

	cp := *session
	return &cp, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Cleanup stops the expiry goroutine. Safe to call more than once.
func (s *InMemoryStore) Cleanup() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *InMemoryStore) cleanupRoutine(interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.done:
			return
		}
	}
}

func (s *InMemoryStore) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *InMemoryStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
