package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightservice/pkg/idgen"
	"flightservice/pkg/logger"
	"flightservice/pkg/session"

	"golang.org/x/crypto/bcrypt"
)

type Store interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
}

type Service struct {
	store    Store
	ids      idgen.Generator
	sessions session.Store
	ttl      time.Duration
	cost     int
	logger   logger.Logger
}

func NewService(store Store, ids idgen.Generator, sessions session.Store, ttl time.Duration, log logger.Logger) *Service {
	return &Service{
		store:    store,
		ids:      ids,
		sessions: sessions,
		ttl:      ttl,
		cost:     bcrypt.DefaultCost,
		logger:   log,
	}
}

// Register creates the user and returns a fresh token for it.
func (s *Service) Register(ctx context.Context, creds Credentials) (string, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return "", ErrMissingCredentials
	}

	if _, err := s.store.FindByUsername(ctx, username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           s.ids.GenerateID(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.store.Create(ctx, u); err != nil {
		return "", err
	}

	s.logger.Info("user registered",
		logger.Field{Key: "user_id", Value: u.ID},
		logger.Field{Key: "username", Value: u.Username},
	)
	return s.issue(ctx, u)
}

func (s *Service) ObtainToken(ctx context.Context, creds Credentials) (string, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		s.logger.Warn("login rejected", logger.Field{Key: "username", Value: username})
		return "", ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

// Authenticate resolves a token to its session.
func (s *Service) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *Service) issue(ctx context.Context, u *User) (string, error) {
	sess, err := s.sessions.Create(ctx, u.ID, u.Username, s.ttl)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return sess.ID, nil
}
