package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"flightservice/pkg/db"

	"github.com/lib/pq"
)

const (
	queryInsertUser = `INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)
		RETURNING created_at`

	queryUserByUsername = `SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`

	uniqueViolation = "23505"
)

type Repository struct {
	db db.SQLExecutor
}

func NewRepository(db db.SQLExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts u and fills CreatedAt. A duplicate username yields ErrUsernameTaken.
func (r *Repository) Create(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx, queryInsertUser, u.ID, u.Username, u.PasswordHash).Scan(&u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, queryUserByUsername, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}
