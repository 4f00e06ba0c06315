package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*SQLClient, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return Wrap(conn), mock
}

func TestSQLClient_WithTransaction(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO iata").WithArgs("GRU").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := client.WithTransaction(context.Background(), sql.LevelReadCommitted,
			func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "INSERT INTO iata (iata_code) VALUES ($1)", "GRU")
				return err
			})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns fn error", func(t *testing.T) {
		client, mock := newMockClient(t)
		fnErr := errors.New("constraint violated")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := client.WithTransaction(context.Background(), sql.LevelReadCommitted,
			func(ctx context.Context, tx *sql.Tx) error {
				return fnErr
			})

		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps rollback failure", func(t *testing.T) {
		client, mock := newMockClient(t)
		fnErr := errors.New("write failed")

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

		err := client.WithTransaction(context.Background(), sql.LevelReadCommitted,
			func(ctx context.Context, tx *sql.Tx) error {
				return fnErr
			})

		assert.ErrorIs(t, err, fnErr)
		assert.Contains(t, err.Error(), "connection lost")
	})

	t.Run("begin failure", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		called := false
		err := client.WithTransaction(context.Background(), sql.LevelReadCommitted,
			func(ctx context.Context, tx *sql.Tx) error {
				called = true
				return nil
			})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
		assert.False(t, called)
	})

	t.Run("commit failure", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := client.WithTransaction(context.Background(), sql.LevelSerializable,
			func(ctx context.Context, tx *sql.Tx) error { return nil })

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "commit error")
	})
}

func TestSQLClient_QueryRowContext(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("GRU").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	var exists bool
	err := client.QueryRowContext(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM iata WHERE iata_code = $1)", "GRU").Scan(&exists)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
