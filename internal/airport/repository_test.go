package airport

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"flightservice/pkg/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewRepository(db.Wrap(conn)), mock
}

func TestRepository_IataExists(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryIataExists)).WithArgs("GRU").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(queryIataExists)).WithArgs("XXX").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.IataExists(context.Background(), "GRU")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IataExists(context.Background(), "XXX")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IataExists_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(queryIataExists)).WithArgs("GRU").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.IataExists(context.Background(), "GRU")
	assert.ErrorContains(t, err, "connection refused")
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"iata_code", "city", "latitude", "longitude", "state"}).
		AddRow("GRU", "São Paulo", -23.425669, -46.481926, "SP").
		AddRow("STM", "Santarém", -2.424886, -54.78639, "PA")
	mock.ExpectQuery(regexp.QuoteMeta(queryListAirports)).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Airport{
		{IATA: "GRU", City: "São Paulo", Latitude: -23.425669, Longitude: -46.481926, State: "SP"},
		{IATA: "STM", City: "Santarém", Latitude: -2.424886, Longitude: -54.78639, State: "PA"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(queryListAirports)).
		WillReturnRows(sqlmock.NewRows([]string{"iata_code", "city", "latitude", "longitude", "state"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryInsertIata)).WithArgs("GRU").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryUpsertAirport)).
		WithArgs("GRU", "São Paulo", -23.425669, -46.481926, "SP").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryInsertIata)).WithArgs("STM").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(queryUpsertAirport)).
		WithArgs("STM", "Santarém", -2.424886, -54.78639, "PA").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Upsert(context.Background(), []Airport{
		{IATA: "GRU", City: "São Paulo", Latitude: -23.425669, Longitude: -46.481926, State: "SP"},
		{IATA: "STM", City: "Santarém", Latitude: -2.424886, Longitude: -54.78639, State: "PA"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_RollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryInsertIata)).WithArgs("GRU").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryUpsertAirport)).
		WithArgs("GRU", "São Paulo", -23.425669, -46.481926, "SP").
		WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	err := repo.Upsert(context.Background(), []Airport{
		{IATA: "GRU", City: "São Paulo", Latitude: -23.425669, Longitude: -46.481926, State: "SP"},
	})
	assert.ErrorContains(t, err, "upsert airport GRU")
	assert.NoError(t, mock.ExpectationsWereMet())
}
