package airport

import (
	"context"
	"database/sql"
	"fmt"

	"flightservice/pkg/db"
)

const (
	queryIataExists = `SELECT EXISTS(SELECT 1 FROM iata WHERE iata_code = $1)`

	queryListAirports = `SELECT iata_code, city, latitude, longitude, state
		FROM airports
		ORDER BY iata_code`

	queryInsertIata = `INSERT INTO iata (iata_code) VALUES ($1)
		ON CONFLICT (iata_code) DO NOTHING`

	queryUpsertAirport = `INSERT INTO airports (iata_code, city, latitude, longitude, state)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (iata_code) DO UPDATE SET
			city = EXCLUDED.city,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			state = EXCLUDED.state,
			updated_at = NOW()`
)

type Repository struct {
	db db.SQLExecutor
}

func NewRepository(db db.SQLExecutor) *Repository {
	return &Repository{db: db}
}

// IataExists satisfies flight.IataLookup.
func (r *Repository) IataExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, queryIataExists, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("query iata: %w", err)
	}
	return exists, nil
}

func (r *Repository) List(ctx context.Context) ([]Airport, error) {
	rows, err := r.db.QueryContext(ctx, queryListAirports)
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()

	airports := make([]Airport, 0)
	for rows.Next() {
		var a Airport
		if err := rows.Scan(&a.IATA, &a.City, &a.Latitude, &a.Longitude, &a.State); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airports: %w", err)
	}
	return airports, nil
}

// Upsert writes every airport in one transaction. IATA codes are inserted
// when missing; airport rows are created or overwritten by code.
func (r *Repository) Upsert(ctx context.Context, airports []Airport) error {
	return r.db.WithTransaction(ctx, sql.LevelReadCommitted, func(ctx context.Context, tx *sql.Tx) error {
		for _, a := range airports {
			if _, err := tx.ExecContext(ctx, queryInsertIata, a.IATA); err != nil {
				return fmt.Errorf("insert iata %s: %w", a.IATA, err)
			}
			if _, err := tx.ExecContext(ctx, queryUpsertAirport, a.IATA, a.City, a.Latitude, a.Longitude, a.State); err != nil {
				return fmt.Errorf("upsert airport %s: %w", a.IATA, err)
			}
		}
		return nil
	})
}
