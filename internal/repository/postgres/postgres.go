package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/climateassistant/backend/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS weather_lookups (
		id          UUID PRIMARY KEY,
		city        TEXT NOT NULL,
		country     TEXT NOT NULL DEFAULT '',
		temperature DOUBLE PRECISION,
		description TEXT NOT NULL DEFAULT '',
		source      TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS weather_lookups_created_at_idx ON weather_lookups (created_at DESC);
`

// PostgresRepository implements domain.LookupRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Migrate creates the lookup table if it does not exist
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to apply schema: %w", err)
	}
	return nil
}

// SaveLookup persists a lookup to PostgreSQL
func (r *PostgresRepository) SaveLookup(ctx context.Context, l domain.Lookup) error {
	query := `
		INSERT INTO weather_lookups (
			id, city, country, temperature, description, source, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.City, l.Country, l.Temperature, l.Description, l.Source, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save lookup: %w", err)
	}

	return nil
}

// RecentLookups retrieves the newest lookups from PostgreSQL
func (r *PostgresRepository) RecentLookups(ctx context.Context, limit int) ([]domain.Lookup, error) {
	query := `
		SELECT id::text, city, country, temperature, description, source, created_at
		FROM weather_lookups
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query lookups: %w", err)
	}
	defer rows.Close()

	results := make([]domain.Lookup, 0, limit)
	for rows.Next() {
		var l domain.Lookup
		err := rows.Scan(
			&l.ID, &l.City, &l.Country, &l.Temperature, &l.Description, &l.Source, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan lookup row: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate lookups: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// Close releases the pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
