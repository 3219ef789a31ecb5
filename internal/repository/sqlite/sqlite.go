package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"github.com/climateassistant/backend/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS weather_lookups (
	id          TEXT PRIMARY KEY,
	city        TEXT NOT NULL,
	country     TEXT NOT NULL DEFAULT '',
	temperature REAL,
	description TEXT NOT NULL DEFAULT '',
	source      TEXT NOT NULL,
	created_at  TEXT NOT NULL
);`

// Fixed-width UTC timestamps keep text ordering chronological
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteRepository implements domain.LookupRepository on an embedded
// database file (pure Go driver modernc.org/sqlite).
type SQLiteRepository struct {
	db *sql.DB
}

// busyTimeout makes a locked database wait instead of failing with SQLITE_BUSY
const busyTimeout = "?_pragma=busy_timeout(5000)"

// New opens (or creates) the database at path and applies the schema
func New(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path+busyTimeout)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}
	// Lookups are saved from concurrent goroutines; one writer connection serializes them
	db.SetMaxOpenConns(1)

	// WAL lets the background lookup writer run next to history reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Printf("sqlite: could not set WAL mode: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to apply schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveLookup persists a lookup
func (r *SQLiteRepository) SaveLookup(ctx context.Context, l domain.Lookup) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO weather_lookups(id, city, country, temperature, description, source, created_at) VALUES(?,?,?,?,?,?,?)`,
		l.ID, l.City, l.Country, l.Temperature, l.Description, l.Source, l.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to save lookup: %w", err)
	}
	return nil
}

// RecentLookups returns up to limit lookups, newest first
func (r *SQLiteRepository) RecentLookups(ctx context.Context, limit int) ([]domain.Lookup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, city, country, temperature, description, source, created_at FROM weather_lookups ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query lookups: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Lookup, 0, limit)
	for rows.Next() {
		var (
			l    domain.Lookup
			temp sql.NullFloat64
			ts   string
		)
		if err := rows.Scan(&l.ID, &l.City, &l.Country, &temp, &l.Description, &l.Source, &ts); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan lookup row: %w", err)
		}
		if temp.Valid {
			v := temp.Float64
			l.Temperature = &v
		}
		if t, err := time.Parse(timeLayout, ts); err == nil {
			l.CreatedAt = t
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to iterate lookups: %w", err)
	}
	return out, nil
}

// Health pings the database
func (r *SQLiteRepository) Health(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: health check failed: %w", err)
	}
	return nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
