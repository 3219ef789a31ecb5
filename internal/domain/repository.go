package domain

import (
	"context"
	"time"
)

// Lookup is one answered weather search, kept for history
type Lookup struct {
	ID          string    `json:"id"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Temperature *float64  `json:"temperature"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// LookupRepository defines the interface for lookup persistence.
// The domain owns the interface, storage packages implement it.
type LookupRepository interface {
	// SaveLookup persists a single lookup
	SaveLookup(ctx context.Context, l Lookup) error

	// RecentLookups returns up to limit lookups, newest first
	RecentLookups(ctx context.Context, limit int) ([]Lookup, error)

	// Health checks storage connectivity
	Health(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
