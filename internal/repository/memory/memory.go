package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/climateassistant/backend/internal/domain"
)

// maxLookups bounds the in-memory history
const maxLookups = 500

// Repository implements domain.LookupRepository in process memory.
// Used when no database is configured.
type Repository struct {
	mu      sync.RWMutex
	lookups []domain.Lookup
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{}
}

// SaveLookup appends a lookup, dropping the oldest once full
func (r *Repository) SaveLookup(ctx context.Context, l domain.Lookup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lookups = append(r.lookups, l)
	if len(r.lookups) > maxLookups {
		r.lookups = r.lookups[len(r.lookups)-maxLookups:]
	}
	return nil
}

// RecentLookups returns a copy of up to limit lookups, newest first
func (r *Repository) RecentLookups(ctx context.Context, limit int) ([]domain.Lookup, error) {
	r.mu.RLock()
	out := make([]domain.Lookup, len(r.lookups))
	copy(out, r.lookups)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Health always returns nil in memory mode
func (r *Repository) Health(ctx context.Context) error {
	return nil
}

// Close is a no-op in memory mode
func (r *Repository) Close() error {
	return nil
}
