package replay

import (
	"context"

	"github.com/google/uuid"
)

// Store persists sealed records. The PostgreSQL implementation lives in
// internal/db; the interface is here so callers can be unit-tested
// against an in-memory mock.
type Store interface {
	// Save stores a record. Saving the same ID twice is an error.
	Save(ctx context.Context, rec *Record) error
	// Get fetches a record by ID. Returns nil, nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	// GetByDigest fetches a record sealed with the given digest.
	// Returns nil, nil when absent.
	GetByDigest(ctx context.Context, digest string) (*Record, error)
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}
