package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mivora/battlecalc/internal/replay"
)

// ReplayRepository implements replay.Store backed by PostgreSQL.
type ReplayRepository struct {
	pool *pgxpool.Pool
}

// Compile-time check.
var _ replay.Store = (*ReplayRepository)(nil)

// NewReplayRepository creates a new replay repository.
func NewReplayRepository(pool *pgxpool.Pool) *ReplayRepository {
	return &ReplayRepository{pool: pool}
}

// Save inserts a sealed record. Input and outcome go in as JSONB; the
// seed round-trips through bigint as two's complement.
func (r *ReplayRepository) Save(ctx context.Context, rec *replay.Record) error {
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO replays (id, created_at, name, seed, rounding, input, outcome, digest)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.CreatedAt, rec.Name, int64(rec.Seed), rec.Rounding,
		rec.Input, rec.Outcome, rec.Digest); err != nil {
		return fmt.Errorf("insert replay %s: %w", rec.ID, err)
	}
	return nil
}

// Get fetches a record by ID.
func (r *ReplayRepository) Get(ctx context.Context, id uuid.UUID) (*replay.Record, error) {
	rec, err := r.scanOne(r.pool.QueryRow(ctx,
		`SELECT id, created_at, name, seed, rounding, input, outcome, digest
		 FROM replays WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil // not found is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("query replay %s: %w", id, err)
	}
	return rec, nil
}

// GetByDigest fetches the record sealed with the given digest, if any.
// Identical inputs resolved on the same seed share a digest, so this is
// the dedup lookup.
func (r *ReplayRepository) GetByDigest(ctx context.Context, digest string) (*replay.Record, error) {
	rec, err := r.scanOne(r.pool.QueryRow(ctx,
		`SELECT id, created_at, name, seed, rounding, input, outcome, digest
		 FROM replays WHERE digest = $1
		 ORDER BY created_at LIMIT 1`, digest))
	if err == pgx.ErrNoRows {
		return nil, nil // not found is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("query replay by digest: %w", err)
	}
	return rec, nil
}

// ListRecent returns up to limit records, newest first.
func (r *ReplayRepository) ListRecent(ctx context.Context, limit int) ([]replay.Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, created_at, name, seed, rounding, input, outcome, digest
		 FROM replays ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query replays: %w", err)
	}
	defer rows.Close()

	var result []replay.Record
	for rows.Next() {
		rec, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scan replay: %w", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate replays: %w", err)
	}
	return result, nil
}

// Count returns the number of stored records.
func (r *ReplayRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM replays`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count replays: %w", err)
	}
	return n, nil
}

func (r *ReplayRepository) scanOne(row pgx.Row) (*replay.Record, error) {
	var (
		rec  replay.Record
		seed int64
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.Name, &seed,
		&rec.Rounding, &rec.Input, &rec.Outcome, &rec.Digest); err != nil {
		return nil, err
	}
	rec.Seed = uint64(seed)
	return &rec, nil
}
