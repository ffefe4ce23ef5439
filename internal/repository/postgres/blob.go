package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/mermory-server/internal/model"
)

// DBTX is the part of a pgx pool or transaction the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ model.BlobStore = (*BlobRepository)(nil)

// BlobRepository stores blobs in the blobs table, one row per key.
type BlobRepository struct {
	db DBTX
}

func NewBlobRepository(db DBTX) *BlobRepository {
	return &BlobRepository{
		db: db,
	}
}

func (r *BlobRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	query := `SELECT value FROM blobs WHERE key = $1`

	err := r.db.QueryRow(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blob: %w", err)
	}

	return data, nil
}

func (r *BlobRepository) Save(ctx context.Context, key string, data []byte) error {
	query := `INSERT INTO blobs (key, value, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}

	return nil
}
