// Package sqlite keeps blobs in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/dtroode/mermory-server/database"
	"github.com/dtroode/mermory-server/internal/model"
)

const driverName = "sqlite"

// Open opens (creating if needed) the database file at path and applies
// pending migrations.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	if err := database.MigrateSQLite(ctx, db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, nil
}

var _ model.BlobStore = (*BlobRepository)(nil)

// BlobRepository stores blobs in the blobs table, one row per key.
type BlobRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewBlobRepository(db *sqlx.DB) *BlobRepository {
	return &BlobRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *BlobRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	query := r.db.Rebind(`SELECT value FROM blobs WHERE key = ?`)

	if err := r.db.GetContext(ctx, &data, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blob: %w", err)
	}

	return data, nil
}

func (r *BlobRepository) Save(ctx context.Context, key string, data []byte) error {
	query := r.db.Rebind(`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, key, data, r.now().UTC()); err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}

	return nil
}
