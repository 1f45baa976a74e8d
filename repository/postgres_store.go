package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Table and row keys used by the hosted store. One row per document.
const (
	ProductsTable = "crocsdkr_products"
	ProductsKey   = "data"
	SettingsTable = "crocsdkr_settings"
	SettingsKey   = "site"
	OrdersTable   = "crocsdkr_orders"
)

// PostgresStore persists one JSON document as a (key, value jsonb) row,
// upserted on conflict. This is the hosted backend.
type PostgresStore struct {
	db    *sql.DB
	table string
	key   string
}

// NewPostgresStore creates a PostgresStore bound to one table row
func NewPostgresStore(db *sql.DB, table, key string) *PostgresStore {
	return &PostgresStore{db: db, table: table, key: key}
}

// Ensure PostgresStore implements DocumentStore
var _ DocumentStore = (*PostgresStore)(nil)

// Read returns the stored document, or (nil, nil) when the row is absent
func (s *PostgresStore) Read(ctx context.Context) (json.RawMessage, error) {
	query := fmt.Sprintf("SELECT value FROM %s WHERE key = $1", s.table)

	var value []byte
	err := s.db.QueryRowContext(ctx, query, s.key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", s.table, s.key, err)
	}
	return value, nil
}

// Write upserts the document row
func (s *PostgresStore) Write(ctx context.Context, doc json.RawMessage) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, s.table)

	if _, err := s.db.ExecContext(ctx, query, s.key, []byte(doc)); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", s.table, s.key, err)
	}
	return nil
}
