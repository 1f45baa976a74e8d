package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"crocsdkr/models"
)

// FileOrdersRepository keeps the order log as one JSON array, newest first
type FileOrdersRepository struct {
	store DocumentStore
}

// NewFileOrdersRepository creates a new FileOrdersRepository
func NewFileOrdersRepository(store DocumentStore) *FileOrdersRepository {
	return &FileOrdersRepository{store: store}
}

// Ensure FileOrdersRepository implements OrdersRepositoryInterface
var _ OrdersRepositoryInterface = (*FileOrdersRepository)(nil)

// List returns all orders, newest first (insertion order: Add prepends)
func (r *FileOrdersRepository) List(ctx context.Context) ([]models.Order, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal(doc, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders document: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Add prepends the order and rewrites the document
func (r *FileOrdersRepository) Add(ctx context.Context, order *models.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}

	orders = append([]models.Order{*order}, orders...)
	doc, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders document: %w", err)
	}

	log.Printf("✓ Add order: %s (%d total)", order.ID, len(orders))
	return r.store.Write(ctx, doc)
}

// PostgresOrdersRepository keeps one row per order: (id, created_at, payload).
// The payload holds everything except id and createdAt, which live in their
// own columns so listing can sort on created_at.
type PostgresOrdersRepository struct {
	db *sql.DB
}

// NewPostgresOrdersRepository creates a new PostgresOrdersRepository
func NewPostgresOrdersRepository(db *sql.DB) *PostgresOrdersRepository {
	return &PostgresOrdersRepository{db: db}
}

// Ensure PostgresOrdersRepository implements OrdersRepositoryInterface
var _ OrdersRepositoryInterface = (*PostgresOrdersRepository)(nil)

// List returns all orders, newest first
func (r *PostgresOrdersRepository) List(ctx context.Context) ([]models.Order, error) {
	query := fmt.Sprintf("SELECT id, created_at, payload FROM %s ORDER BY created_at DESC", OrdersTable)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var id string
		var createdAt time.Time
		var payload []byte
		if err := rows.Scan(&id, &createdAt, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		var order models.Order
		if err := json.Unmarshal(payload, &order); err != nil {
			log.Printf("❌ List orders: skipping undecodable payload for %s: %v", id, err)
			continue
		}
		order.ID = id
		order.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}

// Add inserts the order row
func (r *PostgresOrdersRepository) Add(ctx context.Context, order *models.Order) error {
	// id and createdAt live in their own columns, not in the payload
	encoded, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order payload: %w", err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return fmt.Errorf("failed to shape order payload: %w", err)
	}
	delete(payload, "id")
	delete(payload, "createdAt")
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode order payload: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, order.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}

	query := fmt.Sprintf("INSERT INTO %s (id, created_at, payload) VALUES ($1, $2, $3)", OrdersTable)
	if _, err := r.db.ExecContext(ctx, query, order.ID, createdAt, body); err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.ID, err)
	}

	log.Printf("✓ Add order: %s", order.ID)
	return nil
}
