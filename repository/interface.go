package repository

import (
	"context"
	"encoding/json"
	"errors"

	"crocsdkr/models"
)

// ErrNotFound is returned when a requested document or section is absent
var ErrNotFound = errors.New("not found")

// ErrInvalidSection is returned when a list operation targets a settings
// section that is absent or not an array
var ErrInvalidSection = errors.New("invalid section")

// DocumentStore is the read/write contract every backend implements: one
// whole JSON document per store. Read returns (nil, nil) when the document
// does not exist yet. Last write wins; there is no locking or versioning.
type DocumentStore interface {
	Read(ctx context.Context) (json.RawMessage, error)
	Write(ctx context.Context, doc json.RawMessage) error
}

// ProductsRepositoryInterface defines the contract for the raw catalog
// document (product type -> color -> images)
type ProductsRepositoryInterface interface {
	Get(ctx context.Context) (models.ColorImageSet, error)
	Save(ctx context.Context, set models.ColorImageSet) error
	SetColor(ctx context.Context, productType, color string, images []string) error
	UpdateColor(ctx context.Context, productType, oldColor, newColor string, images []string) error
	DeleteColor(ctx context.Context, productType, color string) error
}

// SettingsRepositoryInterface defines the contract for the site-settings
// document and its sections
type SettingsRepositoryInterface interface {
	GetDocument(ctx context.Context) (models.SettingsDocument, error)
	GetSection(ctx context.Context, section string) (json.RawMessage, error)
	PutSection(ctx context.Context, section string, data json.RawMessage) error
	MergeTopLevel(ctx context.Context, data json.RawMessage) error
	AppendItem(ctx context.Context, section string, item json.RawMessage) (json.RawMessage, error)
	DeleteItem(ctx context.Context, section, id string) error
}

// OrdersRepositoryInterface defines the contract for the order log
type OrdersRepositoryInterface interface {
	List(ctx context.Context) ([]models.Order, error)
	Add(ctx context.Context, order *models.Order) error
}

// SubscriptionsRepositoryInterface defines the contract for registered push
// devices
type SubscriptionsRepositoryInterface interface {
	List(ctx context.Context) ([]models.PushSubscription, error)
	Add(ctx context.Context, sub models.PushSubscription) error
	Remove(ctx context.Context, endpoint string) error
}
