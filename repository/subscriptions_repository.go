package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"crocsdkr/models"
)

// SubscriptionsRepository keeps the registered push devices as one JSON
// array keyed by endpoint. Subscriptions always live in the local file,
// whichever backend holds the rest of the data: they belong to the admin's
// devices, not to the storefront content.
type SubscriptionsRepository struct {
	store DocumentStore
}

// NewSubscriptionsRepository creates a new SubscriptionsRepository
func NewSubscriptionsRepository(store DocumentStore) *SubscriptionsRepository {
	return &SubscriptionsRepository{store: store}
}

// Ensure SubscriptionsRepository implements SubscriptionsRepositoryInterface
var _ SubscriptionsRepositoryInterface = (*SubscriptionsRepository)(nil)

// List returns all registered subscriptions
func (r *SubscriptionsRepository) List(ctx context.Context) ([]models.PushSubscription, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.PushSubscription{}, nil
	}

	var subs []models.PushSubscription
	if err := json.Unmarshal(doc, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode subscriptions document: %w", err)
	}
	if subs == nil {
		subs = []models.PushSubscription{}
	}
	return subs, nil
}

func (r *SubscriptionsRepository) save(ctx context.Context, subs []models.PushSubscription) error {
	doc, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("failed to encode subscriptions document: %w", err)
	}
	return r.store.Write(ctx, doc)
}

// Add registers a subscription; registering an already-known endpoint is a
// no-op
func (r *SubscriptionsRepository) Add(ctx context.Context, sub models.PushSubscription) error {
	subs, err := r.List(ctx)
	if err != nil {
		return err
	}

	for _, s := range subs {
		if s.Endpoint == sub.Endpoint {
			return nil
		}
	}

	subs = append(subs, sub)
	log.Printf("✓ Add push subscription (%d total)", len(subs))
	return r.save(ctx, subs)
}

// Remove drops the subscription with the given endpoint, if present
func (r *SubscriptionsRepository) Remove(ctx context.Context, endpoint string) error {
	subs, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.PushSubscription, 0, len(subs))
	for _, s := range subs {
		if s.Endpoint != endpoint {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(subs) {
		return nil
	}

	log.Printf("✓ Removed dead push subscription (%d left)", len(kept))
	return r.save(ctx, kept)
}
