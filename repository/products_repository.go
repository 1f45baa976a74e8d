package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"crocsdkr/models"
)

// ProductsRepository manages the raw catalog document through a DocumentStore
type ProductsRepository struct {
	store DocumentStore
}

// NewProductsRepository creates a new ProductsRepository
func NewProductsRepository(store DocumentStore) *ProductsRepository {
	return &ProductsRepository{store: store}
}

// Ensure ProductsRepository implements ProductsRepositoryInterface
var _ ProductsRepositoryInterface = (*ProductsRepository)(nil)

// Get returns the catalog document; an absent document yields an empty set
func (r *ProductsRepository) Get(ctx context.Context) (models.ColorImageSet, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return models.ColorImageSet{}, nil
	}

	var set models.ColorImageSet
	if err := json.Unmarshal(doc, &set); err != nil {
		return nil, fmt.Errorf("failed to decode products document: %w", err)
	}
	return set, nil
}

// Save replaces the catalog document wholesale
func (r *ProductsRepository) Save(ctx context.Context, set models.ColorImageSet) error {
	doc, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode products document: %w", err)
	}
	return r.store.Write(ctx, doc)
}

// SetColor creates or replaces the image list of one color entry
func (r *ProductsRepository) SetColor(ctx context.Context, productType, color string, images []string) error {
	set, err := r.Get(ctx)
	if err != nil {
		return err
	}

	if set[productType] == nil {
		set[productType] = map[string][]string{}
	}
	set[productType][color] = images

	log.Printf("✓ SetColor: %s / %s (%d image(s))", productType, color, len(images))
	return r.Save(ctx, set)
}

// UpdateColor replaces a color entry, removing the old color first when the
// entry was renamed
func (r *ProductsRepository) UpdateColor(ctx context.Context, productType, oldColor, newColor string, images []string) error {
	set, err := r.Get(ctx)
	if err != nil {
		return err
	}

	if oldColor != "" && oldColor != newColor {
		if colors, ok := set[productType]; ok {
			delete(colors, oldColor)
		}
	}

	if set[productType] == nil {
		set[productType] = map[string][]string{}
	}
	set[productType][newColor] = images

	log.Printf("✓ UpdateColor: %s / %s -> %s", productType, oldColor, newColor)
	return r.Save(ctx, set)
}

// DeleteColor removes a color entry; when the product type has no colors
// left, the type entry is removed too. Deleting an absent entry is a no-op.
func (r *ProductsRepository) DeleteColor(ctx context.Context, productType, color string) error {
	set, err := r.Get(ctx)
	if err != nil {
		return err
	}

	colors, ok := set[productType]
	if !ok {
		return nil
	}
	if _, ok := colors[color]; !ok {
		return nil
	}

	delete(colors, color)
	if len(colors) == 0 {
		delete(set, productType)
	}

	log.Printf("✓ DeleteColor: %s / %s", productType, color)
	return r.Save(ctx, set)
}
