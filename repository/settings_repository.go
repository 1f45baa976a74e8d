package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"crocsdkr/models"
)

// SettingsRepository manages the site-settings document through a
// DocumentStore
type SettingsRepository struct {
	store DocumentStore
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(store DocumentStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Ensure SettingsRepository implements SettingsRepositoryInterface
var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)

// GetDocument returns the whole settings document. An absent document is
// ErrNotFound: the storefront cannot run without its settings file.
func (r *SettingsRepository) GetDocument(ctx context.Context) (models.SettingsDocument, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	var settings models.SettingsDocument
	if err := json.Unmarshal(doc, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings document: %w", err)
	}
	return settings, nil
}

func (r *SettingsRepository) save(ctx context.Context, settings models.SettingsDocument) error {
	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings document: %w", err)
	}
	return r.store.Write(ctx, doc)
}

// GetSection returns one named top-level section; ErrNotFound when absent
func (r *SettingsRepository) GetSection(ctx context.Context, section string) (json.RawMessage, error) {
	settings, err := r.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	value, ok := settings[section]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// PutSection replaces a section wholesale, except "admin" which is
// shallow-merged so a password update never clears the stored urlCode and
// vice versa
func (r *SettingsRepository) PutSection(ctx context.Context, section string, data json.RawMessage) error {
	settings, err := r.GetDocument(ctx)
	if err != nil {
		return err
	}

	if section == models.SectionAdmin {
		if merged, ok := shallowMerge(settings[section], data); ok {
			data = merged
		}
	}
	settings[section] = data

	log.Printf("✓ PutSection: %s", section)
	return r.save(ctx, settings)
}

// MergeTopLevel shallow-merges the given object into the top level of the
// document, used for bulk updates
func (r *SettingsRepository) MergeTopLevel(ctx context.Context, data json.RawMessage) error {
	settings, err := r.GetDocument(ctx)
	if err != nil {
		return err
	}

	var update models.SettingsDocument
	if err := json.Unmarshal(data, &update); err != nil {
		return fmt.Errorf("failed to decode settings update: %w", err)
	}
	for key, value := range update {
		settings[key] = value
	}

	log.Printf("✓ MergeTopLevel: %d section(s)", len(update))
	return r.save(ctx, settings)
}

// AppendItem assigns a fresh unique id to the item and appends it to a
// list-valued section. Returns the stored item.
func (r *SettingsRepository) AppendItem(ctx context.Context, section string, item json.RawMessage) (json.RawMessage, error) {
	settings, err := r.GetDocument(ctx)
	if err != nil {
		return nil, err
	}

	items, err := sectionItems(settings, section)
	if err != nil {
		return nil, err
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(item, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	obj["id"] = freshItemID(items)

	stored, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}
	items = append(items, stored)

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode section %s: %w", section, err)
	}
	settings[section] = raw

	log.Printf("✓ AppendItem: %s id=%v", section, obj["id"])
	if err := r.save(ctx, settings); err != nil {
		return nil, err
	}
	return stored, nil
}

// DeleteItem removes the item with the matching id from a list-valued
// section. Other items and their order values are untouched.
func (r *SettingsRepository) DeleteItem(ctx context.Context, section, id string) error {
	settings, err := r.GetDocument(ctx)
	if err != nil {
		return err
	}

	items, err := sectionItems(settings, section)
	if err != nil {
		return err
	}

	kept := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		if itemID(it) == id {
			continue
		}
		kept = append(kept, it)
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("failed to encode section %s: %w", section, err)
	}
	settings[section] = raw

	log.Printf("✓ DeleteItem: %s id=%s (%d -> %d)", section, id, len(items), len(kept))
	return r.save(ctx, settings)
}

// sectionItems returns the section decoded as a list, or ErrInvalidSection
// when the section is absent or not an array
func sectionItems(settings models.SettingsDocument, section string) ([]json.RawMessage, error) {
	if !models.ListSections[section] {
		return nil, ErrInvalidSection
	}
	raw, ok := settings[section]
	if !ok {
		return nil, ErrInvalidSection
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrInvalidSection
	}
	return items, nil
}

// itemID extracts the id field of a stored list item as a string
func itemID(item json.RawMessage) string {
	var probe struct {
		ID interface{} `json:"id"`
	}
	if err := json.Unmarshal(item, &probe); err != nil {
		return ""
	}
	switch v := probe.ID.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// freshItemID generates a time-based id guaranteed distinct from every id
// already present in the list
func freshItemID(items []json.RawMessage) string {
	existing := make(map[string]bool, len(items))
	for _, it := range items {
		existing[itemID(it)] = true
	}

	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !existing[id] {
			return id
		}
		n++
	}
}

// shallowMerge overlays the update object onto the current object. Returns
// ok=false when either side is not a JSON object, in which case the caller
// falls back to a plain replace.
func shallowMerge(current, update json.RawMessage) (json.RawMessage, bool) {
	if current == nil {
		return nil, false
	}
	var base, patch map[string]json.RawMessage
	if err := json.Unmarshal(current, &base); err != nil {
		return nil, false
	}
	if err := json.Unmarshal(update, &patch); err != nil {
		return nil, false
	}
	for key, value := range patch {
		base[key] = value
	}
	merged, err := json.Marshal(base)
	if err != nil {
		return nil, false
	}
	return merged, true
}
