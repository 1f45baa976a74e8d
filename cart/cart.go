// Package cart maintains the device-local shopping cart: an ordered list of
// (slug, size, quantity) lines persisted as one serialized blob. It stores no
// pricing; joining against the catalog for totals is the caller's job.
package cart

import (
	"encoding/json"
	"log"
)

// StorageKey is the fixed key the cart blob is persisted under
const StorageKey = "crocsdkr_cart"

// Line is one cart entry. There is at most one line per (slug, size) pair.
type Line struct {
	Slug     string `json:"slug"`
	Size     int    `json:"size"`
	Quantity int    `json:"quantity"`
}

// Storage persists serialized blobs by key. Get returns (nil, nil) when the
// key has never been written.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Cart is the aggregator. Loaded once at construction, rewritten after every
// mutation. Mutations never fail: a broken or missing blob just means an
// empty cart, and persistence errors are logged and swallowed.
type Cart struct {
	storage Storage
	lines   []Line
}

// New creates a Cart, loading any previously persisted lines
func New(storage Storage) *Cart {
	c := &Cart{storage: storage, lines: []Line{}}

	raw, err := storage.Get(StorageKey)
	if err != nil || raw == nil {
		return c
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil || lines == nil {
		return c
	}
	c.lines = lines
	return c
}

func (c *Cart) persist() {
	raw, err := json.Marshal(c.lines)
	if err != nil {
		log.Printf("❌ cart: failed to encode lines: %v", err)
		return
	}
	if err := c.storage.Set(StorageKey, raw); err != nil {
		log.Printf("❌ cart: failed to persist: %v", err)
	}
}

func (c *Cart) find(slug string, size int) int {
	for i, l := range c.lines {
		if l.Slug == slug && l.Size == size {
			return i
		}
	}
	return -1
}

// Add puts qty of a variant/size into the cart, merging into an existing
// line when one matches
func (c *Cart) Add(slug string, size, qty int) {
	if i := c.find(slug, size); i >= 0 {
		c.lines[i].Quantity += qty
	} else {
		c.lines = append(c.lines, Line{Slug: slug, Size: size, Quantity: qty})
	}
	c.persist()
}

// Remove deletes the matching line; no-op when absent
func (c *Cart) Remove(slug string, size int) {
	i := c.find(slug, size)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.persist()
}

// SetQuantity updates an existing line in place. A quantity below 1 removes
// the line. Lines are never created here: the storefront only calls this on
// lines already in the cart.
func (c *Cart) SetQuantity(slug string, size, qty int) {
	if qty < 1 {
		c.Remove(slug, size)
		return
	}
	if i := c.find(slug, size); i >= 0 {
		c.lines[i].Quantity = qty
		c.persist()
	}
}

// Count returns the sum of quantities across all lines
func (c *Cart) Count() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = []Line{}
	c.persist()
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
