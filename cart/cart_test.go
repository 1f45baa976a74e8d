package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) *Cart {
	t.Helper()
	return New(NewFileStorage(t.TempDir()))
}

func TestAddMergesSameLine(t *testing.T) {
	c := newCart(t)

	c.Add("crocs-classic-noir", 42, 1)
	c.Add("crocs-classic-noir", 42, 2)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddDistinctSizesAreDistinctLines(t *testing.T) {
	c := newCart(t)

	c.Add("crocs-classic-noir", 42, 1)
	c.Add("crocs-classic-noir", 43, 1)
	c.Add("crocs-classic-blanc", 42, 1)

	assert.Len(t, c.Items(), 3)
	assert.Equal(t, 3, c.Count())
}

func TestSetQuantity(t *testing.T) {
	c := newCart(t)

	c.Add("crocs-classic-noir", 42, 1)
	c.SetQuantity("crocs-classic-noir", 42, 5)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	// below 1 removes the line entirely
	c.SetQuantity("crocs-classic-noir", 42, 0)
	assert.Empty(t, c.Items())

	// strict update only: no line is created for an unknown pair
	c.SetQuantity("crocs-classic-blanc", 40, 2)
	assert.Empty(t, c.Items())
}

func TestRemove(t *testing.T) {
	c := newCart(t)

	c.Add("crocs-classic-noir", 42, 1)
	c.Remove("crocs-classic-noir", 42)
	assert.Empty(t, c.Items())

	// removing an absent line is a no-op
	c.Remove("crocs-classic-noir", 42)
	assert.Empty(t, c.Items())
}

func TestClearAndCount(t *testing.T) {
	c := newCart(t)

	c.Add("crocs-classic-noir", 42, 2)
	c.Add("crocs-classic-blanc", 40, 1)
	assert.Equal(t, 3, c.Count())

	c.Clear()
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Items())
}

func TestPersistenceAcrossLoads(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)

	c := New(storage)
	c.Add("crocs-classic-noir", 42, 2)

	reloaded := New(NewFileStorage(dir))
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, Line{Slug: "crocs-classic-noir", Size: 42, Quantity: 2}, items[0])
}

func TestCorruptBlobYieldsEmptyCart(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)
	require.NoError(t, storage.Set(StorageKey, []byte("not json")))

	c := New(storage)
	assert.Empty(t, c.Items())
}
