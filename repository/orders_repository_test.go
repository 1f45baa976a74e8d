package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crocsdkr/models"
)

func newOrdersRepo(t *testing.T) *FileOrdersRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	return NewFileOrdersRepository(NewFileStore(path))
}

func TestOrdersEmptyWhenAbsent(t *testing.T) {
	repo := newOrdersRepo(t)
	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAddPrependsNewestFirst(t *testing.T) {
	repo := newOrdersRepo(t)
	ctx := context.Background()

	first := &models.Order{ID: "ORD-1", CreatedAt: "2026-01-01T10:00:00Z", Status: "pending"}
	second := &models.Order{ID: "ORD-2", CreatedAt: "2026-01-02T10:00:00Z", Status: "pending"}
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2", orders[0].ID)
	assert.Equal(t, "ORD-1", orders[1].ID)
}

func TestSubscriptionsAddDedupesByEndpoint(t *testing.T) {
	repo := NewSubscriptionsRepository(NewFileStore(filepath.Join(t.TempDir(), "push.json")))
	ctx := context.Background()

	sub := models.PushSubscription{
		Endpoint: "https://push.example/abc",
		Keys:     models.PushSubscriptionKeys{P256dh: "p", Auth: "a"},
	}
	require.NoError(t, repo.Add(ctx, sub))
	require.NoError(t, repo.Add(ctx, sub))

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubscriptionsRemove(t *testing.T) {
	repo := NewSubscriptionsRepository(NewFileStore(filepath.Join(t.TempDir(), "push.json")))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, models.PushSubscription{Endpoint: "https://push.example/a"}))
	require.NoError(t, repo.Add(ctx, models.PushSubscription{Endpoint: "https://push.example/b"}))
	require.NoError(t, repo.Remove(ctx, "https://push.example/a"))

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "https://push.example/b", subs[0].Endpoint)

	// removing an unknown endpoint is a no-op
	assert.NoError(t, repo.Remove(ctx, "https://push.example/zzz"))
}
