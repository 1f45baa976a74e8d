package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crocsdkr/models"
)

func newSettingsRepo(t *testing.T, doc string) *SettingsRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site-settings.json")
	if doc != "" {
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	}
	return NewSettingsRepository(NewFileStore(path))
}

const settingsFixture = `{
  "hero": {"title": "Crocsdkr", "subtitle": "Le confort à vos pieds"},
  "admin": {"password": "secret", "urlCode": "amdycrcwst"},
  "testimonials": [
    {"id": "1700000000000", "name": "Awa", "comment": "Top", "rating": 5, "active": true}
  ],
  "categories": [
    {"id": "10", "name": "Classic", "basePrice": 15000, "active": true, "order": 1},
    {"id": "20", "name": "Collaboration", "basePrice": 20000, "active": true, "order": 2}
  ],
  "maintenance": {"enabled": false, "message": ""}
}`

func TestGetSection(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	ctx := context.Background()

	raw, err := repo.GetSection(ctx, models.SectionHero)
	require.NoError(t, err)

	var hero models.HeroSettings
	require.NoError(t, json.Unmarshal(raw, &hero))
	assert.Equal(t, "Crocsdkr", hero.Title)

	_, err = repo.GetSection(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetDocumentMissingFile(t *testing.T) {
	repo := newSettingsRepo(t, "")
	_, err := repo.GetDocument(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutSectionReplaces(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	ctx := context.Background()

	require.NoError(t, repo.PutSection(ctx, models.SectionHero, json.RawMessage(`{"title":"Nouveau"}`)))

	raw, err := repo.GetSection(ctx, models.SectionHero)
	require.NoError(t, err)
	var hero map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &hero))
	assert.Equal(t, "Nouveau", hero["title"])
	// replace, not merge: the old subtitle is gone
	assert.NotContains(t, hero, "subtitle")
}

func TestPutAdminSectionMerges(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	ctx := context.Background()

	require.NoError(t, repo.PutSection(ctx, models.SectionAdmin, json.RawMessage(`{"password":"x"}`)))

	raw, err := repo.GetSection(ctx, models.SectionAdmin)
	require.NoError(t, err)
	var admin models.AdminSettings
	require.NoError(t, json.Unmarshal(raw, &admin))
	assert.Equal(t, "x", admin.Password)
	assert.Equal(t, "amdycrcwst", admin.URLCode, "merge must preserve the url code")
}

func TestMergeTopLevel(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	ctx := context.Background()

	update := json.RawMessage(`{"maintenance": {"enabled": true, "message": "Retour bientôt"}}`)
	require.NoError(t, repo.MergeTopLevel(ctx, update))

	raw, err := repo.GetSection(ctx, models.SectionMaintenance)
	require.NoError(t, err)
	var m models.MaintenanceSettings
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.True(t, m.Enabled)

	// untouched sections survive
	_, err = repo.GetSection(ctx, models.SectionHero)
	assert.NoError(t, err)
}

func TestAppendItemAssignsUniqueID(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	ctx := context.Background()

	first, err := repo.AppendItem(ctx, models.SectionTestimonials, json.RawMessage(`{"name":"Moussa","comment":"Rapide","rating":5,"active":true}`))
	require.NoError(t, err)
	second, err := repo.AppendItem(ctx, models.SectionTestimonials, json.RawMessage(`{"name":"Fatou","comment":"Parfait","rating":4,"active":true}`))
	require.NoError(t, err)

	var a, b models.Testimonial
	require.NoError(t, json.Unmarshal(first, &a))
	require.NoError(t, json.Unmarshal(second, &b))
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, "1700000000000", a.ID)

	raw, err := repo.GetSection(ctx, models.SectionTestimonials)
	require.NoError(t, err)
	var list []models.Testimonial
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list, 3)
}

func TestAppendItemInvalidSection(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	ctx := context.Background()

	_, err := repo.AppendItem(ctx, models.SectionHero, json.RawMessage(`{"name":"x"}`))
	assert.ErrorIs(t, err, ErrInvalidSection)

	_, err = repo.AppendItem(ctx, "missing", json.RawMessage(`{"name":"x"}`))
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestDeleteItem(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	ctx := context.Background()

	require.NoError(t, repo.DeleteItem(ctx, models.SectionCategories, "10"))

	raw, err := repo.GetSection(ctx, models.SectionCategories)
	require.NoError(t, err)
	var list []models.Category
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "20", list[0].ID)
	assert.Equal(t, 2, list[0].Order, "surviving order values stay untouched")
}

func TestDeleteItemInvalidSection(t *testing.T) {
	repo := newSettingsRepo(t, settingsFixture)
	err := repo.DeleteItem(context.Background(), models.SectionMaintenance, "1")
	assert.ErrorIs(t, err, ErrInvalidSection)
}
