package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crocsdkr/models"
	"crocsdkr/repository"
)

const settingsFixture = `{
	"hero": {"title": "Crocsdkr", "subtitle": "Le confort à vos pieds"},
	"admin": {"password": "secret", "urlCode": "amdycrcwst"}
}`

func newTestSettingsController(t *testing.T) *SettingsController {
	t.Helper()
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "site-settings.json"))
	require.NoError(t, store.Write(context.Background(), json.RawMessage(settingsFixture)))
	return NewSettingsController(repository.NewSettingsRepository(store))
}

func TestGetSettingsSection(t *testing.T) {
	c := newTestSettingsController(t)

	rec := httptest.NewRecorder()
	c.GetSettings(rec, httptest.NewRequest(http.MethodGet, "/settings?section=hero", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var hero models.HeroSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hero))
	assert.Equal(t, "Crocsdkr", hero.Title)
}

func TestGetSettingsUnknownSection(t *testing.T) {
	c := newTestSettingsController(t)

	rec := httptest.NewRecorder()
	c.GetSettings(rec, httptest.NewRequest(http.MethodGet, "/settings?section=footer", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Section introuvable", body["error"])
}

func TestUpdateAdminSectionPreservesURLCode(t *testing.T) {
	c := newTestSettingsController(t)

	payload := `{"section": "admin", "data": {"password": "nouveau"}}`
	rec := httptest.NewRecorder()
	c.UpdateSettings(rec, httptest.NewRequest(http.MethodPut, "/settings", bytes.NewBufferString(payload)))
	require.Equal(t, http.StatusOK, rec.Code)

	get := httptest.NewRecorder()
	c.GetSettings(get, httptest.NewRequest(http.MethodGet, "/settings?section=admin", nil))
	require.Equal(t, http.StatusOK, get.Code)

	var admin models.AdminSettings
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &admin))
	assert.Equal(t, "nouveau", admin.Password)
	assert.Equal(t, "amdycrcwst", admin.URLCode)
}
