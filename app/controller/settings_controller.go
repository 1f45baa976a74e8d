package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"crocsdkr/models"
	"crocsdkr/repository"
)

// SettingsController handles HTTP requests for the site-settings document
type SettingsController struct {
	settings repository.SettingsRepositoryInterface
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settings repository.SettingsRepositoryInterface) *SettingsController {
	return &SettingsController{settings: settings}
}

// GetSettings handles GET /settings and GET /settings?section=
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := c.settings.GetDocument(r.Context())
	if err != nil {
		log.Printf("❌ GetSettings: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la lecture des paramètres")
		return
	}

	section := r.URL.Query().Get("section")
	if section == "" {
		writeJSON(w, http.StatusOK, doc)
		return
	}

	value, ok := doc[section]
	if !ok {
		writeError(w, http.StatusNotFound, "Section introuvable")
		return
	}
	writeJSON(w, http.StatusOK, json.RawMessage(value))
}

// UpdateSettings handles PUT /settings
// Example request: {"section": "hero", "data": {"title": "Crocsdkr", ...}}
// The admin section is merged, every other section is replaced; an empty
// section merges data into the top level.
func (c *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateSettings: Received %s request to %s", r.Method, r.URL.Path)

	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateSettings: invalid body: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la mise à jour")
		return
	}

	var err error
	if req.Section != "" {
		err = c.settings.PutSection(r.Context(), req.Section, req.Data)
	} else {
		err = c.settings.MergeTopLevel(r.Context(), req.Data)
	}
	if err != nil {
		log.Printf("❌ UpdateSettings: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la mise à jour")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Paramètres mis à jour",
	})
}

// AppendItem handles POST /settings for the list-valued sections
// (testimonials, whyUs, categories)
// Example request: {"section": "testimonials", "item": {"name": "Awa", "comment": "Top", "rating": 5, "active": true}}
func (c *SettingsController) AppendItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AppendItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.AppendItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AppendItem: invalid body: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur")
		return
	}

	item, err := c.settings.AppendItem(r.Context(), req.Section, req.Item)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSection) {
			writeError(w, http.StatusBadRequest, "Section invalide")
			return
		}
		log.Printf("❌ AppendItem: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"item":    json.RawMessage(item),
	})
}

// DeleteItem handles DELETE /settings?section=&id=
func (c *SettingsController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteItem: Received %s request to %s", r.Method, r.URL.RequestURI())

	section := r.URL.Query().Get("section")
	id := r.URL.Query().Get("id")
	if section == "" || id == "" {
		writeError(w, http.StatusBadRequest, "Paramètres manquants")
		return
	}

	if err := c.settings.DeleteItem(r.Context(), section, id); err != nil {
		if errors.Is(err, repository.ErrInvalidSection) {
			writeError(w, http.StatusBadRequest, "Section invalide")
			return
		}
		log.Printf("❌ DeleteItem: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
