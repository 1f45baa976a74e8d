package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"crocsdkr/models"
	"crocsdkr/repository"
)

// AuthController handles the admin panel login. The stored password is a
// plaintext compare and no session or token is issued; the client keeps its
// own authenticated flag, exactly like the storefront always has.
type AuthController struct {
	settings repository.SettingsRepositoryInterface
}

// NewAuthController creates a new AuthController
func NewAuthController(settings repository.SettingsRepositoryInterface) *AuthController {
	return &AuthController{settings: settings}
}

// Login handles POST /admin/login
// Example request: {"password": "..."}
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Login: Received %s request to %s", r.Method, r.URL.Path)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	raw, err := c.settings.GetSection(r.Context(), models.SectionAdmin)
	if err != nil {
		log.Printf("❌ Login: failed to read admin settings: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la lecture des paramètres")
		return
	}

	var admin models.AdminSettings
	if err := json.Unmarshal(raw, &admin); err != nil {
		log.Printf("❌ Login: failed to decode admin settings: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la lecture des paramètres")
		return
	}

	if admin.Password == "" || req.Password != admin.Password {
		writeError(w, http.StatusUnauthorized, "Mot de passe incorrect")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
