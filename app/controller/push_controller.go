package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"crocsdkr/models"
	"crocsdkr/repository"
	"crocsdkr/service"
)

// PushController handles push subscription registration
type PushController struct {
	subscriptions repository.SubscriptionsRepositoryInterface
	push          service.PushSenderInterface
}

// NewPushController creates a new PushController
func NewPushController(subs repository.SubscriptionsRepositoryInterface, push service.PushSenderInterface) *PushController {
	return &PushController{subscriptions: subs, push: push}
}

// Subscribe handles POST /push-subscribe
// Example request: {"endpoint": "https://fcm.googleapis.com/...", "keys": {"p256dh": "...", "auth": "..."}}
func (c *PushController) Subscribe(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Subscribe: Received %s request to %s", r.Method, r.URL.Path)

	var sub models.PushSubscription
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.Printf("❌ Subscribe: invalid body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid subscription")
		return
	}
	if sub.Endpoint == "" || sub.Keys.P256dh == "" || sub.Keys.Auth == "" {
		writeError(w, http.StatusBadRequest, "Invalid subscription")
		return
	}

	if err := c.subscriptions.Add(r.Context(), sub); err != nil {
		log.Printf("❌ Subscribe: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// PublicKey handles GET /push-public-key. Returns 503 when no VAPID key
// pair is configured so the client quietly skips the opt-in banner.
func (c *PushController) PublicKey(w http.ResponseWriter, r *http.Request) {
	if !c.push.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "VAPID not configured")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"publicKey": c.push.PublicKey()})
}
