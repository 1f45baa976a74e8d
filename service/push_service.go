package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"crocsdkr/models"
	"crocsdkr/repository"
)

// PushSenderInterface defines the contract for order notifications
type PushSenderInterface interface {
	Enabled() bool
	PublicKey() string
	SendToAll(ctx context.Context, title, body string)
}

// PushService delivers web-push notifications to every registered admin
// device. Delivery is best-effort: failures are logged, never surfaced, and
// endpoints reported gone by the push service are pruned from the store.
type PushService struct {
	subscriptions repository.SubscriptionsRepositoryInterface
	publicKey     string
	privateKey    string
}

// NewPushService creates a PushService. Empty VAPID keys disable push
// silently rather than failing.
func NewPushService(subs repository.SubscriptionsRepositoryInterface, publicKey, privateKey string) *PushService {
	return &PushService{
		subscriptions: subs,
		publicKey:     publicKey,
		privateKey:    privateKey,
	}
}

// Ensure PushService implements PushSenderInterface
var _ PushSenderInterface = (*PushService)(nil)

// Enabled reports whether a VAPID key pair is configured
func (s *PushService) Enabled() bool {
	return s.publicKey != "" && s.privateKey != ""
}

// PublicKey returns the VAPID public key handed to subscribing clients
func (s *PushService) PublicKey() string {
	return s.publicKey
}

// SendToAll pushes a notification to every registered device. Never returns
// an error: a lost notification must not affect the caller.
func (s *PushService) SendToAll(ctx context.Context, title, body string) {
	if !s.Enabled() {
		log.Printf("⚠️  Push: VAPID keys not set, notification not sent")
		return
	}

	subs, err := s.subscriptions.List(ctx)
	if err != nil {
		log.Printf("❌ Push: failed to load subscriptions: %v", err)
		return
	}
	if len(subs) == 0 {
		return
	}

	payload, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		log.Printf("❌ Push: failed to encode payload: %v", err)
		return
	}

	options := &webpush.Options{
		Subscriber:      "mailto:admin@crocsdkr.com",
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             60,
	}

	for _, sub := range subs {
		s.sendOne(ctx, sub, payload, options)
	}
}

func (s *PushService) sendOne(ctx context.Context, sub models.PushSubscription, payload []byte, options *webpush.Options) {
	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, target, options)
	if err != nil {
		log.Printf("❌ Push: delivery failed: %v", err)
		return
	}
	defer resp.Body.Close()

	// The push service answers 404/410 for endpoints that no longer exist;
	// keeping them around just slows every later send.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		if err := s.subscriptions.Remove(ctx, sub.Endpoint); err != nil {
			log.Printf("❌ Push: failed to prune dead subscription: %v", err)
		}
	}
}
