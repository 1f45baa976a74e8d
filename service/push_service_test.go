package service

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crocsdkr/models"
)

type fakeSubs struct {
	subs    []models.PushSubscription
	removed []string
}

func (f *fakeSubs) List(_ context.Context) ([]models.PushSubscription, error) {
	return f.subs, nil
}

func (f *fakeSubs) Add(_ context.Context, sub models.PushSubscription) error {
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubs) Remove(_ context.Context, endpoint string) error {
	f.removed = append(f.removed, endpoint)
	return nil
}

// clientKeys builds a syntactically valid subscription key pair so the
// payload encryption succeeds
func clientKeys(t *testing.T) models.PushSubscriptionKeys {
	t.Helper()
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	return models.PushSubscriptionKeys{
		P256dh: base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		Auth:   base64.RawURLEncoding.EncodeToString(make([]byte, 16)),
	}
}

func TestPushDisabledWithoutKeys(t *testing.T) {
	subs := &fakeSubs{}
	svc := NewPushService(subs, "", "")

	assert.False(t, svc.Enabled())
	// must be a silent no-op
	svc.SendToAll(context.Background(), "t", "b")
	assert.Empty(t, subs.removed)
}

func TestPushPrunesGoneEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	priv, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	subs := &fakeSubs{subs: []models.PushSubscription{
		{Endpoint: server.URL + "/sub-1", Keys: clientKeys(t)},
	}}
	svc := NewPushService(subs, pub, priv)
	require.True(t, svc.Enabled())
	assert.Equal(t, pub, svc.PublicKey())

	svc.SendToAll(context.Background(), "Nouvelle commande Crocsdkr", "test")
	assert.Equal(t, []string{server.URL + "/sub-1"}, subs.removed)
}

func TestPushKeepsLiveEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	priv, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	subs := &fakeSubs{subs: []models.PushSubscription{
		{Endpoint: server.URL + "/sub-1", Keys: clientKeys(t)},
	}}
	svc := NewPushService(subs, pub, priv)

	svc.SendToAll(context.Background(), "Nouvelle commande Crocsdkr", "test")
	assert.Empty(t, subs.removed)
}
