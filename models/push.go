package models

// PushSubscriptionKeys are the client encryption keys of a web-push
// subscription
type PushSubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription is one admin device registered for order notifications.
// The endpoint is the unique key; a subscription is removed when the push
// service reports the endpoint gone (404/410).
type PushSubscription struct {
	Endpoint string               `json:"endpoint"`
	Keys     PushSubscriptionKeys `json:"keys"`
}
