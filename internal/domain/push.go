package domain

import "time"

// PushSubscription is one registered web push endpoint. Delivery is
// handled by consumers of the alert topic; the service only keeps the
// registry.
type PushSubscription struct {
	ID        string            `json:"id"`
	Endpoint  string            `json:"endpoint"`
	Keys      map[string]string `json:"keys"`
	Language  string            `json:"language"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
